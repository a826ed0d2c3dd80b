package usecase

import "axle-assist/internal/model"

// Fixed datasets for the bid and action-point flows, pending real backend
// integration. Returned as fresh slices so callers cannot mutate the
// canonical copies.

var mockBids = []model.BidCard{
	{
		ID:             1,
		Route:          model.Route{From: "Kochi, Kerala", To: "Jaipur, Rajasthan"},
		TruckType:      "Open 32FTXXL18 MT",
		BidAmount:      48000,
		BidStatus:      model.BidStatusRevised,
		Status:         "open",
		BiddingEndTime: "2 hrs 15 min",
		LoadType:       model.LoadTypeMarketplace,
	},
	{
		ID:        2,
		Route:     model.Route{From: "New Delhi", To: "Pune"},
		TruckType: "Closed 32FTXXL18 MT",
		BidAmount: 46000,
		BidStatus: model.BidStatusWon,
		Status:    "awaiting-arrival",
		LoadType:  model.LoadTypeDelhivery,
	},
	{
		ID:        3,
		Route:     model.Route{From: "Mumbai", To: "Bangalore"},
		TruckType: "Open 20FT",
		BidAmount: 35000,
		BidStatus: model.BidStatusLost,
		Status:    "closed",
		LoadType:  model.LoadTypeClient,
	},
}

var mockAwaitingArrival = []model.ActionPointCard{
	{
		ID:        2,
		Route:     model.Route{From: "New Delhi", To: "Pune"},
		TruckType: "Closed 32FTXXL18 MT",
		Status:    "awaiting-arrival",
		BidAmount: 46000,
	},
	{
		ID:        4,
		Route:     model.Route{From: "Chennai", To: "Hyderabad"},
		TruckType: "Open 14FTSXL",
		Status:    "awaiting-arrival",
		BidAmount: 28000,
	},
}

var mockUploadPOD = []model.ActionPointCard{
	{
		ID:        5,
		Route:     model.Route{From: "Ahmedabad", To: "Surat"},
		TruckType: "Closed 19FT",
		Status:    "unloaded",
		BidAmount: 15000,
	},
}

func bidDataset() []model.BidCard {
	out := make([]model.BidCard, len(mockBids))
	copy(out, mockBids)
	return out
}

func actionPointDatasets() ([]model.ActionPointCard, []model.ActionPointCard) {
	arrival := make([]model.ActionPointCard, len(mockAwaitingArrival))
	copy(arrival, mockAwaitingArrival)
	pod := make([]model.ActionPointCard, len(mockUploadPOD))
	copy(pod, mockUploadPOD)
	return arrival, pod
}
