package model

// LoadType classifies who owns a listed load.
type LoadType string

const (
	LoadTypeDelhivery   LoadType = "delhivery"
	LoadTypeClient      LoadType = "client"
	LoadTypeMarketplace LoadType = "marketplace"
)

// Route holds the two endpoints of a shipment.
type Route struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// LoadCard is the normalized view of one upstream load record, ready for
// the chat client. Built once from upstream JSON and never mutated.
type LoadCard struct {
	ID             string   `json:"id"`
	Route          Route    `json:"route"`
	TruckType      string   `json:"truckType"`
	Material       string   `json:"material"`
	Capacity       string   `json:"capacity"`
	BiddingEndTime string   `json:"biddingEndTime"`
	TargetPrice    *float64 `json:"targetPrice"`
	Status         string   `json:"status"`
	LoadType       LoadType `json:"loadType"`
}

// BidStatus is the lifecycle state of an operator's bid.
type BidStatus string

const (
	BidStatusPlaced  BidStatus = "placed"
	BidStatusRevised BidStatus = "revised"
	BidStatusWon     BidStatus = "won"
	BidStatusLost    BidStatus = "lost"
)

// BidCard is one load the operator has bid on.
type BidCard struct {
	ID             int       `json:"id"`
	Route          Route     `json:"route"`
	TruckType      string    `json:"truckType"`
	BidAmount      int       `json:"bidAmount"`
	BidStatus      BidStatus `json:"bidStatus"`
	Status         string    `json:"status"`
	BiddingEndTime string    `json:"biddingEndTime,omitempty"`
	LoadType       LoadType  `json:"loadType"`
}

// ActionPointCard is one outstanding task blocking a won bid's fulfillment:
// a vehicle still to attach, or a proof-of-delivery still to upload.
type ActionPointCard struct {
	ID        int    `json:"id"`
	Route     Route  `json:"route"`
	TruckType string `json:"truckType"`
	Status    string `json:"status"`
	BidAmount int    `json:"bidAmount"`
}
