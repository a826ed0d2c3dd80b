package axle

// RawLoad is one load record as the transaction API returns it.
// Every field is optional on the wire; normalization into a domain
// LoadCard happens in the repository layer, never here.
type RawLoad struct {
	ReqTruckUUID        string   `json:"req_truck_uuid"`
	TransactionID       string   `json:"transaction_id"`
	CreationTime        string   `json:"creation_time"`
	PickupLocation      string   `json:"pickup_location"`
	OriginCity          string   `json:"origin_city"`
	Origin              string   `json:"origin"`
	Destination         string   `json:"destination"`
	DestinationCity     string   `json:"destination_city"`
	TruckType           string   `json:"truck_type"`
	ReqTruckType        string   `json:"req_truck_type"`
	MaterialType        string   `json:"material_type"`
	RequestedCapacityMg *float64 `json:"requested_capacity_mg"`
	BiddingEndTime      string   `json:"bidding_end_time"`
	TargetPrice         *float64 `json:"target_price"`
	Status              string   `json:"status"`
	LoadType            string   `json:"load_type"`
}

// listResponse is the success body shape of /transactions/list/.
type listResponse struct {
	Data *struct {
		Result []RawLoad `json:"result"`
	} `json:"data"`
}

// RawResult is the verbatim reply of a pass-through proxy call.
type RawResult struct {
	StatusCode  int
	Body        []byte
	ContentType string
}
