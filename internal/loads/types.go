package loads

import "net/url"

// SearchParams is a fully sanitized load-search parameter set. Every field
// is guaranteed present and legal after Sanitize; construct a new value
// instead of mutating one.
type SearchParams struct {
	Offset                string
	StatusList            string
	OriginCityList        string
	TruckTypes            string
	AxleCurrentWeekLoads  string
	Apply100KmLogic       string
	IncludeAdhocIntracity string
	LoadsWithBidActive    string
	Limit                 string
}

// Values renders the parameter set as an upstream query string.
func (p SearchParams) Values() url.Values {
	v := url.Values{}
	v.Set("offset", p.Offset)
	v.Set("status_list", p.StatusList)
	v.Set("origin_city_list", p.OriginCityList)
	v.Set("truck_types", p.TruckTypes)
	v.Set("axle_current_week_loads", p.AxleCurrentWeekLoads)
	v.Set("apply_100km_logic", p.Apply100KmLogic)
	v.Set("include_adhoc_intracity", p.IncludeAdhocIntracity)
	v.Set("loads_with_bid_active", p.LoadsWithBidActive)
	v.Set("limit", p.Limit)
	return v
}

// Map renders the parameter set back into the loose bag form, mostly so
// tests can feed Sanitize its own output.
func (p SearchParams) Map() map[string]string {
	return map[string]string{
		"offset":                  p.Offset,
		"status_list":             p.StatusList,
		"origin_city_list":        p.OriginCityList,
		"truck_types":             p.TruckTypes,
		"axle_current_week_loads": p.AxleCurrentWeekLoads,
		"apply_100km_logic":       p.Apply100KmLogic,
		"include_adhoc_intracity": p.IncludeAdhocIntracity,
		"loads_with_bid_active":   p.LoadsWithBidActive,
		"limit":                   p.Limit,
	}
}
