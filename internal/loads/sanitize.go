package loads

import (
	"math"
	"strconv"
	"strings"
)

// Hard defaults for every search field. The upstream API misbehaves on
// out-of-domain values, and LLM-extracted parameters cannot be trusted to
// respect business rules, so everything is allow-listed, not type-checked.
const (
	defaultOffset     = "0"
	defaultStatusList = "requested,in_enquiry"
	defaultOriginCity = "DL_CENTRAL_DELHI"
	defaultTruckTypes = "closed"
	defaultLimit      = "100"

	maxLimit = 200
)

// originCityAliases maps recognized origin spellings to their canonical
// upstream code. Exactly one city is supported today; unknown cities fall
// back to it rather than reaching the upstream. Deliberate v1 narrowness —
// widen the map, not the fallback, when more cities ship.
var originCityAliases = map[string]string{
	"DELHI":            defaultOriginCity,
	"DL":               defaultOriginCity,
	"DL_CENTRAL_DELHI": defaultOriginCity,
}

// allowedStatusTokens are the only load statuses a search may filter on.
var allowedStatusTokens = map[string]bool{
	"requested":  true,
	"in_enquiry": true,
}

// Sanitize builds a complete SearchParams from an untrusted parameter bag.
// It never fails: anything missing or out of domain gets its hard default.
// Unrecognized keys in the bag are dropped. Idempotent.
func Sanitize(candidate map[string]string) SearchParams {
	p := SearchParams{
		Offset:         sanitizeOffset(candidate["offset"]),
		StatusList:     sanitizeStatusList(candidate["status_list"]),
		OriginCityList: sanitizeOriginCity(candidate["origin_city_list"]),
		TruckTypes:     sanitizeTruckTypes(candidate["truck_types"]),
		Limit:          sanitizeLimit(candidate["limit"]),

		// Clamped flags: upstream behaves only with these on, so caller
		// input is inert here for now.
		AxleCurrentWeekLoads:  "true",
		Apply100KmLogic:       "true",
		IncludeAdhocIntracity: "true",
		LoadsWithBidActive:    "true",
	}
	return p
}

func sanitizeOffset(v string) string {
	if v == "" {
		return defaultOffset
	}
	return v
}

// sanitizeStatusList keeps the caller's filter only when it names at least
// one recognized status token.
func sanitizeStatusList(v string) string {
	for _, tok := range strings.Split(v, ",") {
		if allowedStatusTokens[strings.TrimSpace(tok)] {
			return v
		}
	}
	return defaultStatusList
}

func sanitizeOriginCity(v string) string {
	if canonical, ok := originCityAliases[strings.ToUpper(strings.TrimSpace(v))]; ok {
		return canonical
	}
	return defaultOriginCity
}

func sanitizeTruckTypes(v string) string {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "open":
		return "open"
	case "closed":
		return "closed"
	default:
		return defaultTruckTypes
	}
}

// sanitizeLimit keeps the caller's limit, as given, when it parses to a
// finite number in (0, maxLimit].
func sanitizeLimit(v string) string {
	n, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsInf(n, 0) || math.IsNaN(n) {
		return defaultLimit
	}
	if n <= 0 || n > maxLimit {
		return defaultLimit
	}
	return v
}
