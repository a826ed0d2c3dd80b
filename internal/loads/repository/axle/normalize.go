package axle

import (
	"fmt"

	"github.com/google/uuid"

	"axle-assist/internal/model"
	pkgAxle "axle-assist/pkg/axle"
)

// normalizeLoad maps one raw upstream record to a LoadCard. Each field has
// an explicit ordered fallback chain; absent data never produces an empty
// card field.
func normalizeLoad(raw pkgAxle.RawLoad) model.LoadCard {
	return model.LoadCard{
		ID: resolveID(raw),
		Route: model.Route{
			From: firstNonEmpty(raw.PickupLocation, raw.OriginCity, raw.Origin, "-"),
			To:   firstNonEmpty(raw.Destination, raw.DestinationCity, "-"),
		},
		TruckType:      firstNonEmpty(raw.TruckType, raw.ReqTruckType, "-"),
		Material:       firstNonEmpty(raw.MaterialType, "-"),
		Capacity:       resolveCapacity(raw.RequestedCapacityMg),
		BiddingEndTime: firstNonEmpty(raw.BiddingEndTime, "open"),
		TargetPrice:    raw.TargetPrice,
		Status:         firstNonEmpty(raw.Status, "open"),
		LoadType:       resolveLoadType(raw.LoadType),
	}
}

// resolveID picks the first present identifier; a record carrying none at
// all still gets a stable-for-this-response random one.
func resolveID(raw pkgAxle.RawLoad) string {
	if id := firstNonEmpty(raw.ReqTruckUUID, raw.TransactionID, raw.CreationTime); id != "" {
		return id
	}
	return uuid.NewString()
}

// resolveCapacity renders tonnage with its unit suffix only when the
// upstream actually sent a number.
func resolveCapacity(mg *float64) string {
	if mg == nil {
		return "-"
	}
	return fmt.Sprintf("%gT", *mg)
}

// resolveLoadType coerces anything outside the closed set to marketplace.
func resolveLoadType(v string) model.LoadType {
	switch model.LoadType(v) {
	case model.LoadTypeDelhivery, model.LoadTypeClient:
		return model.LoadType(v)
	default:
		return model.LoadTypeMarketplace
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
