package forms

import (
	"context"

	"github.com/shiptrack/inputguard/pkg/hygiene"
	"github.com/shiptrack/inputguard/pkg/sanitizer"
	"github.com/shiptrack/inputguard/pkg/validator"
)

// TrackingQuery is the track-shipment lookup.
type TrackingQuery struct {
	ShipmentID string
}

var shipmentIDField = fieldCheck{
	name:        "shipment_id",
	kind:        hygiene.FieldShipmentID,
	required:    "Shipment ID is required",
	requiredKey: "tracking.shipment_id.required",
	invalid:     "Invalid shipment ID format",
	invalidKey:  "tracking.shipment_id.invalid",
}

// ValidateTracking checks the shipment identifier. Identifiers are
// upper-cased first, so "job001ship" is accepted as "JOB001SHIP".
func ValidateTracking(ctx context.Context, g *hygiene.Guard, q TrackingQuery) (TrackingQuery, error) {
	var errs validator.ValidationErrors

	id := shipmentIDField.check(ctx, g, sanitizer.ToUpper(q.ShipmentID), &errs)
	return TrackingQuery{ShipmentID: id}, result(errs)
}
