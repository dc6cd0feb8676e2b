package forms

import (
	"context"

	"github.com/shiptrack/inputguard/pkg/hygiene"
	"github.com/shiptrack/inputguard/pkg/validator"
)

// Catalog keys for shipment form notices.
const (
	KeyShipmentAlert     = "shipment.alert"
	KeyShipmentSubmitted = "shipment.submitted"
)

// ShipmentRequest is the quote request submitted from the create-shipment screen.
type ShipmentRequest struct {
	Pickup  string
	Dropoff string
	Details string
	Notes   string
}

var (
	pickupField = fieldCheck{
		name:        "pickup",
		kind:        hygiene.FieldAddress,
		required:    "Pickup address is required",
		requiredKey: "shipment.pickup.required",
		invalid:     "Invalid pickup address format",
		invalidKey:  "shipment.pickup.invalid",
	}
	dropoffField = fieldCheck{
		name:        "dropoff",
		kind:        hygiene.FieldAddress,
		required:    "Drop-off address is required",
		requiredKey: "shipment.dropoff.required",
		invalid:     "Invalid drop-off address format",
		invalidKey:  "shipment.dropoff.invalid",
	}
	detailsField = fieldCheck{
		name:        "details",
		kind:        hygiene.FieldDescription,
		required:    "Cargo details are required",
		requiredKey: "shipment.details.required",
		invalid:     "Invalid cargo details format",
		invalidKey:  "shipment.details.invalid",
	}
	notesField = fieldCheck{
		name:       "notes",
		kind:       hygiene.FieldNotes,
		invalid:    "Invalid notes format",
		invalidKey: "shipment.notes.invalid",
	}
)

// ValidateShipment checks pickup and drop-off as addresses, details as a
// cargo description and the optional notes. It returns the sanitized
// request together with any validation errors.
func ValidateShipment(ctx context.Context, g *hygiene.Guard, req ShipmentRequest) (ShipmentRequest, error) {
	var errs validator.ValidationErrors

	out := ShipmentRequest{
		Pickup:  pickupField.check(ctx, g, req.Pickup, &errs),
		Dropoff: dropoffField.check(ctx, g, req.Dropoff, &errs),
		Details: detailsField.check(ctx, g, req.Details, &errs),
		Notes:   notesField.check(ctx, g, req.Notes, &errs),
	}
	return out, result(errs)
}
