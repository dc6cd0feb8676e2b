// Package forms validates the shipment, login and tracking forms and the
// driver's job actions on top of a hygiene.Guard.
//
// Each Validate function checks every field, sanitizes the values and
// reports all failures at once as validator.ValidationErrors, one entry
// per field. Entries carry the user-facing English message and a catalog
// key under the shipment., login., tracking. or driver. prefix, so they can be
// rendered through pkg/messages:
//
//	req, err := forms.ValidateShipment(ctx, guard, forms.ShipmentRequest{
//		Pickup:  r.FormValue("pickup"),
//		Dropoff: r.FormValue("dropoff"),
//		Details: r.FormValue("details"),
//	})
//	if errs := validator.ExtractValidationErrors(err); errs != nil {
//		fieldErrors := catalog.RenderAll("en", errs)
//	}
//
// The sentinel of the underlying check is preserved, so errors.Is with
// hygiene.ErrMaliciousContent and friends still works on the result.
package forms
