package forms

import "github.com/shiptrack/inputguard/pkg/hygiene"

// Contact holds the sensitive details shown on shipment and driver screens.
type Contact struct {
	Phone string
	Email string
}

// Masked returns a copy safe for display. Empty values stay empty.
func (c Contact) Masked(g *hygiene.Guard) Contact {
	return Contact{
		Phone: g.Mask(c.Phone, hygiene.KindPhone),
		Email: g.Mask(c.Email, hygiene.KindEmail),
	}
}
