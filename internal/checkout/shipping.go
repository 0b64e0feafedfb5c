// internal/checkout/shipping.go
package checkout

// ShippingService prices the delivery of an order.
type ShippingService interface {
	Cost(o *Order) float64
	Label() string
}

// StandardShipping is the regular delivery option: a flat base plus a
// per-kilogram rate.
type StandardShipping struct{}

func (StandardShipping) Cost(o *Order) float64 {
	return round2(50 + 30*o.totalShippingWeight())
}

func (StandardShipping) Label() string { return "Standard" }

// ExpressShipping is faster delivery at a premium base and rate.
type ExpressShipping struct{}

func (ExpressShipping) Cost(o *Order) float64 {
	return round2(120 + 50*o.totalShippingWeight())
}

func (ExpressShipping) Label() string { return "Express" }
