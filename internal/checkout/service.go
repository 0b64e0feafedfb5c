// internal/checkout/service.go
package checkout

import (
	"fmt"

	"github.com/calyptra/storesuite/internal/audit"
)

// Pricing is the value record produced once per checkout invocation and
// never mutated afterward.
type Pricing struct {
	Subtotal           float64
	DiscountedSubtotal float64
	ShippingCost       float64
	GrandTotal         float64
	ShippingMethod     string
}

// Result carries the outcome of a completed checkout.
type Result struct {
	OrderID       string
	TransactionID string
	Pricing       Pricing
}

// Service performs checkout and billing. It depends only on the gateway,
// shipping, and discount abstractions, which are injected at construction.
type Service struct {
	gateway  PaymentGateway
	shipping ShippingService
	discount DiscountStrategy
	trail    *audit.Trail
}

// NewService wires a checkout service from its collaborators.
func NewService(gateway PaymentGateway, shipping ShippingService, discount DiscountStrategy, trail *audit.Trail) *Service {
	return &Service{
		gateway:  gateway,
		shipping: shipping,
		discount: discount,
		trail:    trail,
	}
}

// ComputeTotal calculates subtotal, discount, shipping, and the final
// amount for an order.
func (s *Service) ComputeTotal(o *Order) Pricing {
	subtotal := o.Subtotal()
	discounted := s.discount.Apply(subtotal)
	shipping := s.shipping.Cost(o)
	return Pricing{
		Subtotal:           subtotal,
		DiscountedSubtotal: discounted,
		ShippingCost:       shipping,
		GrandTotal:         round2(discounted + shipping),
		ShippingMethod:     s.shipping.Label(),
	}
}

// Checkout computes the order total and processes the payment.
func (s *Service) Checkout(o *Order) (Result, error) {
	pricing := s.ComputeTotal(o)
	txID, err := s.gateway.Process(o, pricing.GrandTotal)
	if err != nil {
		return Result{}, fmt.Errorf("payment for order %s failed: %w", o.ID, err)
	}
	s.trail.Record("Service",
		fmt.Sprintf("Checkout completed for %s, tx %s, total %.2f", o.ID, txID, pricing.GrandTotal))
	return Result{OrderID: o.ID, TransactionID: txID, Pricing: pricing}, nil
}
