// internal/checkout/payment.go
package checkout

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/calyptra/storesuite/internal/audit"
)

// PaymentGateway settles the final amount of an order and returns a
// transaction identifier.
type PaymentGateway interface {
	Process(o *Order, amount float64) (string, error)
}

// StripeGateway simulates a card payment processor.
type StripeGateway struct {
	trail *audit.Trail
}

// NewStripeGateway builds the gateway with an optional audit trail.
func NewStripeGateway(trail *audit.Trail) *StripeGateway {
	return &StripeGateway{trail: trail}
}

func (g *StripeGateway) Process(o *Order, amount float64) (string, error) {
	txID := "stripe_" + strings.ReplaceAll(uuid.New().String(), "-", "")[:12]
	g.trail.Record("StripeGateway",
		fmt.Sprintf("Processed payment %s for %s amount %.2f", txID, o.ID, amount))
	return txID, nil
}

// CashOnDelivery marks the order for settlement at delivery time.
type CashOnDelivery struct {
	trail *audit.Trail
}

// NewCashOnDelivery builds the gateway with an optional audit trail.
func NewCashOnDelivery(trail *audit.Trail) *CashOnDelivery {
	return &CashOnDelivery{trail: trail}
}

func (g *CashOnDelivery) Process(o *Order, amount float64) (string, error) {
	txID := "cod_" + o.ID
	g.trail.Record("CashOnDelivery",
		fmt.Sprintf("Marked COD for %s amount %.2f", o.ID, amount))
	return txID, nil
}
