// -- cmd/checkout.go --
package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/calyptra/storesuite/internal/audit"
	"github.com/calyptra/storesuite/internal/checkout"
	"github.com/calyptra/storesuite/internal/observability"
)

// newCheckoutCmd builds the demo checkout command. It assembles a sample
// order, prices it with the selected strategies, charges the gateway, and
// prints the invoice.
func newCheckoutCmd() *cobra.Command {
	var (
		discountPercent float64
		shippingMethod  string
		gatewayName     string
		output          string
	)

	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Run a sample order through pricing, payment, and invoicing.",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := observability.GetLogger()
			trail := audit.NewTrail(logger)

			order, err := buildSampleOrder()
			if err != nil {
				return err
			}

			var shipping checkout.ShippingService
			switch shippingMethod {
			case "standard":
				shipping = checkout.StandardShipping{}
			case "express":
				shipping = checkout.ExpressShipping{}
			default:
				return fmt.Errorf("unknown shipping method %q (want standard or express)", shippingMethod)
			}

			var gateway checkout.PaymentGateway
			switch gatewayName {
			case "stripe":
				gateway = checkout.NewStripeGateway(trail)
			case "cod":
				gateway = checkout.NewCashOnDelivery(trail)
			default:
				return fmt.Errorf("unknown gateway %q (want stripe or cod)", gatewayName)
			}

			var discount checkout.DiscountStrategy = checkout.NoDiscount{}
			if discountPercent > 0 {
				discount = checkout.NewPercentageDiscount(discountPercent)
			}

			svc := checkout.NewService(gateway, shipping, discount, trail)
			result, err := svc.Checkout(order)
			if err != nil {
				return err
			}

			logger.Info("Checkout completed",
				zap.String("order_id", result.OrderID),
				zap.String("tx_id", result.TransactionID),
				zap.Float64("grand_total", result.Pricing.GrandTotal),
			)

			invoice := checkout.RenderInvoice(order, result.Pricing, result.TransactionID, time.Now())
			fmt.Fprint(cmd.OutOrStdout(), invoice)

			if output != "" {
				if err := checkout.WriteInvoice(output, order, result.Pricing, result.TransactionID, time.Now()); err != nil {
					return err
				}
				logger.Info("Invoice written", zap.String("path", output))
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&discountPercent, "discount-percent", 10, "percentage discount applied to the subtotal")
	cmd.Flags().StringVar(&shippingMethod, "shipping", "standard", "shipping method: standard or express")
	cmd.Flags().StringVar(&gatewayName, "gateway", "stripe", "payment gateway: stripe or cod")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the invoice to this file")
	return cmd
}

func buildSampleOrder() (*checkout.Order, error) {
	laptop, err := checkout.NewPhysical("LAPTOP01", "UltraBook Pro", 79999, 1.5)
	if err != nil {
		return nil, err
	}
	mouse, err := checkout.NewPhysical("MOUSE001", "Wireless Mouse", 1299, 0.03)
	if err != nil {
		return nil, err
	}
	ebook, err := checkout.NewDigital("EBOOK001", "Go Patterns", 999, 12.5)
	if err != nil {
		return nil, err
	}

	customer := checkout.Customer{
		ID:    "cust-42",
		Name:  "Priya Sharma",
		Email: "priya@example.com",
		Address: checkout.Address{
			Line1:      "14 MG Road",
			City:       "Bengaluru",
			Country:    "IN",
			PostalCode: "560001",
		},
	}
	return checkout.NewOrder(customer, []checkout.OrderItem{
		{Product: laptop, Quantity: 1},
		{Product: mouse, Quantity: 2},
		{Product: ebook, Quantity: 1},
	}, "WELCOME10"), nil
}
