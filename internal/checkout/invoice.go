// internal/checkout/invoice.go
package checkout

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// RenderInvoice produces a plain-text invoice for a priced order.
func RenderInvoice(o *Order, pricing Pricing, txID string, at time.Time) string {
	var b strings.Builder
	line := strings.Repeat("=", 52)

	fmt.Fprintf(&b, "%s\n", line)
	fmt.Fprintf(&b, "INVOICE  Order %s\n", o.ID)
	fmt.Fprintf(&b, "Date: %s\n", at.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "%s\n", line)
	fmt.Fprintf(&b, "Bill to: %s <%s>\n", o.Customer.Name, o.Customer.Email)
	if addr := o.Customer.Address; addr.Line1 != "" {
		fmt.Fprintf(&b, "         %s, %s %s, %s\n", addr.Line1, addr.City, addr.PostalCode, addr.Country)
	}
	fmt.Fprintf(&b, "%s\n", strings.Repeat("-", 52))
	for _, item := range o.Items {
		fmt.Fprintf(&b, "%-24s x%-3d %10.2f  %10.2f\n",
			item.Product.Name(), item.Quantity, item.Product.Price(), item.LineTotal())
	}
	fmt.Fprintf(&b, "%s\n", strings.Repeat("-", 52))
	fmt.Fprintf(&b, "%-34s %15.2f\n", "Subtotal", pricing.Subtotal)
	if pricing.DiscountedSubtotal != pricing.Subtotal {
		fmt.Fprintf(&b, "%-34s %15.2f\n", "After discount", pricing.DiscountedSubtotal)
	}
	fmt.Fprintf(&b, "%-34s %15.2f\n", "Shipping ("+pricing.ShippingMethod+")", pricing.ShippingCost)
	fmt.Fprintf(&b, "%-34s %15.2f\n", "GRAND TOTAL", pricing.GrandTotal)
	if txID != "" {
		fmt.Fprintf(&b, "Transaction: %s\n", txID)
	}
	fmt.Fprintf(&b, "%s\n", line)
	return b.String()
}

// WriteInvoice renders the invoice and writes it to path.
func WriteInvoice(path string, o *Order, pricing Pricing, txID string, at time.Time) error {
	content := RenderInvoice(o, pricing, txID, at)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing invoice %s: %w", path, err)
	}
	return nil
}
