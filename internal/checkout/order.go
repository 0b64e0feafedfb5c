// internal/checkout/order.go
package checkout

import (
	"math"
	"strings"

	"github.com/google/uuid"
)

// round2 rounds a monetary amount to two decimals.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Address is an immutable customer address.
type Address struct {
	Line1      string
	City       string
	Country    string
	PostalCode string
}

// Customer identifies the buyer on an order.
type Customer struct {
	ID      string
	Name    string
	Email   string
	Address Address
}

// OrderItem is one product at a quantity inside an order.
type OrderItem struct {
	Product  Product
	Quantity int
}

// LineTotal computes unit price times quantity, rounded to two decimals.
func (i OrderItem) LineTotal() float64 {
	return round2(i.Product.Price() * float64(i.Quantity))
}

// Order composes a customer with the items being bought.
type Order struct {
	ID         string
	Customer   Customer
	Items      []OrderItem
	CouponCode string
}

// NewOrder builds an order with a fresh ten-character ID.
func NewOrder(customer Customer, items []OrderItem, couponCode string) *Order {
	id := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:10])
	return &Order{
		ID:         id,
		Customer:   customer,
		Items:      items,
		CouponCode: couponCode,
	}
}

// Subtotal sums all line totals, rounded to two decimals.
func (o *Order) Subtotal() float64 {
	var sum float64
	for _, item := range o.Items {
		sum += item.LineTotal()
	}
	return round2(sum)
}

// TotalItems counts the products in the order across all lines.
func (o *Order) TotalItems() int {
	var n int
	for _, item := range o.Items {
		n += item.Quantity
	}
	return n
}

// totalShippingWeight sums every item's shipping weight times quantity.
func (o *Order) totalShippingWeight() float64 {
	var w float64
	for _, item := range o.Items {
		w += item.Product.ShippingWeight() * float64(item.Quantity)
	}
	return w
}
