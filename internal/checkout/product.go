// internal/checkout/product.go

// Package checkout implements the order pricing engine: products, orders,
// discount strategies, shipping services, payment gateways, and invoice
// rendering. All monetary amounts are rounded to two decimals at the point
// they are produced.
package checkout

import (
	"errors"
	"fmt"
)

// Kind discriminates the closed set of product variants.
type Kind string

const (
	KindPhysical Kind = "physical"
	KindDigital  Kind = "digital"
)

var (
	// ErrInvalidSKU reports a SKU that is not uppercase alphanumeric of
	// 6 to 12 characters.
	ErrInvalidSKU = errors.New("invalid SKU format")

	// ErrNegativePrice reports a price below zero.
	ErrNegativePrice = errors.New("price cannot be negative")
)

// UnknownProductTypeError reports a ProductSpec whose type tag matches no
// known variant.
type UnknownProductTypeError struct {
	Type string
}

func (e *UnknownProductTypeError) Error() string {
	return fmt.Sprintf("unknown product type: %q", e.Type)
}

// Product is the capability shared by every product variant. ShippingWeight
// is a required method: each variant must answer it rather than relying on
// a reflective fallback, digital goods simply answer zero.
type Product interface {
	Kind() Kind
	SKU() string
	Name() string
	Price() float64
	ShippingWeight() float64
}

// ProductSpec is the external, discriminator-tagged description of a
// product. Type selects the variant; WeightKg applies to physical products
// and FileSizeMB to digital ones.
type ProductSpec struct {
	Type       string  `mapstructure:"type" json:"type"`
	SKU        string  `mapstructure:"sku" json:"sku"`
	Name       string  `mapstructure:"name" json:"name"`
	Price      float64 `mapstructure:"price" json:"price"`
	WeightKg   float64 `mapstructure:"weight_kg" json:"weight_kg"`
	FileSizeMB float64 `mapstructure:"file_size_mb" json:"file_size_mb"`
}

// New constructs the product variant selected by spec.Type. The match is
// exhaustive over the closed variant set; an unrecognized tag yields a
// typed error.
func New(spec ProductSpec) (Product, error) {
	switch Kind(spec.Type) {
	case KindPhysical:
		return NewPhysical(spec.SKU, spec.Name, spec.Price, spec.WeightKg)
	case KindDigital:
		return NewDigital(spec.SKU, spec.Name, spec.Price, spec.FileSizeMB)
	default:
		return nil, &UnknownProductTypeError{Type: spec.Type}
	}
}

// ValidateSKU checks the SKU format: uppercase alphanumeric, 6-12 chars.
func ValidateSKU(sku string) bool {
	if len(sku) < 6 || len(sku) > 12 {
		return false
	}
	for _, r := range sku {
		switch {
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}

// base carries the fields common to every product variant.
type base struct {
	sku   string
	name  string
	price float64
}

func newBase(sku, name string, price float64) (base, error) {
	if !ValidateSKU(sku) {
		return base{}, fmt.Errorf("%w: %q must be uppercase alphanumeric (6-12 chars)", ErrInvalidSKU, sku)
	}
	if price < 0 {
		return base{}, fmt.Errorf("%w: %v", ErrNegativePrice, price)
	}
	return base{sku: sku, name: name, price: round2(price)}, nil
}

func (b base) SKU() string    { return b.sku }
func (b base) Name() string   { return b.name }
func (b base) Price() float64 { return b.price }

// PhysicalProduct is a product that ships by weight.
type PhysicalProduct struct {
	base
	weightKg float64
}

// NewPhysical constructs a physical product. Negative weights clamp to zero.
func NewPhysical(sku, name string, price, weightKg float64) (*PhysicalProduct, error) {
	b, err := newBase(sku, name, price)
	if err != nil {
		return nil, err
	}
	return &PhysicalProduct{base: b, weightKg: max(0, weightKg)}, nil
}

func (p *PhysicalProduct) Kind() Kind              { return KindPhysical }
func (p *PhysicalProduct) ShippingWeight() float64 { return p.weightKg }

// DigitalProduct is a downloadable product with no shipping weight.
type DigitalProduct struct {
	base
	fileSizeMB float64
}

// NewDigital constructs a digital product. Negative file sizes clamp to zero.
func NewDigital(sku, name string, price, fileSizeMB float64) (*DigitalProduct, error) {
	b, err := newBase(sku, name, price)
	if err != nil {
		return nil, err
	}
	return &DigitalProduct{base: b, fileSizeMB: max(0, fileSizeMB)}, nil
}

func (p *DigitalProduct) Kind() Kind { return KindDigital }

// ShippingWeight answers zero: digital goods do not ship.
func (p *DigitalProduct) ShippingWeight() float64 { return 0 }

// FileSizeMB returns the download size.
func (p *DigitalProduct) FileSizeMB() float64 { return p.fileSizeMB }
