// internal/checkout/discount.go
package checkout

// DiscountStrategy reduces an amount according to one pricing rule.
type DiscountStrategy interface {
	Apply(amount float64) float64
}

// NoDiscount leaves the amount unchanged.
type NoDiscount struct{}

func (NoDiscount) Apply(amount float64) float64 {
	return round2(amount)
}

// PercentageDiscount takes a percentage off the amount. The percentage is
// clamped to [0, 100] at construction.
type PercentageDiscount struct {
	percent float64
}

// NewPercentageDiscount builds a percentage discount, clamping percent
// into [0, 100].
func NewPercentageDiscount(percent float64) PercentageDiscount {
	return PercentageDiscount{percent: min(100, max(0, percent))}
}

// Percent returns the effective percentage.
func (d PercentageDiscount) Percent() float64 { return d.percent }

func (d PercentageDiscount) Apply(amount float64) float64 {
	return round2(amount * (1 - d.percent/100))
}

// FixedAmountDiscount takes a fixed amount off, never below zero.
type FixedAmountDiscount struct {
	amountOff float64
}

// NewFixedAmountDiscount builds a fixed discount; negative inputs clamp
// to zero.
func NewFixedAmountDiscount(amountOff float64) FixedAmountDiscount {
	return FixedAmountDiscount{amountOff: max(0, amountOff)}
}

func (d FixedAmountDiscount) Apply(amount float64) float64 {
	return round2(max(0, amount-d.amountOff))
}
