package models

import "github.com/shopspring/decimal"

// PriceRange bounds the derived product price. A zero bound counts as
// unset, so a minimum of 0 places no lower limit on the price.
type PriceRange struct {
	Min decimal.Decimal
	Max decimal.Decimal
}

// IsSet reports whether either bound is present.
func (r PriceRange) IsSet() bool {
	return !r.Min.IsZero() || !r.Max.IsZero()
}

// Contains reports whether price lies within the inclusive bounds that
// are set.
func (r PriceRange) Contains(price decimal.Decimal) bool {
	switch {
	case !r.Max.IsZero() && !r.Min.IsZero():
		return r.Min.LessThanOrEqual(price) && price.LessThanOrEqual(r.Max)
	case !r.Max.IsZero():
		return price.LessThanOrEqual(r.Max)
	case !r.Min.IsZero():
		return r.Min.LessThanOrEqual(price)
	default:
		return true
	}
}
