package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPriceRangeContains(t *testing.T) {
	d := decimal.RequireFromString

	testCases := []struct {
		name     string
		rng      PriceRange
		price    string
		expected bool
	}{
		{name: "No bounds", rng: PriceRange{}, price: "123.45", expected: true},
		{name: "Both bounds inside", rng: PriceRange{Min: d("100"), Max: d("200")}, price: "150", expected: true},
		{name: "Both bounds lower edge", rng: PriceRange{Min: d("100"), Max: d("200")}, price: "100", expected: true},
		{name: "Both bounds upper edge", rng: PriceRange{Min: d("100"), Max: d("200")}, price: "200", expected: true},
		{name: "Both bounds below", rng: PriceRange{Min: d("100"), Max: d("200")}, price: "99.99", expected: false},
		{name: "Both bounds above", rng: PriceRange{Min: d("100"), Max: d("200")}, price: "200.01", expected: false},
		{name: "Max only inside", rng: PriceRange{Max: d("50")}, price: "50", expected: true},
		{name: "Max only above", rng: PriceRange{Max: d("50")}, price: "50.5", expected: false},
		{name: "Min only inside", rng: PriceRange{Min: d("10")}, price: "10", expected: true},
		{name: "Min only below", rng: PriceRange{Min: d("10")}, price: "9", expected: false},
		{name: "Zero min is no lower bound", rng: PriceRange{Min: d("0"), Max: d("50")}, price: "0", expected: true},
		{name: "Zero max is no upper bound", rng: PriceRange{Min: d("10"), Max: d("0")}, price: "100000", expected: true},
		{name: "Both zero", rng: PriceRange{Min: d("0"), Max: d("0")}, price: "42", expected: true},
		{name: "Inverted bounds match nothing", rng: PriceRange{Min: d("200"), Max: d("100")}, price: "150", expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.rng.Contains(d(tc.price)))
		})
	}
}

func TestPriceRangeIsSet(t *testing.T) {
	assert.False(t, PriceRange{}.IsSet())
	assert.False(t, PriceRange{Min: decimal.Zero, Max: decimal.Zero}.IsSet())
	assert.True(t, PriceRange{Min: decimal.NewFromInt(1)}.IsSet())
	assert.True(t, PriceRange{Max: decimal.NewFromInt(1)}.IsSet())
}
