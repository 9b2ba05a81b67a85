package catalog

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFilterParamsDefaults(t *testing.T) {
	params, err := ParseFilterParams(url.Values{})
	require.NoError(t, err)

	assert.True(t, params.Available)
	assert.Equal(t, 0, params.Offset)
	assert.Equal(t, 100, params.Limit)
	assert.Nil(t, params.SizeIDs)
	assert.True(t, params.PriceMin.IsZero())
	assert.True(t, params.PriceMax.IsZero())
}

func TestParseFilterParamsAllOptions(t *testing.T) {
	q, err := url.ParseQuery("category_id=1&size_id=2,3&style_id=4&brand_id=5&bras_type_id=6" +
		"&color_id=7&material_id=8&panties_type_id=9,&available=off&price_min=10.5&price_max=99.99&offset=20&limit=50")
	require.NoError(t, err)

	params, err := ParseFilterParams(q)
	require.NoError(t, err)

	filters := params.Filters()
	assert.Equal(t, []int64{1}, filters.CategoryIDs)
	assert.Equal(t, []int64{2, 3}, filters.SizeIDs)
	assert.Equal(t, []int64{4}, filters.StyleIDs)
	assert.Equal(t, []int64{5}, filters.BrandIDs)
	assert.Equal(t, []int64{6}, filters.BrasTypeIDs)
	assert.Equal(t, []int64{7}, filters.ColorIDs)
	assert.Equal(t, []int64{8}, filters.MaterialIDs)
	assert.Equal(t, []int64{9}, filters.PantiesTypeIDs)
	assert.False(t, filters.Available)
	assert.Equal(t, "10.5", filters.Price.Min.String())
	assert.Equal(t, "99.99", filters.Price.Max.String())
	assert.Equal(t, 20, params.Offset)
	assert.Equal(t, 50, params.Limit)
}

func TestParseFilterParamsErrors(t *testing.T) {
	testCases := []struct {
		name  string
		query string
		param string
	}{
		{name: "Float id", query: "color_id=1.5", param: "color_id"},
		{name: "Bad boolean", query: "available=2", param: "available"},
		{name: "Bad max price", query: "price_max=1e", param: "price_max"},
		{name: "Too many decimal places", query: "price_min=1.234", param: "price_min"},
		{name: "Too many digits", query: "price_max=10000000000000", param: "price_max"},
		{name: "Too many digits when negative", query: "price_min=-10000000000000", param: "price_min"},
		{name: "Bad offset", query: "offset=ten", param: "offset"},
		{name: "Negative limit", query: "limit=-5", param: "limit"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			q, err := url.ParseQuery(tc.query)
			require.NoError(t, err)

			_, err = ParseFilterParams(q)
			require.Error(t, err)

			var perr *ParamError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tc.param, perr.Name)
		})
	}
}

func TestParseFilterParamsNegativeIDs(t *testing.T) {
	q, err := url.ParseQuery("size_id=-1&color_id=2,-3")
	require.NoError(t, err)

	params, err := ParseFilterParams(q)
	require.NoError(t, err)
	assert.Equal(t, []int64{-1}, params.SizeIDs)
	assert.Equal(t, []int64{2, -3}, params.ColorIDs)
}

func TestParseFilterParamsPriceBounds(t *testing.T) {
	testCases := []struct {
		name     string
		query    string
		expected string
	}{
		{name: "Two decimal places", query: "price_min=0.01", expected: "0.01"},
		{name: "Trailing zeros", query: "price_min=12.5000", expected: "12.5"},
		{name: "Largest value", query: "price_min=9999999999999.99", expected: "9999999999999.99"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			q, err := url.ParseQuery(tc.query)
			require.NoError(t, err)

			params, err := ParseFilterParams(q)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, params.PriceMin.String())
		})
	}
}
