package catalog

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/silkline/catalog/models"
)

const (
	defaultLimit = 100
	maxLimit     = 100

	// Price bounds share the precision of a decimal(15,2) column.
	priceDigits = 15
	pricePlaces = 2
)

var priceCeiling = decimal.New(1, priceDigits-pricePlaces)

// FilterParams is the query string accepted by the product listing.
type FilterParams struct {
	CategoryIDs    []int64 `query:"category_id"`
	SizeIDs        []int64 `query:"size_id"`
	StyleIDs       []int64 `query:"style_id"`
	BrandIDs       []int64 `query:"brand_id"`
	BrasTypeIDs    []int64 `query:"bras_type_id"`
	ColorIDs       []int64 `query:"color_id"`
	MaterialIDs    []int64 `query:"material_id"`
	PantiesTypeIDs []int64 `query:"panties_type_id"`

	Available bool            `query:"available"`
	PriceMin  decimal.Decimal `query:"price_min"`
	PriceMax  decimal.Decimal `query:"price_max"`

	Offset int `query:"offset" validate:"gte=0"`
	Limit  int `query:"limit" validate:"gte=0"`
}

// ParamError reports a query parameter that could not be used.
type ParamError struct {
	Name   string
	Reason string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("invalid query parameter %s: %s", e.Name, e.Reason)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("query")
	})
	return v
}

// ParseFilterParams reads and validates the listing filters from q.
// A limit above the ceiling is clamped rather than rejected; a limit of 0
// selects the default.
func ParseFilterParams(q url.Values) (FilterParams, error) {
	params := FilterParams{
		Available: true,
		Limit:     defaultLimit,
	}

	ids := []struct {
		name string
		dst  *[]int64
	}{
		{"category_id", &params.CategoryIDs},
		{"size_id", &params.SizeIDs},
		{"style_id", &params.StyleIDs},
		{"brand_id", &params.BrandIDs},
		{"bras_type_id", &params.BrasTypeIDs},
		{"color_id", &params.ColorIDs},
		{"material_id", &params.MaterialIDs},
		{"panties_type_id", &params.PantiesTypeIDs},
	}
	for _, p := range ids {
		list, err := parseIDs(p.name, q[p.name])
		if err != nil {
			return FilterParams{}, err
		}
		*p.dst = list
	}

	if raw := q.Get("available"); raw != "" {
		available, err := parseBool(raw)
		if err != nil {
			return FilterParams{}, &ParamError{Name: "available", Reason: "must be a boolean"}
		}
		params.Available = available
	}

	var err error
	if params.PriceMin, err = parseDecimal("price_min", q.Get("price_min")); err != nil {
		return FilterParams{}, err
	}
	if params.PriceMax, err = parseDecimal("price_max", q.Get("price_max")); err != nil {
		return FilterParams{}, err
	}

	if params.Offset, err = parseInt("offset", q.Get("offset"), 0); err != nil {
		return FilterParams{}, err
	}
	if params.Limit, err = parseInt("limit", q.Get("limit"), defaultLimit); err != nil {
		return FilterParams{}, err
	}

	if err := validate.Struct(params); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return FilterParams{}, &ParamError{Name: fe.Field(), Reason: "must not be negative"}
		}
		return FilterParams{}, err
	}

	if params.Limit == 0 {
		params.Limit = defaultLimit
	}
	if params.Limit > maxLimit {
		params.Limit = maxLimit
	}
	return params, nil
}

// Filters converts the parameters to repository filters.
func (p FilterParams) Filters() models.ProductFilters {
	return models.ProductFilters{
		CategoryIDs:    p.CategoryIDs,
		SizeIDs:        p.SizeIDs,
		StyleIDs:       p.StyleIDs,
		BrandIDs:       p.BrandIDs,
		BrasTypeIDs:    p.BrasTypeIDs,
		ColorIDs:       p.ColorIDs,
		MaterialIDs:    p.MaterialIDs,
		PantiesTypeIDs: p.PantiesTypeIDs,
		Available:      p.Available,
		Price: models.PriceRange{
			Min: p.PriceMin,
			Max: p.PriceMax,
		},
	}
}

// parseIDs accepts both repeated keys (?size_id=1&size_id=2) and comma
// separated lists (?size_id=1,2).
func parseIDs(name string, values []string) ([]int64, error) {
	var ids []int64
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := strconv.ParseInt(part, 10, 64)
			if err != nil {
				return nil, &ParamError{Name: name, Reason: "must be a list of integers"}
			}
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func parseBool(raw string) (bool, error) {
	switch strings.ToLower(raw) {
	case "yes", "on":
		return true, nil
	case "no", "off":
		return false, nil
	}
	return strconv.ParseBool(raw)
}

func parseDecimal(name, raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Decimal{}, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, &ParamError{Name: name, Reason: "must be a decimal number"}
	}
	if !d.Equal(d.Truncate(pricePlaces)) {
		return decimal.Decimal{}, &ParamError{Name: name, Reason: fmt.Sprintf("must have at most %d decimal places", pricePlaces)}
	}
	if d.Abs().GreaterThanOrEqual(priceCeiling) {
		return decimal.Decimal{}, &ParamError{Name: name, Reason: fmt.Sprintf("must have at most %d digits", priceDigits)}
	}
	return d, nil
}

func parseInt(name, raw string, fallback int) (int, error) {
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &ParamError{Name: name, Reason: "must be an integer"}
	}
	return n, nil
}
