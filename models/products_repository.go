package models

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductsRepository struct {
	db *gorm.DB
}

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductFilters narrows a product listing. Empty id lists leave their
// dimension unrestricted; Available always applies.
type ProductFilters struct {
	CategoryIDs    []int64
	SizeIDs        []int64
	StyleIDs       []int64
	BrandIDs       []int64
	BrasTypeIDs    []int64
	ColorIDs       []int64
	MaterialIDs    []int64
	PantiesTypeIDs []int64

	Available bool
	Price     PriceRange
}

type membership struct {
	column string
	ids    []int64
}

func (f ProductFilters) memberships() []membership {
	return []membership{
		{"category_id", f.CategoryIDs},
		{"size_id", f.SizeIDs},
		{"style_id", f.StyleIDs},
		{"brand_id", f.BrandIDs},
		{"bras_type_id", f.BrasTypeIDs},
		{"color_id", f.ColorIDs},
		{"material_id", f.MaterialIDs},
		{"panties_type_id", f.PantiesTypeIDs},
	}
}

func NewProductsRepository(db *gorm.DB) *ProductsRepository {
	return &ProductsRepository{
		db: db,
	}
}

func column(name string) clause.Column {
	return clause.Column{Table: clause.CurrentTable, Name: name}
}

// ListProducts returns the products matching filters inside the window
// given by offset and limit. The window is cut by the database before the
// price range is checked, so fewer than limit rows may come back even when
// later rows would match the price.
func (r *ProductsRepository) ListProducts(ctx context.Context, offset, limit int, filters ProductFilters) ([]Product, error) {
	query := r.db.WithContext(ctx).Model(&Product{})

	if filters.Available {
		query = query.Where(clause.Gt{Column: column("count"), Value: 0})
	} else {
		query = query.Where(clause.Eq{Column: column("count"), Value: 0})
	}

	for _, m := range filters.memberships() {
		if len(m.ids) == 0 {
			continue
		}
		values := make([]any, len(m.ids))
		for i, id := range m.ids {
			values[i] = id
		}
		query = query.Where(clause.IN{Column: column(m.column), Values: values})
	}

	query = query.Order(clause.OrderByColumn{Column: column("id")})
	if offset > 0 {
		query = query.Offset(offset)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var candidates []Product
	if err := query.Find(&candidates).Error; err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	if !filters.Price.IsSet() {
		return candidates, nil
	}

	products := make([]Product, 0, len(candidates))
	for _, p := range candidates {
		if filters.Price.Contains(p.Price()) {
			products = append(products, p)
		}
	}
	return products, nil
}

func (r *ProductsRepository) GetByID(ctx context.Context, id uint) (*Product, error) {
	var product Product
	if err := r.db.WithContext(ctx).
		Where(clause.Eq{Column: column("id"), Value: id}).
		First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err // Other DB error
	}
	return &product, nil
}
