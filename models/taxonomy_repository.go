package models

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TaxonomyRepository struct {
	db *gorm.DB
}

func NewTaxonomyRepository(db *gorm.DB) *TaxonomyRepository {
	return &TaxonomyRepository{db: db}
}

// GetAll returns every row of the dimension's table in storage order.
func (r *TaxonomyRepository) GetAll(ctx context.Context, kind Kind) ([]Taxon, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("unknown taxonomy %q", kind)
	}

	var taxa []Taxon
	if err := r.db.WithContext(ctx).
		Table(kind.Table()).
		Order(clause.OrderByColumn{Column: column("id")}).
		Find(&taxa).Error; err != nil {
		return nil, fmt.Errorf("list %s: %w", kind, err)
	}
	return taxa, nil
}
