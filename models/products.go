package models

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Product represents an item of the catalog.
// Every taxonomy reference is optional; count is the stock on hand and
// discount is a percentage taken off price_raw.
type Product struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"index;not null"`

	CategoryID    *uint
	Category      *Category `gorm:"foreignKey:CategoryID"`
	SizeID        *uint
	Size          *Size `gorm:"foreignKey:SizeID"`
	ColorID       *uint
	Color         *Color `gorm:"foreignKey:ColorID"`
	BrandID       *uint
	Brand         *Brand `gorm:"foreignKey:BrandID"`
	MaterialID    *uint
	Material      *Material `gorm:"foreignKey:MaterialID"`
	StyleID       *uint
	Style         *Style `gorm:"foreignKey:StyleID"`
	BrasTypeID    *uint
	BrasType      *BrasType `gorm:"foreignKey:BrasTypeID"`
	PantiesTypeID *uint
	PantiesType   *PantiesType `gorm:"foreignKey:PantiesTypeID"`

	Count    int             `gorm:"not null;default:0"`
	Rating   int             `gorm:"not null;default:0"`
	Discount decimal.Decimal `gorm:"type:decimal(5,3);not null;default:0"`
	PriceRaw decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
}

func (p *Product) TableName() string {
	return "products"
}

// Price is the selling price after the discount percentage is applied.
// It is derived on every call and never stored.
func (p *Product) Price() decimal.Decimal {
	return p.PriceRaw.Sub(p.Discount.Div(hundred).Mul(p.PriceRaw))
}
