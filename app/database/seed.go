package database

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/silkline/catalog/models"
)

var taxonomySeed = map[models.Kind][]string{
	models.KindCategory: {
		"NEW",
		"SALE",
		"BRAS",
		"PANTIES",
		"LINGERIE",
		"SETS",
		"SWIMWEAR",
		"SLEEPWEAR",
		"HOME LINEN",
		"INDIVIDUAL TAILORING",
	},
	models.KindSize:     {"XS", "S", "M", "L", "XL", "XXL"},
	models.KindColor:    {"Білий", "Чорний", "Червоний", "Рожевий", "Синій", "Зелений"},
	models.KindBrand:    {"Agent Provocateur", "Calvin Klein", "Victoria's Secret", "Cosabella"},
	models.KindMaterial: {"Бавовна", "Шовк", "Мереживо", "Сатин", "Поліестер", "Спандекс"},
	models.KindStyle:    {"Класичний", "Спортивний", "Романтичний", "Сексуальний"},
	models.KindBrasType: {"Push-up", "Балконет", "Бралет", "Без кісточок", "Спортивний"},
	models.KindPantiesType: {
		"Стрінги",
		"Шортики",
		"Класичні",
		"Бразиліани",
	},
}

// Seed fills an empty schema with the fixed taxonomy rows and the sample
// product.
func Seed(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		first := make(map[models.Kind]uint, len(models.Kinds))
		for _, kind := range models.Kinds {
			names := taxonomySeed[kind]
			rows := make([]models.Taxon, len(names))
			for i, name := range names {
				rows[i] = models.Taxon{Name: name}
			}
			if err := tx.Table(kind.Table()).Create(&rows).Error; err != nil {
				return fmt.Errorf("seed %s: %w", kind, err)
			}
			first[kind] = rows[0].ID
		}

		sample := models.Product{
			Name:       "Sample",
			CategoryID: ref(first[models.KindCategory]),
			BrandID:    ref(first[models.KindBrand]),
			ColorID:    ref(first[models.KindColor]),
			MaterialID: ref(first[models.KindMaterial]),
			SizeID:     ref(first[models.KindSize]),
			StyleID:    ref(first[models.KindStyle]),
			Count:      10,
			PriceRaw:   decimal.NewFromInt(1500),
			Discount:   decimal.NewFromInt(2),
			Rating:     100500,
		}
		if err := tx.Create(&sample).Error; err != nil {
			return fmt.Errorf("seed sample product: %w", err)
		}
		return nil
	})
}

func ref(id uint) *uint {
	return &id
}
