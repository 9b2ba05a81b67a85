package models

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB returns an in-memory database with the catalog schema and three
// rows in every taxonomy table (ids 1..3).
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(append(TaxonomyModels(), &Product{})...))

	for _, kind := range Kinds {
		rows := []Taxon{{Name: "first"}, {Name: "second"}, {Name: "third"}}
		require.NoError(t, db.Table(kind.Table()).Create(&rows).Error)
	}
	return db
}

func idRef(id uint) *uint {
	return &id
}

func insertProduct(t *testing.T, db *gorm.DB, p Product) Product {
	t.Helper()
	require.NoError(t, db.Create(&p).Error)
	return p
}

func pricedProduct(name string, count int, raw int64) Product {
	return Product{
		Name:     name,
		Count:    count,
		PriceRaw: decimal.NewFromInt(raw),
		Discount: decimal.Zero,
	}
}

func names(products []Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Name
	}
	return out
}
