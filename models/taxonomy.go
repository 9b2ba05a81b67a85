package models

// Taxon is the shape shared by every lookup table of the catalog:
// a surrogate id and a human-readable name.
type Taxon struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"index;not null"`
}

// Category represents a product category such as NEW or SALE.
type Category struct{ Taxon }

func (c *Category) TableName() string {
	return "categories"
}

type Size struct{ Taxon }

func (s *Size) TableName() string {
	return "sizes"
}

type Color struct{ Taxon }

func (c *Color) TableName() string {
	return "colors"
}

type Brand struct{ Taxon }

func (b *Brand) TableName() string {
	return "brands"
}

type Material struct{ Taxon }

func (m *Material) TableName() string {
	return "materials"
}

type Style struct{ Taxon }

func (s *Style) TableName() string {
	return "styles"
}

type BrasType struct{ Taxon }

func (b *BrasType) TableName() string {
	return "bras_types"
}

type PantiesType struct{ Taxon }

func (p *PantiesType) TableName() string {
	return "panties_types"
}

// Kind names one taxonomy dimension of the catalog.
type Kind string

const (
	KindCategory    Kind = "categories"
	KindSize        Kind = "sizes"
	KindColor       Kind = "colors"
	KindBrand       Kind = "brands"
	KindMaterial    Kind = "materials"
	KindStyle       Kind = "styles"
	KindBrasType    Kind = "bras_types"
	KindPantiesType Kind = "panties_types"
)

// Kinds lists every taxonomy dimension in the order they are seeded.
var Kinds = []Kind{
	KindCategory,
	KindSize,
	KindColor,
	KindBrand,
	KindMaterial,
	KindStyle,
	KindBrasType,
	KindPantiesType,
}

// Table returns the table backing the dimension. Kind values are the
// table names themselves.
func (k Kind) Table() string {
	return string(k)
}

// Valid reports whether k is one of the known dimensions.
func (k Kind) Valid() bool {
	for _, known := range Kinds {
		if k == known {
			return true
		}
	}
	return false
}

// TaxonomyModels returns one zero value per taxonomy table, suitable for
// gorm migrations.
func TaxonomyModels() []any {
	return []any{
		&Category{},
		&Size{},
		&Color{},
		&Brand{},
		&Material{},
		&Style{},
		&BrasType{},
		&PantiesType{},
	}
}
