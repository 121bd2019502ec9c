package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is an inventory item. Barcode is the lookup key but is not unique.
type Product struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	Barcode    string          `gorm:"type:varchar(50);index;not null" json:"barcode" validate:"barcode,max=50"`
	Name       string          `gorm:"type:varchar(255);not null" json:"name" validate:"required,max=255"`
	CategoryID uint            `gorm:"not null;index" json:"category_id" validate:"required"`
	Category   Category        `gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT" json:"category" validate:"-"`
	Price      decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"price" validate:"gte=0"`
	Quantity   int             `gorm:"not null;default:0" json:"quantity" validate:"gte=0"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

func (Product) TableName() string {
	return "products"
}

// StockValue is price times quantity.
func (p *Product) StockValue() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Quantity)))
}

// Product fields that may be changed with a single-column update.
const (
	FieldName       = "name"
	FieldCategoryID = "category_id"
	FieldPrice      = "price"
	FieldQuantity   = "quantity"
)

// UpdatableFields is the allow-list for single-column updates.
var UpdatableFields = []string{FieldName, FieldCategoryID, FieldPrice, FieldQuantity}

// IsUpdatableField reports whether field is in UpdatableFields.
func IsUpdatableField(field string) bool {
	for _, f := range UpdatableFields {
		if f == field {
			return true
		}
	}
	return false
}

type SortKey string

const (
	SortByName     SortKey = "name"
	SortByCategory SortKey = "category"
	SortByPrice    SortKey = "price"
	SortByQuantity SortKey = "quantity"
)

// OrderClause maps a sort key to its ORDER BY expression; unknown keys sort by name.
func (k SortKey) OrderClause() string {
	switch k {
	case SortByCategory:
		return "categories.name ASC, products.name ASC"
	case SortByPrice:
		return "products.price DESC, products.name ASC"
	case SortByQuantity:
		return "products.quantity DESC, products.name ASC"
	default:
		return "products.name ASC"
	}
}

type SearchCriterion string

const (
	SearchByBarcode  SearchCriterion = "barcode"
	SearchByName     SearchCriterion = "name"
	SearchByCategory SearchCriterion = "category"
)

func (c SearchCriterion) Valid() bool {
	switch c {
	case SearchByBarcode, SearchByName, SearchByCategory:
		return true
	}
	return false
}
