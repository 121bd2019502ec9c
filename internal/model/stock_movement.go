package model

import (
	"errors"
	"fmt"
)

type StockOperation string

const (
	StockAdd      StockOperation = "ADD"
	StockSubtract StockOperation = "SUBTRACT"
	StockSet      StockOperation = "SET"
)

var ErrNegativeStock = errors.New("quantity would become negative")

func (op StockOperation) Valid() bool {
	switch op {
	case StockAdd, StockSubtract, StockSet:
		return true
	}
	return false
}

// Apply returns the quantity after running op with operand qty on current.
// A negative result is an error unless allowNegative is set.
func (op StockOperation) Apply(current, qty int, allowNegative bool) (int, error) {
	var next int
	switch op {
	case StockAdd:
		next = current + qty
	case StockSubtract:
		next = current - qty
	case StockSet:
		next = qty
	default:
		return current, fmt.Errorf("unknown stock operation %q", op)
	}
	if next < 0 && !allowNegative {
		return current, ErrNegativeStock
	}
	return next, nil
}

// StockMovement records one applied inventory adjustment. Rows outlive their
// product: deleting it clears ProductID and the barcode remains.
type StockMovement struct {
	BaseModel
	ProductID        *uint          `gorm:"index" json:"product_id"`
	Product          *Product       `gorm:"constraint:OnDelete:SET NULL" json:"product,omitempty"`
	Barcode          string         `gorm:"type:varchar(50);not null" json:"barcode"`
	Operation        StockOperation `gorm:"type:varchar(10);not null" json:"operation"`
	Quantity         int            `gorm:"not null" json:"quantity"`
	PreviousQuantity int            `gorm:"not null" json:"previous_quantity"`
	NewQuantity      int            `gorm:"not null" json:"new_quantity"`
	Delta            int            `gorm:"not null" json:"delta"`
}

func (StockMovement) TableName() string {
	return "stock_movements"
}
