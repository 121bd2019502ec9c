package repository

import (
	"errors"
	"fmt"
	"time"

	"go-inventory-cli/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StockMovementRepository interface {
	Adjust(barcode string, op model.StockOperation, quantity int, allowNegative bool) ([]model.StockMovement, error)
	GetStockMovement(startDate, endDate time.Time) ([]StockMovementData, error)
	FindRecent(limit int) ([]model.StockMovement, error)
}

// StockMovementData is one day of aggregated movements.
type StockMovementData struct {
	Date     string `json:"date"`
	Inbound  int    `json:"inbound"`
	Outbound int    `json:"outbound"`
}

type stockMovementRepo struct {
	db *gorm.DB
}

func NewStockMovementRepo(db *gorm.DB) StockMovementRepository {
	return &stockMovementRepo{db}
}

// Adjust applies op to every product carrying the barcode and records one
// movement per product, all in a single transaction with the rows locked.
func (r *stockMovementRepo) Adjust(barcode string, op model.StockOperation, quantity int, allowNegative bool) ([]model.StockMovement, error) {
	var movements []model.StockMovement

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var products []model.Product
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("barcode = ?", barcode).
			Order("id ASC").
			Find(&products).Error; err != nil {
			return err
		}
		if len(products) == 0 {
			return ErrProductNotFound
		}

		for _, product := range products {
			newQuantity, err := op.Apply(product.Quantity, quantity, allowNegative)
			if err != nil {
				if errors.Is(err, model.ErrNegativeStock) {
					return ErrInsufficientStock
				}
				return err
			}

			if err := tx.Model(&model.Product{}).
				Where("id = ?", product.ID).
				Update("quantity", newQuantity).Error; err != nil {
				return err
			}

			productID := product.ID
			movement := model.StockMovement{
				ProductID:        &productID,
				Barcode:          product.Barcode,
				Operation:        op,
				Quantity:         quantity,
				PreviousQuantity: product.Quantity,
				NewQuantity:      newQuantity,
				Delta:            newQuantity - product.Quantity,
			}
			if err := tx.Omit("Product").Create(&movement).Error; err != nil {
				return err
			}
			movements = append(movements, movement)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrProductNotFound) || errors.Is(err, ErrInsufficientStock) {
			return nil, err
		}
		return nil, fmt.Errorf("error adjusting inventory: %w", err)
	}

	return movements, nil
}

func (r *stockMovementRepo) GetStockMovement(startDate, endDate time.Time) ([]StockMovementData, error) {
	var results []StockMovementData

	rows, err := r.db.Model(&model.StockMovement{}).
		Select(`
			TO_CHAR(DATE(created_at), 'YYYY-MM-DD') as date,
			COALESCE(SUM(CASE WHEN delta > 0 THEN delta ELSE 0 END), 0) as inbound,
			COALESCE(SUM(CASE WHEN delta < 0 THEN -delta ELSE 0 END), 0) as outbound
		`).
		Where("created_at BETWEEN ? AND ?", startDate, endDate).
		Group("DATE(created_at)").
		Order("date ASC").
		Rows()
	if err != nil {
		return nil, fmt.Errorf("error aggregating stock movement: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var data StockMovementData
		if err := rows.Scan(&data.Date, &data.Inbound, &data.Outbound); err != nil {
			return nil, err
		}
		results = append(results, data)
	}

	return results, rows.Err()
}

func (r *stockMovementRepo) FindRecent(limit int) ([]model.StockMovement, error) {
	var movements []model.StockMovement
	err := r.db.Order("created_at DESC").Limit(limit).Find(&movements).Error
	return movements, err
}
