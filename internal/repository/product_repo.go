package repository

import (
	"fmt"
	"strings"

	"go-inventory-cli/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(product *model.Product) error
	FindAll(sort model.SortKey) ([]model.Product, error)
	FindByBarcode(barcode string) (*model.Product, error)
	Search(criterion model.SearchCriterion, value string) ([]model.Product, error)
	UpdateField(barcode, field string, value interface{}) (int64, error)
	DeleteByBarcode(barcode string) (int64, error)
	FindLowStock(threshold int) ([]model.Product, error)
	TotalValue() (decimal.Decimal, error)
	Count() (int64, error)
	CountLowStock(threshold int) (int64, error)
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

// withCategory joins categories so filters and ordering can use the category name.
func (r *productRepo) withCategory() *gorm.DB {
	return r.db.Model(&model.Product{}).
		Joins("JOIN categories ON categories.id = products.category_id").
		Preload("Category")
}

func (r *productRepo) Create(product *model.Product) error {
	if err := r.db.Omit("Category").Create(product).Error; err != nil {
		return fmt.Errorf("error creating product: %w", translate(err, nil))
	}
	return nil
}

func (r *productRepo) FindAll(sort model.SortKey) ([]model.Product, error) {
	var products []model.Product
	if err := r.withCategory().Order(sort.OrderClause()).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("error listing products: %w", err)
	}
	return products, nil
}

func (r *productRepo) FindByBarcode(barcode string) (*model.Product, error) {
	var product model.Product
	err := r.db.Preload("Category").Where("barcode = ?", barcode).Order("id ASC").First(&product).Error
	if err != nil {
		return nil, translate(err, ErrProductNotFound)
	}
	return &product, nil
}

func (r *productRepo) Search(criterion model.SearchCriterion, value string) ([]model.Product, error) {
	query := r.withCategory()

	switch criterion {
	case model.SearchByBarcode:
		query = query.Where("products.barcode = ?", value)
	case model.SearchByName:
		query = query.Where("products.name LIKE ?", "%"+escapeLike(value)+"%")
	case model.SearchByCategory:
		query = query.Where("categories.name = ?", value)
	default:
		return nil, fmt.Errorf("unsupported search criterion %q", criterion)
	}

	var products []model.Product
	if err := query.Order(model.SortByName.OrderClause()).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("error searching products: %w", err)
	}
	return products, nil
}

// UpdateField sets one allow-listed column on every product with the barcode.
func (r *productRepo) UpdateField(barcode, field string, value interface{}) (int64, error) {
	if !model.IsUpdatableField(field) {
		return 0, fmt.Errorf("field %q cannot be updated", field)
	}

	result := r.db.Model(&model.Product{}).Where("barcode = ?", barcode).Update(field, value)
	if result.Error != nil {
		return 0, fmt.Errorf("error updating product: %w", translate(result.Error, nil))
	}
	return result.RowsAffected, nil
}

func (r *productRepo) DeleteByBarcode(barcode string) (int64, error) {
	result := r.db.Where("barcode = ?", barcode).Delete(&model.Product{})
	if result.Error != nil {
		return 0, fmt.Errorf("error deleting product: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *productRepo) FindLowStock(threshold int) ([]model.Product, error) {
	var products []model.Product
	err := r.withCategory().
		Where("products.quantity < ?", threshold).
		Order("products.quantity ASC, products.name ASC").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("error querying low stock: %w", err)
	}
	return products, nil
}

// TotalValue is SUM(price * quantity); an empty table yields zero.
func (r *productRepo) TotalValue() (decimal.Decimal, error) {
	var total decimal.Decimal
	row := r.db.Model(&model.Product{}).Select("COALESCE(SUM(price * quantity), 0)").Row()
	if err := row.Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("error computing inventory value: %w", err)
	}
	return total, nil
}

func (r *productRepo) Count() (int64, error) {
	var total int64
	err := r.db.Model(&model.Product{}).Count(&total).Error
	return total, err
}

func (r *productRepo) CountLowStock(threshold int) (int64, error) {
	var total int64
	err := r.db.Model(&model.Product{}).Where("quantity < ?", threshold).Count(&total).Error
	return total, err
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes LIKE metacharacters in user input match literally.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
