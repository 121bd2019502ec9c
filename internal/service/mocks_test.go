package service

import (
	"sort"
	"strings"
	"time"

	"go-inventory-cli/internal/model"
	"go-inventory-cli/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MockCategoryRepo keeps categories in memory.
type MockCategoryRepo struct {
	Categories []model.Category
	Err        error
}

func (m *MockCategoryRepo) Create(category *model.Category) error {
	if m.Err != nil {
		return m.Err
	}
	for _, c := range m.Categories {
		if c.Name == category.Name {
			return repository.ErrDuplicateCategory
		}
	}
	category.ID = uint(len(m.Categories) + 1)
	category.CreatedAt = time.Now()
	m.Categories = append(m.Categories, *category)
	return nil
}

func (m *MockCategoryRepo) FindAll() ([]model.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	out := append([]model.Category(nil), m.Categories...)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *MockCategoryRepo) FindByID(id uint) (*model.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for i := range m.Categories {
		if m.Categories[i].ID == id {
			return &m.Categories[i], nil
		}
	}
	return nil, repository.ErrCategoryNotFound
}

func (m *MockCategoryRepo) FindByName(name string) (*model.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for i := range m.Categories {
		if m.Categories[i].Name == name {
			return &m.Categories[i], nil
		}
	}
	return nil, repository.ErrCategoryNotFound
}

func (m *MockCategoryRepo) Count() (int64, error) {
	return int64(len(m.Categories)), m.Err
}

// MockProductRepo keeps products in memory and shares the category list for joins.
type MockProductRepo struct {
	Products   []model.Product
	Categories *MockCategoryRepo
	Err        error

	lastUpdatedField string
	deleteCalls      int
}

func (m *MockProductRepo) withCategory(p model.Product) model.Product {
	if m.Categories != nil {
		if c, err := m.Categories.FindByID(p.CategoryID); err == nil {
			p.Category = *c
		}
	}
	return p
}

func (m *MockProductRepo) Create(product *model.Product) error {
	if m.Err != nil {
		return m.Err
	}
	if m.Categories != nil {
		if _, err := m.Categories.FindByID(product.CategoryID); err != nil {
			return err
		}
	}
	product.ID = uint(len(m.Products) + 1)
	m.Products = append(m.Products, *product)
	return nil
}

func (m *MockProductRepo) FindAll(sortKey model.SortKey) ([]model.Product, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var out []model.Product
	for _, p := range m.Products {
		out = append(out, m.withCategory(p))
	}
	sort.SliceStable(out, func(i, j int) bool {
		switch sortKey {
		case model.SortByPrice:
			return out[i].Price.GreaterThan(out[j].Price)
		case model.SortByQuantity:
			return out[i].Quantity > out[j].Quantity
		case model.SortByCategory:
			return out[i].Category.Name < out[j].Category.Name
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (m *MockProductRepo) FindByBarcode(barcode string) (*model.Product, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, p := range m.Products {
		if p.Barcode == barcode {
			found := m.withCategory(p)
			return &found, nil
		}
	}
	return nil, repository.ErrProductNotFound
}

func (m *MockProductRepo) Search(criterion model.SearchCriterion, value string) ([]model.Product, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var out []model.Product
	for _, p := range m.Products {
		p = m.withCategory(p)
		switch criterion {
		case model.SearchByBarcode:
			if p.Barcode == value {
				out = append(out, p)
			}
		case model.SearchByName:
			if strings.Contains(p.Name, value) {
				out = append(out, p)
			}
		case model.SearchByCategory:
			if p.Category.Name == value {
				out = append(out, p)
			}
		}
	}
	return out, nil
}

func (m *MockProductRepo) UpdateField(barcode, field string, value interface{}) (int64, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	m.lastUpdatedField = field
	var affected int64
	for i := range m.Products {
		if m.Products[i].Barcode != barcode {
			continue
		}
		switch field {
		case model.FieldName:
			m.Products[i].Name = value.(string)
		case model.FieldCategoryID:
			m.Products[i].CategoryID = value.(uint)
		case model.FieldPrice:
			m.Products[i].Price = value.(decimal.Decimal)
		case model.FieldQuantity:
			m.Products[i].Quantity = value.(int)
		}
		affected++
	}
	return affected, nil
}

func (m *MockProductRepo) DeleteByBarcode(barcode string) (int64, error) {
	m.deleteCalls++
	if m.Err != nil {
		return 0, m.Err
	}
	var kept []model.Product
	var affected int64
	for _, p := range m.Products {
		if p.Barcode == barcode {
			affected++
			continue
		}
		kept = append(kept, p)
	}
	m.Products = kept
	return affected, nil
}

func (m *MockProductRepo) FindLowStock(threshold int) ([]model.Product, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var out []model.Product
	for _, p := range m.Products {
		if p.Quantity < threshold {
			out = append(out, m.withCategory(p))
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Quantity < out[j].Quantity })
	return out, nil
}

func (m *MockProductRepo) TotalValue() (decimal.Decimal, error) {
	if m.Err != nil {
		return decimal.Zero, m.Err
	}
	total := decimal.Zero
	for _, p := range m.Products {
		total = total.Add(p.StockValue())
	}
	return total, nil
}

func (m *MockProductRepo) Count() (int64, error) {
	return int64(len(m.Products)), m.Err
}

func (m *MockProductRepo) CountLowStock(threshold int) (int64, error) {
	low, err := m.FindLowStock(threshold)
	return int64(len(low)), err
}

// MockMovementRepo applies adjustments to the shared MockProductRepo.
type MockMovementRepo struct {
	Products  *MockProductRepo
	Movements []model.StockMovement
	Data      []repository.StockMovementData
	Err       error

	lastStart, lastEnd time.Time
}

func (m *MockMovementRepo) Adjust(barcode string, op model.StockOperation, quantity int, allowNegative bool) ([]model.StockMovement, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var applied []model.StockMovement
	for i := range m.Products.Products {
		p := &m.Products.Products[i]
		if p.Barcode != barcode {
			continue
		}
		next, err := op.Apply(p.Quantity, quantity, allowNegative)
		if err != nil {
			return nil, repository.ErrInsufficientStock
		}
		productID := p.ID
		movement := model.StockMovement{
			ProductID:        &productID,
			Barcode:          barcode,
			Operation:        op,
			Quantity:         quantity,
			PreviousQuantity: p.Quantity,
			NewQuantity:      next,
			Delta:            next - p.Quantity,
		}
		movement.ID = uuid.New()
		p.Quantity = next
		applied = append(applied, movement)
	}
	if len(applied) == 0 {
		return nil, repository.ErrProductNotFound
	}
	m.Movements = append(m.Movements, applied...)
	return applied, nil
}

func (m *MockMovementRepo) GetStockMovement(startDate, endDate time.Time) ([]repository.StockMovementData, error) {
	m.lastStart, m.lastEnd = startDate, endDate
	return m.Data, m.Err
}

func (m *MockMovementRepo) FindRecent(limit int) ([]model.StockMovement, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if len(m.Movements) < limit {
		limit = len(m.Movements)
	}
	return m.Movements[:limit], nil
}

type fixture struct {
	categories *MockCategoryRepo
	products   *MockProductRepo
	movements  *MockMovementRepo
}

func newFixture() *fixture {
	categories := &MockCategoryRepo{Categories: []model.Category{
		{ID: 1, Name: "Drinks"},
		{ID: 2, Name: "Snacks"},
	}}
	products := &MockProductRepo{
		Categories: categories,
		Products: []model.Product{
			{ID: 1, Barcode: "1001", Name: "Orange Juice", CategoryID: 1, Price: decimal.RequireFromString("2.50"), Quantity: 12},
			{ID: 2, Barcode: "1002", Name: "Apple Juice", CategoryID: 1, Price: decimal.RequireFromString("3.00"), Quantity: 4},
			{ID: 3, Barcode: "2001", Name: "Salted Chips", CategoryID: 2, Price: decimal.RequireFromString("1.25"), Quantity: 40},
		},
	}
	return &fixture{
		categories: categories,
		products:   products,
		movements:  &MockMovementRepo{Products: products},
	}
}
