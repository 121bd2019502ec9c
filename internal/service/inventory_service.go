package service

import (
	"errors"
	"fmt"
	"strings"

	"go-inventory-cli/internal/model"
	"go-inventory-cli/internal/repository"
	"go-inventory-cli/pkg/validator"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type InventoryService interface {
	CreateProduct(req *CreateProductRequest) (*model.Product, error)
	ListProducts(sort model.SortKey) ([]model.Product, error)
	SearchProducts(criterion model.SearchCriterion, value string) ([]model.Product, error)
	UpdateProduct(barcode, field string, value interface{}) error
	DeleteProduct(barcode string, confirm func(*model.Product) bool) (bool, error)
	AdjustInventory(req *AdjustInventoryRequest) ([]model.StockMovement, error)
}

type CreateProductRequest struct {
	Barcode    string          `validate:"barcode,max=50"`
	Name       string          `validate:"required,max=255"`
	CategoryID uint            `validate:"required"`
	Price      decimal.Decimal `validate:"gte=0"`
	Quantity   int             `validate:"gte=0"`
}

type AdjustInventoryRequest struct {
	Barcode   string               `validate:"required"`
	Operation model.StockOperation `validate:"required"`
	Quantity  int                  `validate:"gte=0"`
}

type InventoryOptions struct {
	// AllowNegativeStock lets subtract and quantity updates go below zero.
	AllowNegativeStock bool
}

type inventoryService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	movementRepo repository.StockMovementRepository
	opts         InventoryOptions
	log          zerolog.Logger
}

func NewInventoryService(
	pRepo repository.ProductRepository,
	cRepo repository.CategoryRepository,
	mRepo repository.StockMovementRepository,
	opts InventoryOptions,
	log zerolog.Logger,
) InventoryService {
	return &inventoryService{
		productRepo:  pRepo,
		categoryRepo: cRepo,
		movementRepo: mRepo,
		opts:         opts,
		log:          log,
	}
}

func (s *inventoryService) CreateProduct(req *CreateProductRequest) (*model.Product, error) {
	req.Barcode = strings.TrimSpace(req.Barcode)
	req.Name = strings.TrimSpace(req.Name)
	if err := validator.Error(validator.ValidateStruct(req)); err != nil {
		return nil, err
	}

	product := &model.Product{
		Barcode:    req.Barcode,
		Name:       req.Name,
		CategoryID: req.CategoryID,
		Price:      req.Price,
		Quantity:   req.Quantity,
	}
	if err := s.productRepo.Create(product); err != nil {
		if !errors.Is(err, repository.ErrCategoryNotFound) {
			s.log.Error().Err(err).Str("barcode", req.Barcode).Msg("failed to create product")
		}
		return nil, err
	}

	s.log.Info().Uint("id", product.ID).Str("barcode", product.Barcode).Msg("product created")
	return product, nil
}

func (s *inventoryService) ListProducts(sort model.SortKey) ([]model.Product, error) {
	products, err := s.productRepo.FindAll(sort)
	if err != nil {
		s.log.Error().Err(err).Str("sort", string(sort)).Msg("failed to list products")
		return nil, err
	}
	return products, nil
}

func (s *inventoryService) SearchProducts(criterion model.SearchCriterion, value string) ([]model.Product, error) {
	if !criterion.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCriterion, criterion)
	}

	products, err := s.productRepo.Search(criterion, value)
	if err != nil {
		s.log.Error().Err(err).Str("criterion", string(criterion)).Msg("failed to search products")
		return nil, err
	}
	return products, nil
}

// UpdateProduct changes one allow-listed field. The value's type must match
// the field: string name, uint category id, decimal price, int quantity.
// Quantity changes are recorded as SET stock movements.
func (s *inventoryService) UpdateProduct(barcode, field string, value interface{}) error {
	if !model.IsUpdatableField(field) {
		return fmt.Errorf("%w: %q", ErrInvalidField, field)
	}

	value, err := s.normalizeValue(field, value)
	if err != nil {
		return err
	}

	if field == model.FieldQuantity {
		return s.setQuantity(barcode, value.(int))
	}

	affected, err := s.productRepo.UpdateField(barcode, field, value)
	if err != nil {
		if !errors.Is(err, repository.ErrCategoryNotFound) {
			s.log.Error().Err(err).Str("barcode", barcode).Str("field", field).Msg("failed to update product")
		}
		return err
	}
	if affected == 0 {
		return repository.ErrProductNotFound
	}

	s.log.Info().Str("barcode", barcode).Str("field", field).Int64("rows", affected).Msg("product updated")
	return nil
}

func (s *inventoryService) setQuantity(barcode string, quantity int) error {
	movements, err := s.movementRepo.Adjust(barcode, model.StockSet, quantity, s.opts.AllowNegativeStock)
	if err != nil {
		if !errors.Is(err, repository.ErrProductNotFound) && !errors.Is(err, repository.ErrInsufficientStock) {
			s.log.Error().Err(err).Str("barcode", barcode).Msg("failed to update quantity")
		}
		return err
	}
	s.log.Info().Str("barcode", barcode).Int("quantity", quantity).Int("rows", len(movements)).Msg("product quantity updated")
	return nil
}

func (s *inventoryService) normalizeValue(field string, value interface{}) (interface{}, error) {
	switch field {
	case model.FieldName:
		name, ok := value.(string)
		name = strings.TrimSpace(name)
		if !ok || name == "" || len(name) > 255 {
			return nil, fmt.Errorf("%w: name must be a non-empty string", ErrInvalidValue)
		}
		return name, nil

	case model.FieldCategoryID:
		var id uint
		switch v := value.(type) {
		case uint:
			id = v
		case int:
			if v > 0 {
				id = uint(v)
			}
		}
		if id == 0 {
			return nil, fmt.Errorf("%w: category id must be a positive integer", ErrInvalidValue)
		}
		if _, err := s.categoryRepo.FindByID(id); err != nil {
			return nil, err
		}
		return id, nil

	case model.FieldPrice:
		price, ok := value.(decimal.Decimal)
		if !ok || price.IsNegative() {
			return nil, fmt.Errorf("%w: price must be a non-negative decimal", ErrInvalidValue)
		}
		return price, nil

	case model.FieldQuantity:
		quantity, ok := value.(int)
		if !ok || (quantity < 0 && !s.opts.AllowNegativeStock) {
			return nil, fmt.Errorf("%w: quantity must be a non-negative integer", ErrInvalidValue)
		}
		return quantity, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidField, field)
}

// DeleteProduct removes the product after confirm approves it. A declined
// confirmation returns (false, nil).
func (s *inventoryService) DeleteProduct(barcode string, confirm func(*model.Product) bool) (bool, error) {
	product, err := s.productRepo.FindByBarcode(barcode)
	if err != nil {
		if !errors.Is(err, repository.ErrProductNotFound) {
			s.log.Error().Err(err).Str("barcode", barcode).Msg("failed to look up product")
		}
		return false, err
	}

	if confirm == nil || !confirm(product) {
		return false, nil
	}

	affected, err := s.productRepo.DeleteByBarcode(barcode)
	if err != nil {
		s.log.Error().Err(err).Str("barcode", barcode).Msg("failed to delete product")
		return false, err
	}

	s.log.Info().Str("barcode", barcode).Int64("rows", affected).Msg("product deleted")
	return affected > 0, nil
}

func (s *inventoryService) AdjustInventory(req *AdjustInventoryRequest) ([]model.StockMovement, error) {
	if !req.Operation.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidOperation, req.Operation)
	}
	if err := validator.Error(validator.ValidateStruct(req)); err != nil {
		return nil, err
	}

	movements, err := s.movementRepo.Adjust(req.Barcode, req.Operation, req.Quantity, s.opts.AllowNegativeStock)
	if err != nil {
		if !errors.Is(err, repository.ErrProductNotFound) && !errors.Is(err, repository.ErrInsufficientStock) {
			s.log.Error().Err(err).Str("barcode", req.Barcode).Msg("failed to adjust inventory")
		}
		return nil, err
	}

	for _, m := range movements {
		s.log.Info().
			Str("movement_id", m.ID.String()).
			Str("barcode", m.Barcode).
			Str("operation", string(m.Operation)).
			Int("previous", m.PreviousQuantity).
			Int("new", m.NewQuantity).
			Msg("inventory adjusted")
	}
	return movements, nil
}
