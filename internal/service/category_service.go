package service

import (
	"errors"
	"strings"

	"go-inventory-cli/internal/model"
	"go-inventory-cli/internal/repository"
	"go-inventory-cli/pkg/validator"

	"github.com/rs/zerolog"
)

type CategoryService interface {
	CreateCategory(name, description string) (*model.Category, error)
	ListCategories() ([]model.Category, error)
	LookupIDByName(name string) (uint, error)
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
	log          zerolog.Logger
}

func NewCategoryService(categoryRepo repository.CategoryRepository, log zerolog.Logger) CategoryService {
	return &categoryService{
		categoryRepo: categoryRepo,
		log:          log,
	}
}

func (s *categoryService) CreateCategory(name, description string) (*model.Category, error) {
	category := &model.Category{
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
	}
	if err := validator.Error(validator.ValidateStruct(category)); err != nil {
		return nil, err
	}

	if err := s.categoryRepo.Create(category); err != nil {
		if !errors.Is(err, repository.ErrDuplicateCategory) {
			s.log.Error().Err(err).Str("name", category.Name).Msg("failed to create category")
		}
		return nil, err
	}

	s.log.Info().Uint("id", category.ID).Str("name", category.Name).Msg("category created")
	return category, nil
}

func (s *categoryService) ListCategories() ([]model.Category, error) {
	categories, err := s.categoryRepo.FindAll()
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list categories")
		return nil, err
	}
	return categories, nil
}

// LookupIDByName resolves an exact category name to its id.
func (s *categoryService) LookupIDByName(name string) (uint, error) {
	category, err := s.categoryRepo.FindByName(name)
	if err != nil {
		if !errors.Is(err, repository.ErrCategoryNotFound) {
			s.log.Error().Err(err).Str("name", name).Msg("failed to look up category")
		}
		return 0, err
	}
	return category.ID, nil
}
