package repository

import (
	"go-inventory-cli/internal/model"
)

func (s *RepositorySuite) TestCreateCategory() {
	category := s.createCategory("Drinks")
	s.NotZero(category.ID)
	s.False(category.CreatedAt.IsZero())

	found, err := s.categories.FindByID(category.ID)
	s.Require().NoError(err)
	s.Equal("Drinks items", found.Description)
}

func (s *RepositorySuite) TestCreateCategoryDuplicate() {
	s.createCategory("Drinks")

	err := s.categories.Create(&model.Category{Name: "Drinks"})
	s.ErrorIs(err, ErrDuplicateCategory)
}

func (s *RepositorySuite) TestFindAllCategoriesOrderedByName() {
	empty, err := s.categories.FindAll()
	s.Require().NoError(err)
	s.Empty(empty)

	s.createCategory("Snacks")
	s.createCategory("Cleaning")
	s.createCategory("Drinks")

	categories, err := s.categories.FindAll()
	s.Require().NoError(err)
	s.Require().Len(categories, 3)
	s.Equal("Cleaning", categories[0].Name)
	s.Equal("Drinks", categories[1].Name)
	s.Equal("Snacks", categories[2].Name)

	count, err := s.categories.Count()
	s.Require().NoError(err)
	s.EqualValues(3, count)
}

func (s *RepositorySuite) TestFindCategoryByName() {
	drinks := s.createCategory("Drinks")

	found, err := s.categories.FindByName("Drinks")
	s.Require().NoError(err)
	s.Equal(drinks.ID, found.ID)

	_, err = s.categories.FindByName("drinks")
	s.ErrorIs(err, ErrCategoryNotFound)

	_, err = s.categories.FindByID(999)
	s.ErrorIs(err, ErrCategoryNotFound)
}
