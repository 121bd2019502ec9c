package repository

import (
	"go-inventory-cli/internal/model"

	"github.com/shopspring/decimal"
)

func (s *RepositorySuite) TestCreateProductAssignsID() {
	drinks := s.createCategory("Drinks")
	product := s.createProduct("1001", "Orange Juice", drinks.ID, "2.50", 0)
	s.NotZero(product.ID)

	found, err := s.products.FindByBarcode("1001")
	s.Require().NoError(err)
	s.Equal("Orange Juice", found.Name)
	s.Equal("Drinks", found.Category.Name)
	s.True(found.Price.Equal(decimal.RequireFromString("2.50")))
}

func (s *RepositorySuite) TestCreateProductUnknownCategory() {
	err := s.products.Create(&model.Product{Barcode: "1", Name: "Ghost", CategoryID: 999, Price: decimal.Zero})
	s.ErrorIs(err, ErrCategoryNotFound)
}

func (s *RepositorySuite) TestFindByBarcodeNotFound() {
	_, err := s.products.FindByBarcode("missing")
	s.ErrorIs(err, ErrProductNotFound)
}

func (s *RepositorySuite) TestFindAllSortOrders() {
	s.seedCatalog()

	testCases := []struct {
		sort model.SortKey
		want []string
	}{
		{model.SortByName, []string{"Apple Juice", "Chocolate Bar", "Orange Juice", "Salted Chips"}},
		{model.SortByCategory, []string{"Apple Juice", "Orange Juice", "Chocolate Bar", "Salted Chips"}},
		{model.SortByPrice, []string{"Apple Juice", "Orange Juice", "Salted Chips", "Chocolate Bar"}},
		{model.SortByQuantity, []string{"Salted Chips", "Orange Juice", "Apple Juice", "Chocolate Bar"}},
		{model.SortKey("bogus"), []string{"Apple Juice", "Chocolate Bar", "Orange Juice", "Salted Chips"}},
	}

	for _, tc := range testCases {
		products, err := s.products.FindAll(tc.sort)
		s.Require().NoError(err)
		s.Equal(tc.want, names(products), string(tc.sort))
		for _, p := range products {
			s.NotEmpty(p.Category.Name)
		}
	}
}

func (s *RepositorySuite) TestSearch() {
	s.seedCatalog()
	s.createProduct("3001", "100% Juice Mix", 1, "4.00", 1)

	byBarcode, err := s.products.Search(model.SearchByBarcode, "2001")
	s.Require().NoError(err)
	s.Equal([]string{"Salted Chips"}, names(byBarcode))

	byName, err := s.products.Search(model.SearchByName, "Juice")
	s.Require().NoError(err)
	s.Equal([]string{"100% Juice Mix", "Apple Juice", "Orange Juice"}, names(byName))

	literalPercent, err := s.products.Search(model.SearchByName, "0%")
	s.Require().NoError(err)
	s.Equal([]string{"100% Juice Mix"}, names(literalPercent))

	caseSensitive, err := s.products.Search(model.SearchByName, "juice")
	s.Require().NoError(err)
	s.Empty(caseSensitive)

	byCategory, err := s.products.Search(model.SearchByCategory, "Snacks")
	s.Require().NoError(err)
	s.Equal([]string{"Chocolate Bar", "Salted Chips"}, names(byCategory))

	none, err := s.products.Search(model.SearchByCategory, "Toys")
	s.Require().NoError(err)
	s.Empty(none)

	_, err = s.products.Search(model.SearchCriterion("price"), "1")
	s.Error(err)
}

func (s *RepositorySuite) TestUpdateFieldEachAllowedField() {
	_, snacks := s.seedCatalog()

	affected, err := s.products.UpdateField("1001", model.FieldName, "Blood Orange Juice")
	s.Require().NoError(err)
	s.EqualValues(1, affected)

	_, err = s.products.UpdateField("1001", model.FieldCategoryID, snacks.ID)
	s.Require().NoError(err)

	_, err = s.products.UpdateField("1001", model.FieldPrice, decimal.RequireFromString("9.75"))
	s.Require().NoError(err)

	_, err = s.products.UpdateField("1001", model.FieldQuantity, 77)
	s.Require().NoError(err)

	found, err := s.products.FindByBarcode("1001")
	s.Require().NoError(err)
	s.Equal("Blood Orange Juice", found.Name)
	s.Equal(snacks.ID, found.CategoryID)
	s.True(found.Price.Equal(decimal.RequireFromString("9.75")))
	s.Equal(77, found.Quantity)
}

func (s *RepositorySuite) TestUpdateFieldRejectsUnknownField() {
	s.seedCatalog()

	affected, err := s.products.UpdateField("1001", "barcode", "hijack")
	s.Error(err)
	s.Zero(affected)

	found, err := s.products.FindByBarcode("1001")
	s.Require().NoError(err)
	s.Equal("1001", found.Barcode)
}

func (s *RepositorySuite) TestUpdateFieldMissingProductAffectsNothing() {
	s.seedCatalog()

	affected, err := s.products.UpdateField("nope", model.FieldName, "x")
	s.Require().NoError(err)
	s.Zero(affected)
}

func (s *RepositorySuite) TestUpdateFieldUnknownCategory() {
	s.seedCatalog()

	_, err := s.products.UpdateField("1001", model.FieldCategoryID, uint(999))
	s.ErrorIs(err, ErrCategoryNotFound)
}

func (s *RepositorySuite) TestDeleteByBarcode() {
	s.seedCatalog()
	_, err := s.movements.Adjust("1001", model.StockAdd, 1, false)
	s.Require().NoError(err)

	affected, err := s.products.DeleteByBarcode("1001")
	s.Require().NoError(err)
	s.EqualValues(1, affected)

	_, err = s.products.FindByBarcode("1001")
	s.ErrorIs(err, ErrProductNotFound)

	affected, err = s.products.DeleteByBarcode("1001")
	s.Require().NoError(err)
	s.Zero(affected)
}

func (s *RepositorySuite) TestDeleteKeepsStockMovementHistory() {
	s.seedCatalog()
	_, err := s.movements.Adjust("1001", model.StockAdd, 3, false)
	s.Require().NoError(err)

	_, err = s.products.DeleteByBarcode("1001")
	s.Require().NoError(err)

	recent, err := s.movements.FindRecent(10)
	s.Require().NoError(err)
	s.Require().Len(recent, 1)
	s.Equal("1001", recent[0].Barcode)
	s.Nil(recent[0].ProductID)
	s.Nil(recent[0].Product)
	s.Equal(3, recent[0].Delta)
}

func (s *RepositorySuite) TestLowStockAndCounts() {
	s.seedCatalog()

	low, err := s.products.FindLowStock(10)
	s.Require().NoError(err)
	s.Equal([]string{"Chocolate Bar", "Apple Juice"}, names(low))

	count, err := s.products.CountLowStock(10)
	s.Require().NoError(err)
	s.EqualValues(2, count)

	total, err := s.products.Count()
	s.Require().NoError(err)
	s.EqualValues(4, total)
}

func (s *RepositorySuite) TestTotalValue() {
	empty, err := s.products.TotalValue()
	s.Require().NoError(err)
	s.True(empty.IsZero())

	s.seedCatalog()

	// 2.50*12 + 3.00*4 + 1.25*40 + 0.99*0
	total, err := s.products.TotalValue()
	s.Require().NoError(err)
	s.True(total.Equal(decimal.RequireFromString("92")), total.String())
}

func (s *RepositorySuite) TestAdjustAddThenSubtractRestores() {
	s.seedCatalog()
	before := s.quantityOf("1002")

	_, err := s.movements.Adjust("1002", model.StockAdd, 6, false)
	s.Require().NoError(err)
	s.Equal(before+6, s.quantityOf("1002"))

	movements, err := s.movements.Adjust("1002", model.StockSubtract, 6, false)
	s.Require().NoError(err)
	s.Equal(before, s.quantityOf("1002"))

	s.Require().Len(movements, 1)
	s.Equal(before+6, movements[0].PreviousQuantity)
	s.Equal(before, movements[0].NewQuantity)
	s.Equal(-6, movements[0].Delta)
}

func (s *RepositorySuite) TestAdjustSubtractBelowZero() {
	s.seedCatalog()

	_, err := s.movements.Adjust("1002", model.StockSubtract, 5, false)
	s.ErrorIs(err, ErrInsufficientStock)
	s.Equal(4, s.quantityOf("1002"))

	_, err = s.movements.Adjust("1002", model.StockSubtract, 5, true)
	s.Require().NoError(err)
	s.Equal(-1, s.quantityOf("1002"))
}

func (s *RepositorySuite) TestAdjustSetAndNotFound() {
	s.seedCatalog()

	_, err := s.movements.Adjust("2002", model.StockSet, 25, false)
	s.Require().NoError(err)
	s.Equal(25, s.quantityOf("2002"))

	_, err = s.movements.Adjust("missing", model.StockAdd, 1, false)
	s.ErrorIs(err, ErrProductNotFound)
}
