package console

import (
	"errors"

	"go-inventory-cli/internal/model"
	"go-inventory-cli/internal/repository"
	"go-inventory-cli/internal/service"
)

func (c *Console) listProducts() error {
	c.println("\nSort options:")
	c.println("1. By name")
	c.println("2. By category")
	c.println("3. By price (highest first)")
	c.println("4. By quantity (highest first)")

	sortKey, _, err := choose(c, "Choose order (1-4, default=1): ", map[string]model.SortKey{
		"1": model.SortByName,
		"2": model.SortByCategory,
		"3": model.SortByPrice,
		"4": model.SortByQuantity,
	}, model.SortByName)
	if err != nil {
		return err
	}

	products, err := c.inventory.ListProducts(sortKey)
	if err != nil {
		c.printf("❌ Error listing products: %v\n", err)
		return nil
	}
	if len(products) == 0 {
		c.println("📦 No products registered")
		return nil
	}

	c.printf("\n📦 PRODUCT LIST (%d products)\n", len(products))
	c.println("================================================================================")
	WriteProductTable(c.out, products)
	return nil
}

func (c *Console) searchProducts() error {
	c.println("\nSearch criteria:")
	c.println("1. By barcode")
	c.println("2. By name")
	c.println("3. By category")

	criterion, _, err := choose(c, "Choose criterion (1-3): ", map[string]model.SearchCriterion{
		"1": model.SearchByBarcode,
		"2": model.SearchByName,
		"3": model.SearchByCategory,
	}, model.SearchByName)
	if err != nil {
		return err
	}

	value, err := c.readLine("Enter the value to search for: ")
	if err != nil {
		return err
	}

	products, err := c.inventory.SearchProducts(criterion, value)
	if err != nil {
		c.printf("❌ Error searching products: %v\n", err)
		return nil
	}
	if len(products) == 0 {
		c.printf("🔍 No products found for '%s'\n", value)
		return nil
	}

	c.printf("\n🔍 SEARCH RESULTS (%d found)\n", len(products))
	WriteProductTable(c.out, products)
	return nil
}

func (c *Console) createProduct() error {
	c.println("\n📝 CREATE NEW PRODUCT")
	if err := c.listCategories(); err != nil {
		return err
	}

	barcode, err := c.readLine("Barcode: ")
	if err != nil {
		return err
	}
	name, err := c.readLine("Product name: ")
	if err != nil {
		return err
	}
	categoryName, err := c.readLine("Category name: ")
	if err != nil {
		return err
	}
	price, err := c.readDecimal("Price: ")
	if err != nil {
		return err
	}
	quantity, err := c.readInt("Initial quantity (default=0): ", 0, true)
	if err != nil {
		return err
	}

	categoryID, err := c.categories.LookupIDByName(categoryName)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			c.printf("❌ Category '%s' not found\n", categoryName)
		} else {
			c.printf("❌ Error looking up category: %v\n", err)
		}
		c.println("❌ Cannot create the product without a valid category")
		return nil
	}

	product, err := c.inventory.CreateProduct(&service.CreateProductRequest{
		Barcode:    barcode,
		Name:       name,
		CategoryID: categoryID,
		Price:      price,
		Quantity:   quantity,
	})
	if err != nil {
		c.printf("❌ Error creating product: %v\n", err)
		return nil
	}

	c.printf("✅ Product '%s' created with ID %d\n", product.Name, product.ID)
	return nil
}

func (c *Console) updateProduct() error {
	c.println("\n✏️ UPDATE PRODUCT")
	barcode, err := c.readLine("Barcode of the product to update: ")
	if err != nil {
		return err
	}

	c.println("\nFields available for update:")
	c.println("1. Name")
	c.println("2. Category")
	c.println("3. Price")
	c.println("4. Quantity")

	field, ok, err := choose(c, "Choose field (1-4): ", map[string]string{
		"1": model.FieldName,
		"2": model.FieldCategoryID,
		"3": model.FieldPrice,
		"4": model.FieldQuantity,
	}, "")
	if err != nil {
		return err
	}
	if !ok {
		c.println("❌ Invalid option")
		return nil
	}

	var value interface{}
	switch field {
	case model.FieldCategoryID:
		if err := c.listCategories(); err != nil {
			return err
		}
		value, err = c.readInt("New category ID: ", 0, false)
	case model.FieldPrice:
		value, err = c.readDecimal("New price: ")
	case model.FieldQuantity:
		value, err = c.readInt("New quantity: ", 0, false)
	default:
		value, err = c.readLine("New value: ")
	}
	if err != nil {
		return err
	}

	switch err := c.inventory.UpdateProduct(barcode, field, value); {
	case err == nil:
		c.println("✅ Product updated successfully")
	case errors.Is(err, repository.ErrProductNotFound):
		c.printf("❌ No product found with barcode '%s'\n", barcode)
	case errors.Is(err, repository.ErrCategoryNotFound):
		c.println("❌ Category not found")
	default:
		c.printf("❌ Error updating product: %v\n", err)
	}
	return nil
}

func (c *Console) deleteProduct() error {
	c.println("\n🗑️ DELETE PRODUCT")
	barcode, err := c.readLine("Barcode of the product to delete: ")
	if err != nil {
		return err
	}

	var readErr error
	confirm := func(p *model.Product) bool {
		c.println("\nProduct found:")
		WriteProductTable(c.out, []model.Product{*p})
		answer, err := c.readLine("\n⚠️ Are you sure you want to delete this product? (y/n): ")
		if err != nil {
			readErr = err
			return false
		}
		return answer == "y" || answer == "Y"
	}

	deleted, err := c.inventory.DeleteProduct(barcode, confirm)
	if readErr != nil {
		return readErr
	}
	switch {
	case errors.Is(err, repository.ErrProductNotFound):
		c.printf("❌ No product found with barcode '%s'\n", barcode)
	case err != nil:
		c.printf("❌ Error deleting product: %v\n", err)
	case deleted:
		c.println("✅ Product deleted successfully")
	default:
		c.println("❎ Deletion cancelled")
	}
	return nil
}

func (c *Console) adjustInventory() error {
	c.println("\n📊 INVENTORY ADJUSTMENT")
	barcode, err := c.readLine("Product barcode: ")
	if err != nil {
		return err
	}

	c.println("\nAvailable operations:")
	c.println("1. Add units")
	c.println("2. Subtract units")
	c.println("3. Set quantity")

	op, ok, err := choose(c, "Choose operation (1-3): ", map[string]model.StockOperation{
		"1": model.StockAdd,
		"2": model.StockSubtract,
		"3": model.StockSet,
	}, "")
	if err != nil {
		return err
	}
	if !ok {
		c.println("❌ Invalid operation")
		return nil
	}

	quantity, err := c.readInt("Quantity: ", 0, false)
	if err != nil {
		return err
	}

	movements, err := c.inventory.AdjustInventory(&service.AdjustInventoryRequest{
		Barcode:   barcode,
		Operation: op,
		Quantity:  quantity,
	})
	switch {
	case errors.Is(err, repository.ErrProductNotFound):
		c.printf("❌ No product found with barcode '%s'\n", barcode)
		return nil
	case errors.Is(err, repository.ErrInsufficientStock):
		c.println("❌ Not enough stock: the quantity cannot go below zero")
		return nil
	case err != nil:
		c.printf("❌ Error updating inventory: %v\n", err)
		return nil
	}

	c.println("✅ Inventory updated successfully")
	for _, m := range movements {
		c.printf("   %s: %d → %d\n", m.Barcode, m.PreviousQuantity, m.NewQuantity)
	}
	return nil
}
