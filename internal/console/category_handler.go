package console

import (
	"errors"

	"go-inventory-cli/internal/repository"
)

func (c *Console) manageCategories() error {
	c.println("\n📂 CATEGORY MANAGEMENT")
	c.println("1. List categories")
	c.println("2. Create new category")

	choice, err := c.readLine("Choose option (1-2): ")
	if err != nil {
		return err
	}

	switch choice {
	case "1":
		return c.listCategories()
	case "2":
		return c.createCategory()
	}
	c.println("❌ Invalid option")
	return nil
}

// listCategories never fails on storage errors; it reports them instead.
func (c *Console) listCategories() error {
	categories, err := c.categories.ListCategories()
	if err != nil {
		c.printf("❌ Error listing categories: %v\n", err)
		return nil
	}
	if len(categories) == 0 {
		c.println("📂 No categories registered")
		return nil
	}

	c.println("\n📂 AVAILABLE CATEGORIES")
	writeCategoryTable(c.out, categories)
	return nil
}

func (c *Console) createCategory() error {
	name, err := c.readLine("New category name: ")
	if err != nil {
		return err
	}
	description, err := c.readLine("Description (optional): ")
	if err != nil {
		return err
	}

	category, err := c.categories.CreateCategory(name, description)
	switch {
	case errors.Is(err, repository.ErrDuplicateCategory):
		c.printf("❌ Category '%s' already exists\n", name)
	case err != nil:
		c.printf("❌ Error creating category: %v\n", err)
	default:
		c.printf("✅ Category '%s' created with ID %d\n", category.Name, category.ID)
	}
	return nil
}
