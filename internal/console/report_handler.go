package console

import (
	"fmt"
	"io"
	"strconv"

	"go-inventory-cli/internal/model"
)

func (c *Console) showReports() error {
	c.println("\n📈 REPORTS")
	c.println("1. Low stock products")
	c.println("2. Total inventory value")
	c.println("3. Stock movement by day")
	c.println("4. Recent inventory adjustments")

	choice, err := c.readLine("Choose report (1-4): ")
	if err != nil {
		return err
	}

	switch choice {
	case "1":
		return c.lowStockReport()
	case "2":
		c.totalValueReport()
	case "3":
		return c.stockMovementReport()
	case "4":
		c.recentMovementsReport()
	default:
		c.println("❌ Invalid option")
	}
	return nil
}

func (c *Console) lowStockReport() error {
	def := c.reports.DefaultThreshold()
	threshold, err := c.readInt(fmt.Sprintf("Low stock threshold (default=%d): ", def), def, true)
	if err != nil {
		return err
	}
	if threshold <= 0 {
		c.println("❌ The threshold must be greater than 0")
		return nil
	}

	products, err := c.reports.LowStock(threshold)
	if err != nil {
		c.printf("❌ Error generating report: %v\n", err)
		return nil
	}
	WriteLowStockReport(c.out, products, threshold)
	return nil
}

func (c *Console) totalValueReport() {
	total, err := c.reports.TotalInventoryValue()
	if err != nil {
		c.printf("❌ Error computing total value: %v\n", err)
		return
	}
	c.printf("\n💰 TOTAL INVENTORY VALUE: %s\n", FormatMoney(total))
}

var movementColumns = []column{
	{"Date", 12},
	{"Inbound", 10},
	{"Outbound", 10},
}

func (c *Console) stockMovementReport() error {
	days, err := c.readInt("Number of days (default=7): ", 7, true)
	if err != nil {
		return err
	}

	data, err := c.reports.GetStockMovement(days)
	if err != nil {
		c.printf("❌ Error generating report: %v\n", err)
		return nil
	}
	if len(data) == 0 {
		c.println("📈 No inventory adjustments in this period")
		return nil
	}

	c.println("\n📈 STOCK MOVEMENT")
	writeHeader(c.out, movementColumns)
	for _, d := range data {
		writeRow(c.out, movementColumns, d.Date, strconv.Itoa(d.Inbound), strconv.Itoa(d.Outbound))
	}
	return nil
}

var recentColumns = []column{
	{"When", 20},
	{"Barcode", 15},
	{"Operation", 10},
	{"Qty", 6},
	{"Before", 8},
	{"After", 8},
}

func (c *Console) recentMovementsReport() {
	movements, err := c.reports.RecentMovements(10)
	if err != nil {
		c.printf("❌ Error loading adjustments: %v\n", err)
		return
	}
	if len(movements) == 0 {
		c.println("📈 No inventory adjustments recorded")
		return
	}

	c.println("\n📈 RECENT INVENTORY ADJUSTMENTS")
	writeHeader(c.out, recentColumns)
	for _, m := range movements {
		writeRow(c.out, recentColumns,
			m.CreatedAt.Format("2006-01-02 15:04:05"),
			m.Barcode,
			string(m.Operation),
			strconv.Itoa(m.Quantity),
			strconv.Itoa(m.PreviousQuantity),
			strconv.Itoa(m.NewQuantity),
		)
	}
}

func (c *Console) showSystemInfo() error {
	c.println("\nℹ️ SYSTEM INFORMATION")
	c.printf("Database: %s\n", c.info.Database)
	c.printf("Host: %s\n", c.info.Host)
	c.printf("User: %s\n", c.info.User)
	c.printf("Current time: %s\n", c.now().Format("2006-01-02 15:04:05"))

	stats, err := c.reports.GetStats()
	if err != nil {
		c.printf("❌ Error loading statistics: %v\n", err)
		return nil
	}
	c.printf("Total products: %d\n", stats.TotalProducts)
	c.printf("Total categories: %d\n", stats.TotalCategories)
	c.printf("Low stock products (under %d): %d\n", stats.LowStockThreshold, stats.LowStockCount)
	c.printf("Inventory value: %s\n", FormatMoney(stats.TotalValuation))
	return nil
}

// WriteLowStockReport prints the low stock table, or a confirmation that
// every product is at or above threshold.
func WriteLowStockReport(w io.Writer, products []model.Product, threshold int) {
	if len(products) == 0 {
		fmt.Fprintf(w, "✅ Every product has at least %d units\n", threshold)
		return
	}
	fmt.Fprintf(w, "\n⚠️ LOW STOCK PRODUCTS (fewer than %d units)\n", threshold)
	fmt.Fprintln(w, "================================================================================")
	WriteProductTable(w, products)
}
