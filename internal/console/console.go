package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"go-inventory-cli/internal/service"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// errAbandoned ends the current action after invalid input was reported.
var errAbandoned = errors.New("action abandoned")

// SystemInfo is the connection summary shown by the system information screen.
type SystemInfo struct {
	Database string
	Host     string
	User     string
}

// Console is the interactive inventory menu.
type Console struct {
	inventory  service.InventoryService
	categories service.CategoryService
	reports    service.ReportService
	info       SystemInfo

	in  *bufio.Reader
	out io.Writer
	now func() time.Time
	log zerolog.Logger
}

func New(
	inventory service.InventoryService,
	categories service.CategoryService,
	reports service.ReportService,
	info SystemInfo,
	in io.Reader,
	out io.Writer,
	log zerolog.Logger,
) *Console {
	return &Console{
		inventory:  inventory,
		categories: categories,
		reports:    reports,
		info:       info,
		in:         bufio.NewReader(in),
		out:        out,
		now:        time.Now,
		log:        log,
	}
}

func (c *Console) printMenu() {
	c.println("\n" + strings.Repeat("=", 50))
	c.println("🏪 INVENTORY MANAGEMENT SYSTEM")
	c.println(strings.Repeat("=", 50))
	c.println("1. 📦 List products")
	c.println("2. 🔍 Search product")
	c.println("3. ➕ Create new product")
	c.println("4. ✏️ Update product")
	c.println("5. 🗑️ Delete product")
	c.println("6. 📊 Inventory adjustment")
	c.println("7. 📂 Manage categories")
	c.println("8. 📈 Reports")
	c.println("9. ℹ️ System information")
	c.println("0. 🚪 Exit")
	c.println(strings.Repeat("=", 50))
}

// Run blocks on the menu until the user exits or input ends. Only a read
// failure on the input stream is returned.
func (c *Console) Run() error {
	actions := map[string]func() error{
		"1": c.listProducts,
		"2": c.searchProducts,
		"3": c.createProduct,
		"4": c.updateProduct,
		"5": c.deleteProduct,
		"6": c.adjustInventory,
		"7": c.manageCategories,
		"8": c.showReports,
		"9": c.showSystemInfo,
	}

	for {
		c.printMenu()
		choice, err := c.readLine("\n👉 Choose an option: ")
		if err != nil {
			return endOfInput(err)
		}

		c.log.Debug().Str("choice", choice).Msg("menu selection")

		if choice == "0" {
			c.println("👋 Goodbye!")
			return nil
		}

		action, ok := actions[choice]
		if !ok {
			c.println("❌ Invalid option. Try again.")
		} else if err := action(); err != nil && !errors.Is(err, errAbandoned) {
			return endOfInput(err)
		}

		if _, err := c.readLine("\nPress Enter to continue..."); err != nil {
			return endOfInput(err)
		}
	}
}

func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (c *Console) println(a ...interface{}) {
	fmt.Fprintln(c.out, a...)
}

func (c *Console) printf(format string, a ...interface{}) {
	fmt.Fprintf(c.out, format, a...)
}

// readLine prints label and returns the next trimmed line, or io.EOF. Lines
// have no length limit; a final line without a newline is still returned.
func (c *Console) readLine(label string) (string, error) {
	fmt.Fprint(c.out, label)
	line, err := c.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// readInt parses a whole number. An empty line yields def when allowEmpty is set.
func (c *Console) readInt(label string, def int, allowEmpty bool) (int, error) {
	raw, err := c.readLine(label)
	if err != nil {
		return 0, err
	}
	if raw == "" && allowEmpty {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		c.printf("❌ '%s' is not a valid whole number\n", raw)
		return 0, errAbandoned
	}
	return n, nil
}

func (c *Console) readDecimal(label string) (decimal.Decimal, error) {
	raw, err := c.readLine(label)
	if err != nil {
		return decimal.Zero, err
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		c.printf("❌ '%s' is not a valid number\n", raw)
		return decimal.Zero, errAbandoned
	}
	return d, nil
}

// choose reads a sub-menu key and maps it through options; unknown keys
// return def and false.
func choose[T any](c *Console, label string, options map[string]T, def T) (T, bool, error) {
	raw, err := c.readLine(label)
	if err != nil {
		return def, false, err
	}
	v, ok := options[raw]
	if !ok {
		return def, false, nil
	}
	return v, true, nil
}
