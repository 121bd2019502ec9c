package console

import (
	"fmt"
	"io"
	"strings"

	"go-inventory-cli/internal/model"

	"github.com/mattn/go-runewidth"
	"github.com/shopspring/decimal"
)

type column struct {
	title string
	width int
}

var productColumns = []column{
	{"Barcode", 15},
	{"Name", 25},
	{"Category", 15},
	{"Price", 10},
	{"Quantity", 10},
}

// cell truncates s to fit width display cells and pads it on the right.
func cell(s string, width int) string {
	return runewidth.FillRight(runewidth.Truncate(s, width, ""), width)
}

func writeRow(w io.Writer, columns []column, values ...string) {
	cells := make([]string, len(columns))
	for i, col := range columns {
		cells[i] = cell(values[i], col.width)
	}
	fmt.Fprintln(w, strings.TrimRight(strings.Join(cells, " "), " "))
}

func writeHeader(w io.Writer, columns []column) {
	titles := make([]string, len(columns))
	for i, col := range columns {
		titles[i] = col.title
	}
	writeRow(w, columns, titles...)
	fmt.Fprintln(w, strings.Repeat("-", 80))
}

// WriteProductTable prints products as fixed-width columns. Long values are cut.
func WriteProductTable(w io.Writer, products []model.Product) {
	writeHeader(w, productColumns)
	for _, p := range products {
		writeRow(w, productColumns,
			p.Barcode,
			p.Name,
			p.Category.Name,
			"$"+p.Price.StringFixed(2),
			fmt.Sprintf("%d", p.Quantity),
		)
	}
}

var categoryColumns = []column{
	{"ID", 5},
	{"Name", 25},
	{"Description", 48},
}

func writeCategoryTable(w io.Writer, categories []model.Category) {
	writeHeader(w, categoryColumns)
	for _, c := range categories {
		writeRow(w, categoryColumns, fmt.Sprintf("%d", c.ID), c.Name, c.Description)
	}
}

// FormatMoney renders d with two decimals and thousands separators, e.g. $12,345.60.
func FormatMoney(d decimal.Decimal) string {
	fixed := d.Abs().StringFixed(2)
	intPart, frac := fixed[:len(fixed)-3], fixed[len(fixed)-3:]

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	sign := ""
	if d.IsNegative() {
		sign = "-"
	}
	return sign + "$" + b.String() + frac
}
