// Package renderer builds the markdown views of the shop: inventory and
// sales tables, sale confirmations, and the sales report.
package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	md "github.com/nao1215/markdown"
	shopkeeper "github.com/niyati59/shopkeeper-app"
)

// Inventory renders the item listing as a markdown table.
func Inventory(items []shopkeeper.Item) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{item.Name, item.Price.String(), strconv.Itoa(item.Quantity)})
	}
	doc.Table(md.TableSet{
		Header: []string{"Name", "Price", "Quantity"},
		Rows:   rows,
	})
	return doc.String()
}

// Sales renders the sales log as a markdown table, in chronological order.
func Sales(sales []shopkeeper.Sale) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	rows := make([][]string, 0, len(sales))
	for _, sale := range sales {
		rows = append(rows, []string{sale.Name, strconv.Itoa(sale.Quantity), sale.TotalPrice.String()})
	}
	doc.Table(md.TableSet{
		Header: []string{"Name", "Quantity", "Total Price"},
		Rows:   rows,
	})
	return doc.String()
}

// Item renders a single item as a one-row table.
func Item(item shopkeeper.Item) string {
	return Inventory([]shopkeeper.Item{item})
}

// SaleLine renders a one-line confirmation for a completed sale.
func SaleLine(sale shopkeeper.Sale) string {
	return fmt.Sprintf("Sold %d of %s for %s", sale.Quantity, sale.Name, sale.TotalPrice)
}

// ReportMarkdown renders the sales report: the total of all sales followed
// by the current inventory.
func ReportMarkdown(r shopkeeper.Report) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Sales Report")
	doc.PlainText(fmt.Sprintf("Total Sales: %s", r.TotalSales))

	doc.H2("Inventory")
	rows := make([][]string, 0, len(r.Items))
	for _, item := range r.Items {
		rows = append(rows, []string{item.Name, item.Price.String(), strconv.Itoa(item.Quantity)})
	}
	doc.Table(md.TableSet{
		Header: []string{"Name", "Price", "Quantity"},
		Rows:   rows,
	})
	return doc.String()
}
