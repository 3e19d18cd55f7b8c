// Copyright 2026 The Shopkeeper Authors
// SPDX-License-Identifier: Apache-2.0

package shop

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/google/uuid"

	"github.com/shopkeeper-cli/shopkeeper/lib/shop"
)

// doneSentinel exits the item-entry loop during a sale.
const doneSentinel = "done"

// Menu is one interactive operator session. All prompts and output go
// to the injected writer; input is read line by line from the injected
// reader, so tests can script a full session.
type Menu struct {
	input     *bufio.Scanner
	output    io.Writer
	inventory *shop.Inventory
	ledger    *shop.Ledger
	logger    *slog.Logger
	theme     Theme
}

// NewMenu constructs a session over the given streams and stores.
func NewMenu(in io.Reader, out io.Writer, inventory *shop.Inventory, ledger *shop.Ledger, logger *slog.Logger) *Menu {
	return &Menu{
		input:     bufio.NewScanner(in),
		output:    out,
		inventory: inventory,
		ledger:    ledger,
		logger:    logger,
		theme:     DefaultTheme(),
	}
}

// Run drives the menu loop until the operator chooses Exit or input
// reaches EOF. Every dispatched action runs to completion before the
// menu is shown again.
func (m *Menu) Run() error {
	for {
		fmt.Fprintln(m.output)
		fmt.Fprintln(m.output, m.theme.Title.Render("--- Small Shop Management System ---"))
		fmt.Fprintln(m.output, "1. View Inventory")
		fmt.Fprintln(m.output, "2. Add Product to Inventory")
		fmt.Fprintln(m.output, "3. Process a Sale")
		fmt.Fprintln(m.output, "4. View Sales Report")
		fmt.Fprintln(m.output, "5. Exit")

		choice, ok := m.prompt("Enter your choice: ")
		if !ok {
			return nil
		}

		switch choice {
		case "1":
			m.viewInventory()
		case "2":
			m.addProduct()
		case "3":
			m.processSale()
		case "4":
			m.viewSales()
		case "5":
			fmt.Fprintln(m.output, "Exiting... Goodbye!")
			return nil
		default:
			fmt.Fprintln(m.output, m.theme.Notice.Render("Invalid choice. Please try again."))
		}
	}
}

// viewInventory renders the inventory table in insertion order.
func (m *Menu) viewInventory() {
	products := m.inventory.Products()
	if len(products) == 0 {
		fmt.Fprintln(m.output, "Inventory is empty.")
		return
	}

	// Header cells are styled individually: lipgloss must not see the
	// tab stops or tabwriter's column sizing breaks.
	writer := tabwriter.NewWriter(m.output, 0, 0, 2, ' ', 0)
	fmt.Fprintln(writer, m.headerRow("ID", "NAME", "PRICE", "STOCK"))
	for _, product := range products {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%d\n",
			product.ID,
			product.Name,
			shop.FormatPrice(product.Price),
			product.Quantity,
		)
	}
	writer.Flush()
}

// addProduct walks the operator through the add-product prompts.
// Malformed numbers re-prompt rather than aborting the session.
func (m *Menu) addProduct() {
	id, ok := m.prompt("Enter Product ID: ")
	if !ok {
		return
	}
	name, ok := m.prompt("Enter Product Name: ")
	if !ok {
		return
	}
	price, ok := m.promptFloat("Enter Product Price: ")
	if !ok {
		return
	}
	quantity, ok := m.promptInt("Enter Product Quantity: ")
	if !ok {
		return
	}

	product := shop.Product{ID: id, Name: name, Price: price, Quantity: quantity}
	if err := m.inventory.Add(product); err != nil {
		if errors.Is(err, shop.ErrProductExists) {
			fmt.Fprintln(m.output, m.theme.Notice.Render("Product ID already exists."))
			return
		}
		fmt.Fprintf(m.output, "Could not add product: %v\n", err)
		return
	}

	m.logger.Info("product added", "product", product.ID, "quantity", product.Quantity)
	fmt.Fprintln(m.output, m.theme.Success.Render("Product added successfully!"))
}

// processSale runs the item-entry loop for one sale. Nothing touches
// the inventory or the ledger until the operator finishes: items are
// validated against the stock remaining after earlier entries in the
// same sale, and the whole sale goes through shop.Checkout at the end.
// Abandoning the sale mid-entry (EOF) therefore leaves no trace.
func (m *Menu) processSale() {
	saleID, ok := m.prompt("Enter Sale ID: ")
	if !ok {
		return
	}
	if saleID == "" {
		saleID = uuid.NewString()
		fmt.Fprintf(m.output, "Using generated sale ID %s.\n", saleID)
	}

	sale := shop.NewSale(saleID)
	for {
		productID, ok := m.prompt("Enter Product ID to sell (or 'done' to finish): ")
		if !ok {
			return
		}
		if strings.EqualFold(productID, doneSentinel) {
			break
		}

		product, found := m.inventory.Get(productID)
		if !found {
			fmt.Fprintln(m.output, m.theme.Notice.Render("Product not found."))
			continue
		}

		quantity, ok := m.promptInt(fmt.Sprintf("Enter quantity for %s: ", product.Name))
		if !ok {
			return
		}
		if quantity > product.Quantity-sale.Pending(productID) {
			fmt.Fprintln(m.output, m.theme.Notice.Render("Not enough stock available."))
			continue
		}

		sale.AddItem(product, quantity)
	}

	if len(sale.Items) == 0 {
		fmt.Fprintf(m.output, "Sale %s discarded (no items).\n", sale.ID)
		return
	}

	if err := shop.Checkout(m.inventory, m.ledger, sale); err != nil {
		m.logger.Error("sale not recorded", "sale", sale.ID, "error", err)
		fmt.Fprintf(m.output, "Could not record sale: %v\n", err)
		return
	}

	m.logger.Info("sale recorded", "sale", sale.ID, "items", len(sale.Items), "total", sale.Total())
	fmt.Fprintln(m.output, m.theme.Success.Render(fmt.Sprintf("Sale %s recorded successfully.", sale.ID)))
}

// viewSales renders the full ledger history. A shop that has never
// recorded a sale has no sales file at all; that is reported
// distinctly from a sales file with no rows.
func (m *Menu) viewSales() {
	entries, err := m.ledger.Entries()
	if errors.Is(err, shop.ErrNoLedger) {
		fmt.Fprintln(m.output, "Sales file not found.")
		return
	}
	if err != nil {
		fmt.Fprintf(m.output, "Could not read sales: %v\n", err)
		return
	}
	if len(entries) == 0 {
		fmt.Fprintln(m.output, "No sales recorded yet.")
		return
	}

	writer := tabwriter.NewWriter(m.output, 0, 0, 2, ' ', 0)
	fmt.Fprintln(writer, m.headerRow("SALE ID", "PRODUCT ID", "NAME", "QTY", "TOTAL"))
	for _, entry := range entries {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%d\t%s\n",
			entry.SaleID,
			entry.ProductID,
			entry.ProductName,
			entry.Quantity,
			shop.FormatPrice(entry.LineTotal),
		)
	}
	writer.Flush()
}

// headerRow styles each header cell and joins them with tab stops.
func (m *Menu) headerRow(cells ...string) string {
	styled := make([]string, len(cells))
	for i, cell := range cells {
		styled[i] = m.theme.Header.Render(cell)
	}
	return strings.Join(styled, "\t")
}

// prompt writes label and reads one trimmed line. ok is false at EOF,
// which aborts the enclosing action.
func (m *Menu) prompt(label string) (value string, ok bool) {
	fmt.Fprint(m.output, label)
	if !m.input.Scan() {
		fmt.Fprintln(m.output)
		return "", false
	}
	return strings.TrimSpace(m.input.Text()), true
}

// promptInt prompts until the operator enters a non-negative integer.
func (m *Menu) promptInt(label string) (value int, ok bool) {
	for {
		text, ok := m.prompt(label)
		if !ok {
			return 0, false
		}
		n, err := strconv.Atoi(text)
		if err != nil || n < 0 {
			fmt.Fprintln(m.output, m.theme.Notice.Render("Please enter a whole number."))
			continue
		}
		return n, true
	}
}

// promptFloat prompts until the operator enters a non-negative number.
func (m *Menu) promptFloat(label string) (value float64, ok bool) {
	for {
		text, ok := m.prompt(label)
		if !ok {
			return 0, false
		}
		f, err := strconv.ParseFloat(text, 64)
		if err != nil || f < 0 {
			fmt.Fprintln(m.output, m.theme.Notice.Render("Please enter a number."))
			continue
		}
		return f, true
	}
}
