// Copyright 2026 The Shopkeeper Authors
// SPDX-License-Identifier: Apache-2.0

package shop

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Sentinel errors for inventory operations. Callers match them with
// errors.Is and translate to user-facing messages at the CLI layer.
var (
	// ErrProductExists reports an Add with an id that is already stocked.
	ErrProductExists = errors.New("product already exists")

	// ErrProductNotFound reports an operation on an unknown product id.
	ErrProductNotFound = errors.New("product not found")

	// ErrInsufficientStock reports a deduction larger than the stock on hand.
	ErrInsufficientStock = errors.New("not enough stock")
)

// inventoryHeader is the header row of the inventory file.
var inventoryHeader = []string{"product_id", "product_name", "price", "quantity"}

// Inventory is the authoritative set of products for one shop. Every
// mutation rewrites the backing file in full before returning; the
// file always reflects exactly the in-memory mapping. The inventory
// assumes a single writer for the lifetime of the file.
type Inventory struct {
	path     string
	products map[string]*Product

	// order preserves insertion order so that listings are stable
	// across calls and across reloads.
	order []string
}

// Open loads the inventory file at path. A missing file is not an
// error: Open creates it with a header-only row and returns an empty
// inventory. A present-but-empty file is treated the same way, so a
// truncated file does not wedge the tool.
func Open(path string) (*Inventory, error) {
	inventory := &Inventory{
		path:     path,
		products: make(map[string]*Product),
	}

	file, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		if err := inventory.save(); err != nil {
			return nil, fmt.Errorf("initializing inventory file: %w", err)
		}
		return inventory, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening inventory file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = len(inventoryHeader)

	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return inventory, nil
		}
		return nil, fmt.Errorf("reading inventory header: %w", err)
	}

	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("inventory file %s: %w", path, err)
		}
		product, err := parseProductRow(row)
		if err != nil {
			return nil, fmt.Errorf("inventory file %s: %w", path, err)
		}
		inventory.products[product.ID] = product
		inventory.order = append(inventory.order, product.ID)
	}
	return inventory, nil
}

// parseProductRow decodes one data row of the inventory file.
func parseProductRow(row []string) (*Product, error) {
	price, err := strconv.ParseFloat(row[2], 64)
	if err != nil {
		return nil, fmt.Errorf("product %s: bad price %q: %w", row[0], row[2], err)
	}
	quantity, err := strconv.Atoi(row[3])
	if err != nil {
		return nil, fmt.Errorf("product %s: bad quantity %q: %w", row[0], row[3], err)
	}
	return &Product{ID: row[0], Name: row[1], Price: price, Quantity: quantity}, nil
}

// Path returns the backing file path.
func (inv *Inventory) Path() string { return inv.path }

// Len returns the number of distinct products.
func (inv *Inventory) Len() int { return len(inv.products) }

// Get returns a copy of the product with the given id.
func (inv *Inventory) Get(id string) (Product, bool) {
	product, ok := inv.products[id]
	if !ok {
		return Product{}, false
	}
	return *product, true
}

// Products returns a snapshot of all products in insertion order.
func (inv *Inventory) Products() []Product {
	snapshot := make([]Product, 0, len(inv.order))
	for _, id := range inv.order {
		snapshot = append(snapshot, *inv.products[id])
	}
	return snapshot
}

// Add inserts a new product and persists the inventory. Adding an id
// that is already stocked returns ErrProductExists and changes nothing,
// neither in memory nor on disk.
func (inv *Inventory) Add(product Product) error {
	if _, exists := inv.products[product.ID]; exists {
		return fmt.Errorf("product %s: %w", product.ID, ErrProductExists)
	}
	stored := product
	inv.products[product.ID] = &stored
	inv.order = append(inv.order, product.ID)
	if err := inv.save(); err != nil {
		// Roll the insert back so memory keeps matching the file.
		delete(inv.products, product.ID)
		inv.order = inv.order[:len(inv.order)-1]
		return err
	}
	return nil
}

// Deduct removes qty units of stock from the product with the given id
// and persists the inventory. An unknown id returns ErrProductNotFound
// and a deduction past zero returns ErrInsufficientStock; in both
// cases nothing changes.
func (inv *Inventory) Deduct(id string, qty int) error {
	if qty < 0 {
		return fmt.Errorf("deduct quantity %d: must be non-negative", qty)
	}
	product, ok := inv.products[id]
	if !ok {
		return fmt.Errorf("product %s: %w", id, ErrProductNotFound)
	}
	if qty > product.Quantity {
		return fmt.Errorf("product %s: have %d, want %d: %w",
			id, product.Quantity, qty, ErrInsufficientStock)
	}
	product.Quantity -= qty
	if err := inv.save(); err != nil {
		product.Quantity += qty
		return err
	}
	return nil
}

// Restock adds qty units of stock to the product with the given id and
// persists the inventory.
func (inv *Inventory) Restock(id string, qty int) error {
	if qty < 0 {
		return fmt.Errorf("restock quantity %d: must be non-negative", qty)
	}
	product, ok := inv.products[id]
	if !ok {
		return fmt.Errorf("product %s: %w", id, ErrProductNotFound)
	}
	product.Quantity += qty
	if err := inv.save(); err != nil {
		product.Quantity -= qty
		return err
	}
	return nil
}

// CheckSale verifies that every line item of sale can be satisfied by
// the current stock, counting repeated items against the same product
// together. It reports the first problem found and never mutates.
func (inv *Inventory) CheckSale(sale *Sale) error {
	needed := make(map[string]int)
	for _, item := range sale.Items {
		needed[item.ProductID] += item.Quantity
	}
	// Walk in item order so error messages are deterministic.
	seen := make(map[string]bool)
	for _, item := range sale.Items {
		id := item.ProductID
		if seen[id] {
			continue
		}
		seen[id] = true
		product, ok := inv.products[id]
		if !ok {
			return fmt.Errorf("product %s: %w", id, ErrProductNotFound)
		}
		if needed[id] > product.Quantity {
			return fmt.Errorf("product %s: have %d, want %d: %w",
				id, product.Quantity, needed[id], ErrInsufficientStock)
		}
	}
	return nil
}

// ApplySale deducts every line item of sale and persists the inventory
// once. The sale is validated in full before anything mutates, so a
// sale either applies completely or not at all.
func (inv *Inventory) ApplySale(sale *Sale) error {
	if err := inv.CheckSale(sale); err != nil {
		return err
	}
	needed := make(map[string]int)
	for _, item := range sale.Items {
		needed[item.ProductID] += item.Quantity
	}
	for id, qty := range needed {
		inv.products[id].Quantity -= qty
	}
	if err := inv.save(); err != nil {
		for id, qty := range needed {
			inv.products[id].Quantity += qty
		}
		return err
	}
	return nil
}

// save rewrites the backing file to match the in-memory mapping. The
// write goes to a temporary file that is renamed into place, so a
// crash mid-write never leaves a half-written inventory behind.
func (inv *Inventory) save() error {
	temporaryPath := inv.path + ".tmp"

	file, err := os.OpenFile(temporaryPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("creating temporary inventory file: %w", err)
	}

	writer := csv.NewWriter(file)
	writer.Write(inventoryHeader)
	for _, id := range inv.order {
		product := inv.products[id]
		writer.Write([]string{
			product.ID,
			product.Name,
			FormatPrice(product.Price),
			strconv.Itoa(product.Quantity),
		})
	}
	writer.Flush()

	if err := writer.Error(); err != nil {
		file.Close()
		os.Remove(temporaryPath)
		return fmt.Errorf("writing temporary inventory file: %w", err)
	}
	if err := file.Sync(); err != nil {
		file.Close()
		os.Remove(temporaryPath)
		return fmt.Errorf("syncing temporary inventory file: %w", err)
	}
	if err := file.Close(); err != nil {
		os.Remove(temporaryPath)
		return fmt.Errorf("closing temporary inventory file: %w", err)
	}
	if err := os.Rename(temporaryPath, inv.path); err != nil {
		os.Remove(temporaryPath)
		return fmt.Errorf("renaming inventory file into place: %w", err)
	}
	return nil
}
