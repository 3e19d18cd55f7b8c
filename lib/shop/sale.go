// Copyright 2026 The Shopkeeper Authors
// SPDX-License-Identifier: Apache-2.0

package shop

// LineItem is one product-quantity entry within a sale. The product
// name and line total are captured at entry time so the ledger stays
// readable even if the product later changes.
type LineItem struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	LineTotal   float64 `json:"line_total"`
}

// Sale is a single transaction in progress. Items accumulate in the
// order the operator enters them. Nothing touches the inventory or the
// ledger until the sale goes through [Checkout].
type Sale struct {
	ID    string     `json:"sale_id"`
	Items []LineItem `json:"items"`
}

// NewSale starts an empty sale with the given id. Sale ids are
// operator-supplied and are not checked against prior sales.
func NewSale(id string) *Sale {
	return &Sale{ID: id}
}

// AddItem appends a line item for qty units of product. Stock checks
// are the caller's responsibility; AddItem only computes the line
// total at the product's current price.
func (s *Sale) AddItem(product Product, qty int) {
	s.Items = append(s.Items, LineItem{
		ProductID:   product.ID,
		ProductName: product.Name,
		Quantity:    qty,
		LineTotal:   product.Price * float64(qty),
	})
}

// Total sums the line totals. Recomputed on every call; the total is
// derived state and never stored.
func (s *Sale) Total() float64 {
	var total float64
	for _, item := range s.Items {
		total += item.LineTotal
	}
	return total
}

// Pending returns how many units of product id the sale already holds.
// The interactive flow uses this to validate new items against the
// stock remaining after items entered earlier in the same sale.
func (s *Sale) Pending(id string) int {
	var total int
	for _, item := range s.Items {
		if item.ProductID == id {
			total += item.Quantity
		}
	}
	return total
}
