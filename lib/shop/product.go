// Copyright 2026 The Shopkeeper Authors
// SPDX-License-Identifier: Apache-2.0

package shop

import "strconv"

// Product is one stocked item. ID is the identity key, supplied by the
// operator and immutable once the product is added. Quantity is the
// stock on hand and is mutated only through the owning [Inventory].
type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// FormatPrice renders a price (or line total) the way the data files
// store it: shortest decimal form that round-trips through ParseFloat.
func FormatPrice(value float64) string {
	return strconv.FormatFloat(value, 'g', -1, 64)
}
