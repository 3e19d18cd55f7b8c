// Copyright 2026 The Shopkeeper Authors
// SPDX-License-Identifier: Apache-2.0

// Package shop implements the shop's data model and its persistence:
// products, the file-backed inventory, sales, and the append-only
// sales ledger.
//
// The [Inventory] owns the full set of products for one shop. Every
// mutation rewrites the backing file before returning, so the file
// always reflects exactly the in-memory state. The [Ledger] is the
// opposite discipline: it holds no state in memory and only ever
// appends rows to its file.
//
// [Checkout] ties the two together. A [Sale] accumulates line items
// without touching either store; checkout appends the sale to the
// ledger first and applies the stock decrements only after the sale
// is durable, so an abandoned or failed sale leaves no trace.
//
// Both files are delimited text (encoding/csv). The inventory file
// carries a header row; the ledger does not.
//
// This package depends on no other Shopkeeper packages.
package shop
