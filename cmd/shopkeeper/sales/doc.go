// Copyright 2026 The Shopkeeper Authors
// SPDX-License-Identifier: Apache-2.0

// Package sales implements the "shopkeeper sales" command group for
// recording sales and viewing the ledger. Recording goes through
// shop.Checkout, so a sale is appended to the ledger before any stock
// is decremented.
package sales
