// Copyright 2026 The Shopkeeper Authors
// SPDX-License-Identifier: Apache-2.0

// Package inventory implements the "shopkeeper inventory" command group
// for inspecting and modifying the product inventory. The commands wrap
// the store in lib/shop, providing flag parsing, output formatting, and
// error categorization.
package inventory
