// Copyright 2026 The Shopkeeper Authors
// SPDX-License-Identifier: Apache-2.0

// Shopkeeper is the CLI for running a small shop from the terminal.
// It provides an interactive menu session (shop) plus scriptable
// command groups for the product catalog (inventory) and the
// append-only sales ledger (sales).
package main
