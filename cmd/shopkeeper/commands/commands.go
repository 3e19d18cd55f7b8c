// Copyright 2026 The Shopkeeper Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands assembles the shopkeeper command tree.
package commands

import (
	"github.com/shopkeeper-cli/shopkeeper/cmd/shopkeeper/cli"
	"github.com/shopkeeper-cli/shopkeeper/cmd/shopkeeper/inventory"
	"github.com/shopkeeper-cli/shopkeeper/cmd/shopkeeper/sales"
	"github.com/shopkeeper-cli/shopkeeper/cmd/shopkeeper/shop"
)

// Root returns the top-level shopkeeper command.
func Root() *cli.Command {
	return &cli.Command{
		Name:    "shopkeeper",
		Summary: "Manage a small shop's inventory and sales",
		Description: `shopkeeper keeps a shop's state in two flat CSV files: an
inventory file holding the product catalog with current stock, and an
append-only sales file holding one row per item sold.

The "shop" command runs the interactive menu. The "inventory" and
"sales" command groups expose the same operations for scripting.`,
		Usage: "shopkeeper <command> [flags]",
		Subcommands: []*cli.Command{
			shop.Command(),
			inventory.Command(),
			sales.Command(),
		},
	}
}
