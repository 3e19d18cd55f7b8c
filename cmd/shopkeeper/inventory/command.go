// Copyright 2026 The Shopkeeper Authors
// SPDX-License-Identifier: Apache-2.0

package inventory

import (
	"github.com/shopkeeper-cli/shopkeeper/cmd/shopkeeper/cli"
)

// Command returns the "inventory" parent command with all subcommands.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "inventory",
		Summary: "Inspect and modify the product inventory",
		Description: `List, add, and adjust products in the shop's inventory.

The inventory is a delimited file (inventory.csv by default) holding
one row per product: id, name, unit price, and stock on hand. Every
mutating command rewrites the file in full before reporting success,
so the file always matches what the command printed.

Product ids are unique: adding an id twice is an error and leaves the
existing product untouched. Products are never deleted; retire one by
adjusting its stock to zero.`,
		Subcommands: []*cli.Command{
			listCommand(),
			addCommand(),
			adjustCommand(),
		},
		Examples: []cli.Example{
			{
				Description: "Add a product",
				Command:     "shopkeeper inventory add --id P001 --name Pen --price 1.50 --quantity 100",
			},
			{
				Description: "List the inventory as JSON",
				Command:     "shopkeeper inventory list --json",
			},
		},
	}
}
