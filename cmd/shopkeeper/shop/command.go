// Copyright 2026 The Shopkeeper Authors
// SPDX-License-Identifier: Apache-2.0

package shop

import (
	"os"

	"github.com/spf13/pflag"

	"github.com/shopkeeper-cli/shopkeeper/cmd/shopkeeper/cli"
)

// shopParams holds the parameters for the shop command.
type shopParams struct {
	cli.StoreConfig
}

// Command returns the "shop" command running the interactive menu.
func Command() *cli.Command {
	var params shopParams

	return &cli.Command{
		Name:    "shop",
		Summary: "Run the interactive shop menu",
		Description: `Run the menu-driven operator session: view inventory, add
products, process sales, and view the sales report, in a loop until
Exit is chosen.

During a sale, items are entered one at a time ('done' finishes the
sale) and each is validated against the stock remaining after earlier
entries. The sale is written to the ledger before any stock is
decremented, so an abandoned sale leaves both files untouched.`,
		Usage: "shopkeeper shop [flags]",
		Examples: []cli.Example{
			{
				Description: "Run the menu against the default files",
				Command:     "shopkeeper shop",
			},
			{
				Description: "Run the menu against a specific data directory",
				Command:     "shopkeeper shop --inventory-file /srv/shop/inventory.csv --sales-file /srv/shop/sales.csv",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("shop", &params)
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}

			inventory, ledger, err := params.OpenStores()
			if err != nil {
				return cli.Internal("open shop data: %w", err)
			}

			logger := cli.NewCommandLogger().With("command", "shop")
			menu := NewMenu(os.Stdin, os.Stdout, inventory, ledger, logger)
			return menu.Run()
		},
	}
}
