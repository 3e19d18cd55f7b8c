// Copyright 2026 The Shopkeeper Authors
// SPDX-License-Identifier: Apache-2.0

package inventory

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/shopkeeper-cli/shopkeeper/cmd/shopkeeper/cli"
	"github.com/shopkeeper-cli/shopkeeper/lib/shop"
)

// adjustParams holds the parameters for inventory adjust.
type adjustParams struct {
	cli.StoreConfig
	ID      string `flag:"id" desc:"product id (required)"`
	Deduct  int    `flag:"deduct" desc:"units to remove from stock"`
	Restock int    `flag:"restock" desc:"units to add to stock"`
}

func adjustCommand() *cli.Command {
	var params adjustParams

	return &cli.Command{
		Name:    "adjust",
		Summary: "Deduct or restock a product's quantity",
		Description: `Change the stock on hand for one product. Exactly one of --deduct
or --restock must be given.

Adjusting an unknown product id is an error, and a deduction can never
drive stock below zero — both cases leave the inventory untouched and
report what went wrong.`,
		Usage: "shopkeeper inventory adjust --id <id> (--deduct <n> | --restock <n>) [flags]",
		Examples: []cli.Example{
			{
				Description: "Receive a delivery of 50 pens",
				Command:     "shopkeeper inventory adjust --id P001 --restock 50",
			},
			{
				Description: "Write off 3 damaged units",
				Command:     "shopkeeper inventory adjust --id P001 --deduct 3",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("adjust", &params)
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}
			if params.ID == "" {
				return cli.Validation("--id is required")
			}
			if (params.Deduct == 0) == (params.Restock == 0) {
				return cli.Validation("exactly one of --deduct or --restock is required")
			}
			if params.Deduct < 0 || params.Restock < 0 {
				return cli.Validation("adjustment must be positive")
			}

			inventory, err := params.OpenInventory()
			if err != nil {
				return cli.Internal("open inventory: %w", err)
			}

			if params.Deduct > 0 {
				err = inventory.Deduct(params.ID, params.Deduct)
			} else {
				err = inventory.Restock(params.ID, params.Restock)
			}
			switch {
			case errors.Is(err, shop.ErrProductNotFound):
				return cli.NotFound("product %s not found", params.ID)
			case errors.Is(err, shop.ErrInsufficientStock):
				product, _ := inventory.Get(params.ID)
				return cli.Conflict("cannot deduct %d from %s: only %d in stock",
					params.Deduct, params.ID, product.Quantity)
			case err != nil:
				return cli.Internal("adjust quantity: %w", err)
			}

			product, _ := inventory.Get(params.ID)
			logger := cli.NewCommandLogger().With("command", "inventory/adjust")
			logger.Info("quantity adjusted",
				"product", product.ID,
				"deduct", params.Deduct,
				"restock", params.Restock,
				"quantity", product.Quantity,
			)

			fmt.Fprintf(os.Stdout, "%s (%s) now has %d in stock\n",
				product.ID, product.Name, product.Quantity)
			return nil
		},
	}
}
