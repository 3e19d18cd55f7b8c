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

// addParams holds the parameters for inventory add.
type addParams struct {
	cli.StoreConfig
	ID       string  `flag:"id" desc:"product id (required, unique)"`
	Name     string  `flag:"name" desc:"display name (required)"`
	Price    float64 `flag:"price" desc:"unit price (non-negative)"`
	Quantity int     `flag:"quantity" desc:"initial stock count (non-negative)"`
}

func addCommand() *cli.Command {
	var params addParams

	return &cli.Command{
		Name:    "add",
		Summary: "Add a new product to the inventory",
		Description: `Add a product under a new id. The id is the product's permanent
identity; adding an id that already exists is an error and leaves the
existing product untouched.`,
		Usage: "shopkeeper inventory add --id <id> --name <name> --price <price> --quantity <n> [flags]",
		Examples: []cli.Example{
			{
				Description: "Add a pen with 100 units in stock",
				Command:     "shopkeeper inventory add --id P001 --name Pen --price 1.50 --quantity 100",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("add", &params)
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}
			if params.ID == "" {
				return cli.Validation("--id is required")
			}
			if params.Name == "" {
				return cli.Validation("--name is required")
			}
			if params.Price < 0 {
				return cli.Validation("--price must be non-negative, got %s", shop.FormatPrice(params.Price))
			}
			if params.Quantity < 0 {
				return cli.Validation("--quantity must be non-negative, got %d", params.Quantity)
			}

			inventory, err := params.OpenInventory()
			if err != nil {
				return cli.Internal("open inventory: %w", err)
			}

			product := shop.Product{
				ID:       params.ID,
				Name:     params.Name,
				Price:    params.Price,
				Quantity: params.Quantity,
			}
			if err := inventory.Add(product); err != nil {
				if errors.Is(err, shop.ErrProductExists) {
					return cli.Conflict("product id %s already exists", params.ID)
				}
				return cli.Internal("add product: %w", err)
			}

			logger := cli.NewCommandLogger().With("command", "inventory/add")
			logger.Info("product added",
				"product", product.ID,
				"price", product.Price,
				"quantity", product.Quantity,
			)

			fmt.Fprintf(os.Stdout, "Added %s (%s) at %s, %d in stock\n",
				product.ID, product.Name, shop.FormatPrice(product.Price), product.Quantity)
			return nil
		},
	}
}
