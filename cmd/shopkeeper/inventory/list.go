// Copyright 2026 The Shopkeeper Authors
// SPDX-License-Identifier: Apache-2.0

package inventory

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/shopkeeper-cli/shopkeeper/cmd/shopkeeper/cli"
	"github.com/shopkeeper-cli/shopkeeper/lib/shop"
)

// listParams holds the parameters for inventory list.
type listParams struct {
	cli.StoreConfig
	cli.JSONOutput
}

func listCommand() *cli.Command {
	var params listParams

	return &cli.Command{
		Name:    "list",
		Summary: "List all products in the inventory",
		Description: `List every stocked product with its id, name, unit price, and
stock on hand, in the order products were added.`,
		Usage: "shopkeeper inventory list [flags]",
		Examples: []cli.Example{
			{
				Description: "List the inventory",
				Command:     "shopkeeper inventory list",
			},
			{
				Description: "List a specific inventory file as JSON",
				Command:     "shopkeeper inventory list --inventory-file ./stock.csv --json",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("list", &params)
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}

			inventory, err := params.OpenInventory()
			if err != nil {
				return cli.Internal("open inventory: %w", err)
			}
			products := inventory.Products()

			if done, err := params.EmitJSON(products); done {
				return err
			}

			if len(products) == 0 {
				fmt.Fprintln(os.Stdout, "Inventory is empty.")
				return nil
			}

			writer := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(writer, "ID\tNAME\tPRICE\tSTOCK")
			for _, product := range products {
				fmt.Fprintf(writer, "%s\t%s\t%s\t%d\n",
					product.ID,
					product.Name,
					shop.FormatPrice(product.Price),
					product.Quantity,
				)
			}
			return writer.Flush()
		},
	}
}
