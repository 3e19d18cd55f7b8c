// Copyright 2026 The Shopkeeper Authors
// SPDX-License-Identifier: Apache-2.0

package sales

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/pflag"

	"github.com/shopkeeper-cli/shopkeeper/cmd/shopkeeper/cli"
	"github.com/shopkeeper-cli/shopkeeper/lib/shop"
)

// recordParams holds the parameters for sales record.
type recordParams struct {
	cli.StoreConfig
	SaleID string   `flag:"sale-id" desc:"sale id (generated if omitted)"`
	Items  []string `flag:"item" desc:"line item as <product-id>:<quantity> (repeatable)"`
}

func recordCommand() *cli.Command {
	var params recordParams

	return &cli.Command{
		Name:    "record",
		Summary: "Record a completed sale",
		Description: `Record a sale of one or more line items. Every item is validated
against current stock before anything is written; the sale is then
appended to the ledger and the stock decremented in one step.

Repeated --item flags for the same product count against the same
stock. If --sale-id is omitted, a UUID is generated.`,
		Usage: "shopkeeper sales record --item <id>:<qty> [--item ...] [flags]",
		Examples: []cli.Example{
			{
				Description: "Sell 10 pens and 3 notebooks under a chosen id",
				Command:     "shopkeeper sales record --sale-id S042 --item P001:10 --item P002:3",
			},
			{
				Description: "Record with a generated sale id",
				Command:     "shopkeeper sales record --item P001:1",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("record", &params)
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}
			if len(params.Items) == 0 {
				return cli.Validation("at least one --item is required")
			}

			saleID := params.SaleID
			if saleID == "" {
				saleID = uuid.NewString()
			}

			inventory, ledger, err := params.OpenStores()
			if err != nil {
				return cli.Internal("open shop data: %w", err)
			}

			sale := shop.NewSale(saleID)
			for _, raw := range params.Items {
				productID, qty, err := parseItem(raw)
				if err != nil {
					return cli.Validation("bad --item %q: %v", raw, err)
				}
				product, ok := inventory.Get(productID)
				if !ok {
					return cli.NotFound("product %s not found", productID)
				}
				sale.AddItem(product, qty)
			}

			if err := shop.Checkout(inventory, ledger, sale); err != nil {
				switch {
				case errors.Is(err, shop.ErrInsufficientStock):
					return cli.Conflict("record sale: %w", err)
				case errors.Is(err, shop.ErrProductNotFound):
					return cli.NotFound("record sale: %w", err)
				default:
					return cli.Internal("record sale: %w", err)
				}
			}

			logger := cli.NewCommandLogger().With("command", "sales/record")
			logger.Info("sale recorded",
				"sale", sale.ID,
				"items", len(sale.Items),
				"total", sale.Total(),
			)

			fmt.Fprintf(os.Stdout, "Sale %s recorded: %d item(s), total %s\n",
				sale.ID, len(sale.Items), shop.FormatPrice(sale.Total()))
			return nil
		},
	}
}

// parseItem splits "<product-id>:<quantity>" into its parts. The
// quantity must be a positive integer.
func parseItem(raw string) (string, int, error) {
	productID, quantityText, found := strings.Cut(raw, ":")
	if !found || productID == "" {
		return "", 0, fmt.Errorf("want <product-id>:<quantity>")
	}
	qty, err := strconv.Atoi(quantityText)
	if err != nil {
		return "", 0, fmt.Errorf("quantity %q is not an integer", quantityText)
	}
	if qty <= 0 {
		return "", 0, fmt.Errorf("quantity must be positive, got %d", qty)
	}
	return productID, qty, nil
}
