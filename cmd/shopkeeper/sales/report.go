// Copyright 2026 The Shopkeeper Authors
// SPDX-License-Identifier: Apache-2.0

package sales

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/shopkeeper-cli/shopkeeper/cmd/shopkeeper/cli"
	"github.com/shopkeeper-cli/shopkeeper/lib/shop"
)

// reportParams holds the parameters for sales report.
type reportParams struct {
	cli.StoreConfig
	cli.JSONOutput
}

func reportCommand() *cli.Command {
	var params reportParams

	return &cli.Command{
		Name:    "report",
		Summary: "View the full sales history",
		Description: `Render every recorded ledger row in recorded order. A sale with
three line items appears as three rows sharing the same sale id.

A shop that has never recorded a sale has no sales file at all; that
is reported distinctly from a sales file with no rows.`,
		Usage: "shopkeeper sales report [flags]",
		Examples: []cli.Example{
			{
				Description: "View the sales history",
				Command:     "shopkeeper sales report",
			},
			{
				Description: "Export the history as JSON",
				Command:     "shopkeeper sales report --json",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("report", &params)
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}

			ledger, err := params.OpenLedger()
			if err != nil {
				return cli.Internal("open ledger: %w", err)
			}

			entries, err := ledger.Entries()
			ledgerMissing := errors.Is(err, shop.ErrNoLedger)
			if err != nil && !ledgerMissing {
				return cli.Internal("read ledger: %w", err)
			}

			if done, err := params.EmitJSON(entries); done {
				return err
			}

			if ledgerMissing {
				fmt.Fprintln(os.Stdout, "Sales file not found.")
				return nil
			}
			if len(entries) == 0 {
				fmt.Fprintln(os.Stdout, "No sales recorded yet.")
				return nil
			}

			writer := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(writer, "SALE ID\tPRODUCT ID\tNAME\tQTY\tTOTAL")
			for _, entry := range entries {
				fmt.Fprintf(writer, "%s\t%s\t%s\t%d\t%s\n",
					entry.SaleID,
					entry.ProductID,
					entry.ProductName,
					entry.Quantity,
					shop.FormatPrice(entry.LineTotal),
				)
			}
			return writer.Flush()
		},
	}
}
