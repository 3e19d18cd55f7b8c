// Copyright 2026 The Shopkeeper Authors
// SPDX-License-Identifier: Apache-2.0

package sales

import (
	"github.com/shopkeeper-cli/shopkeeper/cmd/shopkeeper/cli"
)

// Command returns the "sales" parent command with all subcommands.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "sales",
		Summary: "Record sales and view the ledger",
		Description: `Record completed sales against the inventory and browse the
append-only sales ledger.

Each recorded sale appends one ledger row per line item, tagged with
the sale id. Ledger rows are never rewritten or deleted. Stock is
decremented only after the sale is durably in the ledger, so a failed
recording never loses inventory.`,
		Subcommands: []*cli.Command{
			recordCommand(),
			reportCommand(),
		},
		Examples: []cli.Example{
			{
				Description: "Record a two-item sale",
				Command:     "shopkeeper sales record --sale-id S042 --item P001:10 --item P002:3",
			},
			{
				Description: "View the full sales history",
				Command:     "shopkeeper sales report",
			},
		},
	}
}
