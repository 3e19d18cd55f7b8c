// Copyright 2026 The Shopkeeper Authors
// SPDX-License-Identifier: Apache-2.0

package shop

// Checkout durably records a completed sale and applies its stock
// decrements. The ledger append happens first: if it fails, the
// inventory is untouched and the operator can retry the whole sale.
// Only after the sale is durable are quantities decremented and the
// inventory persisted, in a single save.
//
// A sale with no items is a no-op: nothing is written and no sales
// file is created.
func Checkout(inventory *Inventory, ledger *Ledger, sale *Sale) error {
	if len(sale.Items) == 0 {
		return nil
	}
	if err := inventory.CheckSale(sale); err != nil {
		return err
	}
	if err := ledger.Record(sale); err != nil {
		return err
	}
	return inventory.ApplySale(sale)
}
