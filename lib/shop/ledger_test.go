// Copyright 2026 The Shopkeeper Authors
// SPDX-License-Identifier: Apache-2.0

package shop

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLedger_EntriesMissingFile(t *testing.T) {
	ledger := NewLedger(filepath.Join(t.TempDir(), "sales.csv"))

	_, err := ledger.Entries()
	if !errors.Is(err, ErrNoLedger) {
		t.Fatalf("Entries() error = %v, want ErrNoLedger", err)
	}
}

func TestLedger_EntriesEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sales.csv")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatalf("writing empty file: %v", err)
	}

	entries, err := NewLedger(path).Entries()
	if err != nil {
		t.Fatalf("Entries() error = %v, want nil for an empty file", err)
	}
	if len(entries) != 0 {
		t.Errorf("len(entries) = %d, want 0", len(entries))
	}
}

func TestLedger_RecordWritesOneRowPerItem(t *testing.T) {
	ledger := NewLedger(filepath.Join(t.TempDir(), "sales.csv"))

	sale := NewSale("S1")
	sale.AddItem(Product{ID: "P001", Name: "Pen", Price: 1.5}, 10)
	sale.AddItem(Product{ID: "P002", Name: "Notebook", Price: 3}, 2)
	if err := ledger.Record(sale); err != nil {
		t.Fatalf("Record() error: %v", err)
	}

	entries, err := ledger.Entries()
	if err != nil {
		t.Fatalf("Entries() error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}
	want := Entry{SaleID: "S1", ProductID: "P001", ProductName: "Pen", Quantity: 10, LineTotal: 15.0}
	if entries[0] != want {
		t.Errorf("entries[0] = %+v, want %+v", entries[0], want)
	}
	if entries[1].SaleID != "S1" || entries[1].ProductID != "P002" {
		t.Errorf("entries[1] = %+v", entries[1])
	}
}

func TestLedger_AppendOnlyAcrossSales(t *testing.T) {
	ledger := NewLedger(filepath.Join(t.TempDir(), "sales.csv"))

	itemCounts := []int{3, 1, 2}
	for i, count := range itemCounts {
		sale := NewSale("S" + string(rune('1'+i)))
		for j := 0; j < count; j++ {
			sale.AddItem(Product{ID: "P001", Name: "Pen", Price: 1.5}, 1)
		}
		if err := ledger.Record(sale); err != nil {
			t.Fatalf("Record(sale %d) error: %v", i, err)
		}
	}

	entries, err := ledger.Entries()
	if err != nil {
		t.Fatalf("Entries() error: %v", err)
	}
	if len(entries) != 6 {
		t.Fatalf("len(entries) = %d, want 6 (3+1+2)", len(entries))
	}

	// Each row carries its originating sale id, in recorded order.
	wantSales := []string{"S1", "S1", "S1", "S2", "S3", "S3"}
	for i, entry := range entries {
		if entry.SaleID != wantSales[i] {
			t.Errorf("entries[%d].SaleID = %s, want %s", i, entry.SaleID, wantSales[i])
		}
	}
}
