// Copyright 2026 The Shopkeeper Authors
// SPDX-License-Identifier: Apache-2.0

package shop

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopkeeper-cli/shopkeeper/lib/shop"
)

// runSession scripts one operator session against fresh stores and
// returns the transcript plus the stores for post-session assertions.
func runSession(t *testing.T, input string) (string, *shop.Inventory, *shop.Ledger) {
	t.Helper()
	directory := t.TempDir()

	inventory, err := shop.Open(filepath.Join(directory, "inventory.csv"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	ledger := shop.NewLedger(filepath.Join(directory, "sales.csv"))

	var output bytes.Buffer
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	menu := NewMenu(strings.NewReader(input), &output, inventory, ledger, logger)
	if err := menu.Run(); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	return output.String(), inventory, ledger
}

func TestMenu_ExitAndInvalidChoice(t *testing.T) {
	transcript, _, _ := runSession(t, "9\n5\n")

	if !strings.Contains(transcript, "Invalid choice. Please try again.") {
		t.Errorf("transcript missing invalid-choice message:\n%s", transcript)
	}
	if !strings.Contains(transcript, "Exiting... Goodbye!") {
		t.Errorf("transcript missing farewell:\n%s", transcript)
	}
	// The menu is re-displayed after the invalid choice.
	if got := strings.Count(transcript, "--- Small Shop Management System ---"); got != 2 {
		t.Errorf("menu shown %d times, want 2", got)
	}
}

func TestMenu_EOFEndsSession(t *testing.T) {
	transcript, _, _ := runSession(t, "")
	if !strings.Contains(transcript, "Enter your choice: ") {
		t.Errorf("transcript missing prompt:\n%s", transcript)
	}
}

func TestMenu_AddProductAndViewInventory(t *testing.T) {
	input := strings.Join([]string{
		"2", "P001", "Pen", "1.50", "100",
		"1",
		"5",
	}, "\n") + "\n"

	transcript, inventory, _ := runSession(t, input)

	if !strings.Contains(transcript, "Product added successfully!") {
		t.Fatalf("transcript missing add confirmation:\n%s", transcript)
	}
	for _, want := range []string{"P001", "Pen", "1.5", "100"} {
		if !strings.Contains(transcript, want) {
			t.Errorf("inventory view missing %q:\n%s", want, transcript)
		}
	}

	got, ok := inventory.Get("P001")
	if !ok || got.Quantity != 100 || got.Price != 1.5 {
		t.Errorf("stored product = %+v", got)
	}
}

func TestMenu_AddDuplicateProduct(t *testing.T) {
	input := strings.Join([]string{
		"2", "P001", "Pen", "1.50", "100",
		"2", "P001", "Pencil", "0.50", "10",
		"5",
	}, "\n") + "\n"

	transcript, inventory, _ := runSession(t, input)

	if !strings.Contains(transcript, "Product ID already exists.") {
		t.Fatalf("transcript missing duplicate message:\n%s", transcript)
	}
	got, _ := inventory.Get("P001")
	if got.Name != "Pen" || got.Price != 1.5 || got.Quantity != 100 {
		t.Errorf("original product changed by duplicate add: %+v", got)
	}
}

func TestMenu_AddProductRepromptsOnBadNumber(t *testing.T) {
	input := strings.Join([]string{
		"2", "P001", "Pen", "cheap", "1.50", "many", "100",
		"5",
	}, "\n") + "\n"

	transcript, inventory, _ := runSession(t, input)

	if !strings.Contains(transcript, "Please enter a number.") {
		t.Errorf("transcript missing price re-prompt:\n%s", transcript)
	}
	if !strings.Contains(transcript, "Please enter a whole number.") {
		t.Errorf("transcript missing quantity re-prompt:\n%s", transcript)
	}
	if !strings.Contains(transcript, "Product added successfully!") {
		t.Errorf("product not added after re-prompts:\n%s", transcript)
	}
	if got, _ := inventory.Get("P001"); got.Quantity != 100 {
		t.Errorf("stored product = %+v", got)
	}
}

func TestMenu_ProcessSaleHappyPath(t *testing.T) {
	input := strings.Join([]string{
		"2", "P001", "Pen", "1.50", "100",
		"3", "S1", "P001", "10", "done",
		"5",
	}, "\n") + "\n"

	transcript, inventory, ledger := runSession(t, input)

	if !strings.Contains(transcript, "Sale S1 recorded successfully.") {
		t.Fatalf("transcript missing sale confirmation:\n%s", transcript)
	}

	if got, _ := inventory.Get("P001"); got.Quantity != 90 {
		t.Errorf("P001 quantity = %d, want 90", got.Quantity)
	}

	entries, err := ledger.Entries()
	if err != nil {
		t.Fatalf("Entries() error: %v", err)
	}
	want := shop.Entry{SaleID: "S1", ProductID: "P001", ProductName: "Pen", Quantity: 10, LineTotal: 15.0}
	if len(entries) != 1 || entries[0] != want {
		t.Errorf("ledger entries = %+v, want exactly [%+v]", entries, want)
	}
}

func TestMenu_SaleRejectsUnknownProductAndKeepsGoing(t *testing.T) {
	input := strings.Join([]string{
		"2", "P001", "Pen", "1.50", "100",
		"3", "S1", "P404", "P001", "10", "done",
		"5",
	}, "\n") + "\n"

	transcript, inventory, _ := runSession(t, input)

	if !strings.Contains(transcript, "Product not found.") {
		t.Errorf("transcript missing not-found message:\n%s", transcript)
	}
	if !strings.Contains(transcript, "Sale S1 recorded successfully.") {
		t.Errorf("sale not recorded after recovering:\n%s", transcript)
	}
	if got, _ := inventory.Get("P001"); got.Quantity != 90 {
		t.Errorf("P001 quantity = %d, want 90", got.Quantity)
	}
}

func TestMenu_SaleRejectsInsufficientStock(t *testing.T) {
	input := strings.Join([]string{
		"2", "P001", "Pen", "1.50", "90",
		"3", "S1", "P001", "150", "done",
		"5",
	}, "\n") + "\n"

	transcript, inventory, ledger := runSession(t, input)

	if !strings.Contains(transcript, "Not enough stock available.") {
		t.Errorf("transcript missing stock message:\n%s", transcript)
	}
	if got, _ := inventory.Get("P001"); got.Quantity != 90 {
		t.Errorf("P001 quantity = %d, want 90 (unchanged)", got.Quantity)
	}
	if _, err := ledger.Entries(); err == nil {
		t.Error("ledger file exists after a sale with no accepted items")
	}
}

func TestMenu_SaleCountsPendingItemsAgainstStock(t *testing.T) {
	// 10 in stock: 6 accepted, another 6 must be rejected, 4 accepted.
	input := strings.Join([]string{
		"2", "P001", "Pen", "1.50", "10",
		"3", "S1", "P001", "6", "P001", "6", "P001", "4", "done",
		"5",
	}, "\n") + "\n"

	transcript, inventory, ledger := runSession(t, input)

	if !strings.Contains(transcript, "Not enough stock available.") {
		t.Errorf("second item not rejected against pending quantity:\n%s", transcript)
	}
	if got, _ := inventory.Get("P001"); got.Quantity != 0 {
		t.Errorf("P001 quantity = %d, want 0", got.Quantity)
	}
	entries, err := ledger.Entries()
	if err != nil {
		t.Fatalf("Entries() error: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("len(entries) = %d, want 2 accepted items", len(entries))
	}
}

func TestMenu_EmptySaleIsDiscarded(t *testing.T) {
	input := strings.Join([]string{
		"3", "S1", "done",
		"4",
		"5",
	}, "\n") + "\n"

	transcript, _, ledger := runSession(t, input)

	if !strings.Contains(transcript, "Sale S1 discarded (no items).") {
		t.Errorf("transcript missing discard message:\n%s", transcript)
	}
	// No sales file was ever created, so the report says so.
	if !strings.Contains(transcript, "Sales file not found.") {
		t.Errorf("transcript missing not-found report:\n%s", transcript)
	}
	if _, err := ledger.Entries(); err == nil {
		t.Error("ledger file created by a discarded sale")
	}
}

func TestMenu_BlankSaleIDGetsGenerated(t *testing.T) {
	input := strings.Join([]string{
		"2", "P001", "Pen", "1.50", "100",
		"3", "", "P001", "1", "done",
		"5",
	}, "\n") + "\n"

	transcript, _, ledger := runSession(t, input)

	if !strings.Contains(transcript, "Using generated sale ID ") {
		t.Fatalf("transcript missing generated-id notice:\n%s", transcript)
	}
	entries, err := ledger.Entries()
	if err != nil {
		t.Fatalf("Entries() error: %v", err)
	}
	if len(entries) != 1 || entries[0].SaleID == "" {
		t.Errorf("ledger entries = %+v", entries)
	}
}

func TestMenu_SalesReportDistinguishesMissingFromEmpty(t *testing.T) {
	// Fresh shop: no sales file at all.
	transcript, _, ledger := runSession(t, "4\n5\n")
	if !strings.Contains(transcript, "Sales file not found.") {
		t.Errorf("transcript missing not-found report:\n%s", transcript)
	}

	// An existing but empty file reads as "no sales yet".
	if err := os.WriteFile(ledger.Path(), nil, 0o644); err != nil {
		t.Fatalf("creating empty sales file: %v", err)
	}
	var output bytes.Buffer
	inventory, err := shop.Open(filepath.Join(t.TempDir(), "inventory.csv"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	menu := NewMenu(strings.NewReader("4\n5\n"), &output, inventory, ledger, logger)
	if err := menu.Run(); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if !strings.Contains(output.String(), "No sales recorded yet.") {
		t.Errorf("transcript missing empty-ledger report:\n%s", output.String())
	}
}

func TestMenu_SalesReportShowsRecordedRows(t *testing.T) {
	input := strings.Join([]string{
		"2", "P001", "Pen", "1.50", "100",
		"3", "S1", "P001", "10", "done",
		"4",
		"5",
	}, "\n") + "\n"

	transcript, _, _ := runSession(t, input)

	for _, want := range []string{"SALE ID", "S1", "P001", "Pen", "10", "15"} {
		if !strings.Contains(transcript, want) {
			t.Errorf("sales report missing %q:\n%s", want, transcript)
		}
	}
}
