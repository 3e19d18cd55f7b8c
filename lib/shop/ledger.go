// Copyright 2026 The Shopkeeper Authors
// SPDX-License-Identifier: Apache-2.0

package shop

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

// ErrNoLedger reports that the sales file does not exist yet. This is
// distinct from a present-but-empty ledger, which reads as zero
// entries with no error.
var ErrNoLedger = errors.New("no sales file")

// Entry is one persisted ledger row. A sale with three line items
// produces three entries sharing the same sale id.
type Entry struct {
	SaleID      string  `json:"sale_id"`
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	LineTotal   float64 `json:"line_total"`
}

// Ledger is the append-only record of completed sales. It holds only
// the file path; history lives on disk and is never accumulated in
// memory. Rows are never rewritten or deleted.
type Ledger struct {
	path string
}

// NewLedger returns a ledger backed by the file at path. The file is
// created lazily on the first recorded sale.
func NewLedger(path string) *Ledger {
	return &Ledger{path: path}
}

// Path returns the backing file path.
func (l *Ledger) Path() string { return l.path }

// Record appends one row per line item of sale, each prefixed with the
// sale id. The file only ever grows; partial rows are flushed and
// synced before Record returns.
func (l *Ledger) Record(sale *Sale) error {
	file, err := os.OpenFile(l.path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("opening sales file for append: %w", err)
	}

	writer := csv.NewWriter(file)
	for _, item := range sale.Items {
		writer.Write([]string{
			sale.ID,
			item.ProductID,
			item.ProductName,
			strconv.Itoa(item.Quantity),
			FormatPrice(item.LineTotal),
		})
	}
	writer.Flush()

	if err := writer.Error(); err != nil {
		file.Close()
		return fmt.Errorf("writing sales file: %w", err)
	}
	if err := file.Sync(); err != nil {
		file.Close()
		return fmt.Errorf("syncing sales file: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing sales file: %w", err)
	}
	return nil
}

// Entries reads the entire ledger in recorded order. A missing file
// returns ErrNoLedger; an existing empty file returns an empty slice.
// Callers that render history must keep those two conditions apart.
func (l *Ledger) Entries() ([]Entry, error) {
	file, err := os.Open(l.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", l.path, ErrNoLedger)
	}
	if err != nil {
		return nil, fmt.Errorf("opening sales file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = 5

	entries := []Entry{}
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("sales file %s: %w", l.path, err)
		}
		quantity, err := strconv.Atoi(row[3])
		if err != nil {
			return nil, fmt.Errorf("sales file %s: bad quantity %q: %w", l.path, row[3], err)
		}
		lineTotal, err := strconv.ParseFloat(row[4], 64)
		if err != nil {
			return nil, fmt.Errorf("sales file %s: bad line total %q: %w", l.path, row[4], err)
		}
		entries = append(entries, Entry{
			SaleID:      row[0],
			ProductID:   row[1],
			ProductName: row[2],
			Quantity:    quantity,
			LineTotal:   lineTotal,
		})
	}
	return entries, nil
}
