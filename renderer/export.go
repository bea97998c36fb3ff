package renderer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/kelabsilat/kirabuku"
)

// ExportLedgerCSV writes the entries as CSV for spreadsheet use. Amounts
// are plain numbers, expenses negated, so a column sum gives the balance.
func ExportLedgerCSV(w io.Writer, entries []kirabuku.Transaction) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"date", "type", "category", "amount", "description", "member"}); err != nil {
		return fmt.Errorf("could not write CSV header: %w", err)
	}
	for _, t := range entries {
		amount := t.Amount
		if t.Type == kirabuku.Expense {
			amount = amount.Neg()
		}
		record := []string{
			t.Date.String(),
			string(t.Type),
			t.Category,
			strconv.FormatFloat(amount.AsFloat(), 'f', 2, 64),
			t.Description,
			t.MemberID,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("could not write CSV record: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportMatrixCSV writes the dues matrix as CSV, one member per row with a
// column per month.
func ExportMatrixCSV(w io.Writer, m *Matrix) error {
	cw := csv.NewWriter(w)
	header := append([]string{"number", "name"}, m.MonthHeads...)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("could not write CSV header: %w", err)
	}
	for _, row := range m.Rows {
		record := append([]string{row.Number, row.Name}, row.Cells...)
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("could not write CSV record: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
