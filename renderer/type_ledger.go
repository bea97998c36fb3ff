package renderer

import (
	"github.com/kelabsilat/kirabuku"
)

// Ledger is the view model of a transaction listing.
type Ledger struct {
	Entries []LedgerRow
	Income  kirabuku.Money
	Expense kirabuku.Money
	Balance kirabuku.Money
}

// LedgerRow is one ledger entry, ready for display.
type LedgerRow struct {
	ID          string
	Date        string
	Type        string
	Category    string
	Amount      kirabuku.Money
	Description string
	Derived     bool
}

// NewLedger builds the listing view of the given entries, totalling only
// what is listed.
func NewLedger(entries []kirabuku.Transaction) *Ledger {
	l := &Ledger{}
	for _, t := range entries {
		l.Entries = append(l.Entries, LedgerRow{
			ID:          t.ID,
			Date:        t.Date.String(),
			Type:        string(t.Type),
			Category:    t.Category,
			Amount:      t.Amount,
			Description: t.Description,
			Derived:     t.IsDerived(),
		})
		switch t.Type {
		case kirabuku.Income:
			l.Income = l.Income.Add(t.Amount)
		case kirabuku.Expense:
			l.Expense = l.Expense.Add(t.Amount)
		}
	}
	l.Balance = l.Income.Sub(l.Expense)
	return l
}
