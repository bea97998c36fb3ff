package kirabuku

import (
	"slices"
	"strings"

	"github.com/kelabsilat/kirabuku/date"
)

// This file contains the derived views: stateless, read-only projections of
// the store. Every function here is a deterministic function of the current
// collections and mutates nothing.

// Totals is the dashboard headline: all-time income, expense and the
// running cash balance.
type Totals struct {
	Income  Money
	Expense Money
	Balance Money
}

// Totals sums the whole ledger.
func (s *Store) Totals() Totals {
	var in, out Money
	for _, t := range s.transactions {
		switch t.Type {
		case Income:
			in = in.Add(t.Amount)
		case Expense:
			out = out.Add(t.Amount)
		}
	}
	return Totals{Income: in, Expense: out, Balance: in.Sub(out)}
}

// MonthCashflow is one month's bucket of the yearly cashflow chart.
type MonthCashflow struct {
	Month   string
	Income  Money
	Expense Money
}

// MonthlyCashflow buckets the ledger of one calendar year into twelve
// income/expense totals, keyed by the transaction date.
func (s *Store) MonthlyCashflow(year int) []MonthCashflow {
	flow := make([]MonthCashflow, 12)
	for i := range flow {
		flow[i].Month = Months[i]
	}
	for _, t := range s.transactions {
		if t.Date.Year() != year {
			continue
		}
		b := &flow[t.Date.MonthIndex()]
		switch t.Type {
		case Income:
			b.Income = b.Income.Add(t.Amount)
		case Expense:
			b.Expense = b.Expense.Add(t.Amount)
		}
	}
	return flow
}

// DuesStats is a member's standing against the session target.
type DuesStats struct {
	PaidMonths  int
	Paid        Money
	Outstanding Money // floored at zero
}

// MemberDues computes how much of the session target a member has settled
// in the given year, at the given monthly fee.
func (s *Store) MemberDues(memberID string, year int, fee, target Money) DuesStats {
	months := 0
	for _, p := range s.payments {
		if p.MemberID == memberID && p.Year == year && p.Status == Paid {
			months++
		}
	}
	paid := fee.MulInt(months)
	outstanding := target.Sub(paid)
	if outstanding.IsNegative() {
		outstanding = RM(0)
	}
	return DuesStats{PaidMonths: months, Paid: paid, Outstanding: outstanding}
}

// PaymentStatus returns the dues status for the natural key, defaulting to
// Unpaid when no record exists yet.
func (s *Store) PaymentStatus(memberID string, month, year int) PaymentStatus {
	if p, ok := s.FindPaymentRecord(memberID, month, year); ok {
		return p.Status
	}
	return Unpaid
}

// SortedMembers returns the members ordered by their numeric member number,
// the display order of the payment matrix.
func (s *Store) SortedMembers() []Member {
	out := slices.Clone(s.members)
	slices.SortStableFunc(out, func(a, b Member) int { return a.SortKey() - b.SortKey() })
	return out
}

// TransactionFilter selects ledger entries; zero fields match everything.
type TransactionFilter struct {
	From     date.Date
	To       date.Date
	Type     TransactionType
	Category string
	MemberID string
	Query    string // free-text match on description and category
}

// FilterTransactions returns the ledger entries matching every set field of
// the filter, in ledger order.
func (s *Store) FilterTransactions(f TransactionFilter) []Transaction {
	var out []Transaction
	q := strings.ToLower(f.Query)
	for _, t := range s.transactions {
		if !f.From.IsZero() && t.Date.Before(f.From) {
			continue
		}
		if !f.To.IsZero() && t.Date.After(f.To) {
			continue
		}
		if f.Type != "" && t.Type != f.Type {
			continue
		}
		if f.Category != "" && t.Category != f.Category {
			continue
		}
		if f.MemberID != "" && t.MemberID != f.MemberID {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(t.Description), q) &&
			!strings.Contains(strings.ToLower(t.Category), q) {
			continue
		}
		out = append(out, t)
	}
	return out
}
