package kirabuku

import (
	"errors"
	"fmt"
)

// CheckInvariants audits the store against the consistency rules the engine
// maintains, assuming the default fee category. It returns every violation
// found, joined, or nil for a clean store. Engines with a configured
// category audit through Engine.CheckInvariants instead.
//
// The rules:
//   - at most one payment record per (member, month, year)
//   - a PAID record has exactly one linked ledger entry, an UNPAID one has none
//   - no payment record or transaction references a missing member
//   - a payment-linked entry is fee income pointing back at its member
func (s *Store) CheckInvariants() error {
	return s.checkInvariants(FeeCategory)
}

func (s *Store) checkInvariants(feeCategory string) error {
	var errs []error

	seen := make(map[string]bool, len(s.payments))
	for _, p := range s.payments {
		key := p.Key()
		if seen[key] {
			errs = append(errs, fmt.Errorf("duplicate payment record for %s", key))
		}
		seen[key] = true

		if s.Member(p.MemberID) == nil {
			errs = append(errs, fmt.Errorf("payment record %s references missing member %q", key, p.MemberID))
		}

		linked := len(s.TransactionsByPaymentKey(key))
		switch p.Status {
		case Paid:
			if linked != 1 {
				errs = append(errs, fmt.Errorf("paid month %s has %d linked entries, want 1", key, linked))
			}
		case Unpaid:
			if linked != 0 {
				errs = append(errs, fmt.Errorf("unpaid month %s still has %d linked entries", key, linked))
			}
		default:
			errs = append(errs, fmt.Errorf("payment record %s has unknown status %q", key, p.Status))
		}
	}

	for _, t := range s.transactions {
		if t.MemberID != "" && s.Member(t.MemberID) == nil {
			errs = append(errs, fmt.Errorf("transaction %q references missing member %q", t.ID, t.MemberID))
		}
		if t.IsDerived() {
			if t.Type != Income || t.Category != feeCategory {
				errs = append(errs, fmt.Errorf("payment-linked transaction %q is not fee income", t.ID))
			}
			if t.MemberID == "" {
				errs = append(errs, fmt.Errorf("payment-linked transaction %q lost its member reference", t.ID))
			}
		}
		if t.Amount.IsNegative() {
			errs = append(errs, fmt.Errorf("transaction %q has negative amount %s", t.ID, t.Amount))
		}
	}

	return errors.Join(errs...)
}
