package kirabuku

import (
	"slices"
	"strings"
)

// Store holds the three collections and is the single source of truth for
// the club's books. It is pure storage plus lookup: every cascading rule
// lives in the Engine.
//
// In a Store, members and transactions keep their insertion order; derived
// views sort on demand.
type Store struct {
	members      []Member
	payments     []PaymentRecord
	transactions []Transaction
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		members:      make([]Member, 0),
		payments:     make([]PaymentRecord, 0),
		transactions: make([]Transaction, 0),
	}
}

// Members returns a copy of the member collection.
func (s *Store) Members() []Member { return slices.Clone(s.members) }

// Payments returns a copy of the payment-record collection.
func (s *Store) Payments() []PaymentRecord { return slices.Clone(s.payments) }

// Transactions returns a copy of the transaction collection.
func (s *Store) Transactions() []Transaction { return slices.Clone(s.transactions) }

// Member returns the member with this id, or nil if unknown.
func (s *Store) Member(id string) *Member {
	for i := range s.members {
		if s.members[i].ID == id {
			m := s.members[i]
			return &m
		}
	}
	return nil
}

// memberIndex returns the position of the member with this id, or -1.
func (s *Store) memberIndex(id string) int {
	return slices.IndexFunc(s.members, func(m Member) bool { return m.ID == id })
}

// FindPaymentRecord returns the record matching the natural key
// (memberID, month, year), if any. Callers must look here before inserting
// so that no two records ever share a key.
func (s *Store) FindPaymentRecord(memberID string, month, year int) (PaymentRecord, bool) {
	if i := s.paymentIndex(memberID, month, year); i >= 0 {
		return s.payments[i], true
	}
	return PaymentRecord{}, false
}

// paymentIndex returns the position of the record with this natural key, or -1.
func (s *Store) paymentIndex(memberID string, month, year int) int {
	return slices.IndexFunc(s.payments, func(p PaymentRecord) bool {
		return p.MemberID == memberID && p.Month == month && p.Year == year
	})
}

// Transaction returns the transaction with this id, or nil if unknown.
func (s *Store) Transaction(id string) *Transaction {
	if i := s.transactionIndex(id); i >= 0 {
		t := s.transactions[i]
		return &t
	}
	return nil
}

// transactionIndex returns the position of the transaction with this id, or -1.
func (s *Store) transactionIndex(id string) int {
	return slices.IndexFunc(s.transactions, func(t Transaction) bool { return t.ID == id })
}

// TransactionsReferencing returns every transaction back-referencing this
// member, either directly or through a payment-link key.
func (s *Store) TransactionsReferencing(memberID string) []Transaction {
	var out []Transaction
	for _, t := range s.transactions {
		if t.MemberID == memberID || strings.HasPrefix(t.PaymentKey, memberID+"-") {
			out = append(out, t)
		}
	}
	return out
}

// TransactionsByPaymentKey returns every transaction carrying this
// payment-link key. A consistent store holds at most one.
func (s *Store) TransactionsByPaymentKey(key string) []Transaction {
	var out []Transaction
	for _, t := range s.transactions {
		if t.PaymentKey == key {
			out = append(out, t)
		}
	}
	return out
}
