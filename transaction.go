package kirabuku

import (
	"github.com/kelabsilat/kirabuku/date"
)

// TransactionType distinguishes income from expense ledger entries.
type TransactionType string

const (
	Income  TransactionType = "IN"
	Expense TransactionType = "OUT"
)

// FeeCategory is the reserved category name denoting recurring membership
// dues income. Transactions in this category must reference a member.
const FeeCategory = "Yuran Bulanan"

// Transaction is a general-ledger entry.
//
// Ordinary entries are created, edited and deleted by the user. Entries
// carrying a PaymentKey are derived by the reconciliation engine from a
// payment record; they are retracted when the payment is toggled back to
// unpaid and are excluded from direct user edits.
type Transaction struct {
	// ID is the unique identifier for the transaction (UUID format, except
	// for data imported from the legacy web application).
	ID string `json:"id"`

	// Date is the day the transaction took place.
	Date date.Date `json:"date"`

	// Type is IN for income, OUT for expense.
	Type TransactionType `json:"type"`

	// Category is a free-text grouping; FeeCategory is reserved for dues.
	Category string `json:"category"`

	// Amount is the transaction amount, always non-negative; Type carries
	// the direction.
	Amount Money `json:"amount"`

	// Description is a human-readable note.
	Description string `json:"description"`

	// MemberID optionally back-references the member this entry concerns.
	MemberID string `json:"relatedMemberId,omitempty"`

	// Month optionally back-references the zero-based dues month.
	Month *int `json:"relatedMonth,omitempty"`

	// PaymentKey links an auto-generated fee entry to its payment record.
	// Present only on entries derived by the engine.
	PaymentKey string `json:"relatedPaymentId,omitempty"`
}

// IsDerived reports whether the transaction was auto-generated from a
// payment record and is therefore immutable to direct edits.
func (t Transaction) IsDerived() bool { return t.PaymentKey != "" }
