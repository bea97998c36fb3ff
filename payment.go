package kirabuku

import (
	"fmt"
	"time"
)

// PaymentStatus is the paid/unpaid state of one member for one month.
type PaymentStatus string

const (
	Paid   PaymentStatus = "PAID"
	Unpaid PaymentStatus = "UNPAID"
)

// PaymentRecord tracks the dues status of one member for one (month, year)
// pair. Its natural key is (MemberID, Month, Year): the engine guarantees at
// most one record per key.
//
// Records are created lazily on the first "mark paid" action and are never
// deleted individually, only through the member cascade. Their status may
// toggle between PAID and UNPAID any number of times.
type PaymentRecord struct {
	// MemberID is a weak reference to the member owing the dues.
	MemberID string `json:"memberId"`

	// Year is the calendar year of the dues month.
	Year int `json:"year"`

	// Month is the zero-based month (January = 0 .. December = 11).
	Month int `json:"month"`

	// Amount is the dues amount, fixed at the monthly fee in force when the
	// record was created.
	Amount Money `json:"amount"`

	// PaidDate is the moment the record was last marked paid.
	PaidDate time.Time `json:"paidDate"`

	// Status is PAID or UNPAID.
	Status PaymentStatus `json:"status"`
}

// Key returns the payment-link key of the record.
func (p PaymentRecord) Key() string {
	return PaymentKey(p.MemberID, p.Month, p.Year)
}

// PaymentKey derives the stable payment-link key tying an auto-generated
// ledger entry to its payment record. The encoding matches the legacy web
// application: "memberID-month-year" with the zero-based month.
func PaymentKey(memberID string, month, year int) string {
	return fmt.Sprintf("%s-%d-%d", memberID, month, year)
}
