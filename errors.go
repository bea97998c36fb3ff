package kirabuku

import "errors"

var (
	// ErrNotFound reports an operation referencing an id that is not in the
	// store.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput reports a rejected mutation: a non-positive amount, a
	// missing member reference on a fee-category entry, or an out-of-range
	// month.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDerivedImmutable reports an attempt to directly edit or delete a
	// transaction that was derived from a payment record.
	ErrDerivedImmutable = errors.New("transaction is derived from a payment record")

	// ErrBeforeJoin reports a payment toggle for a month preceding the
	// member's join date.
	ErrBeforeJoin = errors.New("month precedes the member's join date")
)
