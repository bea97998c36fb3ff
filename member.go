package kirabuku

import (
	"strconv"

	"github.com/kelabsilat/kirabuku/date"
)

// Member is the identity record of a club member.
//
// Members are owned exclusively by the Store; payment records and
// transactions hold back-references by ID only, never pointers.
type Member struct {
	// ID is the unique identifier for the member (UUID format, except for
	// data imported from the legacy web application).
	ID string `json:"id"`

	// Name is the member's display name.
	Name string `json:"name"`

	// ICNumber is the national identity-card number.
	ICNumber string `json:"icNumber"`

	// MemberNumber is the club-assigned number. It is a numeric-sortable
	// string used as the display and sort key; the system does not enforce
	// its uniqueness.
	MemberNumber string `json:"memberNumber"`

	// Phone is the contact phone number.
	Phone string `json:"phone"`

	// JoinDate is the day the member joined the club. Months preceding it
	// carry no dues.
	JoinDate date.Date `json:"joinDate"`
}

// SortKey returns the member number as an integer for display ordering.
// Non-numeric member numbers sort first.
func (m Member) SortKey() int {
	n, err := strconv.Atoi(m.MemberNumber)
	if err != nil {
		return 0
	}
	return n
}
