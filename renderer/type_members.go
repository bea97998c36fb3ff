package renderer

import (
	"github.com/kelabsilat/kirabuku"
)

// MemberList is the view model of the member roster with the year's dues
// standing.
type MemberList struct {
	Year int
	Rows []MemberRow
}

// MemberRow is one member's line in the roster.
type MemberRow struct {
	ID       string
	Number   string
	Name     string
	ICNumber string
	Phone    string
	JoinDate string
	Dues     kirabuku.DuesStats
}

// NewMemberList builds the roster in member-number order.
func NewMemberList(s *kirabuku.Store, year int, fee, target kirabuku.Money) *MemberList {
	ml := &MemberList{Year: year}
	for _, m := range s.SortedMembers() {
		ml.Rows = append(ml.Rows, MemberRow{
			ID:       m.ID,
			Number:   m.MemberNumber,
			Name:     m.Name,
			ICNumber: m.ICNumber,
			Phone:    m.Phone,
			JoinDate: m.JoinDate.String(),
			Dues:     s.MemberDues(m.ID, year, fee, target),
		})
	}
	return ml
}
