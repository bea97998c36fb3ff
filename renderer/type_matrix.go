package renderer

import (
	"github.com/kelabsilat/kirabuku"
)

// Cell markers of the dues matrix.
const (
	cellPaid       = "✓"
	cellUnpaid     = "·"
	cellBeforeJoin = " "
)

// Matrix is the view model of the member-by-month dues matrix.
type Matrix struct {
	Year       int
	Target     kirabuku.Money
	MonthHeads []string
	Rows       []MatrixRow
}

// MatrixRow is one member's line in the matrix.
type MatrixRow struct {
	Number string
	Name   string
	Cells  []string
	Dues   kirabuku.DuesStats
}

// NewMatrix builds the dues matrix for one calendar year, members in
// member-number order.
func NewMatrix(s *kirabuku.Store, year int, fee, target kirabuku.Money) *Matrix {
	m := &Matrix{Year: year, Target: target}
	for _, name := range kirabuku.Months {
		m.MonthHeads = append(m.MonthHeads, name[:3])
	}
	for _, member := range s.SortedMembers() {
		row := MatrixRow{
			Number: member.MemberNumber,
			Name:   member.Name,
			Cells:  make([]string, 12),
			Dues:   s.MemberDues(member.ID, year, fee, target),
		}
		for month := range row.Cells {
			switch {
			case year < member.JoinDate.Year() ||
				(year == member.JoinDate.Year() && month < member.JoinDate.MonthIndex()):
				row.Cells[month] = cellBeforeJoin
			case s.PaymentStatus(member.ID, month, year) == kirabuku.Paid:
				row.Cells[month] = cellPaid
			default:
				row.Cells[month] = cellUnpaid
			}
		}
		m.Rows = append(m.Rows, row)
	}
	return m
}
