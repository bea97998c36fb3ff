package renderer

import (
	"github.com/kelabsilat/kirabuku"
)

// Dashboard is the view model of the financial overview.
type Dashboard struct {
	ClubName    string
	MemberCount int
	Totals      kirabuku.Totals
	Year        int
	Cashflow    []kirabuku.MonthCashflow
}

// NewDashboard builds the overview for one calendar year.
func NewDashboard(s *kirabuku.Store, clubName string, year int) *Dashboard {
	return &Dashboard{
		ClubName:    clubName,
		MemberCount: len(s.Members()),
		Totals:      s.Totals(),
		Year:        year,
		Cashflow:    s.MonthlyCashflow(year),
	}
}
