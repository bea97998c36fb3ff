package kirabuku

import "strings"

// Months holds the Malay month names in calendar order, indexed by the
// zero-based month used throughout the payment records.
var Months = [12]string{
	"Januari", "Februari", "Mac", "April", "Mei", "Jun",
	"Julai", "Ogos", "September", "Oktober", "November", "Disember",
}

// MonthName returns the display name for a zero-based month, or "" when the
// index is out of range.
func MonthName(month int) string {
	if month < 0 || month > 11 {
		return ""
	}
	return Months[month]
}

// ParseMonth resolves a month given either as a 1-12 number or as a Malay
// month name; a prefix is enough, so "jan", "Januari" and "1" all resolve
// to 0. It returns -1 when nothing matches.
func ParseMonth(s string) int {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return -1
	}
	// Numeric form is 1-based, like on a calendar.
	if n := atoi(s); n >= 1 && n <= 12 {
		return n - 1
	}
	for i, name := range Months {
		if strings.HasPrefix(strings.ToLower(name), s) {
			return i
		}
	}
	return -1
}

func atoi(s string) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return -1
		}
		n = n*10 + int(r-'0')
	}
	return n
}
