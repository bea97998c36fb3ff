package date

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2023-01-15", want: New(2023, time.January, 15)},
		{in: "2024-2-1", want: New(2024, time.February, 1)},
		{in: "2024-12-31", want: New(2024, time.December, 31)},
		{in: "15/01/2023", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range testCases {
		got, err := Parse(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("Parse(%q) = %v, want error", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q) unexpected error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestNormalization(t *testing.T) {
	// Overflowing days roll into the next month.
	got := New(2024, time.January, 32)
	want := New(2024, time.February, 1)
	if got != want {
		t.Errorf("New(2024, January, 32) = %v, want %v", got, want)
	}
	if got := New(2024, time.March, 1).Add(-1); got != New(2024, time.February, 29) {
		t.Errorf("Add(-1) across leap month = %v", got)
	}
}

func TestMonthIndex(t *testing.T) {
	if got := MustParse("2024-01-10").MonthIndex(); got != 0 {
		t.Errorf("MonthIndex() = %d, want 0", got)
	}
	if got := MustParse("2024-12-10").MonthIndex(); got != 11 {
		t.Errorf("MonthIndex() = %d, want 11", got)
	}
}

func TestBeforeAfter(t *testing.T) {
	a := MustParse("2023-05-20")
	b := MustParse("2023-05-21")
	if !a.Before(b) || b.Before(a) {
		t.Errorf("Before misordered %v, %v", a, b)
	}
	if !b.After(a) || a.After(b) {
		t.Errorf("After misordered %v, %v", a, b)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	d := MustParse("2023-01-15")
	raw, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(raw) != `"2023-01-15"` {
		t.Errorf("Marshal = %s, want %q", raw, "2023-01-15")
	}
	var back Date
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back != d {
		t.Errorf("round trip = %v, want %v", back, d)
	}
}
