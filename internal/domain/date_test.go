package domain

import (
	"testing"
	"time"
)

func TestDateAddDaysRollover(t *testing.T) {
	cases := []struct {
		name string
		in   Date
		n    int
		want Date
	}{
		{"month boundary", NewDate(2023, time.January, 31), 1, NewDate(2023, time.February, 1)},
		{"year boundary", NewDate(2023, time.December, 31), 1, NewDate(2024, time.January, 1)},
		{"leap day", NewDate(2024, time.February, 28), 1, NewDate(2024, time.February, 29)},
		{"non-leap february", NewDate(2023, time.February, 28), 1, NewDate(2023, time.March, 1)},
		{"century non-leap", NewDate(1900, time.February, 28), 1, NewDate(1900, time.March, 1)},
		{"backwards", NewDate(2023, time.March, 1), -1, NewDate(2023, time.February, 28)},
	}

	for _, tc := range cases {
		got := tc.in.AddDays(tc.n)
		if got != tc.want {
			t.Errorf("%s: %s + %d days = %s, want %s", tc.name, tc.in, tc.n, got, tc.want)
		}
	}
}

func TestDateDaysUntil(t *testing.T) {
	a := NewDate(2024, time.February, 27)
	b := NewDate(2024, time.March, 1)

	if got := a.DaysUntil(b); got != 3 {
		t.Errorf("DaysUntil across leap day = %d, want 3", got)
	}
	if got := b.DaysUntil(a); got != -3 {
		t.Errorf("reverse DaysUntil = %d, want -3", got)
	}
}

func TestDateOrdering(t *testing.T) {
	earlier := NewDate(2023, time.February, 1)
	later := NewDate(2023, time.February, 3)

	if !earlier.Before(later) {
		t.Error("expected earlier.Before(later)")
	}
	if !later.After(earlier) {
		t.Error("expected later.After(earlier)")
	}
	if earlier.Compare(earlier) != 0 {
		t.Error("expected Compare of equal dates to be 0")
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2023-02-08")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d != NewDate(2023, time.February, 8) {
		t.Fatalf("parsed %v, want 2023-02-08", d)
	}

	if _, err := ParseDate("08/02/2023"); err == nil {
		t.Fatal("expected error for non-ISO date")
	}
}
