package util

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMonthsSince(t *testing.T) {
	cases := []struct {
		name string
		from time.Time
		now  time.Time
		want int
	}{
		{"same day", date(2024, time.March, 10), date(2024, time.March, 10), 0},
		{"one day short of a month", date(2024, time.March, 10), date(2024, time.April, 9), 0},
		{"exactly one month", date(2024, time.March, 10), date(2024, time.April, 10), 1},
		{"one year", date(2023, time.March, 10), date(2024, time.March, 10), 12},
		{"year boundary", date(2023, time.December, 15), date(2024, time.January, 20), 1},
		{"year boundary short", date(2023, time.December, 15), date(2024, time.January, 10), 0},
		{"two years three months", date(2022, time.January, 1), date(2024, time.April, 1), 27},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := MonthsSince(tc.from, tc.now); got != tc.want {
				t.Errorf("MonthsSince(%v, %v) = %d, want %d", tc.from, tc.now, got, tc.want)
			}
		})
	}
}
