package booking

import (
	"testing"
	"time"
)

func TestPeriodInMonths(t *testing.T) {
	cases := []struct {
		name       string
		start, end time.Time
		want       float64
	}{
		{
			// End day-of-month earlier than start: borrow one month and
			// express the 2 leftover days as a fraction of March's 31.
			name:  "borrow across month boundary",
			start: date(2024, time.January, 31),
			end:   date(2024, time.March, 2),
			want:  1.06,
		},
		{
			name:  "same day floors at one month",
			start: date(2024, time.May, 10),
			end:   date(2024, time.May, 10),
			want:  1,
		},
		{
			name:  "exact calendar month",
			start: date(2024, time.March, 15),
			end:   date(2024, time.April, 15),
			want:  1,
		},
		{
			// 14 extra days over leap-year February's 29.
			name:  "leap february fraction",
			start: date(2024, time.January, 15),
			end:   date(2024, time.February, 29),
			want:  1.48,
		},
		{
			// 15 extra days over July's 31.
			name:  "multi month with fraction",
			start: date(2024, time.June, 1),
			end:   date(2024, time.September, 16),
			want:  3.48,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := PeriodInMonths(tc.start, tc.end)
			if got != tc.want {
				t.Fatalf("PeriodInMonths(%s, %s) = %v, want %v",
					tc.start.Format(DateLayout), tc.end.Format(DateLayout), got, tc.want)
			}
		})
	}
}
