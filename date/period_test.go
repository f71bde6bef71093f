package date

import (
	"testing"
	"time"
)

func TestPeriod_Range(t *testing.T) {
	testCases := []struct {
		name   string
		period Period
		in     Date
		want   Range
	}{
		{"Day", Daily, New(2024, time.March, 20), Range{From: New(2024, time.March, 20), To: New(2024, time.March, 20)}},
		{"Week from a Wednesday", Weekly, New(2024, time.March, 20), Range{From: New(2024, time.March, 18), To: New(2024, time.March, 24)}},
		{"February of a leap year", Monthly, New(2024, time.February, 15), Range{From: New(2024, time.February, 1), To: New(2024, time.February, 29)}},
		{"Second quarter", Quarterly, New(2024, time.May, 20), Range{From: New(2024, time.April, 1), To: New(2024, time.June, 30)}},
		{"Year", Yearly, New(2024, time.March, 20), Range{From: New(2024, time.January, 1), To: New(2024, time.December, 31)}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.period.Range(tc.in); got != tc.want {
				t.Errorf("Range() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestRange_Period(t *testing.T) {
	testCases := []struct {
		name   string
		in     Range
		want   Period
		wantOK bool
	}{
		{"Single day", Range{From: New(2024, time.March, 20), To: New(2024, time.March, 20)}, Daily, true},
		{"Monday to Sunday", Range{From: New(2024, time.March, 18), To: New(2024, time.March, 24)}, Weekly, true},
		{"Whole month", Range{From: New(2024, time.March, 1), To: New(2024, time.March, 31)}, Monthly, true},
		{"Whole quarter", Range{From: New(2024, time.January, 1), To: New(2024, time.March, 31)}, Quarterly, true},
		{"Whole year", Range{From: New(2024, time.January, 1), To: New(2024, time.December, 31)}, Yearly, true},
		{"Custom span", Range{From: New(2024, time.March, 5), To: New(2024, time.March, 12)}, Daily, false},
		{"Month minus a day", Range{From: New(2024, time.March, 1), To: New(2024, time.March, 30)}, Daily, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := tc.in.Period()
			if got != tc.want || ok != tc.wantOK {
				t.Errorf("Period() = %v, %v, want %v, %v", got, ok, tc.want, tc.wantOK)
			}
		})
	}
}

func TestRange_Identifier(t *testing.T) {
	testCases := []struct {
		name string
		in   Range
		want string
	}{
		{"Day", Daily.Range(New(2024, time.March, 20)), "2024-03-20"},
		{"Week", Weekly.Range(New(2024, time.March, 20)), "2024-W12"},
		{"Week counted in the next ISO year", Weekly.Range(New(2024, time.December, 31)), "2025-W01"},
		{"Month", Monthly.Range(New(2024, time.March, 20)), "2024-03"},
		{"Quarter", Quarterly.Range(New(2024, time.August, 1)), "2024-Q3"},
		{"Year", Yearly.Range(New(2024, time.March, 20)), "2024"},
		{"Custom span", Range{From: New(2024, time.March, 5), To: New(2024, time.March, 12)}, "2024-03-05_2024-03-12"},
		{"Two years", Range{From: New(2023, time.January, 1), To: New(2024, time.December, 31)}, "2023-01-01_2024-12-31"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.Identifier(); got != tc.want {
				t.Errorf("Identifier() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestParsePeriod(t *testing.T) {
	testCases := []struct {
		name    string
		in      string
		want    Period
		wantErr bool
	}{
		{"Daily", "daily", Daily, false},
		{"Weekly", "weekly", Weekly, false},
		{"Monthly", "monthly", Monthly, false},
		{"Quarterly", "quarterly", Quarterly, false},
		{"Yearly", "yearly", Yearly, false},
		{"Unknown", "unknown", Daily, true},
		{"Daily", "day", Daily, false},
		{"Weekly", "week", Weekly, false},
		{"Monthly", "month", Monthly, false},
		{"Quarterly", "quarter", Quarterly, false},
		{"Yearly", "year", Yearly, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParsePeriod(tc.in)
			if (err != nil) != tc.wantErr {
				t.Errorf("ParsePeriod() error = %v, wantErr %v", err, tc.wantErr)
				return
			}
			if got != tc.want {
				t.Errorf("ParsePeriod() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestPeriod_Previous(t *testing.T) {
	testCases := []struct {
		name   string
		period Period
		in     Date
		want   Range
	}{
		{
			name:   "Previous month from the first day",
			period: Monthly,
			in:     New(2024, time.March, 1),
			want:   Range{From: New(2024, time.February, 1), To: New(2024, time.February, 29)},
		},
		{
			name:   "Previous month across a year boundary",
			period: Monthly,
			in:     New(2025, time.January, 31),
			want:   Range{From: New(2024, time.December, 1), To: New(2024, time.December, 31)},
		},
		{
			name:   "Previous year",
			period: Yearly,
			in:     New(2025, time.July, 14),
			want:   Range{From: New(2024, time.January, 1), To: New(2024, time.December, 31)},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.period.Previous(tc.in); got != tc.want {
				t.Errorf("Previous() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestRange_Contains(t *testing.T) {
	r := Monthly.Range(New(2024, time.March, 20))
	for _, d := range []Date{New(2024, time.March, 1), New(2024, time.March, 31)} {
		if !r.Contains(d) {
			t.Errorf("%v.Contains(%v) = false, want true", r, d)
		}
	}
	for _, d := range []Date{New(2024, time.February, 29), New(2024, time.April, 1)} {
		if r.Contains(d) {
			t.Errorf("%v.Contains(%v) = true, want false", r, d)
		}
	}
}
