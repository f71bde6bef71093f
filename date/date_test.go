package date

import (
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestParse(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{"2024-03-15", New(2024, time.March, 15), false},
		{"2024-3-5", New(2024, time.March, 5), false},
		{"2024-02-30", Date{}, true},
		{"15/03/2024", Date{}, true},
		{"", Date{}, true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Parse(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseInput(t *testing.T) {
	today := New(2024, time.March, 31)
	testCases := []struct {
		in   string
		want Date
	}{
		{"0d", today},
		{"-1d", New(2024, time.March, 30)},
		{"+1d", New(2024, time.April, 1)},
		{"-2w", New(2024, time.March, 17)},
		{"-1y", New(2023, time.March, 31)},
		{" 2024-01-02 ", New(2024, time.January, 2)},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseInput(tc.in, today)
			if err != nil {
				t.Fatalf("ParseInput(%q) unexpected error: %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("ParseInput(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}

	if _, err := ParseInput("yesterday", today); err == nil {
		t.Errorf("ParseInput(%q) expected an error", "yesterday")
	}
}

func TestDate_At(t *testing.T) {
	got := New(2024, time.January, 2).At(NewClock(10, 0, 0))
	want := time.Date(2024, time.January, 2, 10, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("At() = %v, want %v", got, want)
	}
}
