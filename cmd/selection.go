package cmd

import (
	"errors"
	"flag"
	"fmt"

	"github.com/etnz/cashbook"
	"github.com/etnz/cashbook/date"
)

// rangeFlags selects the dates of a report.
type rangeFlags struct {
	month  string
	year   string
	period string
	start  string
	end    string
}

func (r *rangeFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&r.month, "month", "", "Calendar month: 'current' or 'previous'.")
	f.StringVar(&r.year, "year", "", "Calendar year: 'current' or 'previous'.")
	f.StringVar(&r.period, "p", "", "Predefined period (day, week, month, quarter, year) ending on -d.")
	f.StringVar(&r.start, "s", "", "The start date for a custom range. Overrides -p.")
	f.StringVar(&r.end, "d", "", "The end date for -p or -s. Defaults to today.")
}

// Range returns the selected range, relative to today. ok is false when no
// range was selected.
func (r *rangeFlags) Range(today date.Date) (rng date.Range, ok bool, err error) {
	custom := r.period != "" || r.start != "" || r.end != ""
	n := 0
	for _, set := range []bool{r.month != "", r.year != "", custom} {
		if set {
			n++
		}
	}
	switch {
	case n > 1:
		return rng, false, errors.New("-month, -year and -p/-s/-d cannot be used together")
	case r.month != "":
		current, err := parseSelector(r.month)
		if err != nil {
			return rng, false, fmt.Errorf("invalid -month: %w", err)
		}
		return cashbook.MonthRange(today, current), true, nil
	case r.year != "":
		current, err := parseSelector(r.year)
		if err != nil {
			return rng, false, fmt.Errorf("invalid -year: %w", err)
		}
		return cashbook.YearRange(today, current), true, nil
	case !custom:
		return rng, false, nil
	}

	end := today
	if r.end != "" {
		if end, err = date.ParseInput(r.end, today); err != nil {
			return rng, false, fmt.Errorf("error parsing end date: %w", err)
		}
	}
	if r.start != "" {
		start, err := date.ParseInput(r.start, today)
		if err != nil {
			return rng, false, fmt.Errorf("error parsing start date: %w", err)
		}
		if start.After(end) {
			return rng, false, fmt.Errorf("start date %s is after end date %s", start, end)
		}
		return date.Range{From: start, To: end}, true, nil
	}
	if r.period == "" {
		return date.Range{From: end, To: end}, true, nil
	}
	period, err := date.ParsePeriod(r.period)
	if err != nil {
		return rng, false, err
	}
	return period.Range(end), true, nil
}

// parseSelector reads 'current' or 'previous'.
func parseSelector(s string) (current bool, err error) {
	switch s {
	case "current":
		return true, nil
	case "previous":
		return false, nil
	default:
		return false, fmt.Errorf("%q is neither 'current' nor 'previous'", s)
	}
}
