package date

import "fmt"

// Range is an inclusive span of days, as selected by report and tx filters.
type Range struct{ From, To Date }

// Contains reports whether d falls within r, both ends included.
func (r Range) Contains(d Date) bool { return !d.Before(r.From) && !d.After(r.To) }

// Period returns the calendar period r covers exactly, if any.
// A single day is always Daily.
func (r Range) Period() (Period, bool) {
	for _, p := range []Period{Daily, Weekly, Monthly, Quarterly, Yearly} {
		if p.Range(r.From) == r {
			return p, true
		}
	}
	return Daily, false
}

// Identifier names r in report titles: "2024-03" for a month, "2024-Q1" for
// a quarter, and "from_to" when r is not a calendar period.
func (r Range) Identifier() string {
	p, ok := r.Period()
	if !ok {
		return r.From.String() + "_" + r.To.String()
	}
	switch p {
	case Weekly:
		year, week := r.From.ISOWeek()
		return fmt.Sprintf("%d-W%02d", year, week)
	case Monthly:
		return r.From.Format("2006-01")
	case Quarterly:
		return fmt.Sprintf("%d-Q%d", r.From.Year(), (r.From.Month()-1)/3+1)
	case Yearly:
		return r.From.Format("2006")
	default:
		return r.From.String()
	}
}
