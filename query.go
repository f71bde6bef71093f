package cashbook

import (
	"cmp"
	"slices"
	"strings"

	"github.com/etnz/cashbook/date"
)

// Skip is a transaction left out of a Selection because its date could not be
// read.
type Skip struct {
	Transaction Transaction
	Err         error
}

// Selection is the result of a date based filter: the transactions in the
// range, in input order, and the ones that could not be placed.
type Selection struct {
	Transactions []Transaction
	Skipped      []Skip
}

// compareChronological orders transactions by date, then by time of day.
//
// An unreadable date comes before every readable one. Within the same day an
// unreadable or blank time comes before every readable one. Two unreadable
// values are compared by their text.
func compareChronological(a, b Transaction) int {
	da, errA := a.Day()
	db, errB := b.Day()
	switch {
	case errA != nil && errB != nil:
		return strings.Compare(a.Date+a.Time, b.Date+b.Time)
	case errA != nil:
		return -1
	case errB != nil:
		return 1
	case da.Before(db):
		return -1
	case da.After(db):
		return 1
	}
	ca, errA := a.Clock()
	cb, errB := b.Clock()
	switch {
	case errA != nil && errB != nil:
		return strings.Compare(a.Time, b.Time)
	case errA != nil:
		return -1
	case errB != nil:
		return 1
	}
	return cmp.Compare(seconds(ca), seconds(cb))
}

func seconds(c date.Clock) int { return c.Hour()*3600 + c.Minute()*60 + c.Second() }

// SortByRecency returns a copy of list ordered by date and time, most recent
// first. The sort is stable.
func SortByRecency(list []Transaction) []Transaction {
	sorted := slices.Clone(list)
	slices.SortStableFunc(sorted, func(a, b Transaction) int { return compareChronological(b, a) })
	return sorted
}

// FilterBySign returns the deposits in list if wantDeposits is true, the
// payments otherwise. Transactions with a zero amount are neither.
func FilterBySign(list []Transaction, wantDeposits bool) []Transaction {
	var kept []Transaction
	for _, tx := range list {
		if (wantDeposits && tx.IsDeposit()) || (!wantDeposits && tx.IsPayment()) {
			kept = append(kept, tx)
		}
	}
	return kept
}

// FilterByRange returns the transactions of list dated within r.
func FilterByRange(list []Transaction, r date.Range) Selection {
	var sel Selection
	for _, tx := range list {
		day, err := tx.Day()
		if err != nil {
			sel.Skipped = append(sel.Skipped, Skip{Transaction: tx, Err: err})
			continue
		}
		if r.Contains(day) {
			sel.Transactions = append(sel.Transactions, tx)
		}
	}
	return sel
}

// MonthRange returns the calendar month of today if current is true, the
// month before otherwise.
func MonthRange(today date.Date, current bool) date.Range {
	if current {
		return date.Monthly.Range(today)
	}
	return date.Monthly.Previous(today)
}

// YearRange returns the calendar year of today if current is true, the year
// before otherwise.
func YearRange(today date.Date, current bool) date.Range {
	if current {
		return date.Yearly.Range(today)
	}
	return date.Yearly.Previous(today)
}

// FilterByMonth returns the transactions of list dated in the current month
// (relative to today) or in the month before.
func FilterByMonth(list []Transaction, current bool, today date.Date) Selection {
	return FilterByRange(list, MonthRange(today, current))
}

// FilterByYear returns the transactions of list dated in the current year
// (relative to today) or in the year before.
func FilterByYear(list []Transaction, current bool, today date.Date) Selection {
	return FilterByRange(list, YearRange(today, current))
}

// SearchVendor returns the transactions whose vendor contains keyword,
// ignoring case.
func SearchVendor(list []Transaction, keyword string) []Transaction {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	var kept []Transaction
	for _, tx := range list {
		if strings.Contains(strings.ToLower(tx.Vendor), keyword) {
			kept = append(kept, tx)
		}
	}
	return kept
}
