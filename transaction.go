package cashbook

import (
	"fmt"
	"time"

	"github.com/etnz/cashbook/date"
	"github.com/shopspring/decimal"
)

// Transaction is a single movement of cash.
//
// There is no type field: a positive Amount is a deposit, a negative Amount is
// a payment. Date and Time hold the ISO text found in storage, use Day, Clock
// or Timestamp to get them parsed.
type Transaction struct {
	Date        string // YYYY-MM-DD
	Time        string // HH:MM:SS
	Description string
	Vendor      string
	Amount      decimal.Decimal
}

// NewDeposit returns a deposit of amount. The sign of amount is ignored.
func NewDeposit(day date.Date, at date.Clock, description, vendor string, amount decimal.Decimal) Transaction {
	return newTransaction(day, at, description, vendor, amount.Abs())
}

// NewPayment returns a payment (debit) of amount. The sign of amount is ignored.
func NewPayment(day date.Date, at date.Clock, description, vendor string, amount decimal.Decimal) Transaction {
	return newTransaction(day, at, description, vendor, amount.Abs().Neg())
}

func newTransaction(day date.Date, at date.Clock, description, vendor string, amount decimal.Decimal) Transaction {
	return Transaction{
		Date:        day.String(),
		Time:        at.String(),
		Description: description,
		Vendor:      vendor,
		Amount:      amount,
	}
}

// IsDeposit reports whether t credits money.
func (t Transaction) IsDeposit() bool { return t.Amount.IsPositive() }

// IsPayment reports whether t debits money.
func (t Transaction) IsPayment() bool { return t.Amount.IsNegative() }

// Day returns the parsed date of t.
func (t Transaction) Day() (date.Date, error) { return date.Parse(t.Date) }

// Clock returns the parsed time of day of t.
func (t Transaction) Clock() (date.Clock, error) { return date.ParseClock(t.Time) }

// Timestamp returns the instant of t, in UTC.
func (t Transaction) Timestamp() (time.Time, error) {
	day, err := t.Day()
	if err != nil {
		return time.Time{}, err
	}
	at, err := t.Clock()
	if err != nil {
		return time.Time{}, err
	}
	return day.At(at), nil
}

// Equal reports whether t and u have the same fields, amounts being compared
// numerically (1.5 equals 1.50).
func (t Transaction) Equal(u Transaction) bool {
	return t.Date == u.Date &&
		t.Time == u.Time &&
		t.Description == u.Description &&
		t.Vendor == u.Vendor &&
		t.Amount.Equal(u.Amount)
}

// String returns the display form of t: "date | time | description | vendor | amount"
// with the amount at 2 decimal places.
func (t Transaction) String() string {
	return fmt.Sprintf("%s | %s | %s | %s | %s", t.Date, t.Time, t.Description, t.Vendor, t.Amount.StringFixed(2))
}
