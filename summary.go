package cashbook

import (
	"github.com/etnz/cashbook/date"
	"github.com/shopspring/decimal"
)

// Summary holds the totals of the transactions dated within a range.
type Summary struct {
	Range        date.Range
	DepositCount int
	PaymentCount int
	Deposits     Money // sum of deposits
	Payments     Money // sum of payments, zero or negative
	Net          Money
	Skipped      []Skip // transactions with an unreadable date
}

// NewSummary computes the totals of the transactions of list within r, in currency.
func NewSummary(list []Transaction, r date.Range, currency string) Summary {
	sel := FilterByRange(list, r)
	s := Summary{
		Range:    r,
		Deposits: M(decimal.Zero, currency),
		Payments: M(decimal.Zero, currency),
		Skipped:  sel.Skipped,
	}
	for _, tx := range sel.Transactions {
		switch {
		case tx.IsDeposit():
			s.DepositCount++
			s.Deposits = s.Deposits.Add(M(tx.Amount, currency))
		case tx.IsPayment():
			s.PaymentCount++
			s.Payments = s.Payments.Add(M(tx.Amount, currency))
		}
	}
	s.Net = s.Deposits.Add(s.Payments)
	return s
}

// Count returns the number of deposits and payments in the summary.
func (s Summary) Count() int { return s.DepositCount + s.PaymentCount }
