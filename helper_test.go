package cashbook

import "github.com/shopspring/decimal"

// tx is a helper for test to create a transaction from constants.
func tx(day, at, vendor string, amount float64) Transaction {
	return Transaction{Date: day, Time: at, Description: "test", Vendor: vendor, Amount: decimal.NewFromFloat(amount)}
}

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(decimal.NewFromFloat(v), "USD") }

// dates returns the "date time" of each transaction.
func dates(txs []Transaction) []string {
	var out []string
	for _, x := range txs {
		out = append(out, x.Date+" "+x.Time)
	}
	return out
}

// vendors returns the vendor of each transaction.
func vendors(txs []Transaction) []string {
	var out []string
	for _, x := range txs {
		out = append(out, x.Vendor)
	}
	return out
}
