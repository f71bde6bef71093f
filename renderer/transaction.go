package renderer

import (
	"strings"

	"github.com/etnz/cashbook"
)

// Lines renders transactions one per line in their display form.
func Lines(txs []cashbook.Transaction) string {
	if len(txs) == 0 {
		return NoTransactions + "\n"
	}
	var b strings.Builder
	for _, tx := range txs {
		b.WriteString(tx.String())
		b.WriteString("\n")
	}
	return b.String()
}

// transactionsView is the data of the transactions template.
type transactionsView struct {
	Title        string
	Transactions []cashbook.Transaction
	Skipped      []cashbook.Skip
}

// Transactions renders transactions as a markdown table under title.
//
// Skipped transactions, if any, are listed after the table.
func Transactions(title string, txs []cashbook.Transaction, skipped []cashbook.Skip) string {
	partials := map[string]string{
		"transactions_table": "transactions_table.md",
		"transactions_empty": "transactions_empty.md",
	}
	if len(skipped) > 0 {
		partials["transactions_skipped"] = "transactions_skipped.md"
	} else {
		partials["transactions_skipped"] = ""
	}
	return renderTemplate("transactions", "transactions.md", partials, transactionsView{
		Title:        title,
		Transactions: txs,
		Skipped:      skipped,
	})
}
