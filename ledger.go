package cashbook

import (
	"fmt"
	"slices"
)

// Rejected is a record that could not be read as a Transaction.
type Rejected struct {
	Line int    // 1-based line (or item) number in the source
	Text string // raw content
	Err  error  // reason
}

func (r Rejected) String() string { return fmt.Sprintf("line %d: %v", r.Line, r.Err) }

// Ledger represents all the transactions of a session.
//
// Transactions are kept in the order they were appended (storage order) until
// SortByRecency is called.
type Ledger struct {
	transactions []Transaction
	rejected     []Rejected
}

// NewLedger creates a ledger holding txs.
func NewLedger(txs ...Transaction) *Ledger {
	return &Ledger{transactions: slices.Clone(txs)}
}

// Len returns the number of transactions in the ledger.
func (l *Ledger) Len() int { return len(l.transactions) }

// Transactions returns a copy of the transactions in ledger order.
func (l *Ledger) Transactions() []Transaction { return slices.Clone(l.transactions) }

// Rejected returns the records that were skipped while the ledger was decoded.
func (l *Ledger) Rejected() []Rejected { return slices.Clone(l.rejected) }

// Append adds tx at the end of the ledger.
func (l *Ledger) Append(tx Transaction) { l.transactions = append(l.transactions, tx) }

func (l *Ledger) reject(r Rejected) { l.rejected = append(l.rejected, r) }

// DropRejected forgets the records that could not be read, and returns them.
func (l *Ledger) DropRejected() []Rejected {
	dropped := l.rejected
	l.rejected = nil
	return dropped
}

// SortByRecency sorts the ledger in place, most recent transaction first.
func (l *Ledger) SortByRecency() {
	slices.SortStableFunc(l.transactions, func(a, b Transaction) int { return compareChronological(b, a) })
}

// chronological returns the transactions, oldest first.
func (l *Ledger) chronological() []Transaction {
	txs := l.Transactions()
	slices.SortStableFunc(txs, compareChronological)
	return txs
}
