package renderer

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/etnz/cashbook"
	"github.com/etnz/cashbook/date"
	"github.com/shopspring/decimal"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// tableRows parses markdown and returns the text of the cells of each table body row.
func tableRows(t *testing.T, md string) [][]string {
	t.Helper()
	source := []byte(md)
	root := goldmark.New(goldmark.WithExtensions(extension.Table)).Parser().Parse(text.NewReader(source))

	var rows [][]string
	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || n.Kind() != east.KindTableRow {
			return ast.WalkContinue, nil
		}
		var cells []string
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			cells = append(cells, string(c.Text(source)))
		}
		rows = append(rows, cells)
		return ast.WalkSkipChildren, nil
	})
	if err != nil {
		t.Fatalf("failed to walk markdown: %v", err)
	}
	return rows
}

func TestTransactions(t *testing.T) {
	txs := []cashbook.Transaction{
		{Date: "2024-03-15", Time: "10:30:00", Description: "Rent | March", Vendor: "Landlord", Amount: decimal.NewFromInt(-900)},
		{Date: "2024-03-01", Time: "09:00:00", Description: "Salary", Vendor: "ACME Corp", Amount: decimal.RequireFromString("1500.5")},
	}
	md := Transactions("March", txs, nil)

	if !strings.HasPrefix(md, "# March\n") {
		t.Errorf("Transactions() = %q, want a title", md)
	}
	rows := tableRows(t, md)
	if len(rows) != 2 {
		t.Fatalf("Transactions() rendered %d rows, want 2:\n%s", len(rows), md)
	}
	if len(rows[0]) != 5 {
		t.Fatalf("row 0 has %d cells, want 5: %v", len(rows[0]), rows[0])
	}
	want := map[int]string{0: "2024-03-15", 1: "10:30:00", 3: "Landlord", 4: "-900.00"}
	for i, w := range want {
		if rows[0][i] != w {
			t.Errorf("row 0 cell %d = %q, want %q", i, rows[0][i], w)
		}
	}
	if !strings.Contains(md, `| Rent \| March |`) {
		t.Errorf("Transactions() = %q, want the delimiter escaped in the description", md)
	}
	if got := rows[1][4]; got != "1500.50" {
		t.Errorf("row 1 amount = %q, want %q", got, "1500.50")
	}
}

func TestTransactions_Empty(t *testing.T) {
	md := Transactions("", nil, nil)
	if !strings.Contains(md, NoTransactions) {
		t.Errorf("Transactions() = %q, want %q", md, NoTransactions)
	}
	if len(tableRows(t, md)) != 0 {
		t.Errorf("Transactions() of an empty list rendered a table: %q", md)
	}
}

func TestTransactions_Skipped(t *testing.T) {
	skipped := []cashbook.Skip{{
		Transaction: cashbook.Transaction{Date: "03/06/2024", Description: "bad"},
		Err:         errors.New("invalid date"),
	}}
	md := Transactions("", nil, skipped)
	if !strings.Contains(md, "`03/06/2024` bad: invalid date") {
		t.Errorf("Transactions() = %q, want the skipped transaction listed", md)
	}
}

func TestLines(t *testing.T) {
	if got, want := Lines(nil), "No transactions found.\n"; got != want {
		t.Errorf("Lines(nil) = %q, want %q", got, want)
	}
	txs := []cashbook.Transaction{{Date: "2024-03-15", Time: "10:30:00", Description: "Salary", Vendor: "ACME Corp", Amount: decimal.NewFromInt(150)}}
	if got, want := Lines(txs), "2024-03-15 | 10:30:00 | Salary | ACME Corp | 150.00\n"; got != want {
		t.Errorf("Lines() = %q, want %q", got, want)
	}
}

func TestSummary(t *testing.T) {
	txs := []cashbook.Transaction{
		{Date: "2024-03-15", Time: "10:30:00", Amount: decimal.NewFromInt(1500)},
		{Date: "2024-03-16", Time: "10:30:00", Amount: decimal.RequireFromString("-42.5")},
	}
	s := cashbook.NewSummary(txs, date.Monthly.Range(date.New(2024, time.March, 20)), "USD")
	md := Summary(s)

	if !strings.HasPrefix(md, "# Summary 2024-03\n") {
		t.Errorf("Summary() = %q, want the month in the title", md)
	}
	rows := tableRows(t, md)
	if len(rows) != 3 {
		t.Fatalf("Summary() rendered %d rows, want 3:\n%s", len(rows), md)
	}
	if got, want := rows[0][2], "$1,500.00"; got != want {
		t.Errorf("deposits total = %q, want %q", got, want)
	}
	if got, want := rows[1][2], "-$42.50"; got != want {
		t.Errorf("payments total = %q, want %q", got, want)
	}
	if got, want := rows[2][2], "+$1,457.50"; got != want {
		t.Errorf("net total = %q, want %q", got, want)
	}
}
