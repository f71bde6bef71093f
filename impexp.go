package cashbook

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/cashbook/date"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// MarshalJSON writes t as a JSON object with a stable key order.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("date", t.Date)
	w.Append("time", t.Time)
	w.Optional("description", t.Description)
	w.Optional("vendor", t.Vendor)
	w.Append("amount", t.Amount)
	return w.MarshalJSON()
}

// ExportJSONL writes list as JSON Lines, one transaction per line.
func ExportJSONL(w io.Writer, list []Transaction) error {
	enc := json.NewEncoder(w)
	for _, tx := range list {
		if err := enc.Encode(tx); err != nil {
			return fmt.Errorf("could not export transaction %v: %w", tx, err)
		}
	}
	return nil
}

// yamlRecord is the YAML form of a Transaction.
type yamlRecord struct {
	Date        string `yaml:"date"`
	Time        string `yaml:"time"`
	Description string `yaml:"description,omitempty"`
	Vendor      string `yaml:"vendor,omitempty"`
	Amount      string `yaml:"amount"`
}

// ExportYAML writes list as a YAML sequence.
func ExportYAML(w io.Writer, list []Transaction) error {
	records := make([]yamlRecord, 0, len(list))
	for _, tx := range list {
		records = append(records, yamlRecord{
			Date:        tx.Date,
			Time:        tx.Time,
			Description: tx.Description,
			Vendor:      tx.Vendor,
			Amount:      tx.Amount.String(),
		})
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("could not export transactions: %w", err)
	}
	return enc.Close()
}

// Mapping tells ImportJSON where to find transactions in a JSON document.
//
// Items selects the list of items in the document. The other fields are
// evaluated on each item. Date and Amount are mandatory, the others may be
// empty.
type Mapping struct {
	Items       string
	Date        string
	Time        string
	Description string
	Vendor      string
	Amount      string
}

// DefaultMapping reads a JSON array of objects like the ones written by ExportJSONL.
func DefaultMapping() Mapping {
	return Mapping{
		Items:       "$[*]",
		Date:        "$.date",
		Time:        "$.time",
		Description: "$.description",
		Vendor:      "$.vendor",
		Amount:      "$.amount",
	}
}

// ImportJSON reads the transactions described by m from a JSON document.
//
// Items that cannot be mapped are returned as Rejected, numbered from 1 in
// document order. A missing time defaults to midnight.
func ImportJSON(r io.Reader, m Mapping) ([]Transaction, []Rejected, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, nil, fmt.Errorf("invalid JSON document: %w", err)
	}

	jval, err := jsonpath.Get(m.Items, doc)
	if err != nil {
		return nil, nil, fmt.Errorf("error selecting items %q: %w", m.Items, err)
	}
	items, ok := jval.([]any)
	if !ok {
		// a single answer
		items = []any{jval}
	}

	var (
		txs      []Transaction
		rejected []Rejected
	)
	for i, item := range items {
		tx, err := m.transaction(item)
		if err != nil {
			raw, _ := json.Marshal(item)
			rejected = append(rejected, Rejected{Line: i + 1, Text: string(raw), Err: err})
			continue
		}
		txs = append(txs, tx)
	}
	return txs, rejected, nil
}

// transaction maps a single item.
func (m Mapping) transaction(item any) (Transaction, error) {
	dateText, err := lookupString(m.Date, item, true)
	if err != nil {
		return Transaction{}, err
	}
	day, err := date.Parse(dateText)
	if err != nil {
		return Transaction{}, err
	}

	at := date.Clock{}
	timeText, err := lookupString(m.Time, item, false)
	if err != nil {
		return Transaction{}, err
	}
	if timeText != "" {
		if at, err = date.ParseClock(timeText); err != nil {
			return Transaction{}, err
		}
	}

	description, err := lookupString(m.Description, item, false)
	if err != nil {
		return Transaction{}, err
	}
	vendor, err := lookupString(m.Vendor, item, false)
	if err != nil {
		return Transaction{}, err
	}

	amountText, err := lookupString(m.Amount, item, true)
	if err != nil {
		return Transaction{}, err
	}
	amount, err := decimal.NewFromString(amountText)
	if err != nil {
		return Transaction{}, fmt.Errorf("%w %q: %v", ErrAmount, amountText, err)
	}

	return newTransaction(day, at, description, vendor, amount), nil
}

// lookupString evaluates path on item and returns the result as text.
// An empty path, or a path that selects nothing, is an error only if required.
func lookupString(path string, item any, required bool) (string, error) {
	if path == "" {
		if required {
			return "", fmt.Errorf("missing mapping")
		}
		return "", nil
	}
	jval, err := jsonpath.Get(path, item)
	if err != nil {
		if required {
			return "", fmt.Errorf("error evaluating %q: %w", path, err)
		}
		return "", nil
	}
	// because jsonpath is never clear about wheter it returns a list of 1 answer, or a single answer:
	// by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok {
		if len(jlist) == 0 {
			jval = nil
		} else {
			jval = jlist[0]
		}
	}
	switch v := jval.(type) {
	case string:
		return strings.TrimSpace(v), nil
	case json.Number:
		return v.String(), nil
	case float64:
		return decimal.NewFromFloat(v).String(), nil
	case nil:
		if required {
			return "", fmt.Errorf("%q selects nothing", path)
		}
		return "", nil
	default:
		return "", fmt.Errorf("%q selects a %T, want a string or a number", path, jval)
	}
}
