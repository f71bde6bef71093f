package cashbook

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Delimiter separates the fields of a stored transaction.
const Delimiter = '|'

const (
	escapeChar = '\\'
	fieldCount = 5
)

var (
	// ErrFieldCount is returned when a stored line does not have exactly 5 fields.
	ErrFieldCount = errors.New("wrong number of fields")
	// ErrAmount is returned when the amount of a stored line is not a decimal number.
	ErrAmount = errors.New("invalid amount")
	// ErrLineTooLong is returned for a stored line longer than 1 MB.
	ErrLineTooLong = errors.New("line too long")
)

// ParseError describes a stored line that cannot be read as a Transaction.
type ParseError struct {
	Line string
	Err  error
}

func (e *ParseError) Error() string { return fmt.Sprintf("cannot parse line %q: %v", e.Line, e.Err) }

func (e *ParseError) Unwrap() error { return e.Err }

// fieldEscaper escapes the characters that would otherwise break the line format.
var fieldEscaper = strings.NewReplacer(
	`\`, `\\`,
	`|`, `\|`,
	"\n", `\n`,
	"\r", `\r`,
)

// EncodeLine returns the storage form of t: the five fields joined by the
// Delimiter in the order date, time, description, vendor, amount.
//
// Text fields are escaped so that a Delimiter or a newline in a description
// survives a round trip. The amount uses the shortest decimal form ("12.5",
// not "12.50").
func EncodeLine(t Transaction) string {
	var b strings.Builder
	for _, field := range []string{t.Date, t.Time, t.Description, t.Vendor} {
		b.WriteString(fieldEscaper.Replace(field))
		b.WriteRune(Delimiter)
	}
	b.WriteString(t.Amount.String())
	return b.String()
}

// ParseTransaction parses a line in the storage form produced by EncodeLine.
//
// It fails with a *ParseError wrapping ErrFieldCount or ErrAmount.
func ParseTransaction(line string) (Transaction, error) {
	fields := splitFields(line)
	if len(fields) != fieldCount {
		return Transaction{}, &ParseError{Line: line, Err: fmt.Errorf("%w: got %d want %d", ErrFieldCount, len(fields), fieldCount)}
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(fields[4]))
	if err != nil {
		return Transaction{}, &ParseError{Line: line, Err: fmt.Errorf("%w %q: %v", ErrAmount, fields[4], err)}
	}
	return Transaction{
		Date:        fields[0],
		Time:        fields[1],
		Description: fields[2],
		Vendor:      fields[3],
		Amount:      amount,
	}, nil
}

// splitFields splits line on unescaped delimiters and unescapes each field.
func splitFields(line string) []string {
	var (
		fields  []string
		current strings.Builder
	)
	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == escapeChar && i+1 < len(runes):
			i++
			switch runes[i] {
			case 'n':
				current.WriteRune('\n')
			case 'r':
				current.WriteRune('\r')
			default:
				current.WriteRune(runes[i])
			}
		case r == Delimiter:
			fields = append(fields, current.String())
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	return append(fields, current.String())
}
