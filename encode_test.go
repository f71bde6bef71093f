package cashbook

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseTransaction(t *testing.T) {
	testCases := []struct {
		name    string
		line    string
		want    Transaction
		wantErr error
	}{
		{
			name: "deposit",
			line: "2024-03-15|10:30:00|Salary|ACME Corp|1500.5",
			want: Transaction{Date: "2024-03-15", Time: "10:30:00", Description: "Salary", Vendor: "ACME Corp", Amount: decimal.RequireFromString("1500.5")},
		},
		{
			name: "payment written with a trailing zero",
			line: "2024-03-16|08:00:00|Coffee|Corner Cafe|-4.0",
			want: Transaction{Date: "2024-03-16", Time: "08:00:00", Description: "Coffee", Vendor: "Corner Cafe", Amount: decimal.RequireFromString("-4")},
		},
		{
			name: "empty text fields",
			line: "2024-03-16|08:00:00|||12",
			want: Transaction{Date: "2024-03-16", Time: "08:00:00", Amount: decimal.NewFromInt(12)},
		},
		{
			name: "escaped delimiter",
			line: `2024-03-16|08:00:00|Rent \| March|Landlord \\ Co|-900`,
			want: Transaction{Date: "2024-03-16", Time: "08:00:00", Description: "Rent | March", Vendor: `Landlord \ Co`, Amount: decimal.NewFromInt(-900)},
		},
		{
			name:    "three fields",
			line:    "2024-03-16|08:00:00|Coffee",
			wantErr: ErrFieldCount,
		},
		{
			name:    "unescaped delimiter in a field",
			line:    "2024-03-16|08:00:00|Rent | March|Landlord|-900",
			wantErr: ErrFieldCount,
		},
		{
			name:    "amount is not a number",
			line:    "2024-03-16|08:00:00|Coffee|Corner Cafe|four",
			wantErr: ErrAmount,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseTransaction(tc.line)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("ParseTransaction(%q) error = %v, want %v", tc.line, err, tc.wantErr)
				}
				var perr *ParseError
				if !errors.As(err, &perr) || perr.Line != tc.line {
					t.Errorf("ParseTransaction(%q) error = %#v, want a *ParseError for the line", tc.line, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTransaction(%q) unexpected error: %v", tc.line, err)
			}
			if !got.Equal(tc.want) {
				t.Errorf("ParseTransaction(%q) = %v, want %v", tc.line, got, tc.want)
			}
		})
	}
}

func TestEncodeLine(t *testing.T) {
	tx := Transaction{Date: "2024-03-15", Time: "10:30:00", Description: "Salary", Vendor: "ACME Corp", Amount: decimal.RequireFromString("150.00")}
	if got, want := EncodeLine(tx), "2024-03-15|10:30:00|Salary|ACME Corp|150"; got != want {
		t.Errorf("EncodeLine() = %q, want %q", got, want)
	}
	if got, want := tx.String(), "2024-03-15 | 10:30:00 | Salary | ACME Corp | 150.00"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

// TestRoundTrip checks that any transaction survives storage, including text
// holding the delimiter, the escape character or line breaks.
func TestRoundTrip(t *testing.T) {
	txs := []Transaction{
		{Date: "2024-01-01", Time: "00:00:00", Description: "plain", Vendor: "shop", Amount: decimal.RequireFromString("12.500000001")},
		{Date: "2024-01-01", Time: "00:00:00", Description: "a|b", Vendor: "|", Amount: decimal.NewFromInt(-1)},
		{Date: "2024-01-01", Time: "00:00:00", Description: `back\slash\`, Vendor: `\|`, Amount: decimal.Zero},
		{Date: "2024-01-01", Time: "00:00:00", Description: "two\nlines\r\n", Vendor: "", Amount: decimal.RequireFromString("0.01")},
	}
	for _, tx := range txs {
		line := EncodeLine(tx)
		got, err := ParseTransaction(line)
		if err != nil {
			t.Errorf("ParseTransaction(EncodeLine(%q)) unexpected error: %v", tx.Description, err)
			continue
		}
		if !got.Equal(tx) {
			t.Errorf("round trip of %#v gave %#v via %q", tx, got, line)
		}
	}
}
