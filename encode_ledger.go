package cashbook

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

const maxLineSize = 1024 * 1024

// DecodeLedger decodes transactions from a stream of stored lines, one
// transaction per line.
//
// Lines that cannot be parsed are not fatal: they are recorded in
// Ledger.Rejected and decoding goes on. That includes lines longer than 1 MB.
// Empty lines are ignored. The returned error is only about reading r, the
// ledger decoded so far is returned with it.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	reader := bufio.NewReader(r)

	for lineNumber := 1; ; lineNumber++ {
		line, err := readLine(reader)
		if errors.Is(err, io.EOF) {
			return ledger, nil
		}
		if errors.Is(err, ErrLineTooLong) {
			ledger.reject(Rejected{Line: lineNumber, Text: line, Err: err})
			continue
		}
		if err != nil {
			return ledger, fmt.Errorf("error reading ledger at line %d: %w", lineNumber, err)
		}
		if len(line) == 0 {
			continue // Skip empty lines
		}
		tx, err := ParseTransaction(line)
		if err != nil {
			ledger.reject(Rejected{Line: lineNumber, Text: line, Err: err})
			continue
		}
		ledger.Append(tx)
	}
}

// readLine returns the next line of br without its end of line. A line longer
// than maxLineSize is consumed whole, its first bytes are returned with
// ErrLineTooLong. io.EOF is returned only when there is no line left.
func readLine(br *bufio.Reader) (string, error) {
	var line []byte
	tooLong := false
	for {
		chunk, isPrefix, err := br.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) && (len(line) > 0 || tooLong) {
				break // unterminated last line
			}
			return string(line), err
		}
		if !tooLong && len(line)+len(chunk) > maxLineSize {
			tooLong = true
			line = line[:min(len(line), 64)]
		}
		if !tooLong {
			line = append(line, chunk...)
		}
		if !isPrefix {
			break
		}
	}
	if tooLong {
		return string(line), ErrLineTooLong
	}
	return string(line), nil
}

// EncodeTransaction writes a single transaction as one stored line.
func EncodeTransaction(w io.Writer, tx Transaction) error {
	_, err := io.WriteString(w, EncodeLine(tx)+"\n")
	return err
}

// EncodeLedger writes all the transactions of the ledger, oldest first. The
// relative order of transactions at the same instant is preserved.
func EncodeLedger(w io.Writer, ledger *Ledger) error {
	for _, tx := range ledger.chronological() {
		if err := EncodeTransaction(w, tx); err != nil {
			return err
		}
	}
	return nil
}
