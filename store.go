package cashbook

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// ErrRejectedLines is returned by Store.Rewrite for a ledger that still holds
// lines it could not read.
var ErrRejectedLines = errors.New("ledger has unreadable lines")

// Store is the flat file holding the ledger, one transaction per line.
type Store struct {
	Path string
}

// Append writes tx at the end of the file, creating it if needed.
func (s Store) Append(tx Transaction) error {
	f, err := os.OpenFile(s.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("error opening ledger file %q: %w", s.Path, err)
	}
	if err := EncodeTransaction(f, tx); err != nil {
		f.Close()
		return fmt.Errorf("error writing to ledger file %q: %w", s.Path, err)
	}
	return f.Close()
}

// Load reads the whole file. A missing file is an empty ledger.
//
// On a read error the transactions decoded so far are returned with it.
func (s Store) Load() (*Ledger, error) {
	f, err := os.Open(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("error opening ledger file %q: %w", s.Path, err)
	}
	defer f.Close()

	ledger, err := DecodeLedger(f)
	if err != nil {
		return ledger, fmt.Errorf("error loading ledger file %q: %w", s.Path, err)
	}
	return ledger, nil
}

// Rewrite replaces the content of the file with the ledger in canonical form.
//
// Rejected lines have no canonical form, so a ledger holding any is refused
// with ErrRejectedLines and the file is left untouched. Call
// Ledger.DropRejected first to discard them.
func (s Store) Rewrite(ledger *Ledger) error {
	if n := len(ledger.rejected); n > 0 {
		return fmt.Errorf("cannot rewrite %q: %w (%d)", s.Path, ErrRejectedLines, n)
	}
	f, err := os.OpenFile(s.Path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("error opening ledger file %q for writing: %w", s.Path, err)
	}
	if err := EncodeLedger(f, ledger); err != nil {
		f.Close()
		return fmt.Errorf("error writing ledger file %q: %w", s.Path, err)
	}
	return f.Close()
}
