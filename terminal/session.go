// Package terminal implements the interactive menu session of the cashbook.
//
// A Session is a finite-state machine over the Home, LedgerView and Reports
// screens. Each screen reads one token and runs the matching action.
package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/etnz/cashbook"
	"github.com/etnz/cashbook/date"
	"github.com/etnz/cashbook/renderer"
	"github.com/shopspring/decimal"
)

// Storage is where a session records and reads transactions.
type Storage interface {
	Append(tx cashbook.Transaction) error
	Load() (*cashbook.Ledger, error)
}

// Config holds the collaborators of a Session.
type Config struct {
	Store    Storage
	In       io.Reader
	Out      io.Writer
	Now      func() time.Time // defaults to time.Now
	Logger   *log.Logger      // defaults to a logger discarding everything
	Currency string           // defaults to USD
}

// Session is an interactive menu session.
type Session struct {
	store    Storage
	p        *Prompter
	now      func() time.Time
	log      *log.Logger
	currency string

	// ledger is the sorted list loaded when entering the ledger view.
	ledger []cashbook.Transaction
}

// NewSession creates a session from cfg.
func NewSession(cfg Config) *Session {
	s := &Session{
		store:    cfg.Store,
		p:        NewPrompter(cfg.In, cfg.Out),
		now:      cfg.Now,
		log:      cfg.Logger,
		currency: cfg.Currency,
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.log == nil {
		s.log = log.New(io.Discard)
	}
	if s.currency == "" {
		s.currency = "USD"
	}
	return s
}

// Run runs the session from the Home screen until the user exits, the input
// ends, or ctx is done.
func (s *Session) Run(ctx context.Context) error {
	state := Home
	for state != Exit {
		if err := ctx.Err(); err != nil {
			return err
		}
		next, err := s.step(ctx, state)
		if errors.Is(err, io.EOF) {
			s.log.Debug("end of input", "state", state)
			return nil
		}
		if err != nil {
			return err
		}
		if next != state {
			s.log.Debug("transition", "from", state, "to", next)
		}
		state = next
	}
	s.p.Println("Goodbye!")
	return nil
}

// step displays the menu of state, reads a token and runs its action.
func (s *Session) step(ctx context.Context, state State) (State, error) {
	m, ok := menus[state]
	if !ok {
		return Exit, fmt.Errorf("no menu for state %v", state)
	}
	if m.header != "" {
		s.p.Println()
		s.p.Println(m.header)
	}
	s.p.Printf("\n=== %s ===\n", m.title)
	for _, o := range m.options {
		s.p.Printf("%s) %s\n", o.token, o.label)
	}
	token, err := s.p.Ask(ctx, m.prompt)
	if err != nil {
		return state, err
	}
	o, ok := m.lookup(token)
	if !ok {
		s.p.Println(m.invalid)
		return state, nil
	}
	return o.run(ctx, s)
}

// RecordTransaction asks for the fields of a new transaction and appends it to
// the store.
//
// Invalid dates, times and amounts are asked again. A storage failure is
// reported and does not end the session. Nothing is recorded if ctx is done
// before the last field is entered.
func (s *Session) RecordTransaction(ctx context.Context, deposit bool) error {
	now := s.now()
	today := date.Of(now)

	day, err := AskValid(ctx, s.p, "Date (YYYY-MM-DD, empty for today): ", func(in string) (date.Date, error) {
		if in == "" {
			return today, nil
		}
		d, err := date.ParseInput(in, today)
		if err != nil {
			return d, fmt.Errorf("%w: date %q", ErrInvalidInput, in)
		}
		return d, nil
	})
	if err != nil {
		return err
	}
	at, err := AskValid(ctx, s.p, "Time (HH:MM:SS, empty for now): ", func(in string) (date.Clock, error) {
		if in == "" {
			return date.ClockOf(now), nil
		}
		c, err := date.ParseClock(in)
		if err != nil {
			return c, fmt.Errorf("%w: time %q", ErrInvalidInput, in)
		}
		return c, nil
	})
	if err != nil {
		return err
	}
	description, err := s.p.Ask(ctx, "Description: ")
	if err != nil {
		return err
	}
	vendor, err := s.p.Ask(ctx, "Vendor: ")
	if err != nil {
		return err
	}
	amount, err := AskValid(ctx, s.p, "Amount: ", ParseAmount)
	if err != nil {
		return err
	}

	var tx cashbook.Transaction
	if deposit {
		tx = cashbook.NewDeposit(day, at, description, vendor, amount)
	} else {
		tx = cashbook.NewPayment(day, at, description, vendor, amount)
	}
	if err := s.store.Append(tx); err != nil {
		s.log.Error("could not append transaction", "err", err)
		s.p.Printf("Error saving transaction: %v. Transaction not recorded.\n", err)
		return nil
	}
	s.log.Info("transaction recorded", "date", tx.Date, "amount", tx.Amount)
	s.p.Println("Transaction recorded.")
	return nil
}

// ParseAmount reads a strictly positive decimal amount.
func ParseAmount(in string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(in))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: amount %q is not a number", ErrInvalidInput, in)
	}
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: amount must be greater than zero", ErrInvalidInput)
	}
	return amount, nil
}

// LoadAndSortLedger loads the transactions of store, most recent first.
//
// Rejected lines are logged as warnings and left out.
func LoadAndSortLedger(store Storage, logger *log.Logger) ([]cashbook.Transaction, error) {
	ledger, err := store.Load()
	if ledger == nil {
		ledger = cashbook.NewLedger()
	}
	for _, r := range ledger.Rejected() {
		logger.Warn("skipped ledger line", "line", r.Line, "err", r.Err)
	}
	ledger.SortByRecency()
	return ledger.Transactions(), err
}

func (s *Session) openLedger() error {
	txs, err := LoadAndSortLedger(s.store, s.log)
	if err != nil {
		s.log.Error("could not load ledger", "err", err)
		s.p.Printf("Error loading transactions: %v\n", err)
	}
	s.ledger = txs
	return nil
}

func (s *Session) show(list []cashbook.Transaction) {
	s.p.Printf("%s", renderer.Lines(list))
}

func (s *Session) showSelection(sel cashbook.Selection) {
	for _, skip := range sel.Skipped {
		s.log.Warn("skipped transaction", "date", skip.Transaction.Date, "err", skip.Err)
	}
	s.show(sel.Transactions)
}

func (s *Session) showAll() error {
	s.show(s.ledger)
	return nil
}

func (s *Session) showSign(deposits bool) error {
	s.show(cashbook.FilterBySign(s.ledger, deposits))
	return nil
}

func (s *Session) showMonth(current bool) error {
	s.showSelection(cashbook.FilterByMonth(s.ledger, current, date.Of(s.now())))
	return nil
}

func (s *Session) showYear(current bool) error {
	s.showSelection(cashbook.FilterByYear(s.ledger, current, date.Of(s.now())))
	return nil
}

func (s *Session) searchVendor(ctx context.Context) error {
	keyword, err := s.p.Ask(ctx, "Enter vendor keyword: ")
	if err != nil {
		return err
	}
	s.show(cashbook.SearchVendor(s.ledger, keyword))
	return nil
}

func (s *Session) showSummary() error {
	r := cashbook.MonthRange(date.Of(s.now()), true)
	sum := cashbook.NewSummary(s.ledger, r, s.currency)
	for _, skip := range sum.Skipped {
		s.log.Warn("skipped transaction", "date", skip.Transaction.Date, "err", skip.Err)
	}
	s.p.Printf("Summary %s (%s to %s)\n", r.Identifier(), r.From, r.To)
	s.p.Printf("Deposits: %d for %s\n", sum.DepositCount, sum.Deposits)
	s.p.Printf("Payments: %d for %s\n", sum.PaymentCount, sum.Payments)
	s.p.Printf("Net: %s\n", sum.Net.SignedString())
	return nil
}
