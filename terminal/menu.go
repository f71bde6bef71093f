package terminal

import (
	"context"
	"strings"
)

// State is a screen of the interactive session.
type State int

const (
	Home State = iota
	LedgerView
	Reports
	Exit
)

func (s State) String() string {
	switch s {
	case Home:
		return "home"
	case LedgerView:
		return "ledger"
	case Reports:
		return "reports"
	case Exit:
		return "exit"
	default:
		return "unknown"
	}
}

// action runs a menu option and returns the next state.
type action func(ctx context.Context, s *Session) (State, error)

// option is a menu entry: a token and the transition it triggers.
type option struct {
	token string
	label string
	run   action
}

// menu is the transition table of a state.
type menu struct {
	header  string
	title   string
	prompt  string
	invalid string
	options []option
}

// lookup returns the option for token, ignoring case.
func (m menu) lookup(token string) (option, bool) {
	for _, o := range m.options {
		if strings.EqualFold(o.token, token) {
			return o, true
		}
	}
	return option{}, false
}

// stay returns an action that runs f and remains in state.
func stay(state State, f func(s *Session) error) action {
	return func(_ context.Context, s *Session) (State, error) { return state, f(s) }
}

// dialog returns an action that runs f, which asks questions, and remains in
// state.
func dialog(state State, f func(s *Session, ctx context.Context) error) action {
	return func(ctx context.Context, s *Session) (State, error) { return state, f(s, ctx) }
}

// goTo returns an action that moves to state.
func goTo(state State) action {
	return func(context.Context, *Session) (State, error) { return state, nil }
}

// menus is the state machine of the session.
var menus = map[State]menu{
	Home: {
		header:  "Welcome! What would you like to do today?",
		title:   "Home Screen",
		prompt:  "Choose an option: ",
		invalid: "Invalid input. Try again.",
		options: []option{
			{"D", "Add Deposit", dialog(Home, func(s *Session, ctx context.Context) error { return s.RecordTransaction(ctx, true) })},
			{"P", "Make Payment (Debit)", dialog(Home, func(s *Session, ctx context.Context) error { return s.RecordTransaction(ctx, false) })},
			{"L", "View Ledger", stay(LedgerView, (*Session).openLedger)},
			{"X", "Exit", goTo(Exit)},
		},
	},
	LedgerView: {
		title:   "Ledger Menu",
		prompt:  "Choose an option: ",
		invalid: "Invalid option.",
		options: []option{
			{"A", "All Transactions", stay(LedgerView, (*Session).showAll)},
			{"D", "Deposits Only", stay(LedgerView, func(s *Session) error { return s.showSign(true) })},
			{"P", "Payments Only", stay(LedgerView, func(s *Session) error { return s.showSign(false) })},
			{"R", "Reports", goTo(Reports)},
			{"H", "Home", goTo(Home)},
		},
	},
	Reports: {
		title:   "Reports Menu",
		prompt:  "Enter choice: ",
		invalid: "Invalid selection.",
		options: []option{
			{"1", "Month to Date", stay(Reports, func(s *Session) error { return s.showMonth(true) })},
			{"2", "Previous Month", stay(Reports, func(s *Session) error { return s.showMonth(false) })},
			{"3", "Year to Date", stay(Reports, func(s *Session) error { return s.showYear(true) })},
			{"4", "Previous Year", stay(Reports, func(s *Session) error { return s.showYear(false) })},
			{"5", "Search by Vendor", dialog(Reports, (*Session).searchVendor)},
			{"6", "Month to Date Summary", stay(Reports, (*Session).showSummary)},
			{"0", "Back", goTo(LedgerView)},
		},
	},
}
