package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

// ErrInvalidInput is wrapped by the errors of the parsers used in prompts.
var ErrInvalidInput = errors.New("invalid input")

// Prompter asks questions on a line based terminal.
//
// Input is read by a background goroutine started on the first question, so
// that a question can be abandoned when its context is done.
type Prompter struct {
	in    *bufio.Scanner
	out   io.Writer
	once  sync.Once
	lines chan line
}

// line is a line of input, or the error that ended the input.
type line struct {
	text string
	err  error
}

// NewPrompter returns a Prompter reading answers from r and writing prompts to w.
func NewPrompter(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(r), out: w, lines: make(chan line)}
}

// read feeds p.lines until the input ends, then closes it.
func (p *Prompter) read() {
	defer close(p.lines)
	for p.in.Scan() {
		p.lines <- line{text: p.in.Text()}
	}
	if err := p.in.Err(); err != nil {
		p.lines <- line{err: fmt.Errorf("error reading input: %w", err)}
	}
}

// Ask prints prompt and returns the next line of input without surrounding spaces.
//
// It returns io.EOF when the input is exhausted, and ctx.Err() as soon as ctx
// is done, even while waiting for the user to type.
func (p *Prompter) Ask(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fmt.Fprint(p.out, prompt)
	p.once.Do(func() { go p.read() })
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l, ok := <-p.lines:
		if !ok {
			return "", io.EOF
		}
		if l.err != nil {
			return "", l.err
		}
		return strings.TrimSpace(l.text), nil
	}
}

// Printf writes a formatted message.
func (p *Prompter) Printf(format string, a ...any) { fmt.Fprintf(p.out, format, a...) }

// Println writes a message followed by a newline.
func (p *Prompter) Println(a ...any) { fmt.Fprintln(p.out, a...) }

// AskValid asks prompt until parse accepts the answer.
//
// Each rejected answer prints the parse error and asks again.
func AskValid[T any](ctx context.Context, p *Prompter, prompt string, parse func(string) (T, error)) (T, error) {
	for {
		answer, err := p.Ask(ctx, prompt)
		if err != nil {
			return *new(T), err
		}
		v, err := parse(answer)
		if err != nil {
			p.Printf("%v. Please try again.\n", err)
			continue
		}
		return v, nil
	}
}
