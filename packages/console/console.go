package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/abdul-hamid-achik/lunarica/packages/core/command"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// Banner is printed when an interactive session starts.
const Banner = "Lunarica - Interactive HTTP Client"

type Console struct {
	dispatcher  *command.Dispatcher
	history     *History
	in          io.Reader
	out         io.Writer
	interactive *bool
}

type Option func(*Console)

func New(dispatcher *command.Dispatcher, opts ...Option) *Console {
	c := &Console{
		dispatcher: dispatcher,
		in:         os.Stdin,
		out:        os.Stdout,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.history == nil {
		c.history = NewHistory("", DefaultHistorySize)
	}
	return c
}

func WithInput(r io.Reader) Option {
	return func(c *Console) {
		c.in = r
	}
}

func WithOutput(w io.Writer) Option {
	return func(c *Console) {
		c.out = w
	}
}

func WithHistory(h *History) Option {
	return func(c *Console) {
		c.history = h
	}
}

// WithInteractive forces the line editor on or off instead of detecting
// whether input and output are terminals.
func WithInteractive(interactive bool) Option {
	return func(c *Console) {
		c.interactive = &interactive
	}
}

func (c *Console) History() *History {
	return c.history
}

func (c *Console) isInteractive() bool {
	if c.interactive != nil {
		return *c.interactive
	}
	return isTerminal(c.in) && isTerminal(c.out)
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Run reads and dispatches lines until input ends or a command sets the
// exit flag. The history is saved on the way out.
func (c *Console) Run(ctx context.Context) error {
	defer func() {
		if err := c.history.Save(); err != nil {
			log.Printf("history: %v", err)
		}
	}()

	if c.isInteractive() {
		return c.runInteractive(ctx)
	}
	return c.runPlain(ctx)
}

func (c *Console) runInteractive(ctx context.Context) error {
	fmt.Fprintln(c.out, Banner)
	fmt.Fprintln(c.out, "Type 'help' for available commands, 'exit' to quit")

	m := newModel(ctx, c.dispatcher, c.history)
	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithInput(c.in),
		tea.WithOutput(c.out),
	)
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("console: %w", err)
	}
	return nil
}

func (c *Console) runPlain(ctx context.Context) error {
	state := c.dispatcher.Env().State
	scanner := bufio.NewScanner(c.in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for !state.ShouldExit() && scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil
		}
		line := scanner.Text()
		c.history.Add(line)
		c.dispatcher.Dispatch(ctx, line)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("console: read input: %w", err)
	}
	return nil
}
