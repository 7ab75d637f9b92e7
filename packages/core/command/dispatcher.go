package command

import (
	"context"
	"fmt"
	"log"
	"runtime/debug"
	"strings"
)

// Separator brackets the output of every executed command.
const Separator = "---------------------------------------------------"

type Dispatcher struct {
	registry *Registry
	env      *Env
}

func NewDispatcher(registry *Registry, env *Env) *Dispatcher {
	if env.Registry == nil {
		env.Registry = registry
	}
	return &Dispatcher{
		registry: registry,
		env:      env,
	}
}

func (d *Dispatcher) Env() *Env {
	return d.env
}

// Split separates a line into the lower-cased command name and the trimmed
// remainder. Whitespace inside the remainder is preserved.
func Split(line string) (name, args string) {
	line = strings.TrimSpace(line)
	idx := strings.IndexFunc(line, isSpace)
	if idx < 0 {
		return strings.ToLower(line), ""
	}
	return strings.ToLower(line[:idx]), strings.TrimSpace(line[idx:])
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\v' || r == '\f'
}

// Dispatch runs the command named by the first token of line. Blank lines
// and unknown commands are not failures; the result is the command's own.
func (d *Dispatcher) Dispatch(ctx context.Context, line string) (ok bool) {
	name, args := Split(line)
	if name == "" {
		return true
	}

	cmd, found := d.registry.Resolve(name)
	if !found {
		d.env.Console.Notice("Unknown command: %s", name)
		d.env.Console.Notice("Type 'help' to see available commands")
		return true
	}

	d.env.Console.Notice(Separator)
	defer d.env.Console.Notice(Separator)

	defer func() {
		if r := recover(); r != nil {
			log.Printf("command: panic in %q: %v\n%s", cmd.Name(), r, debug.Stack())
			d.env.Console.Error("Internal error in %s: %v", cmd.Name(), r)
			ok = false
		}
	}()

	return cmd.Execute(ctx, d.env, args)
}

// Complete returns candidate lines for a partially typed line.
func (d *Dispatcher) Complete(line string) []string {
	idx := strings.IndexFunc(line, isSpace)
	if idx < 0 {
		prefix := strings.ToLower(line)
		var out []string
		for _, name := range d.registry.Names() {
			if strings.HasPrefix(name, prefix) {
				out = append(out, name)
			}
		}
		return out
	}

	name := line[:idx]
	cmd, ok := d.registry.Resolve(name)
	if !ok {
		return nil
	}
	completer, ok := cmd.(Completer)
	if !ok {
		return nil
	}

	var out []string
	for _, c := range completer.Complete(d.env, line[idx+1:]) {
		out = append(out, name+" "+c)
	}
	return out
}

// Hint returns the inline usage hint once a known command name has been
// typed in full, and nothing otherwise.
func (d *Dispatcher) Hint(line string) string {
	if line == "" || strings.IndexFunc(line, isSpace) >= 0 {
		return ""
	}
	cmd, ok := d.registry.Resolve(line)
	if !ok {
		return ""
	}
	return cmd.Hint()
}

type SpanKind int

const (
	SpanCommand SpanKind = iota + 1
	SpanKey
	SpanValue
)

func (k SpanKind) String() string {
	switch k {
	case SpanCommand:
		return "command"
	case SpanKey:
		return "key"
	case SpanValue:
		return "value"
	}
	return fmt.Sprintf("SpanKind(%d)", int(k))
}

// Span marks line[Start:End] for styling.
type Span struct {
	Start int
	End   int
	Kind  SpanKind
}

// Highlight splits line into styled spans: a known command name, and for
// lines with a colon after the first space, the key before the colon and
// the value after it. Unstyled text has no span.
func (d *Dispatcher) Highlight(line string) []Span {
	var spans []Span

	space := strings.IndexFunc(line, isSpace)
	first := line
	if space >= 0 {
		first = line[:space]
	}
	if _, ok := d.registry.Resolve(first); ok && first != "" {
		spans = append(spans, Span{Start: 0, End: len(first), Kind: SpanCommand})
	}

	if space < 0 || space+1 >= len(line) {
		return spans
	}
	colon := strings.IndexByte(line[space:], ':')
	if colon < 0 {
		return spans
	}
	colon += space

	if colon > space+1 {
		spans = append(spans, Span{Start: space + 1, End: colon, Kind: SpanKey})
	}
	if colon+1 < len(line) {
		spans = append(spans, Span{Start: colon + 1, End: len(line), Kind: SpanValue})
	}
	return spans
}
