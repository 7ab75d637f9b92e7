package command

import (
	"context"
	"io"

	"github.com/abdul-hamid-achik/lunarica/packages/core/session"
	"github.com/abdul-hamid-achik/lunarica/packages/output"
)

// Command is a single console command.
type Command interface {
	Name() string
	Aliases() []string
	Category() string
	Description() string
	// Hint is the usage shown inline once the command name has been typed.
	Hint() string
	Examples() []string
	// Execute runs the command with the trimmed remainder of the line and
	// reports whether it succeeded.
	Execute(ctx context.Context, env *Env, args string) bool
}

// Completer is implemented by commands that can complete their arguments.
type Completer interface {
	Complete(env *Env, partial string) []string
}

// Env is what every command receives at dispatch time.
type Env struct {
	State    *session.State
	Console  *output.Console
	Registry *Registry
	// ClearScreen, when set, replaces writing the clear-screen sequence to Out.
	ClearScreen func()
}

// Out returns the writer command output should go to.
func (e *Env) Out() io.Writer {
	return e.Console.Writer()
}
