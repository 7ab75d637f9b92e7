package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/abdul-hamid-achik/lunarica/packages/core/command"
)

type clearParamsCommand struct {
	info
}

func newClearParamsCommand() *clearParamsCommand {
	return &clearParamsCommand{info{
		name:        "clear-params",
		category:    CategoryMisc,
		description: "Clear all parameters and headers",
		hint:        "- Clear all parameters and headers",
		examples:    []string{"clear-params"},
	}}
}

func (c *clearParamsCommand) Execute(_ context.Context, env *command.Env, _ string) bool {
	env.State.ClearHeaders()
	env.State.ClearQueryParams()
	env.State.ClearBodyParams()
	env.Console.Success("Cleared all headers, query parameters, and body parameters")
	return true
}

type timeoutCommand struct {
	info
}

func newTimeoutCommand() *timeoutCommand {
	return &timeoutCommand{info{
		name:        "timeout",
		category:    CategoryMisc,
		description: "Set connection and read timeouts",
		hint:        "<conn> <read> - Set connection and read timeouts in seconds",
		examples:    []string{"timeout", "timeout 5 10"},
	}}
}

func (c *timeoutCommand) Execute(_ context.Context, env *command.Env, args string) bool {
	if args == "" {
		env.Console.Notice("Current timeouts:")
		c.print(env)
		return true
	}

	fields := strings.Fields(args)
	if len(fields) < 2 {
		c.usage(env)
		return true
	}
	connect, err := strconv.Atoi(fields[0])
	if err != nil {
		c.usage(env)
		return true
	}
	read, err := strconv.Atoi(fields[1])
	if err != nil {
		c.usage(env)
		return true
	}

	if err := env.State.SetTimeouts(connect, read); err != nil {
		env.Console.Error("Error: Timeout values must be positive")
		return true
	}

	env.Console.Success("Timeouts set:")
	c.print(env)
	return true
}

func (c *timeoutCommand) usage(env *command.Env) {
	env.Console.Notice("Usage: timeout <connection_timeout> <read_timeout>")
	env.Console.Notice("  Both values are in seconds")
}

func (c *timeoutCommand) print(env *command.Env) {
	connect, read := env.State.Timeouts()
	env.Console.Notice("  Connection timeout: %d seconds", connect)
	env.Console.Notice("  Read timeout: %d seconds", read)
}

type paramsCommand struct {
	info
}

func newParamsCommand() *paramsCommand {
	return &paramsCommand{info{
		name:        "params",
		category:    CategoryMisc,
		description: "Show all parameters",
		hint:        "- Show all parameters",
		examples:    []string{"params"},
	}}
}

func (c *paramsCommand) Execute(_ context.Context, env *command.Env, _ string) bool {
	env.Console.Notice("Base URL: %s", env.State.BaseURL())
	fmt.Fprintln(env.Out())
	printHeaders(env)
	fmt.Fprintln(env.Out())
	printBodyParams(env)
	fmt.Fprintln(env.Out())
	printQueryParams(env)
	return true
}

// clearSequence homes the cursor and erases the screen.
const clearSequence = "\x1b[H\x1b[2J"

type clearScreenCommand struct {
	info
}

func newClearScreenCommand() *clearScreenCommand {
	return &clearScreenCommand{info{
		name:        "clear",
		aliases:     []string{"cls"},
		category:    CategoryMisc,
		description: "Clear the console screen",
		hint:        "- Clear the console screen",
		examples:    []string{"clear", "cls"},
	}}
}

func (c *clearScreenCommand) Execute(_ context.Context, env *command.Env, _ string) bool {
	if env.ClearScreen != nil {
		env.ClearScreen()
	} else {
		fmt.Fprint(env.Out(), clearSequence)
	}
	env.Console.Notice("Console cleared")
	return true
}

type functionsCommand struct {
	info
	funcs func() []string
}

func newFunctionsCommand(deps Deps) *functionsCommand {
	return &functionsCommand{
		info: info{
			name:        "functions",
			category:    CategoryMisc,
			description: "List dynamic value placeholders",
			hint:        "- List {{$name(...)}} placeholders usable in values",
			examples:    []string{"functions", "body id={{$uuid()}}"},
		},
		funcs: deps.Assembler.Functions,
	}
}

func (c *functionsCommand) Execute(_ context.Context, env *command.Env, _ string) bool {
	names := c.funcs()
	if len(names) == 0 {
		env.Console.Notice("Dynamic values are disabled")
		return true
	}
	env.Console.Notice("Dynamic values (expanded when a request is sent):")
	for _, name := range names {
		fmt.Fprintf(env.Out(), "  {{$%s()}}\n", name)
	}
	return true
}
