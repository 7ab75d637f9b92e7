package commands

import (
	"context"
	"fmt"

	"github.com/abdul-hamid-achik/lunarica/packages/core/command"
	"github.com/abdul-hamid-achik/lunarica/packages/importer"
)

type headersCommand struct {
	info
}

func newHeadersCommand() *headersCommand {
	return &headersCommand{info{
		name:        "headers",
		category:    CategoryHeaders,
		description: "Show all headers",
		hint:        "- List all headers",
		examples:    []string{"headers"},
	}}
}

func (c *headersCommand) Execute(_ context.Context, env *command.Env, _ string) bool {
	printHeaders(env)
	return true
}

func printHeaders(env *command.Env) {
	names := env.State.HeaderNames()
	if len(names) == 0 {
		env.Console.Notice("No headers set")
		return
	}

	headers := env.State.Headers()
	env.Console.Notice("Current headers:")
	for _, name := range names {
		fmt.Fprintf(env.Out(), "  %s: %s\n", name, headers[name])
	}
}

type headerCommand struct {
	info
}

func newHeaderCommand() *headerCommand {
	return &headerCommand{info{
		name:        "header",
		category:    CategoryHeaders,
		description: "Add or update a header",
		hint:        "<name>:<value> - Add or update a header",
		examples: []string{
			"header Content-Type:application/json",
			"header Authorization:Bearer token123",
		},
	}}
}

func (c *headerCommand) Execute(_ context.Context, env *command.Env, args string) bool {
	if args == "" {
		env.Console.Notice("Usage: header <name>:<value>")
		env.Console.Notice("Example: header Content-Type:application/json")
		return true
	}

	name, value, ok := splitPair(args, ":")
	if !ok || name == "" {
		env.Console.Warn("Invalid header format. Use 'header <name>:<value>'")
		env.Console.Notice("Example: header Content-Type:application/json")
		return true
	}

	env.State.SetHeader(name, value)
	env.Console.Success("Added header: %s: %s", name, value)
	return true
}

type removeHeaderCommand struct {
	info
}

func newRemoveHeaderCommand() *removeHeaderCommand {
	return &removeHeaderCommand{info{
		name:        "rm-header",
		category:    CategoryHeaders,
		description: "Remove a header",
		hint:        "<name> - Remove a header",
		examples:    []string{"rm-header Content-Type"},
	}}
}

func (c *removeHeaderCommand) Execute(_ context.Context, env *command.Env, args string) bool {
	if args == "" {
		env.Console.Notice("Usage: rm-header <name>")
		return true
	}

	if !env.State.RemoveHeader(args) {
		env.Console.Warn("Header not found: %s", args)
		return true
	}
	env.Console.Success("Removed header: %s", args)
	return true
}

func (c *removeHeaderCommand) Complete(env *command.Env, partial string) []string {
	return withPrefix(env.State.HeaderNames(), partial)
}

type loadHeadersCommand struct {
	info
}

func newLoadHeadersCommand() *loadHeadersCommand {
	return &loadHeadersCommand{info{
		name:        "load-headers",
		aliases:     []string{"load-header"},
		category:    CategoryHeaders,
		description: "Load headers from a file",
		hint:        "<filename> - Load headers from file (Key=Value format)",
		examples:    []string{"load-headers headers.txt"},
	}}
}

func (c *loadHeadersCommand) Execute(_ context.Context, env *command.Env, args string) bool {
	if args == "" {
		env.Console.Notice("Usage: load-headers <filename>")
		return true
	}

	text, enc, err := importer.ReadFileUTF8(args)
	if err != nil {
		env.Console.Error("Error: Could not open file %s", args)
		return true
	}
	if enc.Converted() {
		env.Console.Notice("Note: File was automatically converted from %s to UTF-8", enc)
	}

	headers, warnings := importer.ParseHeaders(text)
	for _, line := range warnings {
		env.Console.Warn("Warning: Skipping invalid line: %s", line)
	}
	for _, h := range headers {
		env.State.SetHeader(h.Name, h.Value)
	}

	env.Console.Success("Loaded %d headers from %s", len(headers), args)
	return true
}

func (c *loadHeadersCommand) Complete(_ *command.Env, partial string) []string {
	return completePath(partial)
}
