package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/abdul-hamid-achik/lunarica/packages/assembler"
	"github.com/abdul-hamid-achik/lunarica/packages/core/command"
	"github.com/abdul-hamid-achik/lunarica/packages/importer"
)

type bodyCommand struct {
	info
}

func newBodyCommand() *bodyCommand {
	return &bodyCommand{info{
		name:        "body",
		category:    CategoryBody,
		description: "Add or update a body parameter",
		hint:        "<name>=<value> - Add or update a body parameter",
		examples: []string{
			"body username=john",
			"body active=true",
			"body score=42",
		},
	}}
}

func (c *bodyCommand) Execute(_ context.Context, env *command.Env, args string) bool {
	if args == "" {
		env.Console.Notice("Usage: body <name>=<value>")
		env.Console.Notice("Example: body username=john")
		return true
	}

	name, value, ok := splitPair(args, "=")
	if !ok || name == "" {
		env.Console.Warn("Invalid body parameter format. Use 'body <name>=<value>'")
		env.Console.Notice("Example: body username=john")
		return true
	}

	env.State.SetBodyParam(name, value)

	switch assembler.Coerce(value).(type) {
	case int64, float64:
		env.Console.Success("Added body parameter: %s = %s (number)", name, value)
	case bool, nil:
		env.Console.Success("Added body parameter: %s = %s (special value)", name, value)
	default:
		env.Console.Success("Added body parameter: %s = %s", name, value)
	}
	return true
}

type bodyParamsCommand struct {
	info
}

func newBodyParamsCommand() *bodyParamsCommand {
	return &bodyParamsCommand{info{
		name:        "body-params",
		category:    CategoryBody,
		description: "Show all body parameters",
		hint:        "- Show all body parameters",
		examples:    []string{"body-params"},
	}}
}

func (c *bodyParamsCommand) Execute(_ context.Context, env *command.Env, _ string) bool {
	printBodyParams(env)
	return true
}

func printBodyParams(env *command.Env) {
	names := env.State.BodyParamNames()
	if len(names) == 0 {
		env.Console.Notice("No body parameters set")
		return
	}

	params := env.State.BodyParams()
	env.Console.Notice("Current body parameters:")
	for _, name := range names {
		fmt.Fprintf(env.Out(), "  %s = %s\n", name, params[name])
	}
}

type removeBodyCommand struct {
	info
}

func newRemoveBodyCommand() *removeBodyCommand {
	return &removeBodyCommand{info{
		name:        "rm-body",
		category:    CategoryBody,
		description: "Remove a body parameter",
		hint:        "<name> - Remove a body parameter",
		examples:    []string{"rm-body username"},
	}}
}

func (c *removeBodyCommand) Execute(_ context.Context, env *command.Env, args string) bool {
	if args == "" {
		env.Console.Notice("Usage: rm-body <name>")
		return true
	}

	if !env.State.RemoveBodyParam(args) {
		env.Console.Warn("Body parameter not found: %s", args)
		return true
	}
	env.Console.Success("Removed body parameter: %s", args)
	return true
}

func (c *removeBodyCommand) Complete(env *command.Env, partial string) []string {
	return withPrefix(env.State.BodyParamNames(), partial)
}

type clearBodyCommand struct {
	info
}

func newClearBodyCommand() *clearBodyCommand {
	return &clearBodyCommand{info{
		name:        "clear-body",
		category:    CategoryBody,
		description: "Clear all body parameters",
		hint:        "- Clear all body parameters",
		examples:    []string{"clear-body"},
	}}
}

func (c *clearBodyCommand) Execute(_ context.Context, env *command.Env, _ string) bool {
	env.State.ClearBodyParams()
	env.Console.Success("Cleared all body parameters")
	return true
}

type loadBodyCommand struct {
	info
}

func newLoadBodyCommand() *loadBodyCommand {
	return &loadBodyCommand{info{
		name:        "load-body",
		category:    CategoryBody,
		description: "Load body parameters from a JSON or YAML file",
		hint:        "<filename> - Load body parameters from a JSON or YAML file",
		examples:    []string{"load-body request.json", "load-body request.yaml"},
	}}
}

func (c *loadBodyCommand) Execute(_ context.Context, env *command.Env, args string) bool {
	if args == "" {
		env.Console.Notice("Usage: load-body <filename>")
		return true
	}

	text, enc, err := importer.ReadFileUTF8(args)
	if err != nil {
		env.Console.Error("Error: Could not open or read file %s", args)
		return true
	}
	if enc.Converted() {
		env.Console.Notice("Note: File was automatically converted from %s to UTF-8", enc)
	}

	params, err := importer.ParseBody(text, args)
	if err != nil {
		reportBodyError(env, err)
		return true
	}

	env.State.ReplaceBodyParams(params)
	env.Console.Success("Loaded %d body parameters from %s", len(params), args)
	return true
}

func reportBodyError(env *command.Env, err error) {
	var pe *importer.ParseError
	switch {
	case errors.Is(err, importer.ErrEmptyFile):
		env.Console.Error("Error: File is empty")
	case errors.Is(err, importer.ErrNotObject):
		env.Console.Error("Error: JSON file must contain an object")
	case errors.As(err, &pe):
		env.Console.Error("Error parsing JSON data: %v", pe.Err)
		env.Console.Notice("First 50 characters of file: %s", pe.Excerpt)
		env.Console.Notice("First 20 bytes (hex): %s", pe.Hex)
	default:
		env.Console.Error("Error loading file: %v", err)
	}
}

func (c *loadBodyCommand) Complete(_ *command.Env, partial string) []string {
	return completePath(partial)
}
