package commands

import (
	"context"
	"fmt"

	"github.com/abdul-hamid-achik/lunarica/packages/core/command"
)

type queryCommand struct {
	info
}

func newQueryCommand() *queryCommand {
	return &queryCommand{info{
		name:        "query",
		category:    CategoryQuery,
		description: "Add a query parameter",
		hint:        "<name>=<value> - Add a query parameter",
		examples:    []string{"query page=1", "query sort=asc"},
	}}
}

func (c *queryCommand) Execute(_ context.Context, env *command.Env, args string) bool {
	if args == "" {
		env.Console.Notice("Usage: query <name>=<value>")
		env.Console.Notice("Example: query page=1")
		return true
	}

	name, value, ok := splitPair(args, "=")
	if !ok || name == "" {
		env.Console.Warn("Invalid query parameter format. Use 'query <name>=<value>'")
		env.Console.Notice("Example: query page=1")
		return true
	}

	env.State.AddQueryParam(name, value)
	env.Console.Success("Added query parameter: %s=%s", name, value)
	return true
}

type queryParamsCommand struct {
	info
}

func newQueryParamsCommand() *queryParamsCommand {
	return &queryParamsCommand{info{
		name:        "query-params",
		category:    CategoryQuery,
		description: "Show all query parameters",
		hint:        "- Show all query parameters",
		examples:    []string{"query-params"},
	}}
}

func (c *queryParamsCommand) Execute(_ context.Context, env *command.Env, _ string) bool {
	printQueryParams(env)
	return true
}

func printQueryParams(env *command.Env) {
	names := env.State.QueryParamNames()
	if len(names) == 0 {
		env.Console.Notice("No query parameters set")
		return
	}

	params := env.State.QueryParams()
	env.Console.Notice("Current query parameters:")
	for _, name := range names {
		for _, value := range params[name] {
			fmt.Fprintf(env.Out(), "  %s = %s\n", name, value)
		}
	}
}

type removeQueryCommand struct {
	info
}

func newRemoveQueryCommand() *removeQueryCommand {
	return &removeQueryCommand{info{
		name:        "rm-query",
		category:    CategoryQuery,
		description: "Remove a query parameter",
		hint:        "<name> - Remove a query parameter",
		examples:    []string{"rm-query page"},
	}}
}

func (c *removeQueryCommand) Execute(_ context.Context, env *command.Env, args string) bool {
	if args == "" {
		env.Console.Notice("Usage: rm-query <name>")
		return true
	}

	if !env.State.RemoveQueryParam(args) {
		env.Console.Warn("Query parameter not found: %s", args)
		return true
	}
	env.Console.Success("Removed query parameter: %s", args)
	return true
}

func (c *removeQueryCommand) Complete(env *command.Env, partial string) []string {
	return withPrefix(env.State.QueryParamNames(), partial)
}
