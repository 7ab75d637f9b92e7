package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/abdul-hamid-achik/lunarica/packages/core/command"
)

type exitCommand struct {
	info
}

func newExitCommand() *exitCommand {
	return &exitCommand{info{
		name:        "exit",
		aliases:     []string{"quit", "q"},
		category:    CategorySystem,
		description: "Exit the application",
		hint:        "- Exit the application",
		examples:    []string{"exit", "quit"},
	}}
}

func (c *exitCommand) Execute(_ context.Context, env *command.Env, _ string) bool {
	env.Console.Notice("Goodbye!")
	env.State.SetShouldExit(true)
	return true
}

type helpCommand struct {
	info
}

func newHelpCommand() *helpCommand {
	return &helpCommand{info{
		name:        "help",
		category:    CategorySystem,
		description: "Show help information for available commands",
		hint:        "[command] - Show help information",
		examples:    []string{"help", "help get"},
	}}
}

func (c *helpCommand) Execute(_ context.Context, env *command.Env, args string) bool {
	if args == "" {
		c.showAll(env)
	} else {
		c.showCommand(env, args)
	}
	return true
}

func (c *helpCommand) showAll(env *command.Env) {
	out := env.Out()
	fmt.Fprint(out, "Available commands:\n\n")

	for _, category := range env.Registry.Categories() {
		fmt.Fprintf(out, "--- %s ---\n", strings.ToUpper(category))
		for _, cmd := range env.Registry.CommandsIn(category) {
			fmt.Fprintf(out, "  %-25s- %s\n", cmd.Name(), cmd.Description())
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintln(out, "For more detailed help on a specific command, type 'help <command>'")
}

func (c *helpCommand) showCommand(env *command.Env, name string) {
	cmd, ok := env.Registry.Resolve(name)
	if !ok {
		env.Console.Notice("Unknown command: %s", name)
		return
	}

	out := env.Out()
	fmt.Fprintf(out, "Command: %s\n", cmd.Name())
	if aliases := cmd.Aliases(); len(aliases) > 0 {
		fmt.Fprintf(out, "Aliases: %s\n", strings.Join(aliases, ", "))
	}
	fmt.Fprintf(out, "Category: %s\n", cmd.Category())
	fmt.Fprintf(out, "Description: %s\n", cmd.Description())
	fmt.Fprintf(out, "\nUsage: %s %s\n", cmd.Name(), cmd.Hint())

	if examples := cmd.Examples(); len(examples) > 0 {
		fmt.Fprint(out, "\nExamples:\n")
		for _, example := range examples {
			fmt.Fprintf(out, "  %s\n", example)
		}
	}
}

func (c *helpCommand) Complete(env *command.Env, partial string) []string {
	return withPrefix(env.Registry.Names(), strings.ToLower(partial))
}

type cdCommand struct {
	info
}

func newCdCommand() *cdCommand {
	return &cdCommand{info{
		name:        "cd",
		category:    CategorySystem,
		description: "Change the current URL",
		hint:        "<url> - Change the current URL",
		examples:    []string{"cd https://api.example.com"},
	}}
}

func (c *cdCommand) Execute(_ context.Context, env *command.Env, args string) bool {
	if args == "" {
		env.Console.Notice("Current URL: %s", env.State.BaseURL())
		return true
	}
	env.State.SetBaseURL(args)
	env.Console.Notice("Current URL set to: %s", env.State.BaseURL())
	return true
}
