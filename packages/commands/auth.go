package commands

import (
	"context"
	"encoding/base64"
	"strings"

	"github.com/abdul-hamid-achik/lunarica/packages/core/command"
)

var authMethods = []string{"apikey", "basic", "bearer"}

type authCommand struct {
	info
}

func newAuthCommand() *authCommand {
	return &authCommand{info{
		name:        "auth",
		category:    CategoryAuth,
		description: "Manage authentication",
		hint:        "[method] [args] - Set authentication method",
		examples: []string{
			"auth",
			"auth basic username password",
			"auth bearer token123",
			"auth apikey X-API-KEY abcdef123456",
		},
	}}
}

func (c *authCommand) Execute(_ context.Context, env *command.Env, args string) bool {
	if args == "" {
		env.Console.Notice("Available authentication methods:")
		env.Console.Notice("  basic <username> <password> - Basic authentication")
		env.Console.Notice("  bearer <token> - Bearer token authentication")
		env.Console.Notice("  apikey <name> <value> - API key authentication")
		return true
	}

	method, rest := command.Split(args)

	switch method {
	case "basic":
		c.basic(env, rest)
	case "bearer":
		c.bearer(env, rest)
	case "apikey":
		c.apiKey(env, rest)
	default:
		env.Console.Warn("Unknown authentication method: %s", method)
		env.Console.Notice("Use 'auth' without arguments to see available methods")
	}
	return true
}

func (c *authCommand) basic(env *command.Env, args string) {
	fields := strings.Fields(args)
	if len(fields) < 2 {
		env.Console.Notice("Usage: auth basic <username> <password>")
		if len(fields) == 1 {
			env.Console.Notice("Both username and password are required")
		}
		return
	}

	username, password := fields[0], fields[1]
	encoded := base64.StdEncoding.EncodeToString([]byte(username + ":" + password))
	env.State.SetHeader("Authorization", "Basic "+encoded)
	env.Console.Success("Added Basic authentication header for user: %s", username)
}

func (c *authCommand) bearer(env *command.Env, args string) {
	if args == "" {
		env.Console.Notice("Usage: auth bearer <token>")
		return
	}
	env.State.SetHeader("Authorization", "Bearer "+args)
	env.Console.Success("Added Bearer token authentication header")
}

func (c *authCommand) apiKey(env *command.Env, args string) {
	fields := strings.Fields(args)
	if len(fields) < 2 {
		env.Console.Notice("Usage: auth apikey <name> <value>")
		if len(fields) == 1 {
			env.Console.Notice("Both name and value are required")
		} else {
			env.Console.Notice("Examples:")
			env.Console.Notice("  auth apikey X-API-KEY mySecretApiKey")
			env.Console.Notice("  auth apikey api_key mySecretApiKey")
		}
		return
	}

	env.State.SetHeader(fields[0], fields[1])
	env.Console.Success("Added API key header: %s: %s", fields[0], fields[1])
}

func (c *authCommand) Complete(_ *command.Env, partial string) []string {
	if strings.ContainsAny(partial, " \t") {
		return nil
	}
	return withPrefix(authMethods, strings.ToLower(partial))
}
