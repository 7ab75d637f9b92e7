package commands

import (
	"context"
	"strings"

	"github.com/abdul-hamid-achik/lunarica/packages/core/command"
	"github.com/abdul-hamid-achik/lunarica/packages/importer"
)

type curlCommand struct {
	info
}

func newCurlCommand() *curlCommand {
	return &curlCommand{info{
		name:        "curl",
		category:    CategoryMisc,
		description: "Load a curl command into the session",
		hint:        "<curl arguments> - Load URL, headers, query and body from a curl command",
		examples: []string{
			"curl https://api.example.com/users?page=2",
			`curl -X POST https://api.example.com/users -H "Content-Type: application/json" -d '{"name":"john"}'`,
		},
	}}
}

// Execute replaces the base URL, query parameters and, when the payload
// splits into fields, the body parameters. Headers are merged.
func (c *curlCommand) Execute(_ context.Context, env *command.Env, args string) bool {
	if args == "" {
		env.Console.Notice("Usage: curl <curl arguments>")
		env.Console.Notice("Example: curl -H \"Accept: application/json\" https://api.example.com/users")
		return true
	}

	req, err := importer.ParseCurl(args)
	if err != nil {
		env.Console.Error("Error: Could not parse curl command: %v", err)
		return true
	}

	env.State.SetBaseURL(req.BaseURL)
	for name, value := range req.Headers {
		env.State.SetHeader(name, value)
	}
	env.State.ClearQueryParams()
	for name, values := range req.QueryParams {
		for _, v := range values {
			env.State.AddQueryParam(name, v)
		}
	}

	switch {
	case req.BodyParams != nil:
		env.State.ReplaceBodyParams(req.BodyParams)
	case req.Body != "":
		env.Console.Warn("Warning: Body is not a JSON object or form data and was not loaded")
	}

	env.Console.Success("Loaded curl request: %s %s", req.Method, req.BaseURL)
	env.Console.Notice("  %d headers, %d query parameters, %d body parameters",
		len(req.Headers), len(req.QueryParams), len(req.BodyParams))
	if req.Insecure || req.FollowRedirects {
		env.Console.Notice("Note: -k and -L are client settings; use the --insecure and --max-redirects flags instead")
	}
	env.Console.Notice("Send it with: %s", strings.ToLower(req.Method))
	return true
}
