package commands

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/abdul-hamid-achik/lunarica/packages/assembler"
	"github.com/abdul-hamid-achik/lunarica/packages/core/command"
	"github.com/abdul-hamid-achik/lunarica/packages/http"
	"github.com/abdul-hamid-achik/lunarica/packages/stats"
)

// requestCommand sends one HTTP method against the session's base URL.
type requestCommand struct {
	info
	method    string
	sender    Sender
	assembler *assembler.Assembler
	stats     *stats.Recorder
}

func newRequestCommand(method string, deps Deps) *requestCommand {
	name := strings.ToLower(method)
	examples := []string{name + " /users", name + " users/1"}
	if method == "GET" {
		examples = []string{"get /users", "get /api/products?id=123", "get https://httpbin.org/get"}
	}

	return &requestCommand{
		info: info{
			name:        name,
			category:    CategoryNetwork,
			description: "Make a " + method + " request to the specified path",
			hint:        "<path> - Make a " + method + " request",
			examples:    examples,
		},
		method:    method,
		sender:    deps.Sender,
		assembler: deps.Assembler,
		stats:     deps.Stats,
	}
}

func (c *requestCommand) Execute(ctx context.Context, env *command.Env, args string) bool {
	req := c.assembler.Assemble(env.State, c.method, args)
	env.Console.FormatRequest(c.method, req.URL)

	resp, err := c.sender.Send(ctx, req)
	if err != nil {
		var te *http.TransportError
		timeout := errors.As(err, &te) && te.Kind == http.ErrorReadTimeout
		c.stats.RecordError(c.method, timeout)

		log.Printf("network: %s %s failed: %v", c.method, req.URL, err)
		env.Console.FormatTransportError(err)
		return true
	}

	c.stats.Record(c.method, resp.Duration)
	env.State.SetLastResponse(resp)
	env.Console.FormatResponse(resp)
	return true
}
