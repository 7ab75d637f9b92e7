package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/abdul-hamid-achik/lunarica/packages/capture"
	"github.com/abdul-hamid-achik/lunarica/packages/core/command"
	"github.com/abdul-hamid-achik/lunarica/packages/schema"
	"github.com/abdul-hamid-achik/lunarica/packages/stats"
	"github.com/tidwall/gjson"
)

const noResponse = "No response yet. Send a request first."

type lastCommand struct {
	info
}

func newLastCommand() *lastCommand {
	return &lastCommand{info{
		name:        "last",
		category:    CategoryInspect,
		description: "Show the last response or a value from it",
		hint:        "[status|duration|header <name>|<path>] - Inspect the last response",
		examples: []string{
			"last",
			"last status",
			"last header Content-Type",
			"last data.items.0.id",
			"last data.items.#",
		},
	}}
}

func (c *lastCommand) Execute(_ context.Context, env *command.Env, args string) bool {
	resp := env.State.LastResponse()
	if resp == nil {
		env.Console.Notice(noResponse)
		return true
	}

	if args == "" {
		env.Console.FormatResponse(resp)
		return true
	}

	q := capture.ParseQuery(args)
	value, ok := capture.NewExtractor(resp).Extract(q)
	if !ok {
		env.Console.Warn("No value at %s", args)
		return true
	}

	if q.Source == capture.SourceBody && gjson.Valid(value) {
		fmt.Fprintln(env.Out(), env.Console.Renderer().Render([]byte(value)))
		return true
	}
	fmt.Fprintln(env.Out(), value)
	return true
}

func (c *lastCommand) Complete(env *command.Env, partial string) []string {
	return withPrefix([]string{"body", "duration", "header", "status"}, partial)
}

type statsCommand struct {
	info
	recorder *stats.Recorder
}

func newStatsCommand(recorder *stats.Recorder) *statsCommand {
	return &statsCommand{
		info: info{
			name:        "stats",
			category:    CategoryInspect,
			description: "Show latency statistics for this session",
			hint:        "[reset] - Show or reset latency statistics",
			examples:    []string{"stats", "stats reset"},
		},
		recorder: recorder,
	}
}

func (c *statsCommand) Execute(_ context.Context, env *command.Env, args string) bool {
	switch args {
	case "":
	case "reset":
		c.recorder.Reset()
		env.Console.Success("Statistics reset")
		return true
	default:
		env.Console.Notice("Usage: stats [reset]")
		return true
	}

	rep := c.recorder.Report()
	if rep.Overall.Total == 0 {
		env.Console.Notice("No requests recorded yet")
		return true
	}

	out := env.Out()
	fmt.Fprintf(out, "%-8s %6s %6s %9s %9s %9s %9s %9s %9s\n",
		"METHOD", "COUNT", "ERRORS", "MIN", "MEAN", "P50", "P95", "P99", "MAX")
	for _, s := range append([]stats.Summary{rep.Overall}, rep.ByMethod...) {
		fmt.Fprintf(out, "%-8s %6d %6d %9s %9s %9s %9s %9s %9s\n",
			s.Name, s.Total, s.Errors,
			formatLatency(s.Min), formatLatency(s.Mean), formatLatency(s.P50),
			formatLatency(s.P95), formatLatency(s.P99), formatLatency(s.Max))
	}
	if rep.Overall.Timeouts > 0 {
		env.Console.Warn("%d request(s) timed out", rep.Overall.Timeouts)
	}
	return true
}

func (c *statsCommand) Complete(_ *command.Env, partial string) []string {
	return withPrefix([]string{"reset"}, partial)
}

func formatLatency(d time.Duration) string {
	if d == 0 {
		return "-"
	}
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	}
	return fmt.Sprintf("%.1fms", float64(d.Microseconds())/1000)
}

type schemaCommand struct {
	info
}

func newSchemaCommand() *schemaCommand {
	return &schemaCommand{info{
		name:        "schema",
		category:    CategoryInspect,
		description: "Validate the last response body against a JSON Schema file",
		hint:        "<filename> - Validate the last response against a JSON Schema",
		examples:    []string{"schema user.schema.json"},
	}}
}

func (c *schemaCommand) Execute(_ context.Context, env *command.Env, args string) bool {
	if args == "" {
		env.Console.Notice("Usage: schema <filename>")
		return true
	}

	resp := env.State.LastResponse()
	if resp == nil {
		env.Console.Notice(noResponse)
		return true
	}

	res, err := schema.ValidateFile(args, resp.Body)
	if err != nil {
		env.Console.Error("Error: %v", err)
		return true
	}

	if res.Valid {
		env.Console.Success("Response matches schema %s", args)
		return true
	}

	env.Console.Error("Response does not match schema %s:", args)
	for _, e := range res.Errors {
		fmt.Fprintf(env.Out(), "  - %s\n", e)
	}
	return true
}

func (c *schemaCommand) Complete(_ *command.Env, partial string) []string {
	return completePath(partial)
}
