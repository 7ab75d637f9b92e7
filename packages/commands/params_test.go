package commands

import (
	"bytes"
	"context"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/abdul-hamid-achik/lunarica/packages/core/command"
	"github.com/abdul-hamid-achik/lunarica/packages/core/session"
	"github.com/abdul-hamid-achik/lunarica/packages/http"
	"github.com/abdul-hamid-achik/lunarica/packages/output"
	"github.com/stretchr/testify/assert"
)

func TestHeaderCommands(t *testing.T) {
	h := newHarness(t)

	assert.Contains(t, h.run("headers"), "No headers set")
	assert.Contains(t, h.run("header"), "Usage: header <name>:<value>")
	assert.Contains(t, h.run("header no-colon"), "Invalid header format")

	out := h.run("header  X-Trace :  abc:def ")
	assert.Contains(t, out, "Added header: X-Trace: abc:def")
	assert.Equal(t, "abc:def", h.state.Headers()["X-Trace"])

	h.run("header Accept:application/json")
	out = h.run("headers")
	assert.Contains(t, out, "Current headers:\n  Accept: application/json\n  X-Trace: abc:def\n")

	assert.Equal(t, []string{"rm-header X-Trace"}, h.dispatcher.Complete("rm-header X"))

	assert.Contains(t, h.run("rm-header X-Trace"), "Removed header: X-Trace")
	assert.Contains(t, h.run("rm-header X-Trace"), "Header not found: X-Trace")
	assert.NotContains(t, h.state.Headers(), "X-Trace")
}

func TestBodyCommands(t *testing.T) {
	h := newHarness(t)

	assert.Contains(t, h.run("body-params"), "No body parameters set")
	assert.Contains(t, h.run("body nope"), "Invalid body parameter format")

	assert.Contains(t, h.run("body score=42"), "Added body parameter: score = 42 (number)")
	assert.Contains(t, h.run("body active=true"), "Added body parameter: active = true (special value)")
	out := h.run("body name = john doe")
	assert.Contains(t, out, "Added body parameter: name = john doe\n")

	assert.Contains(t, h.run("body-params"), "  active = true\n  name = john doe\n  score = 42\n")

	assert.Contains(t, h.run("rm-body score"), "Removed body parameter: score")
	assert.Contains(t, h.run("rm-body score"), "Body parameter not found: score")

	assert.Contains(t, h.run("clear-body"), "Cleared all body parameters")
	assert.Empty(t, h.state.BodyParams())
}

func TestQueryCommands(t *testing.T) {
	h := newHarness(t)

	assert.Contains(t, h.run("query-params"), "No query parameters set")
	assert.Contains(t, h.run("query bad"), "Invalid query parameter format")

	assert.Contains(t, h.run("query sort=asc"), "Added query parameter: sort=asc")
	h.run("query sort=desc")
	assert.Equal(t, []string{"asc", "desc"}, h.state.QueryParams()["sort"])

	assert.Contains(t, h.run("query-params"), "  sort = asc\n  sort = desc\n")
	assert.Equal(t, []string{"rm-query sort"}, h.dispatcher.Complete("rm-query s"))

	assert.Contains(t, h.run("rm-query sort"), "Removed query parameter: sort")
	assert.Contains(t, h.run("rm-query sort"), "Query parameter not found: sort")
}

func TestAuthCommand(t *testing.T) {
	h := newHarness(t)

	assert.Contains(t, h.run("auth"), "Available authentication methods:")

	assert.Contains(t, h.run("auth basic john secret"), "Added Basic authentication header for user: john")
	want := "Basic " + base64.StdEncoding.EncodeToString([]byte("john:secret"))
	assert.Equal(t, want, h.state.Headers()["Authorization"])

	assert.Contains(t, h.run("auth basic john"), "Both username and password are required")

	h.run("auth BEARER abc.def")
	assert.Equal(t, "Bearer abc.def", h.state.Headers()["Authorization"])

	assert.Contains(t, h.run("auth apikey X-API-KEY k123"), "Added API key header: X-API-KEY: k123")
	assert.Equal(t, "k123", h.state.Headers()["X-API-KEY"])
	assert.Contains(t, h.run("auth apikey"), "Usage: auth apikey <name> <value>")

	assert.Contains(t, h.run("auth digest x"), "Unknown authentication method: digest")

	assert.Equal(t, []string{"auth basic", "auth bearer"}, h.dispatcher.Complete("auth b"))
}

func TestMiscCommands(t *testing.T) {
	h := newHarness(t)

	t.Run("timeout", func(t *testing.T) {
		out := h.run("timeout")
		assert.Contains(t, out, "Connection timeout: 3 seconds")
		assert.Contains(t, out, "Read timeout: 5 seconds")

		out = h.run("timeout 10 20")
		assert.Contains(t, out, "Timeouts set:")
		connect, read := h.state.Timeouts()
		assert.Equal(t, 10, connect)
		assert.Equal(t, 20, read)

		assert.Contains(t, h.run("timeout 0 5"), "Error: Timeout values must be positive")
		assert.Contains(t, h.run("timeout a b"), "Usage: timeout <connection_timeout> <read_timeout>")
		assert.Contains(t, h.run("timeout 4"), "Usage: timeout")

		connect, read = h.state.Timeouts()
		assert.Equal(t, 10, connect)
		assert.Equal(t, 20, read)
	})

	t.Run("params and clear-params", func(t *testing.T) {
		h.run("header A:1")
		h.run("body b=2")
		h.run("query c=3")

		out := h.run("params")
		assert.Contains(t, out, "Base URL: http://localhost:8000")
		assert.Contains(t, out, "  A: 1")
		assert.Contains(t, out, "  b = 2")
		assert.Contains(t, out, "  c = 3")

		assert.Contains(t, h.run("clear-params"), "Cleared all headers, query parameters, and body parameters")
		assert.Empty(t, h.state.Headers())
		assert.Empty(t, h.state.BodyParams())
		assert.Empty(t, h.state.QueryParams())
	})

	t.Run("functions", func(t *testing.T) {
		out := h.run("functions")
		assert.Contains(t, out, "Dynamic values (expanded when a request is sent):")
		assert.Contains(t, out, "  {{$uuid()}}")
		assert.Less(t, strings.Index(out, "{{$base64()}}"), strings.Index(out, "{{$uuid()}}"))
	})

	t.Run("functions disabled", func(t *testing.T) {
		var buf bytes.Buffer
		reg := command.NewRegistry()
		Register(reg, Deps{Sender: http.NewClient()})
		env := &command.Env{
			State:   session.New(),
			Console: output.NewConsole(output.WithWriter(&buf), output.WithNoColor(true)),
		}

		command.NewDispatcher(reg, env).Dispatch(context.Background(), "functions")
		assert.Contains(t, buf.String(), "Dynamic values are disabled")
	})

	t.Run("clear screen", func(t *testing.T) {
		out := h.run("cls")
		assert.Contains(t, out, clearSequence)
		assert.Contains(t, out, "Console cleared")

		called := false
		h.dispatcher.Env().ClearScreen = func() { called = true }
		defer func() { h.dispatcher.Env().ClearScreen = nil }()

		out = h.run("clear")
		assert.True(t, called)
		assert.NotContains(t, out, clearSequence)
	})
}
