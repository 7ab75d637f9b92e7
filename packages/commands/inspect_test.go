package commands

import (
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newJSONServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Request-Id", "req-7")
		_, _ = w.Write([]byte(`{"data":{"items":[{"id":11,"name":"first"},{"id":12,"name":"second"}]}}`))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestLastCommand(t *testing.T) {
	h := newHarness(t)

	assert.Contains(t, h.run("last"), "No response yet. Send a request first.")

	server := newJSONServer(t)
	h.run("cd " + server.URL)
	h.run("get /items")

	tests := []struct {
		name string
		line string
		want string
	}{
		{name: "full response", line: "last", want: "STATUS: 200"},
		{name: "status", line: "last status", want: "200\n"},
		{name: "header", line: "last header x-request-id", want: "req-7\n"},
		{name: "path", line: "last data.items.1.name", want: "second\n"},
		{name: "count", line: "last data.items.#", want: "2\n"},
		{name: "body object", line: "last body data.items.0", want: `"id": 11`},
		{name: "missing", line: "last data.nothing", want: "No value at data.nothing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, h.run(tt.line), tt.want)
		})
	}

	assert.Equal(t, []string{"last header"}, h.dispatcher.Complete("last he"))
}

func TestStatsCommand(t *testing.T) {
	h := newHarness(t)

	assert.Contains(t, h.run("stats"), "No requests recorded yet")

	server := newJSONServer(t)
	h.run("cd " + server.URL)
	h.run("get /a")
	h.run("get /b")
	h.run("post /c")

	out := h.run("stats")
	assert.Contains(t, out, "METHOD")
	assert.Regexp(t, `ALL\s+3\s+0`, out)
	assert.Regexp(t, `GET\s+2\s+0`, out)
	assert.Regexp(t, `POST\s+1\s+0`, out)

	assert.Contains(t, h.run("stats reset"), "Statistics reset")
	assert.Contains(t, h.run("stats"), "No requests recorded yet")
	assert.Contains(t, h.run("stats bogus"), "Usage: stats [reset]")
}

func TestSchemaCommand(t *testing.T) {
	h := newHarness(t)

	assert.Contains(t, h.run("schema"), "Usage: schema <filename>")

	valid := writeFile(t, "ok.schema.json", []byte(`{
		"type": "object",
		"required": ["data"],
		"properties": {"data": {"type": "object"}}
	}`))
	assert.Contains(t, h.run("schema "+valid), "No response yet")

	server := newJSONServer(t)
	h.run("cd " + server.URL)
	h.run("get /")

	assert.Contains(t, h.run("schema "+valid), "Response matches schema "+valid)

	invalid := writeFile(t, "bad.schema.json", []byte(`{"type": "object", "required": ["missing"]}`))
	out := h.run("schema " + invalid)
	assert.Contains(t, out, "Response does not match schema "+invalid)
	assert.Contains(t, out, "missing")

	assert.Contains(t, h.run("schema /no/such/schema.json"), "Error:")
}

func TestStatsFormatLatency(t *testing.T) {
	assert.Equal(t, "-", formatLatency(0))
	assert.Equal(t, "750µs", formatLatency(750_000))
	assert.Equal(t, "12.5ms", formatLatency(12_500_000))
}
