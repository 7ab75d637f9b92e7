package commands

import (
	"encoding/json"
	"io"
	"net"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captured struct {
	method      string
	uri         string
	contentType string
	auth        string
	body        string
}

func newEchoServer(t *testing.T, got *captured) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		body, _ := io.ReadAll(r.Body)
		*got = captured{
			method:      r.Method,
			uri:         r.URL.RequestURI(),
			contentType: r.Header.Get("Content-Type"),
			auth:        r.Header.Get("Authorization"),
			body:        string(body),
		}
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Served-By", "echo")
		_, _ = w.Write([]byte(`{"ok":true,"items":[1,2]}`))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestRequestCommand_Get(t *testing.T) {
	var got captured
	server := newEchoServer(t, &got)
	h := newHarness(t)

	h.run("cd " + server.URL + "/api")
	h.run("query sort=asc")
	h.run("query sort=desc")
	h.run("query page=2")
	h.run("body ignored=1")

	out := h.run("GET users")

	assert.Equal(t, "GET", got.method)
	assert.Equal(t, "/api/users?page=2&sort=asc&sort=desc", got.uri)
	assert.Empty(t, got.body)
	assert.Contains(t, out, "Making GET request to: "+server.URL+"/api/users?page=2&sort=asc&sort=desc")
	assert.Contains(t, out, "STATUS: 200")
	assert.Contains(t, out, "  X-Served-By: echo")
	assert.Contains(t, out, "\"ok\": true")

	require.NotNil(t, h.state.LastResponse())
	assert.Equal(t, int64(1), h.stats.Report().Overall.Total)
}

func TestRequestCommand_PostBody(t *testing.T) {
	var got captured
	server := newEchoServer(t, &got)
	h := newHarness(t)

	h.run("cd " + server.URL)
	h.run("body active=true")
	h.run("body count=42")
	h.run("body ratio=3.14")
	h.run("body name=john")
	h.run("body weird=12a")
	h.run("auth bearer t0ken")

	h.run("post /users")

	assert.Equal(t, "POST", got.method)
	assert.Equal(t, "/users", got.uri)
	assert.Equal(t, "application/json", got.contentType)
	assert.Equal(t, "Bearer t0ken", got.auth)

	var body map[string]any
	require.NoError(t, json.Unmarshal([]byte(got.body), &body))
	assert.Equal(t, map[string]any{
		"active": true,
		"count":  float64(42),
		"ratio":  3.14,
		"name":   "john",
		"weird":  "12a",
	}, body)
}

func TestRequestCommand_ExplicitContentType(t *testing.T) {
	var got captured
	server := newEchoServer(t, &got)
	h := newHarness(t)

	h.run("cd " + server.URL)
	h.run("header Content-Type:application/vnd.api+json")
	h.run("body a=1")
	h.run("put /x")

	assert.Equal(t, "PUT", got.method)
	assert.Equal(t, "application/vnd.api+json", got.contentType)
}

func TestRequestCommand_DeleteAndPatch(t *testing.T) {
	var got captured
	server := newEchoServer(t, &got)
	h := newHarness(t)

	h.run("cd " + server.URL)
	h.run("body a=1")

	h.run("delete /items/1")
	assert.Equal(t, "DELETE", got.method)
	assert.Empty(t, got.body)

	h.run("patch /items/1")
	assert.Equal(t, "PATCH", got.method)
	assert.Equal(t, `{"a":1}`, got.body)
}

func TestRequestCommand_ConnectionFailure(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	h := newHarness(t)
	h.run("cd http://" + addr)

	out := h.run("get /")

	assert.Contains(t, out, "Error: Could not connect to the server.")
	assert.Contains(t, out, "Please check your internet connection or try again later.")
	assert.Nil(t, h.state.LastResponse())

	rep := h.stats.Report()
	assert.Equal(t, int64(1), rep.Overall.Errors)
}
