package capture

import (
	"testing"
	"time"

	"github.com/abdul-hamid-achik/lunarica/packages/http"
	"github.com/stretchr/testify/assert"
)

func TestParseQuery(t *testing.T) {
	tests := []struct {
		expr string
		want Query
	}{
		{"", Query{Source: SourceBody}},
		{"status", Query{Source: SourceStatus}},
		{"STATUS", Query{Source: SourceStatus}},
		{"duration", Query{Source: SourceDuration}},
		{"header Content-Type", Query{Source: SourceHeader, Path: "Content-Type"}},
		{"body data.id", Query{Source: SourceBody, Path: "data.id"}},
		{"data.items.#", Query{Source: SourceBody, Path: "data.items.#"}},
		{"status.code", Query{Source: SourceBody, Path: "status.code"}},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseQuery(tt.expr))
		})
	}
}

func TestExtractor(t *testing.T) {
	resp := &http.Response{
		StatusCode: 201,
		Headers:    map[string]string{"Content-Type": "application/json", "X-Request-Id": "abc"},
		Body:       []byte(`{"data":{"id":7,"items":[{"n":"a"},{"n":"b"}]},"token":"t0k"}`),
		Duration:   42 * time.Millisecond,
	}
	e := NewExtractor(resp)

	tests := []struct {
		expr   string
		want   string
		wantOK bool
	}{
		{"status", "201", true},
		{"duration", "42", true},
		{"header x-request-id", "abc", true},
		{"header X-Missing", "", false},
		{"header", "", false},
		{"token", `"t0k"`, true},
		{"data.id", "7", true},
		{"data.items.#", "2", true},
		{"data.items.1.n", `"b"`, true},
		{"body data", `{"id":7,"items":[{"n":"a"},{"n":"b"}]}`, true},
		{"missing.path", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, ok := e.Extract(ParseQuery(tt.expr))
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractor_NonJSONBody(t *testing.T) {
	e := NewExtractor(&http.Response{StatusCode: 200, Body: []byte("plain text")})

	got, ok := e.Extract(ParseQuery(""))
	assert.True(t, ok)
	assert.Equal(t, "plain text", got)

	_, ok = e.Extract(ParseQuery("a.b"))
	assert.False(t, ok)
}
