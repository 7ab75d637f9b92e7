package capture

import (
	"strconv"
	"strings"

	"github.com/abdul-hamid-achik/lunarica/packages/http"
	"github.com/tidwall/gjson"
)

type Source int

const (
	SourceBody Source = iota
	SourceHeader
	SourceStatus
	SourceDuration
)

// Query is a parsed capture expression.
type Query struct {
	Source Source
	Path   string
}

// ParseQuery parses an expression such as "header Content-Type" or "data.items.#".
func ParseQuery(expr string) Query {
	expr = strings.TrimSpace(expr)
	word, rest, _ := strings.Cut(expr, " ")
	rest = strings.TrimSpace(rest)

	switch strings.ToLower(word) {
	case "status":
		if rest == "" {
			return Query{Source: SourceStatus}
		}
	case "duration":
		if rest == "" {
			return Query{Source: SourceDuration}
		}
	case "header":
		return Query{Source: SourceHeader, Path: rest}
	case "body":
		return Query{Source: SourceBody, Path: rest}
	}
	return Query{Source: SourceBody, Path: expr}
}

type Extractor struct {
	response *http.Response
	bodyJSON gjson.Result
}

func NewExtractor(resp *http.Response) *Extractor {
	e := &Extractor{
		response: resp,
	}
	if gjson.ValidBytes(resp.Body) {
		e.bodyJSON = gjson.ParseBytes(resp.Body)
	}
	return e
}

// Extract returns the raw text selected by q. Body values keep their JSON
// form so they can be rendered like a response.
func (e *Extractor) Extract(q Query) (string, bool) {
	switch q.Source {
	case SourceBody:
		return e.extractFromBody(q.Path)
	case SourceHeader:
		return e.extractFromHeader(q.Path)
	case SourceStatus:
		return strconv.Itoa(e.response.StatusCode), true
	case SourceDuration:
		return strconv.FormatInt(e.response.DurationMs(), 10), true
	default:
		return "", false
	}
}

func (e *Extractor) extractFromBody(path string) (string, bool) {
	if !e.bodyJSON.Exists() {
		if path == "" {
			return e.response.BodyString(), true
		}
		return "", false
	}

	if path == "" {
		return e.bodyJSON.Raw, true
	}

	result := e.bodyJSON.Get(path)
	if !result.Exists() {
		return "", false
	}
	return result.Raw, true
}

func (e *Extractor) extractFromHeader(name string) (string, bool) {
	if name == "" {
		return "", false
	}
	value := e.response.Header(name)
	if value == "" {
		return "", false
	}
	return value, true
}
