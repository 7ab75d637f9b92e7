package assembler

import (
	"bytes"
	"encoding/json"
	"slices"
	"strings"
	"time"

	"github.com/abdul-hamid-achik/lunarica/packages/builtin"
	"github.com/abdul-hamid-achik/lunarica/packages/core/session"
	"github.com/abdul-hamid-achik/lunarica/packages/http"
)

// DefaultContentType is used for bodies unless a Content-Type header is set.
const DefaultContentType = "application/json"

type Assembler struct {
	funcs *builtin.Registry
}

// New creates an assembler that expands dynamic placeholders with funcs.
// A nil registry disables expansion.
func New(funcs *builtin.Registry) *Assembler {
	return &Assembler{funcs: funcs}
}

// Assemble builds the request for method against the session's base URL.
func (a *Assembler) Assemble(s *session.State, method, path string) *http.Request {
	method = strings.ToUpper(method)

	target := ResolveURL(s.BaseURL(), a.expand(path))
	target = AppendQuery(target, BuildQueryString(a.expandQuery(s.QueryParams())))

	req := http.NewRequest(method, target)
	for name, value := range s.Headers() {
		req.SetHeader(name, a.expand(value))
	}

	connect, read := s.Timeouts()
	req.SetTimeouts(time.Duration(connect)*time.Second, time.Duration(read)*time.Second)

	if CarriesBody(method) {
		params := s.BodyParams()
		for name, value := range params {
			params[name] = a.expand(value)
		}
		req.SetBody(BuildBody(params), contentType(req.Headers))
	}

	return req
}

// Functions returns the names usable as {{$name(...)}} placeholders, or nil
// when expansion is disabled.
func (a *Assembler) Functions() []string {
	if a.funcs == nil {
		return nil
	}
	return a.funcs.Names()
}

func (a *Assembler) expand(s string) string {
	if a.funcs == nil {
		return s
	}
	return a.funcs.Expand(s)
}

func (a *Assembler) expandQuery(params map[string][]string) map[string][]string {
	for _, values := range params {
		for i, v := range values {
			values[i] = a.expand(v)
		}
	}
	return params
}

// CarriesBody reports whether requests with method send a body.
func CarriesBody(method string) bool {
	switch strings.ToUpper(method) {
	case "POST", "PUT", "PATCH":
		return true
	}
	return false
}

// ResolveURL combines base with a path argument.
func ResolveURL(base, path string) string {
	switch {
	case strings.HasPrefix(path, "http://"), strings.HasPrefix(path, "https://"):
		return path
	case strings.HasPrefix(path, "/"):
		return origin(base) + path
	case path == "":
		return base
	default:
		return strings.TrimRight(base, "/") + "/" + path
	}
}

// origin returns the scheme and host part of rawURL, without a trailing slash.
func origin(rawURL string) string {
	start := 0
	if i := strings.Index(rawURL, "://"); i >= 0 {
		start = i + len("://")
	}
	if i := strings.IndexAny(rawURL[start:], "/?#"); i >= 0 {
		return rawURL[:start+i]
	}
	return rawURL
}

// BuildQueryString emits name=value for every value under every name,
// names in sorted order and values in insertion order. Nothing is escaped.
func BuildQueryString(params map[string][]string) string {
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	slices.Sort(names)

	var pairs []string
	for _, name := range names {
		for _, value := range params[name] {
			pairs = append(pairs, name+"="+value)
		}
	}
	return strings.Join(pairs, "&")
}

// AppendQuery appends qs to rawURL with ? or &, depending on whether a query already exists.
func AppendQuery(rawURL, qs string) string {
	if qs == "" {
		return rawURL
	}
	if strings.Contains(rawURL, "?") {
		return rawURL + "&" + qs
	}
	return rawURL + "?" + qs
}

// BuildBody serializes params as a JSON object with keys in sorted order.
func BuildBody(params map[string]string) string {
	obj := make(map[string]any, len(params))
	for name, value := range params {
		obj[name] = Coerce(value)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(obj); err != nil {
		// Coerced values are always encodable
		return "{}"
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

func contentType(headers map[string]string) string {
	for name, value := range headers {
		if strings.EqualFold(name, "Content-Type") {
			return value
		}
	}
	return DefaultContentType
}
