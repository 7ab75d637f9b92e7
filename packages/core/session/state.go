package session

import (
	"errors"
	"maps"
	"slices"

	"github.com/abdul-hamid-achik/lunarica/packages/http"
)

const (
	// DefaultBaseURL is the base URL a fresh session starts with
	DefaultBaseURL = "http://localhost:8000"
	// DefaultConnectTimeout is the default connection timeout in seconds
	DefaultConnectTimeout = 3
	// DefaultReadTimeout is the default read timeout in seconds
	DefaultReadTimeout = 5
)

// ErrInvalidTimeout is returned when a timeout is not strictly positive.
var ErrInvalidTimeout = errors.New("timeout values must be positive")

type State struct {
	baseURL        string
	headers        map[string]string
	queryParams    map[string][]string
	bodyParams     map[string]string
	connectTimeout int
	readTimeout    int
	shouldExit     bool
	lastResponse   *http.Response
}

func New() *State {
	return &State{
		baseURL:        DefaultBaseURL,
		headers:        make(map[string]string),
		queryParams:    make(map[string][]string),
		bodyParams:     make(map[string]string),
		connectTimeout: DefaultConnectTimeout,
		readTimeout:    DefaultReadTimeout,
	}
}

func (s *State) BaseURL() string {
	return s.baseURL
}

func (s *State) SetBaseURL(url string) {
	s.baseURL = url
}

// SetHeader adds or replaces a header. Names are case-sensitive.
func (s *State) SetHeader(name, value string) {
	s.headers[name] = value
}

// RemoveHeader deletes a header and reports whether it existed.
func (s *State) RemoveHeader(name string) bool {
	return deleteKey(s.headers, name)
}

// Headers returns a copy of the current headers.
func (s *State) Headers() map[string]string {
	return maps.Clone(s.headers)
}

// HeaderNames returns the header names in sorted order.
func (s *State) HeaderNames() []string {
	return sortedKeys(s.headers)
}

func (s *State) ClearHeaders() {
	clear(s.headers)
}

// AddQueryParam appends a value under name; earlier values are kept.
func (s *State) AddQueryParam(name, value string) {
	s.queryParams[name] = append(s.queryParams[name], value)
}

// RemoveQueryParam deletes every value under name and reports whether any existed.
func (s *State) RemoveQueryParam(name string) bool {
	return deleteKey(s.queryParams, name)
}

// QueryParams returns a deep copy of the query parameters.
func (s *State) QueryParams() map[string][]string {
	out := make(map[string][]string, len(s.queryParams))
	for name, values := range s.queryParams {
		out[name] = slices.Clone(values)
	}
	return out
}

func (s *State) QueryParamNames() []string {
	return sortedKeys(s.queryParams)
}

func (s *State) ClearQueryParams() {
	clear(s.queryParams)
}

// SetBodyParam adds or replaces a body parameter.
func (s *State) SetBodyParam(name, value string) {
	s.bodyParams[name] = value
}

// RemoveBodyParam deletes a body parameter and reports whether it existed.
func (s *State) RemoveBodyParam(name string) bool {
	return deleteKey(s.bodyParams, name)
}

func (s *State) BodyParams() map[string]string {
	return maps.Clone(s.bodyParams)
}

func (s *State) BodyParamNames() []string {
	return sortedKeys(s.bodyParams)
}

// ReplaceBodyParams swaps the whole body parameter set for params.
func (s *State) ReplaceBodyParams(params map[string]string) {
	s.bodyParams = make(map[string]string, len(params))
	for k, v := range params {
		s.bodyParams[k] = v
	}
}

func (s *State) ClearBodyParams() {
	clear(s.bodyParams)
}

// Timeouts returns the connection and read timeouts in seconds.
func (s *State) Timeouts() (connect, read int) {
	return s.connectTimeout, s.readTimeout
}

// SetTimeouts applies both timeouts, or neither if either is not positive.
func (s *State) SetTimeouts(connect, read int) error {
	if connect <= 0 || read <= 0 {
		return ErrInvalidTimeout
	}
	s.connectTimeout = connect
	s.readTimeout = read
	return nil
}

func (s *State) ShouldExit() bool {
	return s.shouldExit
}

func (s *State) SetShouldExit(v bool) {
	s.shouldExit = v
}

// LastResponse returns the most recent successful response, or nil.
func (s *State) LastResponse() *http.Response {
	return s.lastResponse
}

func (s *State) SetLastResponse(resp *http.Response) {
	s.lastResponse = resp
}

func deleteKey[V any](m map[string]V, key string) bool {
	if _, ok := m[key]; !ok {
		return false
	}
	delete(m, key)
	return true
}

func sortedKeys[V any](m map[string]V) []string {
	var keys []string
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
