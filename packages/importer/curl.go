package importer

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"

	"github.com/tidwall/gjson"
)

// CurlRequest is a curl command line broken into session settings.
type CurlRequest struct {
	Method string
	// BaseURL is the request URL without its query string
	BaseURL     string
	Headers     map[string]string
	QueryParams map[string][]string
	// Body holds the -d payload verbatim
	Body string
	// BodyParams holds the payload fields when it is a JSON object or form data
	BodyParams      map[string]string
	Insecure        bool
	FollowRedirects bool
}

// ParseCurl parses a curl command. The leading "curl" is optional. Unknown
// flags are skipped together with their value when they appear to take one.
func ParseCurl(cmd string) (*CurlRequest, error) {
	cmd = strings.TrimSpace(cmd)
	if cmd == "curl" || cmd == "" {
		return nil, fmt.Errorf("no URL specified")
	}
	cmd = strings.TrimPrefix(cmd, "curl ")

	req := &CurlRequest{
		Headers:     make(map[string]string),
		QueryParams: make(map[string][]string),
	}
	var rawURL string

	tokens := tokenize(strings.ReplaceAll(cmd, "\\\n", " "))
	for i := 0; i < len(tokens); i++ {
		token := tokens[i]

		value := func() (string, error) {
			if i+1 >= len(tokens) {
				return "", fmt.Errorf("missing value for %s", token)
			}
			i++
			return tokens[i], nil
		}

		switch token {
		case "-X", "--request":
			v, err := value()
			if err != nil {
				return nil, err
			}
			req.Method = strings.ToUpper(v)

		case "-H", "--header":
			v, err := value()
			if err != nil {
				return nil, err
			}
			if name, val, ok := strings.Cut(v, ":"); ok && strings.TrimSpace(name) != "" {
				req.Headers[strings.TrimSpace(name)] = strings.TrimSpace(val)
			}

		case "-d", "--data", "--data-raw", "--data-binary", "--json":
			v, err := value()
			if err != nil {
				return nil, err
			}
			req.Body = v
			if token == "--json" {
				req.Headers["Content-Type"] = "application/json"
			}

		case "-u", "--user":
			v, err := value()
			if err != nil {
				return nil, err
			}
			req.Headers["Authorization"] = "Basic " + base64.StdEncoding.EncodeToString([]byte(v))

		case "-A", "--user-agent":
			v, err := value()
			if err != nil {
				return nil, err
			}
			req.Headers["User-Agent"] = v

		case "-e", "--referer":
			v, err := value()
			if err != nil {
				return nil, err
			}
			req.Headers["Referer"] = v

		case "-b", "--cookie":
			v, err := value()
			if err != nil {
				return nil, err
			}
			req.Headers["Cookie"] = v

		case "-k", "--insecure":
			req.Insecure = true

		case "-L", "--location":
			req.FollowRedirects = true

		case "--url":
			v, err := value()
			if err != nil {
				return nil, err
			}
			rawURL = v

		default:
			if strings.HasPrefix(token, "-") {
				if i+1 < len(tokens) && !strings.HasPrefix(tokens[i+1], "-") && !isURL(tokens[i+1]) {
					i++
				}
				continue
			}
			if rawURL == "" && isURL(token) {
				rawURL = token
			}
		}
	}

	if rawURL == "" {
		return nil, fmt.Errorf("no URL found in curl command")
	}

	base, query, _ := strings.Cut(rawURL, "?")
	req.BaseURL = base
	for _, pair := range strings.Split(query, "&") {
		if pair == "" {
			continue
		}
		name, value, _ := strings.Cut(pair, "=")
		req.QueryParams[name] = append(req.QueryParams[name], value)
	}

	if req.Method == "" {
		req.Method = "GET"
		if req.Body != "" {
			req.Method = "POST"
		}
	}
	req.BodyParams = bodyParams(req.Body)

	return req, nil
}

// bodyParams splits a JSON object or form-encoded payload into fields. It
// returns nil for any other payload.
func bodyParams(body string) map[string]string {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil
	}

	if gjson.Valid(body) {
		root := gjson.Parse(body)
		if !root.IsObject() {
			return nil
		}
		return objectParams(root)
	}

	if !strings.Contains(body, "=") || strings.ContainsAny(body, " \n") {
		return nil
	}
	form, err := url.ParseQuery(body)
	if err != nil {
		return nil
	}
	params := make(map[string]string, len(form))
	for name, values := range form {
		params[name] = values[len(values)-1]
	}
	return params
}

// tokenize splits a command line into words, honoring single quotes,
// double quotes and backslash escapes.
func tokenize(cmd string) []string {
	var tokens []string
	var current strings.Builder
	inSingleQuote := false
	inDoubleQuote := false
	escaped := false
	started := false

	for _, r := range cmd {
		if escaped {
			current.WriteRune(r)
			escaped = false
			continue
		}

		switch r {
		case '\\':
			if inSingleQuote {
				current.WriteRune(r)
			} else {
				escaped = true
			}
		case '\'':
			if !inDoubleQuote {
				inSingleQuote = !inSingleQuote
				started = true
			} else {
				current.WriteRune(r)
			}
		case '"':
			if !inSingleQuote {
				inDoubleQuote = !inDoubleQuote
				started = true
			} else {
				current.WriteRune(r)
			}
		case ' ', '\t', '\n', '\r':
			if inSingleQuote || inDoubleQuote {
				current.WriteRune(r)
			} else if current.Len() > 0 || started {
				tokens = append(tokens, current.String())
				current.Reset()
				started = false
			}
		default:
			current.WriteRune(r)
		}
	}

	if current.Len() > 0 || started {
		tokens = append(tokens, current.String())
	}

	return tokens
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
