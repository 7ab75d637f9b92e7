package importer

import (
	"strings"
)

type Header struct {
	Name  string
	Value string
}

// ParseHeaders reads name=value lines. Lines without '=' or with an empty
// name are returned as warnings and otherwise skipped.
func ParseHeaders(text string) (headers []Header, warnings []string) {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}

		name, value, ok := strings.Cut(line, "=")
		name = strings.Trim(name, " \t")
		if !ok || name == "" {
			warnings = append(warnings, line)
			continue
		}

		headers = append(headers, Header{Name: name, Value: strings.Trim(value, " \t")})
	}
	return headers, warnings
}
