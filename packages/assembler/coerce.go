package assembler

import (
	"strconv"
	"strings"
)

// Coerce interprets a body parameter by shape. The first rule that applies wins:
// "true"/"false" become booleans, "null" becomes nil, text made only of
// [0-9.+-eE] becomes a float64 when it has a dot and an int64 otherwise,
// and everything else, including numerics that fail to parse, stays a string.
func Coerce(value string) any {
	switch value {
	case "true":
		return true
	case "false":
		return false
	case "null":
		return nil
	}

	if looksNumeric(value) {
		if strings.Contains(value, ".") {
			if f, err := strconv.ParseFloat(value, 64); err == nil {
				return f
			}
		} else if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			return n
		}
	}

	return value
}

func looksNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !strings.ContainsRune("0123456789.+-eE", r) {
			return false
		}
	}
	return true
}
