package importer

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"gopkg.in/yaml.v3"
)

var (
	// ErrNotObject is returned when a body file's top level is not an object.
	ErrNotObject = errors.New("file must contain an object")
	// ErrEmptyFile is returned for body files with no content.
	ErrEmptyFile = errors.New("file is empty")
)

const (
	excerptChars = 50
	hexBytes     = 20
)

// ParseError describes a body file that could not be decoded.
type ParseError struct {
	Err error
	// Excerpt holds the first characters of the file
	Excerpt string
	// Hex holds the first bytes of the file in hex
	Hex string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing body: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func newParseError(text string, err error) *ParseError {
	excerpt := []rune(text)
	if len(excerpt) > excerptChars {
		excerpt = excerpt[:excerptChars]
	}

	raw := []byte(text)
	if len(raw) > hexBytes {
		raw = raw[:hexBytes]
	}
	hex := make([]string, len(raw))
	for i, b := range raw {
		hex[i] = fmt.Sprintf("%02x", b)
	}

	return &ParseError{
		Err:     err,
		Excerpt: string(excerpt),
		Hex:     strings.Join(hex, " "),
	}
}

// ParseBody turns a body file into body parameters. String fields are kept
// verbatim and other fields are re-encoded as compact JSON. The file name
// selects YAML decoding for .yaml and .yml.
func ParseBody(text, filename string) (map[string]string, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyFile
	}

	doc := text
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		converted, err := yamlToJSON(text)
		if err != nil {
			return nil, err
		}
		doc = converted
	default:
		if !gjson.Valid(doc) {
			var v any
			err := json.Unmarshal([]byte(doc), &v)
			if err == nil {
				err = errors.New("invalid JSON")
			}
			return nil, newParseError(text, err)
		}
	}

	root := gjson.Parse(doc)
	if !root.IsObject() {
		return nil, ErrNotObject
	}

	return objectParams(root), nil
}

func objectParams(root gjson.Result) map[string]string {
	params := make(map[string]string)
	root.ForEach(func(key, value gjson.Result) bool {
		if value.Type == gjson.String {
			params[key.String()] = value.String()
		} else {
			params[key.String()] = string(pretty.Ugly([]byte(value.Raw)))
		}
		return true
	})
	return params
}

func yamlToJSON(text string) (string, error) {
	var v any
	if err := yaml.Unmarshal([]byte(text), &v); err != nil {
		return "", newParseError(text, err)
	}
	if _, ok := v.(map[string]any); !ok {
		return "", ErrNotObject
	}
	data, err := json.Marshal(v)
	if err != nil {
		return "", newParseError(text, err)
	}
	return string(data), nil
}
