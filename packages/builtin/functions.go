package builtin

import (
	"encoding/base64"
	"fmt"
	"log"
	"math/rand"
	"net/url"
	"os"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Func func(args []string) any

type Registry struct {
	funcs map[string]Func
}

func NewRegistry() *Registry {
	r := &Registry{
		funcs: make(map[string]Func),
	}
	r.registerDefaults()
	return r
}

func (r *Registry) registerDefaults() {
	r.Register("now", funcNow)
	r.Register("timestamp", funcTimestamp)
	r.Register("timestampMs", funcTimestampMs)
	r.Register("uuid", funcUUID)
	r.Register("random", funcRandom)
	r.Register("randomString", funcRandomString)
	r.Register("base64", funcBase64)
	r.Register("urlEncode", funcURLEncode)
	r.Register("date", funcDate)
	r.Register("env", funcEnv)
}

func (r *Registry) Register(name string, fn Func) {
	r.funcs[name] = fn
}

// Names returns the registered function names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

var (
	funcCallPattern    = regexp.MustCompile(`^(\w+)\((.*)\)$`)
	placeholderPattern = regexp.MustCompile(`\{\{\$([^{}]+)\}\}`)
)

// Call evaluates a single function expression such as `random(1, 10)`.
func (r *Registry) Call(expr string) (any, bool) {
	matches := funcCallPattern.FindStringSubmatch(strings.TrimSpace(expr))
	if matches == nil {
		return nil, false
	}

	name := matches[1]
	argsStr := matches[2]

	fn, ok := r.funcs[name]
	if !ok {
		return nil, false
	}

	var args []string
	if argsStr != "" {
		args = parseArgs(argsStr)
	}

	return fn(args), true
}

// Expand replaces every {{$fn(args)}} placeholder in s.
// Placeholders naming unknown functions are left untouched.
func (r *Registry) Expand(s string) string {
	if !strings.Contains(s, "{{$") {
		return s
	}
	return placeholderPattern.ReplaceAllStringFunc(s, func(m string) string {
		expr := placeholderPattern.FindStringSubmatch(m)[1]
		v, ok := r.Call(expr)
		if !ok {
			return m
		}
		return fmt.Sprint(v)
	})
}

func parseArgs(s string) []string {
	var args []string
	var current strings.Builder
	inQuote := false
	quoteChar := byte(0)

	for i := 0; i < len(s); i++ {
		ch := s[i]
		if !inQuote && (ch == '"' || ch == '\'') {
			inQuote = true
			quoteChar = ch
		} else if inQuote && ch == quoteChar {
			inQuote = false
			quoteChar = 0
		} else if !inQuote && ch == ',' {
			args = append(args, strings.TrimSpace(current.String()))
			current.Reset()
		} else {
			current.WriteByte(ch)
		}
	}

	if current.Len() > 0 {
		args = append(args, strings.TrimSpace(current.String()))
	}

	return args
}

func funcNow(_ []string) any {
	return time.Now().UTC().Format(time.RFC3339)
}

func funcTimestamp(_ []string) any {
	return time.Now().Unix()
}

func funcTimestampMs(_ []string) any {
	return time.Now().UnixMilli()
}

func funcUUID(_ []string) any {
	return uuid.New().String()
}

func funcRandom(args []string) any {
	min, max := 0, 100
	if len(args) >= 2 {
		if v, err := strconv.Atoi(args[0]); err == nil {
			min = v
		} else {
			log.Printf("builtin: random() min argument %q is not a valid integer", args[0])
		}
		if v, err := strconv.Atoi(args[1]); err == nil {
			max = v
		} else {
			log.Printf("builtin: random() max argument %q is not a valid integer", args[1])
		}
	}
	if max < min {
		min, max = max, min
	}
	return rand.Intn(max-min+1) + min
}

func funcRandomString(args []string) any {
	length := 16
	if len(args) >= 1 {
		if v, err := strconv.Atoi(args[0]); err == nil && v >= 0 {
			length = v
		} else {
			log.Printf("builtin: randomString() length argument %q is not a valid integer", args[0])
		}
	}
	return randomString(length, "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")
}

func funcBase64(args []string) any {
	if len(args) < 1 {
		return ""
	}
	return base64.StdEncoding.EncodeToString([]byte(args[0]))
}

func funcURLEncode(args []string) any {
	if len(args) < 1 {
		return ""
	}
	return url.QueryEscape(args[0])
}

func funcDate(args []string) any {
	format := "2006-01-02"
	if len(args) >= 1 && args[0] != "" {
		format = args[0]
	}
	return time.Now().UTC().Format(format)
}

func funcEnv(args []string) any {
	if len(args) < 1 {
		return ""
	}
	return os.Getenv(args[0])
}

func randomString(length int, charset string) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = charset[rand.Intn(len(charset))]
	}
	return string(b)
}
