package output

import (
	"bytes"
	"strings"

	"github.com/fatih/color"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// EmptyMarker is printed instead of an empty response body.
const EmptyMarker = "(Empty response)"

const indentUnit = "  "

type palette struct {
	key         *color.Color
	str         *color.Color
	number      *color.Color
	boolean     *color.Color
	null        *color.Color
	punctuation *color.Color
}

// forced returns a color that is emitted even when stdout is not a terminal.
func forced(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	c.EnableColor()
	return c
}

func defaultPalette() palette {
	return palette{
		key:         forced(color.Attribute(38), color.Attribute(5), color.Attribute(208)),
		str:         forced(color.Bold, color.FgGreen),
		number:      forced(color.Bold, color.FgYellow),
		boolean:     forced(color.Bold, color.FgMagenta),
		null:        forced(color.Bold, color.FgRed),
		punctuation: forced(color.Bold, color.FgWhite),
	}
}

type Renderer struct {
	width   int
	noColor bool
	colors  palette
}

type RendererOption func(*Renderer)

func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{
		colors: defaultPalette(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.width <= 0 {
		r.width = TerminalWidth()
	}
	return r
}

// WithWidth fixes the wrap width instead of probing the terminal.
func WithWidth(width int) RendererOption {
	return func(r *Renderer) {
		r.width = width
	}
}

func WithPlainText(plain bool) RendererOption {
	return func(r *Renderer) {
		r.noColor = plain
	}
}

// Render returns the display form of a response body.
func (r *Renderer) Render(payload []byte) string {
	if len(bytes.TrimSpace(payload)) == 0 {
		return EmptyMarker
	}
	if !gjson.ValidBytes(payload) {
		return string(payload)
	}
	return wrapLines(r.format(pretty.Ugly(payload)), r.width)
}

func (r *Renderer) paint(c *color.Color, s string) string {
	if r.noColor {
		return s
	}
	return c.Sprint(s)
}

// format lays out compact JSON one member per line. A quoted token is a key
// when the character after its closing quote is a colon.
func (r *Renderer) format(src []byte) string {
	var b strings.Builder
	indent := 0
	newline := func() {
		b.WriteByte('\n')
		b.WriteString(strings.Repeat(indentUnit, indent))
	}

	for i := 0; i < len(src); {
		c := src[i]
		switch {
		case c == '"':
			end := stringEnd(src, i)
			tok := string(src[i:end])
			if end < len(src) && src[end] == ':' {
				b.WriteString(r.paint(r.colors.key, tok))
			} else {
				b.WriteString(r.paint(r.colors.str, tok))
			}
			i = end
		case c == '{' || c == '[':
			if i+1 < len(src) && src[i+1] == closing(c) {
				b.WriteString(r.paint(r.colors.punctuation, string(src[i:i+2])))
				i += 2
				continue
			}
			b.WriteString(r.paint(r.colors.punctuation, string(c)))
			indent++
			newline()
			i++
		case c == '}' || c == ']':
			if indent > 0 {
				indent--
			}
			newline()
			b.WriteString(r.paint(r.colors.punctuation, string(c)))
			i++
		case c == ',':
			b.WriteString(r.paint(r.colors.punctuation, ","))
			newline()
			i++
		case c == ':':
			b.WriteString(r.paint(r.colors.punctuation, ":"))
			b.WriteByte(' ')
			i++
		case c >= 'a' && c <= 'z':
			end := i
			for end < len(src) && src[end] >= 'a' && src[end] <= 'z' {
				end++
			}
			word := string(src[i:end])
			if word == "null" {
				b.WriteString(r.paint(r.colors.null, word))
			} else {
				b.WriteString(r.paint(r.colors.boolean, word))
			}
			i = end
		default:
			end := i
			for end < len(src) && strings.IndexByte("-+.eE0123456789", src[end]) >= 0 {
				end++
			}
			if end == i {
				b.WriteByte(c)
				i++
				continue
			}
			b.WriteString(r.paint(r.colors.number, string(src[i:end])))
			i = end
		}
	}

	return b.String()
}

// stringEnd returns the index just past the closing quote of the string starting at start.
func stringEnd(src []byte, start int) int {
	for i := start + 1; i < len(src); i++ {
		switch src[i] {
		case '\\':
			i++
		case '"':
			return i + 1
		}
	}
	return len(src)
}

func closing(open byte) byte {
	if open == '{' {
		return '}'
	}
	return ']'
}
