package output

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/abdul-hamid-achik/lunarica/packages/http"
	"github.com/fatih/color"
)

const bannerWidth = 50

var (
	heavyRule = strings.Repeat("=", bannerWidth)
	lightRule = strings.Repeat("-", bannerWidth)
)

type Console struct {
	writer   io.Writer
	renderer *Renderer
	noColor  bool
}

type ConsoleOption func(*Console)

func NewConsole(opts ...ConsoleOption) *Console {
	c := &Console{
		writer: os.Stdout,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.renderer == nil {
		c.renderer = NewRenderer(WithPlainText(c.noColor))
	}
	return c
}

func WithWriter(w io.Writer) ConsoleOption {
	return func(c *Console) {
		c.writer = w
	}
}

func WithRenderer(r *Renderer) ConsoleOption {
	return func(c *Console) {
		c.renderer = r
	}
}

func WithNoColor(nc bool) ConsoleOption {
	return func(c *Console) {
		c.noColor = nc
	}
}

// Writer returns the destination the console prints to.
func (c *Console) Writer() io.Writer {
	return c.writer
}

// Redirect returns a copy of the console that prints to w.
func (c *Console) Redirect(w io.Writer) *Console {
	cp := *c
	cp.writer = w
	return &cp
}

// Renderer returns the body renderer used by FormatResponse.
func (c *Console) Renderer() *Renderer {
	return c.renderer
}

func (c *Console) sprint(attr color.Attribute, s string) string {
	col := color.New(attr)
	if c.noColor {
		col.DisableColor()
	}
	return col.Sprint(s)
}

func (c *Console) FormatRequest(method, url string) {
	fmt.Fprintf(c.writer, "\nMaking %s request to: %s\n", method, url)
}

func (c *Console) FormatResponse(resp *http.Response) {
	status := fmt.Sprintf("%d", resp.StatusCode)
	switch {
	case resp.IsSuccess():
		status = c.sprint(color.FgGreen, status)
	case resp.IsRedirect():
		status = c.sprint(color.FgCyan, status)
	case resp.IsClientError(), resp.IsServerError():
		status = c.sprint(color.FgRed, status)
	}

	fmt.Fprintf(c.writer, "\n%s\n", heavyRule)
	fmt.Fprintf(c.writer, "STATUS: %s %s\n", status, c.sprint(color.FgCyan, fmt.Sprintf("(%dms)", resp.DurationMs())))
	fmt.Fprintln(c.writer, heavyRule)

	fmt.Fprintln(c.writer, "HEADERS:")
	fmt.Fprintln(c.writer, lightRule)
	for _, name := range resp.HeaderNames() {
		fmt.Fprintf(c.writer, "  %s: %s\n", name, resp.Headers[name])
	}
	fmt.Fprintln(c.writer, heavyRule)

	fmt.Fprintln(c.writer, "BODY:")
	fmt.Fprintln(c.writer, lightRule)
	fmt.Fprintln(c.writer, c.renderer.Render(resp.Body))
	fmt.Fprintln(c.writer, heavyRule)
}

// FormatTransportError reports a request that produced no response.
func (c *Console) FormatTransportError(err error) {
	var te *http.TransportError
	if !errors.As(err, &te) {
		c.Error("Error making request: %v", err)
		return
	}

	switch te.Kind {
	case http.ErrorConnection:
		c.Error("Error: Could not connect to the server.")
		fmt.Fprintln(c.writer, "Please check your internet connection or try again later.")
	case http.ErrorReadTimeout:
		c.Error("Error: Server took too long to respond or connection was interrupted.")
	default:
		c.Error("Error making request: %v", te.Err)
	}
	fmt.Fprintf(c.writer, "  %s\n", c.sprint(color.FgYellow, te.Describe()))
}

// Notice prints a plain informational line.
func (c *Console) Notice(format string, args ...any) {
	fmt.Fprintf(c.writer, format+"\n", args...)
}

func (c *Console) Success(format string, args ...any) {
	fmt.Fprintln(c.writer, c.sprint(color.FgGreen, fmt.Sprintf(format, args...)))
}

func (c *Console) Warn(format string, args ...any) {
	fmt.Fprintln(c.writer, c.sprint(color.FgYellow, fmt.Sprintf(format, args...)))
}

func (c *Console) Error(format string, args ...any) {
	fmt.Fprintln(c.writer, c.sprint(color.FgRed, fmt.Sprintf(format, args...)))
}

// Bold prints a heading line.
func (c *Console) Bold(format string, args ...any) {
	fmt.Fprintln(c.writer, c.sprint(color.Bold, fmt.Sprintf(format, args...)))
}
