package console

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/abdul-hamid-achik/lunarica/packages/commands"
	"github.com/abdul-hamid-achik/lunarica/packages/core/command"
	"github.com/abdul-hamid-achik/lunarica/packages/core/session"
	"github.com/abdul-hamid-achik/lunarica/packages/http"
	"github.com/abdul-hamid-achik/lunarica/packages/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDispatcher(t *testing.T) (*command.Dispatcher, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	reg := command.NewRegistry()
	commands.Register(reg, commands.Deps{Sender: http.NewClient()})

	env := &command.Env{
		State: session.New(),
		Console: output.NewConsole(
			output.WithWriter(&buf),
			output.WithNoColor(true),
			output.WithRenderer(output.NewRenderer(output.WithPlainText(true))),
		),
	}
	return command.NewDispatcher(reg, env), &buf
}

func TestConsole_RunPlain(t *testing.T) {
	d, buf := newTestDispatcher(t)
	path := filepath.Join(t.TempDir(), "history.txt")

	input := strings.Join([]string{
		"header Accept:application/json",
		"",
		"cd http://example.test/api",
		"exit",
		"header Never:reached",
	}, "\n")

	c := New(d,
		WithInput(strings.NewReader(input)),
		WithOutput(&bytes.Buffer{}),
		WithHistory(NewHistory(path, 10)),
		WithInteractive(false),
	)
	require.NoError(t, c.Run(context.Background()))

	state := d.Env().State
	assert.Equal(t, "http://example.test/api", state.BaseURL())
	assert.Equal(t, map[string]string{"Accept": "application/json"}, state.Headers())
	assert.True(t, state.ShouldExit())
	assert.Contains(t, buf.String(), "Added header: Accept: application/json")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "header Accept:application/json\ncd http://example.test/api\nexit\n", string(data))
}

func TestConsole_RunPlainUntilEOF(t *testing.T) {
	d, buf := newTestDispatcher(t)

	c := New(d, WithInput(strings.NewReader("zzz foo\nquery a=1")), WithInteractive(false))
	require.NoError(t, c.Run(context.Background()))

	assert.Contains(t, buf.String(), "Unknown command: zzz")
	assert.Equal(t, []string{"1"}, d.Env().State.QueryParams()["a"])
	assert.False(t, d.Env().State.ShouldExit())
}

func TestConsole_NotInteractiveWithoutTerminal(t *testing.T) {
	d, _ := newTestDispatcher(t)
	c := New(d, WithInput(strings.NewReader("")), WithOutput(&bytes.Buffer{}))
	assert.False(t, c.isInteractive())
}
