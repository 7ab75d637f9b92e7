package cmd

import (
	"bytes"
	"log"
	nethttp "net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and stdin, in a clean working
// directory, and returns what it printed.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	wd, wdErr := os.Getwd()
	require.NoError(t, wdErr)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	resetFlags()
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	var out bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	err := rootCmd.Execute()
	return out.String(), err
}

func resetFlags() {
	configFlag = ""
	forceInit = false
	initCmd.Flags().VisitAll(func(f *pflag.Flag) { f.Changed = false })
	rootCmd.Flags().VisitAll(func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	})
}

func TestRootCommand_PipedSession(t *testing.T) {
	var gotAccept string
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		gotAccept = r.Header.Get("Accept")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"up"}`))
	}))
	defer server.Close()

	out, err := execute(t, "get /health\nexit\nget /never\n",
		"--url", server.URL,
		"-H", "Accept: application/json",
		"--no-color",
		"--no-history",
	)
	require.NoError(t, err)

	assert.Equal(t, "application/json", gotAccept)
	assert.Contains(t, out, "Making GET request to: "+server.URL+"/health")
	assert.Contains(t, out, "STATUS: 200")
	assert.Contains(t, out, `"status": "up"`)
	assert.Contains(t, out, "Goodbye!")
	assert.NotContains(t, out, "/never")
}

func TestRootCommand_ConfigFileAndHistory(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "custom.yaml")
	history := filepath.Join(dir, "history.txt")
	require.NoError(t, os.WriteFile(cfgPath, []byte("url: http://from-config.test\nreadTimeout: 9\n"), 0o644))

	out, err := execute(t, "params\ntimeout\n", "--config", cfgPath, "--history", history, "--no-color")
	require.NoError(t, err)

	assert.Contains(t, out, "Base URL: http://from-config.test")
	assert.Contains(t, out, "Read timeout: 9 seconds")

	data, err := os.ReadFile(history)
	require.NoError(t, err)
	assert.Equal(t, "params\ntimeout\n", string(data))
}

func TestRootCommand_EnvironmentAndFlagsPrecedence(t *testing.T) {
	t.Setenv("LUNARICA_URL", "http://from-env.test")
	t.Setenv("LUNARICA_CONNECT_TIMEOUT", "8")

	out, err := execute(t, "timeout\nparams\n", "--connect-timeout", "4", "--no-color", "--no-history")
	require.NoError(t, err)

	assert.Contains(t, out, "Base URL: http://from-env.test")
	assert.Contains(t, out, "Connection timeout: 4 seconds")
}

func TestRootCommand_LogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "lunarica.log")

	_, err := execute(t, "get /\n", "--url", "http://127.0.0.1:1", "--log-file", logPath, "--no-history", "--connect-timeout", "1")
	require.NoError(t, err)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestRootCommand_ConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "bad header", args: []string{"-H", "no-colon"}},
		{name: "non-positive timeout", args: []string{"--read-timeout", "0"}},
		{name: "missing config file", args: []string{"--config", "/no/such/config.yaml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, "", append(tt.args, "--no-history")...)
			require.Error(t, err)

			var ee *exitError
			require.ErrorAs(t, err, &ee)
			assert.Equal(t, ExitConfigError, ee.code)
		})
	}
}

func TestInitCommand(t *testing.T) {
	out, err := execute(t, "", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Created: .lunarica.yaml")
	assert.Contains(t, out, "All settings are defaults")

	data, err := os.ReadFile(".lunarica.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "url: http://localhost:8000")

	resetFlags()
	rootCmd.SetArgs([]string{"init"})
	err = rootCmd.Execute()
	require.Error(t, err)
	var ee *exitError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, ExitConfigError, ee.code)
	assert.Contains(t, err.Error(), "already exists")
}

func TestInitCommand_EnvironmentAndForce(t *testing.T) {
	t.Setenv("LUNARICA_URL", "https://api.example.test")
	t.Setenv("LUNARICA_READ_TIMEOUT", "12")

	out, err := execute(t, "", "init")
	require.NoError(t, err)
	assert.NotContains(t, out, "All settings are defaults")

	data, err := os.ReadFile(".lunarica.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "url: https://api.example.test")
	assert.Contains(t, string(data), "readTimeout: 12")

	resetFlags()
	rootCmd.SetArgs([]string{"init", "--force"})
	require.NoError(t, rootCmd.Execute())
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "lunarica version dev")
}

func TestCompletionCommand(t *testing.T) {
	out, err := execute(t, "", "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "lunarica")

	_, err = execute(t, "", "completion", "tcsh")
	assert.Error(t, err)
}
