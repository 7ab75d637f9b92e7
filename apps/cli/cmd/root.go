package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/abdul-hamid-achik/lunarica/packages/assembler"
	"github.com/abdul-hamid-achik/lunarica/packages/builtin"
	"github.com/abdul-hamid-achik/lunarica/packages/commands"
	"github.com/abdul-hamid-achik/lunarica/packages/console"
	"github.com/abdul-hamid-achik/lunarica/packages/core/command"
	"github.com/abdul-hamid-achik/lunarica/packages/core/config"
	"github.com/abdul-hamid-achik/lunarica/packages/core/env"
	"github.com/abdul-hamid-achik/lunarica/packages/core/session"
	"github.com/abdul-hamid-achik/lunarica/packages/http"
	"github.com/abdul-hamid-achik/lunarica/packages/output"
	"github.com/abdul-hamid-achik/lunarica/packages/stats"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "lunarica",
	Short: "Interactive HTTP client console",
	Long: `lunarica is an interactive console for building and sending HTTP requests.
Set a base URL, headers, query and body parameters, then issue requests
one line at a time and read colorized responses.

Examples:
  lunarica
  lunarica --url https://api.example.com -H "Accept:application/json"
  lunarica --read-timeout 30 --insecure
  echo "get /health" | lunarica -u http://localhost:8080`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runConsole,
}

var (
	urlFlag            string
	headerFlags        []string
	connectTimeoutFlag int
	readTimeoutFlag    int
	configFlag         string
	historyFlag        string
	noHistoryFlag      bool
	noColorFlag        bool
	insecureFlag       bool
	proxyFlag          string
	maxRedirectsFlag   int
	noRedirectsFlag    bool
	logFileFlag        string
)

func init() {
	f := rootCmd.Flags()
	f.StringVarP(&urlFlag, "url", "u", "", "Base URL for the session (env: LUNARICA_URL)")
	f.StringArrayVarP(&headerFlags, "header", "H", nil, "Header to start with, as name:value (repeatable)")
	f.IntVar(&connectTimeoutFlag, "connect-timeout", 0, "Connection timeout in seconds (env: LUNARICA_CONNECT_TIMEOUT)")
	f.IntVar(&readTimeoutFlag, "read-timeout", 0, "Read timeout in seconds (env: LUNARICA_READ_TIMEOUT)")
	f.StringVar(&configFlag, "config", "", "Path to config file (default: search .lunarica.yaml, .lunarica.yml, lunarica.yaml, .lunarica.json)")
	f.StringVar(&historyFlag, "history", "", "History file (env: LUNARICA_HISTORY_FILE)")
	f.BoolVar(&noHistoryFlag, "no-history", false, "Do not load or save line history")
	f.BoolVar(&noColorFlag, "no-color", false, "Disable colored output (env: LUNARICA_NO_COLOR)")
	f.BoolVarP(&insecureFlag, "insecure", "k", false, "Disable SSL certificate validation")
	f.StringVar(&proxyFlag, "proxy", "", "Proxy URL for HTTP requests (env: LUNARICA_PROXY)")
	f.IntVar(&maxRedirectsFlag, "max-redirects", 0, "Maximum redirects to follow (env: LUNARICA_MAX_REDIRECTS)")
	f.BoolVar(&noRedirectsFlag, "no-redirects", false, "Do not follow redirects")
	f.StringVar(&logFileFlag, "log-file", "", "Write diagnostic logs to this file (env: LUNARICA_LOG_FILE)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
}

func Execute(v, bt string) int {
	version = v
	buildTime = bt

	err := rootCmd.Execute()
	if err == nil {
		return ExitSuccess
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return ExitUsageError
}

func runConsole(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return configError(err)
	}

	closeLog, err := setupLogging(cfg.LogFile)
	if err != nil {
		return configError(err)
	}
	defer closeLog()

	if cfg.GetNoColor() {
		color.NoColor = true
	}

	state, err := newSession(cfg)
	if err != nil {
		return configError(err)
	}

	dispatcher := newDispatcher(cfg, state, cmd.OutOrStdout())

	history := console.NewHistory("", console.DefaultHistorySize)
	if !noHistoryFlag {
		history = console.LoadHistory(cfg.HistoryFile, console.DefaultHistorySize)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := console.New(dispatcher,
		console.WithInput(cmd.InOrStdin()),
		console.WithOutput(cmd.OutOrStdout()),
		console.WithHistory(history),
	)
	return c.Run(ctx)
}

// resolveConfig layers defaults, the config file, the environment and the
// flags that were set explicitly, in that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	if _, err := env.LoadAndExportDotEnv(env.DefaultDotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	if configFlag == "" {
		configFlag = os.Getenv(config.EnvPrefix + "CONFIG")
	}
	cfg, err := config.LoadConfig(configFlag)
	if err != nil {
		return nil, err
	}

	fromEnv, err := config.FromEnv()
	if err != nil {
		return nil, err
	}
	cfg = cfg.Merge(fromEnv)

	flags, err := configFromFlags(cmd)
	if err != nil {
		return nil, err
	}
	cfg = cfg.Merge(flags)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func configFromFlags(cmd *cobra.Command) (*config.Config, error) {
	changed := cmd.Flags().Changed
	c := &config.Config{
		URL:            urlFlag,
		ConnectTimeout: connectTimeoutFlag,
		ReadTimeout:    readTimeoutFlag,
		HistoryFile:    historyFlag,
		LogFile:        logFileFlag,
		Proxy:          proxyFlag,
		MaxRedirects:   maxRedirectsFlag,
	}

	if changed("connect-timeout") && connectTimeoutFlag <= 0 {
		return nil, fmt.Errorf("--connect-timeout must be positive")
	}
	if changed("read-timeout") && readTimeoutFlag <= 0 {
		return nil, fmt.Errorf("--read-timeout must be positive")
	}
	if changed("no-color") {
		c.NoColor = config.BoolPtr(noColorFlag)
	}
	if changed("insecure") {
		c.ValidateSSL = config.BoolPtr(!insecureFlag)
	}
	if changed("no-redirects") {
		c.FollowRedirects = config.BoolPtr(!noRedirectsFlag)
	}

	if len(headerFlags) > 0 {
		c.Headers = make(map[string]string, len(headerFlags))
		for _, h := range headerFlags {
			name, value, ok := strings.Cut(h, ":")
			name = strings.TrimSpace(name)
			if !ok || name == "" {
				return nil, fmt.Errorf("invalid header %q: expected name:value", h)
			}
			c.Headers[name] = strings.TrimSpace(value)
		}
	}
	return c, nil
}

// setupLogging sends the standard logger to path, or discards it so log
// lines never interleave with the console display.
func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return func() { f.Close() }, nil
}

func newSession(cfg *config.Config) (*session.State, error) {
	state := session.New()
	state.SetBaseURL(cfg.URL)
	if err := state.SetTimeouts(cfg.ConnectTimeout, cfg.ReadTimeout); err != nil {
		return nil, err
	}
	for name, value := range cfg.Headers {
		state.SetHeader(name, value)
	}
	return state, nil
}

func newDispatcher(cfg *config.Config, state *session.State, out io.Writer) *command.Dispatcher {
	client := http.NewClient(
		http.WithFollowRedirects(cfg.GetFollowRedirects()),
		http.WithMaxRedirects(cfg.MaxRedirects),
		http.WithValidateSSL(cfg.GetValidateSSL()),
		http.WithProxy(cfg.Proxy),
	)

	reg := command.NewRegistry()
	commands.Register(reg, commands.Deps{
		Sender:    client,
		Assembler: assembler.New(builtin.NewRegistry()),
		Stats:     stats.NewRecorder(),
	})

	noColor := cfg.GetNoColor()
	env := &command.Env{
		State: state,
		Console: output.NewConsole(
			output.WithWriter(out),
			output.WithNoColor(noColor),
			output.WithRenderer(output.NewRenderer(output.WithPlainText(noColor))),
		),
	}
	return command.NewDispatcher(reg, env)
}
