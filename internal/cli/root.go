package cli

import (
	"io"
	"net/http"
	"os"

	"github.com/alecthomas/kong"
	"github.com/benbjohnson/clock"
	"go.uber.org/zap"

	"github.com/vburojevic/scalyr-tool/internal/api"
	"github.com/vburojevic/scalyr-tool/internal/config"
	"github.com/vburojevic/scalyr-tool/internal/output"
)

// CLI is the root command structure for the scalyr tool
type CLI struct {
	// Global flags
	Server  string `default:"${config_server}" help:"API server base URL (env: scalyr_server)"`
	Token   string `help:"API token (overrides the scalyr_*_token environment variables)"`
	Verbose bool   `short:"v" help:"Echo requests, timings and tail poll details to stderr"`

	// Commands
	Query            QueryCmd            `cmd:"" help:"Retrieve log data"`
	NumericQuery     NumericQueryCmd     `cmd:"" help:"Retrieve numeric / graph data"`
	FacetQuery       FacetQueryCmd       `cmd:"" help:"Retrieve the most common values of a field"`
	TimeseriesQuery  TimeseriesQueryCmd  `cmd:"" help:"Retrieve data from one or more saved timeseries"`
	CreateTimeseries CreateTimeseriesCmd `cmd:"" help:"Create a timeseries for fast numeric queries"`
	GetFile          GetFileCmd          `cmd:"" help:"Fetch a configuration file"`
	PutFile          PutFileCmd          `cmd:"" help:"Create or replace a configuration file (content read from stdin)"`
	ListFiles        ListFilesCmd        `cmd:"" help:"List all configuration files"`
	Tail             TailCmd             `cmd:"" help:"Show a live stream of log records"`
	Config           ConfigCmd           `cmd:"" help:"Show or manage configuration"`
	Version          VersionCmd          `cmd:"" help:"Show version information"`
}

// Globals holds shared state for all commands
type Globals struct {
	Server  string
	Token   string
	Verbose bool
	Stdout  io.Writer
	Stderr  io.Writer
	Stdin   io.Reader
	Config  *config.Config
	Env     config.EnvLookup
	Log     *zap.SugaredLogger

	// HTTPClient and Clock are replaced in tests.
	HTTPClient *http.Client
	Clock      clock.Clock

	// emitter is set while a tail writes NDJSON, so warnings and errors
	// join the record stream.
	emitter *output.Emitter
}

// NewGlobalsWithConfig creates a new Globals instance with config fallbacks
func NewGlobalsWithConfig(cli *CLI, cfg *config.Config) *Globals {
	if cfg == nil {
		cfg = config.Default()
	}
	g := &Globals{
		Server:  cli.Server,
		Token:   cli.Token,
		Verbose: cli.Verbose || cfg.Verbose,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Stdin:   os.Stdin,
		Config:  cfg,
		Env:     os.LookupEnv,
	}
	g.Log = newLogger(g.Stderr, g.Verbose)
	return g
}

// Debug logs a diagnostic message when verbose mode is enabled
func (g *Globals) Debug(format string, args ...interface{}) {
	g.logger().Debugf(format, args...)
}

func (g *Globals) logger() *zap.SugaredLogger {
	if g.Log == nil {
		g.Log = newLogger(g.Stderr, g.Verbose)
	}
	return g.Log
}

func (g *Globals) clock() clock.Clock {
	if g.Clock == nil {
		return clock.New()
	}
	return g.Clock
}

func (g *Globals) server() string {
	if g.Server != "" {
		return g.Server
	}
	if g.Config != nil && g.Config.Server != "" {
		return g.Config.Server
	}
	return config.DefaultServer
}

// resolveToken finds the token for scope from --token, the environment or the config file.
func (g *Globals) resolveToken(scope config.TokenScope) (string, error) {
	var tokens config.TokensConfig
	if g.Config != nil {
		tokens = g.Config.Tokens
	}
	return config.ResolveToken(g.Token, scope, g.Env, tokens)
}

// newClient builds an API client for the configured server.
func (g *Globals) newClient() (*api.Client, error) {
	opts := []api.Option{api.WithLogger(g.logger()), api.WithClock(g.clock())}
	if g.HTTPClient != nil {
		opts = append(opts, api.WithHTTPClient(g.HTTPClient))
	}
	client, err := api.NewClient(g.server(), opts...)
	if err != nil {
		return nil, &config.ConfigurationError{
			Setting: "server",
			Message: err.Error(),
			Hint:    "Pass --server https://host or set scalyr_server",
		}
	}
	return client, nil
}

// ExitHook routes kong's exits through exit, reporting every failure as
// status 1 (kong uses 80 for usage errors).
func ExitHook(exit func(int)) kong.Option {
	return kong.Exit(func(code int) {
		if code != 0 {
			code = 1
		}
		exit(code)
	})
}

// VersionCmd shows version information
type VersionCmd struct {
	JSON bool `help:"Output as JSON"`
}

// Run executes the version command
func (v *VersionCmd) Run(globals *Globals) error {
	if v.JSON {
		_, err := io.WriteString(globals.Stdout, `{"type":"version","version":"`+Version+`","commit":"`+Commit+`"}`+"\n")
		return err
	}
	_, err := io.WriteString(globals.Stdout, "scalyr version "+Version+" ("+Commit+")\n")
	return err
}

// Version information (set at build time)
var (
	Version = "dev"
	Commit  = "none"
)
