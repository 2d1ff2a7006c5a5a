package cli

import (
	"encoding/json"
	"fmt"

	"github.com/vburojevic/scalyr-tool/internal/config"
)

// ConfigCmd shows or manages configuration
type ConfigCmd struct {
	Show     ConfigShowCmd     `cmd:"" default:"withargs" help:"Show current configuration"`
	Path     ConfigPathCmd     `cmd:"" help:"Show configuration file path"`
	Generate ConfigGenerateCmd `cmd:"" help:"Generate sample configuration file"`
}

// ConfigShowCmd shows current configuration
type ConfigShowCmd struct {
	JSON bool `help:"Output as JSON"`
}

// Run executes the config show command
func (c *ConfigShowCmd) Run(globals *Globals) error {
	cfg := globals.Config
	if cfg == nil {
		cfg = config.Default()
	}
	tokens := map[string]string{
		"read_logs":    tokenSource(globals, config.ScopeReadLogs),
		"read_config":  tokenSource(globals, config.ScopeReadConfig),
		"write_config": tokenSource(globals, config.ScopeWriteConfig),
	}

	if c.JSON {
		output := map[string]interface{}{
			"type":     "config",
			"server":   globals.server(),
			"verbose":  globals.Verbose,
			"priority": cfg.Priority,
			"tokens":   tokens,
			"defaults": map[string]interface{}{
				"query_output": cfg.Defaults.QueryOutput,
				"tail_output":  cfg.Defaults.TailOutput,
				"tail_lines":   cfg.Defaults.TailLines,
				"count":        cfg.Defaults.Count,
			},
		}
		encoder := json.NewEncoder(globals.Stdout)
		return encoder.Encode(output)
	}

	// Text output
	fmt.Fprintln(globals.Stdout, "Current Configuration:")
	fmt.Fprintln(globals.Stdout, "")
	fmt.Fprintf(globals.Stdout, "  server:   %s\n", globals.server())
	fmt.Fprintf(globals.Stdout, "  verbose:  %v\n", globals.Verbose)
	fmt.Fprintf(globals.Stdout, "  priority: %s\n", cfg.Priority)
	fmt.Fprintln(globals.Stdout, "")
	fmt.Fprintln(globals.Stdout, "Tokens:")
	fmt.Fprintf(globals.Stdout, "  read_logs:    %s\n", tokens["read_logs"])
	fmt.Fprintf(globals.Stdout, "  read_config:  %s\n", tokens["read_config"])
	fmt.Fprintf(globals.Stdout, "  write_config: %s\n", tokens["write_config"])
	fmt.Fprintln(globals.Stdout, "")
	fmt.Fprintln(globals.Stdout, "Defaults:")
	fmt.Fprintf(globals.Stdout, "  query_output: %s\n", cfg.Defaults.QueryOutput)
	fmt.Fprintf(globals.Stdout, "  tail_output:  %s\n", cfg.Defaults.TailOutput)
	fmt.Fprintf(globals.Stdout, "  tail_lines:   %d\n", cfg.Defaults.TailLines)
	fmt.Fprintf(globals.Stdout, "  count:        %d\n", cfg.Defaults.Count)

	if path := config.ConfigFile(); path != "" {
		fmt.Fprintln(globals.Stdout, "")
		fmt.Fprintf(globals.Stdout, "Loaded from: %s\n", path)
	}

	return nil
}

// tokenSource says where a scope's token would come from, never the token itself.
func tokenSource(globals *Globals, scope config.TokenScope) string {
	if globals.Token != "" {
		return "--token"
	}
	if globals.Env != nil {
		if v, ok := globals.Env(scope.EnvVar()); ok && v != "" {
			return "env " + scope.EnvVar()
		}
	}
	if globals.Config != nil {
		if _, err := config.ResolveToken("", scope, nil, globals.Config.Tokens); err == nil {
			return "config file"
		}
	}
	return "not set"
}

// ConfigPathCmd shows config file path
type ConfigPathCmd struct {
	JSON bool `help:"Output as JSON"`
}

// Run executes the config path command
func (c *ConfigPathCmd) Run(globals *Globals) error {
	path := config.ConfigFile()

	if c.JSON {
		output := map[string]interface{}{
			"type":     "config_path",
			"path":     path,
			"searched": config.SearchPaths(),
		}
		encoder := json.NewEncoder(globals.Stdout)
		return encoder.Encode(output)
	}

	if path == "" {
		fmt.Fprintln(globals.Stdout, "No configuration file found")
		fmt.Fprintln(globals.Stdout, "")
		fmt.Fprintln(globals.Stdout, "Searched, in order:")
		for _, p := range config.SearchPaths() {
			fmt.Fprintf(globals.Stdout, "  %s\n", p)
		}
	} else {
		fmt.Fprintf(globals.Stdout, "Config file: %s\n", path)
	}

	return nil
}

// ConfigGenerateCmd generates a sample configuration file
type ConfigGenerateCmd struct{}

// Run executes the config generate command
func (c *ConfigGenerateCmd) Run(globals *Globals) error {
	sampleConfig := `# scalyr configuration file
# Place this file at ./.scalyr.yaml, ~/.scalyr.yaml or ~/.config/scalyr/config.yaml

# API server (overridden by --server and the scalyr_server environment variable)
server: https://www.scalyr.com

# Echo requests and tail poll details to stderr
verbose: false

# Default execution priority for queries: low or high
priority: high

# API tokens, used when neither --token nor the matching environment
# variable (scalyr_readlog_token, scalyr_readconfig_token,
# scalyr_writeconfig_token) is set
tokens:
  # read_logs: ""
  # read_config: ""
  # write_config: ""

# Default values for commands
defaults:
  # query output: multiline, singleline, messageonly, csv, json, json-pretty
  query_output: multiline

  # tail output: multiline, singleline, messageonly, json
  tail_output: multiline

  # Records shown when a tail starts
  tail_lines: 10

  # Records returned by query
  count: 10
`

	fmt.Fprint(globals.Stdout, sampleConfig)
	return nil
}
