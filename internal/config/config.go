package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// DefaultServer is the API base URL used when nothing else is configured.
const DefaultServer = "https://www.scalyr.com"

// Config holds application configuration
type Config struct {
	// Global settings
	Server   string `mapstructure:"server"`
	Verbose  bool   `mapstructure:"verbose"`
	Priority string `mapstructure:"priority"`

	// Tokens are the lowest-precedence credential source (after --token and env)
	Tokens TokensConfig `mapstructure:"tokens"`

	// Default values for commands
	Defaults DefaultsConfig `mapstructure:"defaults"`
}

// TokensConfig holds per-scope API tokens
type TokensConfig struct {
	ReadLogs    string `mapstructure:"read_logs"`
	ReadConfig  string `mapstructure:"read_config"`
	WriteConfig string `mapstructure:"write_config"`
}

// DefaultsConfig holds default values for various commands
type DefaultsConfig struct {
	QueryOutput string `mapstructure:"query_output"`
	TailOutput  string `mapstructure:"tail_output"`
	TailLines   int    `mapstructure:"tail_lines"`
	Count       int    `mapstructure:"count"`
}

// Default returns a Config with default values
func Default() *Config {
	return &Config{
		Server:   DefaultServer,
		Verbose:  false,
		Priority: "high",
		Defaults: DefaultsConfig{
			QueryOutput: "multiline",
			TailOutput:  "multiline",
			TailLines:   10,
			Count:       10,
		},
	}
}

// Load loads configuration from files and environment
// Config file search order is SearchPaths: the working directory, home,
// the user config dir's scalyr/ and /etc/scalyr.
func Load() (*Config, error) {
	return load(findConfigFile(), os.LookupEnv)
}

func load(configFile string, lookup EnvLookup) (*Config, error) {
	cfg := Default()

	if configFile != "" {
		v := viper.New()
		v.SetConfigFile(configFile)

		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}

		if err := v.Unmarshal(cfg); err != nil {
			return nil, err
		}
	}

	// Override with environment variables
	applyEnvOverrides(cfg, lookup)

	return cfg, nil
}

// configNames are the file names accepted in every search directory.
var configNames = []string{".scalyr.yaml", ".scalyr.yml", "scalyr.yaml", "scalyr.yml"}

// SearchPaths lists every candidate config file in precedence order.
func SearchPaths() []string {
	var dirs []string
	if cwd, err := os.Getwd(); err == nil {
		dirs = append(dirs, cwd)
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, home)
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(configDir, "scalyr"))
	}
	dirs = append(dirs, "/etc/scalyr")
	return candidates(dirs)
}

func candidates(dirs []string) []string {
	var paths []string
	for _, dir := range dirs {
		for _, name := range configNames {
			paths = append(paths, filepath.Join(dir, name))
		}
		// config.yaml only counts inside a scalyr-specific directory
		if filepath.Base(dir) == "scalyr" {
			paths = append(paths, filepath.Join(dir, "config.yaml"))
		}
	}
	return paths
}

// findConfigFile returns the first existing search path
func findConfigFile() string {
	for _, path := range SearchPaths() {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(cfg *Config, lookup EnvLookup) {
	if lookup == nil {
		return
	}
	if v, ok := lookup("scalyr_server"); ok && strings.TrimSpace(v) != "" {
		cfg.Server = strings.TrimSpace(v)
	}
	if v, ok := lookup("scalyr_verbose"); ok && (v == "true" || v == "1") {
		cfg.Verbose = true
	}
}

// LoadFromFile loads configuration from a specific file
func LoadFromFile(path string) (*Config, error) {
	return load(path, nil)
}

// ConfigFile returns the path to the config file that would be loaded
func ConfigFile() string {
	return findConfigFile()
}
