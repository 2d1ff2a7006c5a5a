package config

import (
	"fmt"
	"strings"
)

// EnvLookup matches os.LookupEnv so tests can supply a fake environment.
type EnvLookup func(key string) (string, bool)

// TokenScope selects which API key a command needs.
type TokenScope int

const (
	ScopeReadLogs TokenScope = iota
	ScopeReadConfig
	ScopeWriteConfig
)

// EnvVar returns the environment variable consulted for the scope.
func (s TokenScope) EnvVar() string {
	switch s {
	case ScopeReadConfig:
		return "scalyr_readconfig_token"
	case ScopeWriteConfig:
		return "scalyr_writeconfig_token"
	default:
		return "scalyr_readlog_token"
	}
}

func (s TokenScope) describe() string {
	switch s {
	case ScopeReadConfig:
		return "Read Config"
	case ScopeWriteConfig:
		return "Write Config"
	default:
		return "Read Logs"
	}
}

func (s TokenScope) fromConfig(t TokensConfig) string {
	switch s {
	case ScopeReadConfig:
		return t.ReadConfig
	case ScopeWriteConfig:
		return t.WriteConfig
	default:
		return t.ReadLogs
	}
}

// ConfigurationError reports invalid or missing user configuration. It is
// never retried and never involves the network.
type ConfigurationError struct {
	Setting string
	Message string
	Hint    string
}

func (e *ConfigurationError) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

// ResolveToken picks the API token for scope: the --token flag wins, then the
// scope's environment variable, then the config file.
func ResolveToken(flag string, scope TokenScope, lookup EnvLookup, tokens TokensConfig) (string, error) {
	if t := strings.TrimSpace(flag); t != "" {
		return t, nil
	}
	if lookup != nil {
		if t, ok := lookup(scope.EnvVar()); ok && strings.TrimSpace(t) != "" {
			return strings.TrimSpace(t), nil
		}
	}
	if t := strings.TrimSpace(scope.fromConfig(tokens)); t != "" {
		return t, nil
	}
	return "", &ConfigurationError{
		Setting: scope.EnvVar(),
		Message: fmt.Sprintf("no API token: this command needs a %s token", scope.describe()),
		Hint: fmt.Sprintf("Pass --token, or set the %s environment variable (find your API keys at %s/keys)",
			scope.EnvVar(), DefaultServer),
	}
}
