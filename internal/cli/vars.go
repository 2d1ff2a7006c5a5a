package cli

import (
	"strconv"

	"github.com/alecthomas/kong"

	"github.com/vburojevic/scalyr-tool/internal/config"
)

// Vars exposes config values as kong flag defaults. Explicit flags still win.
func Vars(cfg *config.Config) kong.Vars {
	if cfg == nil {
		cfg = config.Default()
	}
	return kong.Vars{
		"config_server":       cfg.Server,
		"config_priority":     cfg.Priority,
		"config_query_output": cfg.Defaults.QueryOutput,
		"config_tail_output":  cfg.Defaults.TailOutput,
		"config_tail_lines":   strconv.Itoa(cfg.Defaults.TailLines),
		"config_count":        strconv.Itoa(cfg.Defaults.Count),
	}
}
