package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/vburojevic/scalyr-tool/internal/cli"
	"github.com/vburojevic/scalyr-tool/internal/config"
)

func main() {
	// Load configuration from files/environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		cfg = config.Default()
	}

	var c cli.CLI

	ctx := kong.Parse(&c,
		kong.Name("scalyr"),
		kong.Description("Command-line client for the Scalyr log API"),
		kong.UsageOnError(),
		cli.ExitHook(os.Exit),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}),
		cli.Vars(cfg),
	)

	globals := cli.NewGlobalsWithConfig(&c, cfg)
	globals.Debug("server %s, config file %q", globals.Server, config.ConfigFile())
	if err := ctx.Run(globals); err != nil {
		cli.ReportError(globals, err)
		os.Exit(1)
	}
}
