package cli

import (
	"github.com/vburojevic/scalyr-tool/internal/api"
	"github.com/vburojevic/scalyr-tool/internal/config"
	"github.com/vburojevic/scalyr-tool/internal/output"
)

// NumericQueryCmd retrieves numeric values over a time range
type NumericQueryCmd struct {
	PriorityFlag

	Filter   string `arg:"" optional:"" help:"Query filter"`
	Function string `help:"Value to compute, e.g. count, rate, mean(latency), p90(latency)"`
	Start    string `required:"" help:"Beginning of the time range (e.g. 24h)"`
	End      string `help:"End of the time range (default: now)"`
	Buckets  int    `default:"1" help:"Number of buckets to divide the time range into (1-5000)"`
	Output   string `short:"o" default:"csv" enum:"csv,json,json-pretty" help:"Output style"`
}

// Run executes the numeric-query command
func (c *NumericQueryCmd) Run(globals *Globals) error {
	if err := checkRange("buckets", c.Buckets, 1, maxBuckets); err != nil {
		return err
	}

	ctx, stop := commandContext()
	defer stop()

	resp, err := execute(ctx, globals, config.ScopeReadLogs, api.EndpointNumericQuery, func(token string) any {
		return api.NumericQueryRequest{
			Token:     token,
			QueryType: "numeric",
			Filter:    c.Filter,
			Function:  c.Function,
			StartTime: c.Start,
			EndTime:   c.End,
			Buckets:   c.Buckets,
			Priority:  c.Priority,
		}
	})
	if err != nil {
		return err
	}
	if done, err := writeRawJSON(globals, c.Output, resp); done {
		return err
	}
	return output.NewCSVWriter(globals.Stdout).WriteValues(api.DecodeNumeric(resp))
}
