package cli

import (
	"fmt"

	"github.com/vburojevic/scalyr-tool/internal/api"
	"github.com/vburojevic/scalyr-tool/internal/config"
	"github.com/vburojevic/scalyr-tool/internal/output"
)

// TimeseriesQueryCmd reads values from saved timeseries
type TimeseriesQueryCmd struct {
	PriorityFlag

	IDs     []string `arg:"" name:"id" help:"Timeseries IDs returned by create-timeseries"`
	Start   string   `required:"" help:"Beginning of the time range (e.g. 24h)"`
	End     string   `help:"End of the time range (default: now)"`
	Buckets int      `default:"1" help:"Number of buckets to divide the time range into (1-5000)"`
	Output  string   `short:"o" default:"csv" enum:"csv,json,json-pretty" help:"Output style"`
}

// Run executes the timeseries-query command
func (c *TimeseriesQueryCmd) Run(globals *Globals) error {
	if err := checkRange("buckets", c.Buckets, 1, maxBuckets); err != nil {
		return err
	}

	ctx, stop := commandContext()
	defer stop()

	resp, err := execute(ctx, globals, config.ScopeReadLogs, api.EndpointTimeseriesQuery, func(token string) any {
		req := api.TimeseriesQueryRequest{Token: token}
		for _, id := range c.IDs {
			req.Queries = append(req.Queries, api.TimeseriesQuery{
				TimeseriesID: id,
				StartTime:    c.Start,
				EndTime:      c.End,
				Buckets:      c.Buckets,
				Priority:     c.Priority,
			})
		}
		return req
	})
	if err != nil {
		return err
	}
	if done, err := writeRawJSON(globals, c.Output, resp); done {
		return err
	}
	return output.NewCSVWriter(globals.Stdout).WriteValues(api.DecodeTimeseries(resp)...)
}

// CreateTimeseriesCmd registers a numeric query as a timeseries
type CreateTimeseriesCmd struct {
	Filter   string `arg:"" help:"Query filter"`
	Function string `help:"Value to compute, e.g. count, rate, mean(latency)"`
	JSON     bool   `help:"Print the raw server response"`
}

// Run executes the create-timeseries command
func (c *CreateTimeseriesCmd) Run(globals *Globals) error {
	ctx, stop := commandContext()
	defer stop()

	resp, err := execute(ctx, globals, config.ScopeReadLogs, api.EndpointCreateTimeseries, func(token string) any {
		return api.CreateTimeseriesRequest{
			Token:     token,
			QueryType: "numeric",
			Filter:    c.Filter,
			Function:  c.Function,
		}
	})
	if err != nil {
		return err
	}
	if c.JSON {
		return output.WriteJSON(globals.Stdout, resp.Raw)
	}
	_, err = fmt.Fprintln(globals.Stdout, api.DecodeCreatedTimeseries(resp))
	return err
}
