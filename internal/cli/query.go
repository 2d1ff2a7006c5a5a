package cli

import (
	"github.com/vburojevic/scalyr-tool/internal/api"
	"github.com/vburojevic/scalyr-tool/internal/config"
	"github.com/vburojevic/scalyr-tool/internal/output"
)

// QueryCmd retrieves log records
type QueryCmd struct {
	TimeRangeFlags
	PriorityFlag
	ClientFilterFlags

	Filter  string `arg:"" optional:"" help:"Query filter (default: all records)"`
	Count   int    `default:"${config_count}" help:"Number of records to return (1-5000)"`
	Mode    string `default:"head" enum:"head,tail" help:"Return the oldest (head) or newest (tail) matching records"`
	Columns string `help:"Comma separated fields to return; required for csv output"`
	Output  string `short:"o" default:"${config_query_output}" enum:"multiline,singleline,messageonly,csv,json,json-pretty" help:"Output style"`
}

func (c *QueryCmd) validate() ([]string, error) {
	if _, err := c.buildFilters(); err != nil {
		return nil, err
	}
	if err := checkRange("count", c.Count, 1, maxCount); err != nil {
		return nil, err
	}
	columns := splitColumns(c.Columns)
	if c.Output == outputCSV && len(columns) == 0 {
		return nil, &config.ConfigurationError{
			Setting: "columns",
			Message: "csv output requires a non-empty --columns list",
			Hint:    "Example: --output csv --columns 'timestamp,severity,message'",
		}
	}
	return columns, nil
}

// Run executes the query command
func (c *QueryCmd) Run(globals *Globals) error {
	columns, err := c.validate()
	if err != nil {
		return err
	}

	ctx, stop := commandContext()
	defer stop()

	resp, err := execute(ctx, globals, config.ScopeReadLogs, api.EndpointQuery, func(token string) any {
		req := api.NewLogQuery(token)
		req.Filter = c.Filter
		req.StartTime = c.Start
		req.EndTime = c.End
		req.MaxCount = c.Count
		req.PageMode = c.Mode
		req.Columns = c.Columns
		req.Priority = c.Priority
		return req
	})
	if err != nil {
		return err
	}
	return c.render(globals, resp, columns)
}

func (c *QueryCmd) render(globals *Globals, resp *api.Response, columns []string) error {
	if done, err := writeRawJSON(globals, c.Output, resp); done {
		return err
	}

	result := api.DecodeQuery(resp)
	globals.Debug("query returned %d records (server time %dms)", len(result.Records), result.ExecutionTime)

	chain, err := c.buildFilters()
	if err != nil {
		return err
	}
	if chain != nil {
		result.Records = chain.Apply(result.Records)
		globals.Debug("%d records left after client-side filters", len(result.Records))
	}

	if c.Output == outputCSV {
		return output.NewCSVWriter(globals.Stdout).WriteRecords(columns, result.Records)
	}
	w := output.NewTextWriter(globals.Stdout, c.Output,
		output.WithSessions(result.Sessions),
		output.WithColor(stdoutPainter(globals).Enabled))
	return w.WriteAll(result.Records)
}
