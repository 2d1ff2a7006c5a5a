package cli

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/vburojevic/scalyr-tool/internal/api"
	"github.com/vburojevic/scalyr-tool/internal/config"
	"github.com/vburojevic/scalyr-tool/internal/output"
)

// FacetQueryCmd retrieves the most common values of a field
type FacetQueryCmd struct {
	TimeRangeFlags
	PriorityFlag

	Filter string `arg:"" help:"Query filter ('' for all records)"`
	Field  string `arg:"" help:"Field whose values are counted"`
	Count  int    `default:"100" help:"Number of distinct values to return (1-1000)"`
	Output string `short:"o" default:"text" enum:"text,csv,json,json-pretty" help:"Output style"`
}

// Run executes the facet-query command
func (c *FacetQueryCmd) Run(globals *Globals) error {
	if err := checkRange("count", c.Count, 1, 1000); err != nil {
		return err
	}

	ctx, stop := commandContext()
	defer stop()

	resp, err := execute(ctx, globals, config.ScopeReadLogs, api.EndpointFacetQuery, func(token string) any {
		return api.FacetQueryRequest{
			Token:     token,
			QueryType: "facet",
			Filter:    c.Filter,
			Field:     c.Field,
			MaxCount:  c.Count,
			StartTime: c.Start,
			EndTime:   c.End,
			Priority:  c.Priority,
		}
	})
	if err != nil {
		return err
	}
	if done, err := writeRawJSON(globals, c.Output, resp); done {
		return err
	}

	facets := api.DecodeFacets(resp)
	rows := make([][]string, 0, len(facets.Values))
	for _, v := range facets.Values {
		rows = append(rows, []string{v.Value, strconv.FormatInt(v.Count, 10)})
	}
	if c.Output == outputCSV {
		return output.NewCSVWriter(globals.Stdout).WriteRows([]string{"value", "count"}, rows)
	}
	if err := output.WriteTable(globals.Stdout, []string{"Value", "Count"}, rows); err != nil {
		return err
	}
	_, err = fmt.Fprintf(globals.Stdout, "%s matching records\n", humanize.Comma(facets.MatchCount))
	return err
}
