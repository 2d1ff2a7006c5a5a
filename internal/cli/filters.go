package cli

import (
	"github.com/vburojevic/scalyr-tool/internal/config"
	"github.com/vburojevic/scalyr-tool/internal/filter"
)

// ClientFilterFlags narrow displayed records after the server has applied
// the query filter. Raw json output is never filtered.
type ClientFilterFlags struct {
	Grep        string   `short:"g" help:"Only show records whose message matches this regex"`
	Exclude     []string `short:"x" help:"Hide records whose message matches this regex (repeatable)"`
	MinSeverity string   `help:"Only show records at or above this severity (finest..fatal, or a letter)"`
}

// buildFilters compiles the client-side filters for display commands.
func (f ClientFilterFlags) buildFilters() (*filter.Chain, error) {
	chain, err := filter.Build(filter.Options{
		Pattern:     f.Grep,
		Excludes:    f.Exclude,
		MinSeverity: f.MinSeverity,
	})
	if err != nil {
		return nil, &config.ConfigurationError{
			Setting: "filter",
			Message: err.Error(),
			Hint:    "Patterns use Go regexp syntax; severities are finest, finer, fine, info, warning, error, fatal",
		}
	}
	return chain, nil
}
