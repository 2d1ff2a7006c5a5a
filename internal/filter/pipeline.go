package filter

import (
	"fmt"

	"github.com/vburojevic/scalyr-tool/internal/domain"
)

// Options describes the client-side filters applied after the server's
// own filter expression.
type Options struct {
	Pattern     string
	Excludes    []string
	MinSeverity string
}

// Build compiles opts into a chain. It returns nil when no filter is set,
// and a nil *Chain matches everything.
func Build(opts Options) (*Chain, error) {
	chain := NewChain()
	if opts.Pattern != "" {
		f, err := NewRegexFilter(opts.Pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", opts.Pattern, err)
		}
		chain.Add(f)
	}
	for _, ex := range opts.Excludes {
		f, err := NewExcludePatternFilter(ex)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", ex, err)
		}
		chain.Add(f)
	}
	if opts.MinSeverity != "" {
		sev, err := domain.ParseSeverity(opts.MinSeverity)
		if err != nil {
			return nil, err
		}
		chain.Add(NewSeverityFilter(sev))
	}
	if chain.Len() == 0 {
		return nil, nil
	}
	return chain, nil
}

// Apply returns the records that pass c, preserving order.
func (c *Chain) Apply(recs []domain.LogRecord) []domain.LogRecord {
	if c == nil {
		return recs
	}
	out := recs[:0:0]
	for i := range recs {
		if c.Match(&recs[i]) {
			out = append(out, recs[i])
		}
	}
	return out
}
