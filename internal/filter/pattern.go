package filter

import (
	"regexp"

	"github.com/vburojevic/scalyr-tool/internal/domain"
)

// RegexFilter keeps records whose message matches a pattern
type RegexFilter struct {
	pattern *regexp.Regexp
}

// NewRegexFilter creates a regex filter from a pattern string
func NewRegexFilter(pattern string) (*RegexFilter, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return &RegexFilter{pattern: re}, nil
}

// Match returns true if the record message matches the pattern
func (f *RegexFilter) Match(rec *domain.LogRecord) bool {
	if f.pattern == nil {
		return true
	}
	return f.pattern.MatchString(rec.Message)
}

// ExcludePatternFilter drops records whose message matches a pattern
type ExcludePatternFilter struct {
	pattern *regexp.Regexp
}

// NewExcludePatternFilter creates an exclusion filter from a pattern string
func NewExcludePatternFilter(pattern string) (*ExcludePatternFilter, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return &ExcludePatternFilter{pattern: re}, nil
}

// Match returns true if the record does NOT match the exclusion pattern
func (f *ExcludePatternFilter) Match(rec *domain.LogRecord) bool {
	if f.pattern == nil {
		return true
	}
	return !f.pattern.MatchString(rec.Message)
}

// SeverityFilter keeps records at or above a minimum severity.
// Records without a severity always pass.
type SeverityFilter struct {
	min domain.Severity
}

// NewSeverityFilter creates a severity filter
func NewSeverityFilter(min domain.Severity) *SeverityFilter {
	return &SeverityFilter{min: min}
}

// Match returns true if the record severity is >= the minimum
func (f *SeverityFilter) Match(rec *domain.LogRecord) bool {
	if !rec.Severity.Valid() {
		return true
	}
	return rec.Severity >= f.min
}
