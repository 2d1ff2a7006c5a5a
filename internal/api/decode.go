package api

import (
	"github.com/tidwall/gjson"

	"github.com/vburojevic/scalyr-tool/internal/domain"
)

// StatusNoSuchFile is the getFile status for a path that does not exist.
const StatusNoSuchFile = "success/noSuchFile"

var recordFields = map[string]bool{
	"timestamp":  true,
	"session":    true,
	"severity":   true,
	"message":    true,
	"thread":     true,
	"attributes": true,
}

// DecodeQuery extracts records and session metadata from a log query response.
func DecodeQuery(r *Response) domain.QueryResult {
	result := domain.QueryResult{
		Sessions:      map[string]domain.SessionInfo{},
		ExecutionTime: r.JSON.Get("executionTime").Int(),
		Continuation:  r.JSON.Get("continuationToken").String(),
	}

	matches := r.JSON.Get("matches").Array()
	result.Records = make([]domain.LogRecord, 0, len(matches))
	for _, m := range matches {
		result.Records = append(result.Records, decodeRecord(m))
	}

	r.JSON.Get("sessions").ForEach(func(id, s gjson.Result) bool {
		info := domain.SessionInfo{
			ServerHost: s.Get("serverHost").String(),
			LogFile:    s.Get("logfile").String(),
		}
		s.ForEach(func(k, v gjson.Result) bool {
			if k.String() == "serverHost" || k.String() == "logfile" {
				return true
			}
			if info.Fields == nil {
				info.Fields = map[string]string{}
			}
			info.Fields[k.String()] = v.String()
			return true
		})
		result.Sessions[id.String()] = info
		return true
	})

	return result
}

func decodeRecord(m gjson.Result) domain.LogRecord {
	rec := domain.LogRecord{
		Timestamp: m.Get("timestamp").Int(),
		Session:   m.Get("session").String(),
		Severity:  domain.SeverityUnknown,
		Message:   m.Get("message").String(),
		Thread:    m.Get("thread").String(),
	}
	if sev := m.Get("severity"); sev.Exists() && sev.Type == gjson.Number {
		rec.Severity = domain.Severity(sev.Int())
	}

	attrs := map[string]any{}
	m.Get("attributes").ForEach(func(k, v gjson.Result) bool {
		attrs[k.String()] = v.Value()
		return true
	})
	// Column-restricted queries return requested fields at the top level.
	m.ForEach(func(k, v gjson.Result) bool {
		if !recordFields[k.String()] {
			attrs[k.String()] = v.Value()
		}
		return true
	})
	if len(attrs) > 0 {
		rec.Attributes = attrs
	}
	return rec
}

// DecodeNumeric returns the bucket values of a numeric query.
func DecodeNumeric(r *Response) []float64 {
	return floats(r.JSON.Get("values"))
}

// FacetValue is one row of a facet query
type FacetValue struct {
	Value string `json:"value"`
	Count int64  `json:"count"`
}

// FacetResult is the decoded body of a facet query
type FacetResult struct {
	Values     []FacetValue
	MatchCount int64
}

// DecodeFacets returns the most common values of the faceted field.
func DecodeFacets(r *Response) FacetResult {
	result := FacetResult{MatchCount: r.JSON.Get("matchCount").Int()}
	for _, v := range r.JSON.Get("values").Array() {
		result.Values = append(result.Values, FacetValue{
			Value: v.Get("value").String(),
			Count: v.Get("count").Int(),
		})
	}
	return result
}

// DecodeTimeseries returns one value slice per requested timeseries.
func DecodeTimeseries(r *Response) [][]float64 {
	var out [][]float64
	for _, res := range r.JSON.Get("results").Array() {
		out = append(out, floats(res.Get("values")))
	}
	return out
}

// DecodeCreatedTimeseries returns the id assigned by createTimeseries.
func DecodeCreatedTimeseries(r *Response) string {
	return r.JSON.Get("timeseriesId").String()
}

// FileResult is the decoded body of getFile
type FileResult struct {
	Exists     bool
	Path       string
	Content    string
	Version    int64
	CreateDate int64
	ModDate    int64
}

// DecodeFile decodes a getFile response. Exists is false for
// "success/noSuchFile".
func DecodeFile(r *Response) FileResult {
	if r.Status == StatusNoSuchFile {
		return FileResult{Path: r.JSON.Get("path").String()}
	}
	return FileResult{
		Exists:     true,
		Path:       r.JSON.Get("path").String(),
		Content:    r.JSON.Get("content").String(),
		Version:    r.JSON.Get("version").Int(),
		CreateDate: r.JSON.Get("createDate").Int(),
		ModDate:    r.JSON.Get("modDate").Int(),
	}
}

// DecodeFileList returns the paths reported by listFiles.
func DecodeFileList(r *Response) []string {
	var paths []string
	for _, p := range r.JSON.Get("paths").Array() {
		paths = append(paths, p.String())
	}
	return paths
}

func floats(arr gjson.Result) []float64 {
	values := arr.Array()
	out := make([]float64, 0, len(values))
	for _, v := range values {
		out = append(out, v.Float())
	}
	return out
}
