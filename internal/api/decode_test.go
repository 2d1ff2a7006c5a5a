package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/vburojevic/scalyr-tool/internal/domain"
)

func response(body string) *Response {
	parsed := gjson.Parse(body)
	return &Response{Raw: []byte(body), JSON: parsed, Status: parsed.Get("status").String()}
}

func TestDecodeQuery(t *testing.T) {
	r := response(`{
		"status": "success",
		"executionTime": 12,
		"continuationToken": "abc",
		"matches": [
			{"timestamp": "1700000000000000002", "session": "s1", "severity": 5, "message": "boom  \n",
			 "thread": "7", "attributes": {"status": 500, "path": "/x"}},
			{"timestamp": 1700000000000000001, "session": "s2", "message": "no severity"},
			{"timestamp": "1700000000000000000", "session": "s1", "serverHost": "web-1", "latency": 1.5}
		],
		"sessions": {
			"s1": {"serverHost": "web-1", "logfile": "/var/log/app.log", "region": "us"},
			"s2": {"serverHost": "web-2"}
		}
	}`)

	result := DecodeQuery(r)
	require.Len(t, result.Records, 3)
	assert.Equal(t, int64(12), result.ExecutionTime)
	assert.Equal(t, "abc", result.Continuation)

	first := result.Records[0]
	assert.Equal(t, int64(1700000000000000002), first.Timestamp)
	assert.Equal(t, "s1", first.Session)
	assert.Equal(t, domain.SeverityError, first.Severity)
	assert.Equal(t, "7", first.Thread)
	assert.Equal(t, map[string]any{"status": 500.0, "path": "/x"}, first.Attributes)

	second := result.Records[1]
	assert.Equal(t, int64(1700000000000000001), second.Timestamp)
	assert.Equal(t, domain.SeverityUnknown, second.Severity)
	assert.Nil(t, second.Attributes)

	third := result.Records[2]
	assert.Equal(t, "web-1", third.Attributes["serverHost"])
	assert.Equal(t, 1.5, third.Attributes["latency"])

	require.Contains(t, result.Sessions, "s1")
	assert.Equal(t, "web-1", result.Sessions["s1"].ServerHost)
	assert.Equal(t, "/var/log/app.log", result.Sessions["s1"].LogFile)
	assert.Equal(t, map[string]string{"region": "us"}, result.Sessions["s1"].Fields)
	assert.Nil(t, result.Sessions["s2"].Fields)
}

func TestDecodeQueryNonNumericSeverity(t *testing.T) {
	r := response(`{"status":"success","matches":[
		{"timestamp":"1","session":"s","severity":null,"message":"a"},
		{"timestamp":"2","session":"s","severity":"high","message":"b"},
		{"timestamp":"3","session":"s","severity":0,"message":"c"}
	]}`)

	result := DecodeQuery(r)
	require.Len(t, result.Records, 3)
	assert.Equal(t, domain.SeverityUnknown, result.Records[0].Severity)
	assert.Equal(t, "?", result.Records[0].Severity.Letter())
	assert.Equal(t, domain.SeverityUnknown, result.Records[1].Severity)
	assert.Equal(t, domain.SeverityFinest, result.Records[2].Severity)
}

func TestDecodeQueryEmpty(t *testing.T) {
	result := DecodeQuery(response(`{"status":"success"}`))
	assert.Empty(t, result.Records)
	assert.Empty(t, result.Sessions)
}

func TestDecodeNumericAndTimeseries(t *testing.T) {
	assert.Equal(t, []float64{1, 2.5, 0}, DecodeNumeric(response(`{"status":"success","values":[1,2.5,0]}`)))

	series := DecodeTimeseries(response(`{"status":"success","results":[{"values":[1,2]},{"values":[3]}]}`))
	assert.Equal(t, [][]float64{{1, 2}, {3}}, series)
}

func TestDecodeFacets(t *testing.T) {
	facets := DecodeFacets(response(`{"status":"success","matchCount":30,
		"values":[{"value":"200","count":25},{"value":"500","count":5}]}`))
	assert.Equal(t, int64(30), facets.MatchCount)
	assert.Equal(t, []FacetValue{{Value: "200", Count: 25}, {Value: "500", Count: 5}}, facets.Values)
}

func TestDecodeFile(t *testing.T) {
	t.Run("existing file", func(t *testing.T) {
		f := DecodeFile(response(`{"status":"success","path":"/scalyr/alerts","content":"{}","version":3,"createDate":10,"modDate":20}`))
		assert.True(t, f.Exists)
		assert.Equal(t, "/scalyr/alerts", f.Path)
		assert.Equal(t, "{}", f.Content)
		assert.Equal(t, int64(3), f.Version)
		assert.Equal(t, int64(20), f.ModDate)
	})

	t.Run("missing file", func(t *testing.T) {
		f := DecodeFile(response(`{"status":"success/noSuchFile","path":"/nope"}`))
		assert.False(t, f.Exists)
		assert.Equal(t, "/nope", f.Path)
	})
}

func TestDecodeFileListAndTimeseriesID(t *testing.T) {
	assert.Equal(t, []string{"/a", "/b"}, DecodeFileList(response(`{"status":"success","paths":["/a","/b"]}`)))
	assert.Equal(t, "ts-1", DecodeCreatedTimeseries(response(`{"status":"success","timeseriesId":"ts-1"}`)))
}
