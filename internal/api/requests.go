package api

// API endpoints, relative to the server base URL
const (
	EndpointGetFile          = "/getFile"
	EndpointPutFile          = "/putFile"
	EndpointListFiles        = "/listFiles"
	EndpointQuery            = "/api/query"
	EndpointNumericQuery     = "/api/numericQuery"
	EndpointFacetQuery       = "/api/facetQuery"
	EndpointTimeseriesQuery  = "/api/timeseriesQuery"
	EndpointCreateTimeseries = "/api/createTimeseries"
)

// Page modes for log queries
const (
	PageModeHead = "head"
	PageModeTail = "tail"
)

// Execution priorities
const (
	PriorityLow  = "low"
	PriorityHigh = "high"
)

// QueryRequest is the body of /api/query
type QueryRequest struct {
	Token     string `json:"token"`
	QueryType string `json:"queryType"` // always "log"
	Filter    string `json:"filter,omitempty"`
	StartTime string `json:"startTime,omitempty"`
	EndTime   string `json:"endTime,omitempty"`
	MaxCount  int    `json:"maxCount,omitempty"`
	PageMode  string `json:"pageMode,omitempty"`
	Columns   string `json:"columns,omitempty"`
	Priority  string `json:"priority,omitempty"`
}

// NewLogQuery returns a head-mode, high-priority log query request.
func NewLogQuery(token string) QueryRequest {
	return QueryRequest{Token: token, QueryType: "log", PageMode: PageModeHead, Priority: PriorityHigh}
}

// NumericQueryRequest is the body of /api/numericQuery
type NumericQueryRequest struct {
	Token     string `json:"token"`
	QueryType string `json:"queryType"` // always "numeric"
	Filter    string `json:"filter,omitempty"`
	Function  string `json:"function,omitempty"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime,omitempty"`
	Buckets   int    `json:"buckets,omitempty"`
	Priority  string `json:"priority,omitempty"`
}

// FacetQueryRequest is the body of /api/facetQuery
type FacetQueryRequest struct {
	Token     string `json:"token"`
	QueryType string `json:"queryType"` // always "facet"
	Filter    string `json:"filter,omitempty"`
	Field     string `json:"field"`
	MaxCount  int    `json:"maxCount,omitempty"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime,omitempty"`
	Priority  string `json:"priority,omitempty"`
}

// TimeseriesQuery is one entry of a /api/timeseriesQuery request
type TimeseriesQuery struct {
	TimeseriesID string `json:"timeseriesId"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime,omitempty"`
	Buckets      int    `json:"buckets,omitempty"`
	Priority     string `json:"priority,omitempty"`
}

// TimeseriesQueryRequest is the body of /api/timeseriesQuery
type TimeseriesQueryRequest struct {
	Token   string            `json:"token"`
	Queries []TimeseriesQuery `json:"queries"`
}

// CreateTimeseriesRequest is the body of /api/createTimeseries
type CreateTimeseriesRequest struct {
	Token     string `json:"token"`
	QueryType string `json:"queryType"` // always "numeric"
	Filter    string `json:"filter"`
	Function  string `json:"function,omitempty"`
}

// GetFileRequest is the body of /getFile
type GetFileRequest struct {
	Token string `json:"token"`
	Path  string `json:"path"`
}

// PutFileRequest is the body of /putFile. Exactly one of Content or
// DeleteFile is meaningful.
type PutFileRequest struct {
	Token      string  `json:"token"`
	Path       string  `json:"path"`
	Content    *string `json:"content,omitempty"`
	DeleteFile bool    `json:"deleteFile,omitempty"`
}

// ListFilesRequest is the body of /listFiles
type ListFilesRequest struct {
	Token string `json:"token"`
}
