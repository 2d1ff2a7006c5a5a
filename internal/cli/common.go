package cli

import (
	"context"
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/vburojevic/scalyr-tool/internal/api"
	"github.com/vburojevic/scalyr-tool/internal/config"
	"github.com/vburojevic/scalyr-tool/internal/output"
)

// Output styles shared by the one-shot commands
const (
	outputJSON       = "json"
	outputJSONPretty = "json-pretty"
	outputCSV        = "csv"
	outputText       = "text"
	outputTable      = "table"
)

// maxBuckets and maxCount bound the numeric arguments the API accepts.
const (
	maxBuckets = 5000
	maxCount   = 5000
)

// TimeRangeFlags selects the query window. Values are passed to the server
// unchanged, so both relative ("24h") and absolute times work.
type TimeRangeFlags struct {
	Start string `help:"Beginning of the time range (e.g. 24h, '2024-01-15 10:00')"`
	End   string `help:"End of the time range (default: now)"`
}

// PriorityFlag sets the server-side execution priority.
type PriorityFlag struct {
	Priority string `default:"${config_priority}" enum:"low,high" help:"Execution priority: low or high"`
}

// commandContext is cancelled on SIGINT/SIGTERM.
func commandContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}

// execute resolves the token for scope and sends one request.
func execute(ctx context.Context, globals *Globals, scope config.TokenScope, endpoint string, build func(token string) any) (*api.Response, error) {
	token, err := globals.resolveToken(scope)
	if err != nil {
		return nil, err
	}
	client, err := globals.newClient()
	if err != nil {
		return nil, err
	}
	return client.Execute(ctx, endpoint, build(token))
}

// writeRawJSON handles the json and json-pretty outputs. It reports false
// for any other style.
func writeRawJSON(globals *Globals, style string, resp *api.Response) (bool, error) {
	switch style {
	case outputJSON:
		return true, output.WriteJSON(globals.Stdout, resp.Raw)
	case outputJSONPretty:
		return true, output.WritePrettyJSON(globals.Stdout, resp.Raw)
	}
	return false, nil
}

func checkRange(flag string, v, lo, hi int) error {
	if v < lo || v > hi {
		return &CLIError{
			Code:    CodeInput,
			Message: fmt.Sprintf("--%s must be between %d and %d (got %d)", flag, lo, hi, v),
		}
	}
	return nil
}

// splitColumns parses a comma separated --columns value.
func splitColumns(s string) []string {
	var cols []string
	for _, c := range strings.Split(s, ",") {
		if c = strings.TrimSpace(c); c != "" {
			cols = append(cols, c)
		}
	}
	return cols
}
