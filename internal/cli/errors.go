package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vburojevic/scalyr-tool/internal/api"
	"github.com/vburojevic/scalyr-tool/internal/config"
	"github.com/vburojevic/scalyr-tool/internal/output"
)

// classify maps an error to a code, a hint and, for server errors, the
// response body worth showing to the user.
func classify(err error) (code, hint string, body []byte) {
	var cliErr *CLIError
	var cfgErr *config.ConfigurationError
	var srvErr *api.ServerError
	var badErr *api.MalformedResponseError
	var apiErr *api.APIError
	var tErr *api.TransportError

	switch {
	case errors.As(err, &cliErr):
		return cliErr.Code, cliErr.Hint, nil
	case errors.As(err, &cfgErr):
		return CodeConfiguration, cfgErr.Hint, nil
	case errors.As(err, &srvErr):
		return CodeServer, hintForServerError(srvErr), srvErr.Body
	case errors.As(err, &badErr):
		return CodeMalformedResponse, "The server answered with something other than JSON; check --server", badErr.Body
	case errors.As(err, &apiErr):
		return CodeAPI, hintForAPIError(apiErr), nil
	case errors.As(err, &tErr):
		return CodeTransport, hintForTransport(tErr), nil
	default:
		return CodeUnknown, "", nil
	}
}

// ReportError prints err for the user: code and message, an optional hint
// and the server's response body when there is one. Tail sessions writing
// NDJSON also get a machine-readable error line on stdout.
func ReportError(globals *Globals, err error) {
	if globals == nil || err == nil {
		return
	}
	code, hint, body := classify(err)

	if globals.emitter != nil {
		if werr := globals.emitter.Error(code, err.Error(), hint); werr != nil {
			globals.Debug("write error event: %v", werr)
		}
	}

	paint := stderrPainter(globals)
	fmt.Fprintf(globals.Stderr, "%s %s: %s\n",
		paint.Paint(output.Styles.Danger, "Error"),
		paint.Paint(output.Styles.Notice, "["+code+"]"),
		err.Error())
	if len(body) > 0 {
		fmt.Fprintf(globals.Stderr, "Response body:\n%s\n", strings.TrimRight(string(body), "\r\n"))
	}
	if hint != "" {
		fmt.Fprintf(globals.Stderr, "%s %s\n", paint.Paint(output.Styles.Label, "Hint:"), hint)
	}
}
