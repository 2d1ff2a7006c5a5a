package cli

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/vburojevic/scalyr-tool/internal/output"
)

// emitWarning writes an NDJSON warning when a tail emitter is active,
// otherwise a "Warning:" line on stderr.
func emitWarning(globals *Globals, msg string) {
	if globals.emitter != nil {
		if err := globals.emitter.Warning(msg); err == nil {
			return
		}
	}
	paint := stderrPainter(globals)
	fmt.Fprintf(globals.Stderr, "%s %s\n", paint.Paint(output.Styles.Notice, "Warning:"), msg)
}

// emitNotice writes an informational line on stderr.
func emitNotice(globals *Globals, msg string) {
	paint := stderrPainter(globals)
	fmt.Fprintln(globals.Stderr, paint.Paint(output.Styles.Label, msg))
}

func isTerminal(w any) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func stderrPainter(globals *Globals) output.Painter {
	return output.Painter{Enabled: isTerminal(globals.Stderr)}
}

func stdoutPainter(globals *Globals) output.Painter {
	return output.Painter{Enabled: isTerminal(globals.Stdout)}
}
