package internal

import (
	"io"

	"github.com/labstack/gommon/color"
)

// RunSource is the embedded entry point spec.md §6 names: scan, parse,
// resolve, and execute source once against a fresh interpreter, writing
// `print` output to out and diagnostics to errOut. Grounded on the
// teacher's package-level RunSourceWithPrinter.
func RunSource(source string, out, errOut io.Writer, debug bool) bool {
	_, sink := RunSourceColored(source, out, errOut, debug, false)
	return !sink.HadError() && !sink.HadRuntimeError()
}

// RunSourceColored is RunSource with control over terminal coloring, used by
// the CLI driver's -no-color flag. It returns the interpreter (so a REPL can
// reuse it across lines) and the sink (so a file-mode driver can distinguish
// a syntax/static error, exit 65, from a runtime error, exit 70).
func RunSourceColored(source string, out, errOut io.Writer, debug, noColor bool) (*Interpreter, *ErrorSink) {
	log := NewLogger(debug)
	sink := NewErrorSink(errOut, log)
	if !noColor {
		sink.SetColor(color.New())
	}
	interp := NewInterpreter(out, sink, log)
	interp.Run(source)
	return interp, sink
}
