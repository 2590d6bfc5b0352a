package internal

import (
	"bytes"
	"fmt"
	"testing"
)

// run executes source against a fresh interpreter and returns stdout,
// stderr, and the error sink, grounded on the teacher's exec_test.go
// testPrinter/RunSourceWithPrinter harness.
func run(source string) (string, string, *ErrorSink) {
	var out bytes.Buffer
	var errOut bytes.Buffer
	log := NewLogger(false)
	sink := NewErrorSink(&errOut, log)
	interp := NewInterpreter(&out, sink, log)
	interp.Run(source)
	return out.String(), errOut.String(), sink
}

func checkPrint(t *testing.T, source, want string) {
	t.Helper()
	out, errOut, sink := run(source)
	if sink.HadError() || sink.HadRuntimeError() {
		t.Fatalf("unexpected error running:\n%s\n%s", source, errOut)
	}
	if out != want+"\n" {
		t.Errorf("source:\n%s\nwant %q, got %q", source, want, out)
	}
}

func checkExpression(t *testing.T, expr, want string) {
	t.Helper()
	checkPrint(t, "print "+expr+";", want)
}

func checkRuntimeError(t *testing.T, source, wantMsg string, wantLine int) {
	t.Helper()
	_, errOut, sink := run(source)
	if !sink.HadRuntimeError() {
		t.Fatalf("expected a runtime error running:\n%s\ngot stderr: %s", source, errOut)
	}
	want := fmt.Sprintf("%s\n[line: %d]\n", wantMsg, wantLine)
	if errOut != want {
		t.Errorf("source:\n%s\nwant stderr %q, got %q", source, want, errOut)
	}
}

func checkStaticError(t *testing.T, source string) {
	t.Helper()
	_, _, sink := run(source)
	if !sink.HadError() {
		t.Fatalf("expected a syntax/static error running:\n%s", source)
	}
}
