package internal

import (
	"bytes"
	"testing"
)

func TestErrorSinkSyntaxErrorFormat(t *testing.T) {
	var out bytes.Buffer
	sink := NewErrorSink(&out, nil)
	sink.syntaxError(3, "Unexpected character.")

	want := "[line 3] Error: Unexpected character.\n"
	if out.String() != want {
		t.Errorf("got %q, want %q", out.String(), want)
	}
	if !sink.HadError() {
		t.Error("expected HadError true")
	}
}

func TestErrorSinkSyntaxErrorAtFormat(t *testing.T) {
	var out bytes.Buffer
	sink := NewErrorSink(&out, nil)
	sink.syntaxErrorAt(Token{Kind: IDENTIFIER, Lexeme: "foo", Line: 5}, "Expect ';' after value.")

	want := "[line 5] Error at 'foo': Expect ';' after value.\n"
	if out.String() != want {
		t.Errorf("got %q, want %q", out.String(), want)
	}
}

func TestErrorSinkSyntaxErrorAtEOFFormat(t *testing.T) {
	var out bytes.Buffer
	sink := NewErrorSink(&out, nil)
	sink.syntaxErrorAt(Token{Kind: EOF, Line: 7}, "Expect expression.")

	want := "[line 7] Error at end: Expect expression.\n"
	if out.String() != want {
		t.Errorf("got %q, want %q", out.String(), want)
	}
}

func TestErrorSinkRuntimeErrorFormat(t *testing.T) {
	var out bytes.Buffer
	sink := NewErrorSink(&out, nil)
	sink.runtimeError(Token{Lexeme: "x", Line: 9}, "Undefined variable 'x'.")

	want := "Undefined variable 'x'.\n[line: 9]\n"
	if out.String() != want {
		t.Errorf("got %q, want %q", out.String(), want)
	}
	if !sink.HadRuntimeError() {
		t.Error("expected HadRuntimeError true")
	}
}

func TestErrorSinkResetClearsBothFlags(t *testing.T) {
	sink := NewErrorSink(&bytes.Buffer{}, nil)
	sink.syntaxError(1, "x")
	sink.runtimeError(Token{Line: 1}, "y")

	sink.Reset()

	if sink.HadError() || sink.HadRuntimeError() {
		t.Error("Reset should clear both flags")
	}
}
