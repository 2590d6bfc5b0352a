package internal

import "testing"

func scanNoErrors(t *testing.T, source string) []Token {
	t.Helper()
	sink := NewErrorSink(nil, nil)
	toks := NewLexer(source, sink).Scan()
	if sink.HadError() {
		t.Fatalf("unexpected scan error on %q", source)
	}
	return toks
}

func TestLexerSingleAndTwoCharTokens(t *testing.T) {
	toks := scanNoErrors(t, "!= == <= >= < > ! = ( ) { } , . - + ; / *")
	wantKinds := []TokenType{
		BANG_EQUAL, EQUAL_EQUAL, LESS_EQUAL, GREATER_EQUAL, LESS, GREATER,
		BANG, EQUAL, LEFT_PAREN, RIGHT_PAREN, LEFT_BRACE, RIGHT_BRACE,
		COMMA, DOT, MINUS, PLUS, SEMICOLON, SLASH, STAR, EOF,
	}
	if len(toks) != len(wantKinds) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(wantKinds))
	}
	for i, k := range wantKinds {
		if toks[i].Kind != k {
			t.Errorf("token %d: got %v, want %v", i, toks[i].Kind, k)
		}
	}
}

func TestLexerTwoCharTokensConsumeSecondChar(t *testing.T) {
	toks := scanNoErrors(t, "!=")
	if len(toks) != 2 || toks[0].Kind != BANG_EQUAL || toks[0].Lexeme != "!=" {
		t.Fatalf("got %+v, want single BANG_EQUAL token with lexeme \"!=\"", toks)
	}
}

func TestLexerStringLiteral(t *testing.T) {
	toks := scanNoErrors(t, `"hello world"`)
	if toks[0].Kind != STRING || toks[0].Literal != "hello world" {
		t.Fatalf("got %+v", toks[0])
	}
}

func TestLexerUnterminatedString(t *testing.T) {
	sink := NewErrorSink(nil, nil)
	NewLexer("\"never closed", sink).Scan()
	if !sink.HadError() {
		t.Fatal("expected an unterminated string error")
	}
}

func TestLexerNumberLiteral(t *testing.T) {
	toks := scanNoErrors(t, "123.45")
	if toks[0].Kind != NUMBER || toks[0].Literal.(float64) != 123.45 {
		t.Fatalf("got %+v", toks[0])
	}
}

func TestLexerNumberTrailingDotIsSeparate(t *testing.T) {
	toks := scanNoErrors(t, "123.")
	if toks[0].Kind != NUMBER || toks[0].Literal.(float64) != 123 {
		t.Fatalf("got %+v", toks[0])
	}
	if toks[1].Kind != DOT {
		t.Fatalf("got %+v, want trailing DOT token", toks[1])
	}
}

func TestLexerKeywordsAndIdentifiers(t *testing.T) {
	toks := scanNoErrors(t, "class fun var this super foo")
	wantKinds := []TokenType{CLASS, FUN, VAR, THIS, SUPER, IDENTIFIER, EOF}
	for i, k := range wantKinds {
		if toks[i].Kind != k {
			t.Errorf("token %d: got %v, want %v", i, toks[i].Kind, k)
		}
	}
}

func TestLexerCommentsAndWhitespaceIgnored(t *testing.T) {
	toks := scanNoErrors(t, "// a comment\nvar x;")
	if toks[0].Kind != VAR || toks[0].Line != 2 {
		t.Fatalf("got %+v, want VAR on line 2", toks[0])
	}
}

func TestLexerLineTrackingAcrossMultilineString(t *testing.T) {
	toks := scanNoErrors(t, "\"a\nb\"\nvar x;")
	if toks[0].Kind != STRING {
		t.Fatalf("got %+v", toks[0])
	}
	if toks[1].Kind != VAR || toks[1].Line != 3 {
		t.Fatalf("got %+v, want VAR on line 3", toks[1])
	}
}
