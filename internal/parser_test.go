package internal

import "testing"

func TestParserExpressionPrecedence(t *testing.T) {
	checkExpression(t, "1 + 2 * 3", "7")
	checkExpression(t, "(1 + 2) * 3", "9")
	checkExpression(t, "2 - 3 - 4", "-5")
	checkExpression(t, "!true == false", "true")
}

func TestParserForLoopDesugaring(t *testing.T) {
	checkPrint(t, `
	var x = 1;
	for (var i = 1; i <= 5; i = i + 1) {
		x = x * i;
	}
	print x;
	`, "120")
}

func TestParserForLoopMissingClauses(t *testing.T) {
	checkPrint(t, `
	var i = 0;
	for (; i < 3;) {
		i = i + 1;
	}
	print i;
	`, "3")
}

func TestParserInvalidAssignmentTargetIsStaticError(t *testing.T) {
	checkStaticError(t, `1 = 2;`)
}

func TestParserTooManyArgsIsStaticError(t *testing.T) {
	checkStaticError(t, `fun f(a,b,c,d,e,f,g,h,i) { return a; }`)
}

func TestParserMissingSemicolonIsSyntaxError(t *testing.T) {
	checkStaticError(t, `var x = 1`)
}

func TestParserSynchronizeRecoversMultipleErrors(t *testing.T) {
	_, errOut, sink := run(`
	var = 1;
	var y = 2;
	print y;
	var = 3;
	`)
	if !sink.HadError() {
		t.Fatal("expected a syntax error")
	}
	want := "[line 2] Error at '=': Expect variable name.\n" +
		"[line 5] Error at '=': Expect variable name.\n"
	if errOut != want {
		t.Errorf("want stderr %q, got %q", want, errOut)
	}
}
