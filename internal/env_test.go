package internal

import "testing"

func TestEnvironmentDefineGetAssign(t *testing.T) {
	env := NewEnvironment(nil)
	env.define("a", 1.0)

	if v, ok := env.get(Token{Lexeme: "a"}); !ok || v.(float64) != 1.0 {
		t.Fatalf("got %v, %v", v, ok)
	}

	if !env.assign(Token{Lexeme: "a"}, 2.0) {
		t.Fatal("assign to existing binding should succeed")
	}
	if v, _ := env.get(Token{Lexeme: "a"}); v.(float64) != 2.0 {
		t.Fatalf("got %v after assign", v)
	}

	if env.assign(Token{Lexeme: "missing"}, 1.0) {
		t.Fatal("assign to an undeclared name should fail")
	}
}

func TestEnvironmentEnclosingChainLookup(t *testing.T) {
	outer := NewEnvironment(nil)
	outer.define("a", "outer")
	inner := NewEnvironment(outer)

	v, ok := inner.get(Token{Lexeme: "a"})
	if !ok || v.(string) != "outer" {
		t.Fatalf("expected inner scope to see outer binding, got %v, %v", v, ok)
	}

	inner.define("a", "inner")
	if v, _ := inner.get(Token{Lexeme: "a"}); v.(string) != "inner" {
		t.Fatal("inner define should shadow outer, not overwrite it")
	}
	if v, _ := outer.get(Token{Lexeme: "a"}); v.(string) != "outer" {
		t.Fatal("outer binding should be unaffected by inner shadowing")
	}
}

func TestEnvironmentGetAtAssignAtByDepth(t *testing.T) {
	global := NewEnvironment(nil)
	middle := NewEnvironment(global)
	local := NewEnvironment(middle)

	global.define("x", 1.0)
	middle.define("x", 2.0)
	local.define("x", 3.0)

	if v := local.getAt(0, "x"); v.(float64) != 3.0 {
		t.Fatalf("getAt(0) = %v", v)
	}
	if v := local.getAt(1, "x"); v.(float64) != 2.0 {
		t.Fatalf("getAt(1) = %v", v)
	}
	if v := local.getAt(2, "x"); v.(float64) != 1.0 {
		t.Fatalf("getAt(2) = %v", v)
	}

	local.assignAt(1, Token{Lexeme: "x"}, 20.0)
	if v := middle.values["x"]; v.(float64) != 20.0 {
		t.Fatalf("assignAt(1) should have written through to middle, got %v", v)
	}
}
