// Command genast prints to stdout the Go source of the Expr or Stmt AST
// types from the type lists below, in the shape internal/expr.go and
// internal/stmt.go use; it does not write those files itself. Adapted from the teacher's cmd/ast generator, dropped
// from generics to the closed, non-generic visitor style internal/expr.go
// and internal/stmt.go actually use.
package main

import (
	"fmt"
	"os"
	"strings"
)

//go:generate go run . Expr
//go:generate go run . Stmt

func main() {
	if len(os.Args) != 2 {
		fmt.Println("usage: genast <Expr|Stmt>")
		os.Exit(64)
	}

	var out string
	switch os.Args[1] {
	case "Expr":
		out = generateAst("Expr", []string{
			"Assign: Name Token, Value Expr",
			"Binary: Left Expr, Operator Token, Right Expr",
			"Call: Callee Expr, ClosingParen Token, Args []Expr",
			"Get: Target Expr, Name Token",
			"Grouping: Inner Expr",
			"Literal: Value interface{}",
			"Logical: Left Expr, Operator Token, Right Expr",
			"Set: Target Expr, Name Token, Value Expr",
			"Super: Keyword Token, MethodName Token",
			"This: Keyword Token",
			"Unary: Operator Token, Right Expr",
			"Variable: Name Token",
		})
	case "Stmt":
		out = generateAst("Stmt", []string{
			"Block: Stmts []Stmt",
			"Class: Name Token, Superclass *VariableExpr, Methods []*FunctionStmt",
			"Expression: Expression Expr",
			"Function: Name Token, Params []Token, Body []Stmt",
			"If: Condition Expr, ThenBranch Stmt, ElseBranch Stmt",
			"Print: Expression Expr",
			"Return: Keyword Token, Value Expr",
			"Var: Name Token, Init Expr",
			"While: Condition Expr, Body Stmt",
		})
	default:
		fmt.Println("usage: genast <Expr|Stmt>")
		os.Exit(64)
	}

	fmt.Println(out)
}

func generateAst(baseName string, types []string) string {
	lowerBase := strings.ToLower(baseName)
	out := "package internal\n\n"

	out += "type " + baseName + " interface {\n"
	out += "\taccept(v " + lowerBase + "Visitor) interface{}\n"
	out += "}\n\n"

	out += "type " + lowerBase + "Visitor interface {\n"
	for _, t := range types {
		name := strings.TrimSpace(strings.Split(t, ":")[0])
		out += "\tvisit" + name + baseName + "(n *" + name + baseName + ") interface{}\n"
	}
	out += "}\n\n"

	for _, t := range types {
		fields := strings.SplitN(t, ":", 2)
		name := strings.TrimSpace(fields[0])
		out += generateType(lowerBase, baseName, name, strings.TrimSpace(fields[1]))
	}

	return out
}

func generateType(lowerBase, baseName, name, fields string) string {
	structName := name + baseName
	out := "type " + structName + " struct {\n"
	for _, field := range strings.Split(fields, ",") {
		out += "\t" + strings.TrimSpace(field) + "\n"
	}
	out += "}\n\n"

	out += "func (n *" + structName + ") accept(v " + lowerBase + "Visitor) interface{} {\n"
	out += "\treturn v.visit" + name + baseName + "(n)\n"
	out += "}\n\n"

	return out
}
