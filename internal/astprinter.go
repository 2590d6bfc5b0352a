package internal

import "fmt"

// astPrinter renders an AST back to a parenthesized, Lisp-like string,
// grounded on the teacher's reader.go stringVisitor. Used only by the
// `-debug` CLI flag (SPEC_FULL.md §2 "structured diagnostics") to let a
// developer eyeball what the parser produced; never part of execution.
type astPrinter struct{}

func (p astPrinter) print(stmts []Stmt) string {
	out := ""
	for _, s := range stmts {
		out += s.accept(p).(string) + "\n"
	}
	return out
}

func (p astPrinter) parenthesize(name string, exprs ...Expr) string {
	out := "(" + name
	for _, e := range exprs {
		out += " " + e.accept(p).(string)
	}
	return out + ")"
}

// --- statements ---

func (p astPrinter) visitBlockStmt(s *BlockStmt) interface{} {
	out := "(block"
	for _, st := range s.Stmts {
		out += fmt.Sprintf(" %v", st.accept(p))
	}
	return out + ")"
}

func (p astPrinter) visitClassStmt(s *ClassStmt) interface{} {
	out := "(class " + s.Name.Lexeme
	if s.Superclass != nil {
		out += " < " + s.Superclass.Name.Lexeme
	}
	for _, m := range s.Methods {
		out += fmt.Sprintf(" %v", m.accept(p))
	}
	return out + ")"
}

func (p astPrinter) visitExpressionStmt(s *ExpressionStmt) interface{} {
	return p.parenthesize(";", s.Expression)
}

func (p astPrinter) visitFunctionStmt(s *FunctionStmt) interface{} {
	out := "(fun " + s.Name.Lexeme + " ("
	for i, param := range s.Params {
		if i > 0 {
			out += " "
		}
		out += param.Lexeme
	}
	out += ")"
	for _, st := range s.Body {
		out += fmt.Sprintf(" %v", st.accept(p))
	}
	return out + ")"
}

func (p astPrinter) visitIfStmt(s *IfStmt) interface{} {
	if s.ElseBranch != nil {
		return fmt.Sprintf("(if %v %v %v)", s.Condition.accept(p), s.ThenBranch.accept(p), s.ElseBranch.accept(p))
	}
	return fmt.Sprintf("(if %v %v)", s.Condition.accept(p), s.ThenBranch.accept(p))
}

func (p astPrinter) visitPrintStmt(s *PrintStmt) interface{} {
	return p.parenthesize("print", s.Expression)
}

func (p astPrinter) visitReturnStmt(s *ReturnStmt) interface{} {
	if s.Value == nil {
		return "(return)"
	}
	return p.parenthesize("return", s.Value)
}

func (p astPrinter) visitVarStmt(s *VarStmt) interface{} {
	if s.Init == nil {
		return "(var " + s.Name.Lexeme + ")"
	}
	return fmt.Sprintf("(var %s %v)", s.Name.Lexeme, s.Init.accept(p))
}

func (p astPrinter) visitWhileStmt(s *WhileStmt) interface{} {
	return fmt.Sprintf("(while %v %v)", s.Condition.accept(p), s.Body.accept(p))
}

// --- expressions ---

func (p astPrinter) visitAssignExpr(e *AssignExpr) interface{} {
	return fmt.Sprintf("(= %s %v)", e.Name.Lexeme, e.Value.accept(p))
}

func (p astPrinter) visitBinaryExpr(e *BinaryExpr) interface{} {
	return p.parenthesize(e.Operator.Lexeme, e.Left, e.Right)
}

func (p astPrinter) visitCallExpr(e *CallExpr) interface{} {
	return p.parenthesize("call", append([]Expr{e.Callee}, e.Args...)...)
}

func (p astPrinter) visitGetExpr(e *GetExpr) interface{} {
	return fmt.Sprintf("(. %v %s)", e.Target.accept(p), e.Name.Lexeme)
}

func (p astPrinter) visitGroupingExpr(e *GroupingExpr) interface{} {
	return p.parenthesize("group", e.Inner)
}

func (p astPrinter) visitLiteralExpr(e *LiteralExpr) interface{} {
	if e.Value == nil {
		return "nil"
	}
	return stringify(e.Value)
}

func (p astPrinter) visitLogicalExpr(e *LogicalExpr) interface{} {
	return p.parenthesize(e.Operator.Lexeme, e.Left, e.Right)
}

func (p astPrinter) visitSetExpr(e *SetExpr) interface{} {
	return fmt.Sprintf("(.= %v %s %v)", e.Target.accept(p), e.Name.Lexeme, e.Value.accept(p))
}

func (p astPrinter) visitSuperExpr(e *SuperExpr) interface{} {
	return "(super ." + e.MethodName.Lexeme + ")"
}

func (p astPrinter) visitThisExpr(e *ThisExpr) interface{} {
	return "this"
}

func (p astPrinter) visitUnaryExpr(e *UnaryExpr) interface{} {
	return p.parenthesize(e.Operator.Lexeme, e.Right)
}

func (p astPrinter) visitVariableExpr(e *VariableExpr) interface{} {
	return e.Name.Lexeme
}
