package internal

// Expr is the closed sum of expression AST nodes. Dispatch is by the
// visitor pattern (teacher's expr.go shape) rather than a type switch, so
// the compiler enforces that every visitor implements every variant.
//
// Each constructor returns a freshly allocated pointer, which is what gives
// every node the stable, distinct identity the resolver's depth table
// relies on (see SPEC_FULL.md §3).
type Expr interface {
	accept(v exprVisitor) interface{}
}

type exprVisitor interface {
	visitAssignExpr(e *AssignExpr) interface{}
	visitBinaryExpr(e *BinaryExpr) interface{}
	visitCallExpr(e *CallExpr) interface{}
	visitGetExpr(e *GetExpr) interface{}
	visitGroupingExpr(e *GroupingExpr) interface{}
	visitLiteralExpr(e *LiteralExpr) interface{}
	visitLogicalExpr(e *LogicalExpr) interface{}
	visitSetExpr(e *SetExpr) interface{}
	visitSuperExpr(e *SuperExpr) interface{}
	visitThisExpr(e *ThisExpr) interface{}
	visitUnaryExpr(e *UnaryExpr) interface{}
	visitVariableExpr(e *VariableExpr) interface{}
}

type AssignExpr struct {
	Name  Token
	Value Expr
}

func (e *AssignExpr) accept(v exprVisitor) interface{} { return v.visitAssignExpr(e) }

type BinaryExpr struct {
	Left     Expr
	Operator Token
	Right    Expr
}

func (e *BinaryExpr) accept(v exprVisitor) interface{} { return v.visitBinaryExpr(e) }

type CallExpr struct {
	Callee       Expr
	ClosingParen Token
	Args         []Expr
}

func (e *CallExpr) accept(v exprVisitor) interface{} { return v.visitCallExpr(e) }

type GetExpr struct {
	Target Expr
	Name   Token
}

func (e *GetExpr) accept(v exprVisitor) interface{} { return v.visitGetExpr(e) }

type GroupingExpr struct {
	Inner Expr
}

func (e *GroupingExpr) accept(v exprVisitor) interface{} { return v.visitGroupingExpr(e) }

type LiteralExpr struct {
	Value interface{}
}

func (e *LiteralExpr) accept(v exprVisitor) interface{} { return v.visitLiteralExpr(e) }

type LogicalExpr struct {
	Left     Expr
	Operator Token
	Right    Expr
}

func (e *LogicalExpr) accept(v exprVisitor) interface{} { return v.visitLogicalExpr(e) }

type SetExpr struct {
	Target Expr
	Name   Token
	Value  Expr
}

func (e *SetExpr) accept(v exprVisitor) interface{} { return v.visitSetExpr(e) }

type SuperExpr struct {
	Keyword    Token
	MethodName Token
}

func (e *SuperExpr) accept(v exprVisitor) interface{} { return v.visitSuperExpr(e) }

type ThisExpr struct {
	Keyword Token
}

func (e *ThisExpr) accept(v exprVisitor) interface{} { return v.visitThisExpr(e) }

type UnaryExpr struct {
	Operator Token
	Right    Expr
}

func (e *UnaryExpr) accept(v exprVisitor) interface{} { return v.visitUnaryExpr(e) }

type VariableExpr struct {
	Name Token
}

func (e *VariableExpr) accept(v exprVisitor) interface{} { return v.visitVariableExpr(e) }
