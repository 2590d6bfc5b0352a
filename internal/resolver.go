package internal

import "github.com/sirupsen/logrus"

// functionType and classType track the enclosing context so the resolver
// can statically reject `return`/`this`/`super` outside the constructs that
// make them meaningful. Enum shape grounded on cmdneo-tree_lox's
// parser/info.go (functionKind/classKind), generalized to the separate
// resolver pass spec.md requires instead of being folded into the parser.
type functionType int

const (
	ftNone functionType = iota
	ftFunction
	ftMethod
	ftInitializer
)

type classType int

const (
	ctNone classType = iota
	ctClass
	ctSubclass
)

type scope map[string]bool

// Resolver is the static pass that annotates every Variable/Assign/This/
// Super expression with a non-negative depth, recorded into the
// Interpreter's locals table by node identity (spec.md §4.3).
type Resolver struct {
	interp *Interpreter
	sink   *ErrorSink
	log    *logrus.Logger

	scopes          []scope
	currentFunction functionType
	currentClass    classType
}

// NewResolver creates a resolver that records depths into interp.
func NewResolver(interp *Interpreter, sink *ErrorSink, log *logrus.Logger) *Resolver {
	return &Resolver{interp: interp, sink: sink, log: log}
}

// Resolve walks every top-level statement.
func (r *Resolver) Resolve(stmts []Stmt) {
	r.resolveStmts(stmts)
}

func (r *Resolver) resolveStmts(stmts []Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) resolveStmt(s Stmt) {
	s.accept(r)
}

func (r *Resolver) resolveExpr(e Expr) {
	e.accept(r)
}

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, scope{})
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

// declare introduces name into the innermost scope as present-but-not-yet-
// defined, so `var a = a;` in the same scope is caught by visitVariableExpr
// below. Duplicate declarations in the same non-global scope are a static
// error (spec.md §4.3).
func (r *Resolver) declare(name Token) {
	if len(r.scopes) == 0 {
		return
	}
	sc := r.scopes[len(r.scopes)-1]
	if _, ok := sc[name.Lexeme]; ok {
		r.sink.syntaxErrorAt(name, "Already a variable with this name in this scope.")
	}
	sc[name.Lexeme] = false
}

func (r *Resolver) define(name Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}

// resolveLocal walks the scope stack from innermost outward and records the
// first matching depth against node's identity; an unresolved name is left
// for late binding in globals.
func (r *Resolver) resolveLocal(node Expr, name Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			depth := len(r.scopes) - 1 - i
			r.interp.resolve(node, depth)
			if r.log != nil {
				r.log.WithFields(logrus.Fields{"name": name.Lexeme, "depth": depth}).Debug("resolved local")
			}
			return
		}
	}
	// Not found in any local scope: late-bound to globals at runtime.
}

func (r *Resolver) resolveFunction(fn *FunctionStmt, kind functionType) {
	enclosingFunction := r.currentFunction
	r.currentFunction = kind

	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStmts(fn.Body)
	r.endScope()

	r.currentFunction = enclosingFunction
}

// --- statement visitors ---

func (r *Resolver) visitBlockStmt(s *BlockStmt) interface{} {
	r.beginScope()
	r.resolveStmts(s.Stmts)
	r.endScope()
	return nil
}

func (r *Resolver) visitClassStmt(s *ClassStmt) interface{} {
	enclosingClass := r.currentClass
	r.currentClass = ctClass

	r.declare(s.Name)
	r.define(s.Name)

	if s.Superclass != nil {
		if s.Superclass.Name.Lexeme == s.Name.Lexeme {
			r.sink.syntaxErrorAt(s.Superclass.Name, "A class can't inherit from itself.")
		}
		r.currentClass = ctSubclass
		r.resolveExpr(s.Superclass)

		r.beginScope()
		r.scopes[len(r.scopes)-1]["super"] = true
	}

	r.beginScope()
	r.scopes[len(r.scopes)-1]["this"] = true

	for _, method := range s.Methods {
		kind := ftMethod
		if method.Name.Lexeme == "init" {
			kind = ftInitializer
		}
		r.resolveFunction(method, kind)
	}

	r.endScope()

	if s.Superclass != nil {
		r.endScope()
	}

	r.currentClass = enclosingClass
	return nil
}

func (r *Resolver) visitExpressionStmt(s *ExpressionStmt) interface{} {
	r.resolveExpr(s.Expression)
	return nil
}

func (r *Resolver) visitFunctionStmt(s *FunctionStmt) interface{} {
	r.declare(s.Name)
	r.define(s.Name)
	r.resolveFunction(s, ftFunction)
	return nil
}

func (r *Resolver) visitIfStmt(s *IfStmt) interface{} {
	r.resolveExpr(s.Condition)
	r.resolveStmt(s.ThenBranch)
	if s.ElseBranch != nil {
		r.resolveStmt(s.ElseBranch)
	}
	return nil
}

func (r *Resolver) visitPrintStmt(s *PrintStmt) interface{} {
	r.resolveExpr(s.Expression)
	return nil
}

func (r *Resolver) visitReturnStmt(s *ReturnStmt) interface{} {
	if r.currentFunction == ftNone {
		r.sink.syntaxErrorAt(s.Keyword, "Can't return from top-level code.")
	}
	if s.Value != nil {
		if r.currentFunction == ftInitializer {
			r.sink.syntaxErrorAt(s.Keyword, "Can't return a value from an initializer.")
		}
		r.resolveExpr(s.Value)
	}
	return nil
}

func (r *Resolver) visitVarStmt(s *VarStmt) interface{} {
	r.declare(s.Name)
	if s.Init != nil {
		r.resolveExpr(s.Init)
	}
	r.define(s.Name)
	return nil
}

func (r *Resolver) visitWhileStmt(s *WhileStmt) interface{} {
	r.resolveExpr(s.Condition)
	r.resolveStmt(s.Body)
	return nil
}

// --- expression visitors ---

func (r *Resolver) visitAssignExpr(e *AssignExpr) interface{} {
	r.resolveExpr(e.Value)
	r.resolveLocal(e, e.Name)
	return nil
}

func (r *Resolver) visitBinaryExpr(e *BinaryExpr) interface{} {
	r.resolveExpr(e.Left)
	r.resolveExpr(e.Right)
	return nil
}

func (r *Resolver) visitCallExpr(e *CallExpr) interface{} {
	r.resolveExpr(e.Callee)
	for _, a := range e.Args {
		r.resolveExpr(a)
	}
	return nil
}

func (r *Resolver) visitGetExpr(e *GetExpr) interface{} {
	r.resolveExpr(e.Target)
	return nil
}

func (r *Resolver) visitGroupingExpr(e *GroupingExpr) interface{} {
	r.resolveExpr(e.Inner)
	return nil
}

func (r *Resolver) visitLiteralExpr(e *LiteralExpr) interface{} {
	return nil
}

func (r *Resolver) visitLogicalExpr(e *LogicalExpr) interface{} {
	r.resolveExpr(e.Left)
	r.resolveExpr(e.Right)
	return nil
}

func (r *Resolver) visitSetExpr(e *SetExpr) interface{} {
	r.resolveExpr(e.Value)
	r.resolveExpr(e.Target)
	return nil
}

func (r *Resolver) visitSuperExpr(e *SuperExpr) interface{} {
	if r.currentClass == ctNone {
		r.sink.syntaxErrorAt(e.Keyword, "Can't use 'super' outside of a class.")
	} else if r.currentClass != ctSubclass {
		r.sink.syntaxErrorAt(e.Keyword, "Can't use 'super' in a class with no superclass.")
	}
	r.resolveLocal(e, e.Keyword)
	return nil
}

func (r *Resolver) visitThisExpr(e *ThisExpr) interface{} {
	if r.currentClass == ctNone {
		r.sink.syntaxErrorAt(e.Keyword, "Can't use 'this' outside of a class.")
		return nil
	}
	r.resolveLocal(e, e.Keyword)
	return nil
}

func (r *Resolver) visitUnaryExpr(e *UnaryExpr) interface{} {
	r.resolveExpr(e.Right)
	return nil
}

func (r *Resolver) visitVariableExpr(e *VariableExpr) interface{} {
	if len(r.scopes) > 0 {
		if defined, ok := r.scopes[len(r.scopes)-1][e.Name.Lexeme]; ok && !defined {
			r.sink.syntaxErrorAt(e.Name, "Can't read local variable in its own initializer.")
		}
	}
	r.resolveLocal(e, e.Name)
	return nil
}
