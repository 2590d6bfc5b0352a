package internal

import (
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// Interpreter is the tree walker. It owns the mutable current-frame
// environment, the fixed globals environment, and the resolver-provided
// locals table (AST node identity → depth). Grounded on the teacher's
// execute/exec struct, generalized to Lox's resolver-annotated lookups
// instead of grotsky's pure dynamic-chain lookups.
type Interpreter struct {
	globals     *Environment
	environment *Environment
	locals      map[Expr]int

	sink *ErrorSink
	log  *logrus.Logger
	out  io.Writer
}

// NewInterpreter creates an interpreter writing `print` output to out and
// diagnostics through sink, with clock/type/str defined in globals.
func NewInterpreter(out io.Writer, sink *ErrorSink, log *logrus.Logger) *Interpreter {
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	globals := NewEnvironment(nil)
	interp := &Interpreter{
		globals:     globals,
		environment: globals,
		locals:      make(map[Expr]int),
		sink:        sink,
		log:         log,
		out:         out,
	}
	defineGlobals(globals)
	return interp
}

// Run scans, parses, resolves, and executes source against this
// interpreter's existing environment, so a REPL's successive snippets
// share globals (spec.md §5 "REPL mode"). Returns false if syntax, static,
// or runtime errors occurred.
func (interp *Interpreter) Run(source string) bool {
	interp.sink.Reset()

	lexer := NewLexer(source, interp.sink)
	tokens := lexer.Scan()
	interp.log.WithField("tokens", len(tokens)).Debug("scanned")

	if interp.sink.HadError() {
		return false
	}

	parser := NewParser(tokens, interp.sink)
	stmts := parser.Parse()

	if interp.sink.HadError() {
		return false
	}

	if interp.log.IsLevelEnabled(logrus.DebugLevel) {
		interp.log.Debug(astPrinter{}.print(stmts))
	}

	resolver := NewResolver(interp, interp.sink, interp.log)
	resolver.Resolve(stmts)

	if interp.sink.HadError() {
		return false
	}

	interp.interpret(stmts)

	return !interp.sink.HadRuntimeError()
}

// resolve is the side channel the Resolver uses to record a node's binding
// depth (spec.md §2 "data flow").
func (interp *Interpreter) resolve(node Expr, depth int) {
	interp.locals[node] = depth
}

func (interp *Interpreter) interpret(stmts []Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if rt, ok := r.(runtimeErrorSignal); ok {
				interp.sink.runtimeError(rt.tok, rt.msg)
				return
			}
			panic(r)
		}
	}()

	for _, s := range stmts {
		interp.execute(s)
	}
}

func (interp *Interpreter) execute(s Stmt) {
	s.accept(interp)
}

func (interp *Interpreter) evaluate(e Expr) interface{} {
	return e.accept(interp)
}

func (interp *Interpreter) runtimeErr(tok Token, msg string) {
	panic(runtimeErrorSignal{tok: tok, msg: msg})
}

// executeBlock pushes env as the current frame, executes stmts, and
// restores the previous environment on any exit path, including the panic
// unwinds Return and runtime errors use (spec.md §4.6).
func (interp *Interpreter) executeBlock(stmts []Stmt, env *Environment) {
	previous := interp.environment
	defer func() { interp.environment = previous }()

	interp.environment = env
	for _, s := range stmts {
		interp.execute(s)
	}
}

func (interp *Interpreter) lookUpVariable(name Token, node Expr) interface{} {
	if depth, ok := interp.locals[node]; ok {
		return interp.environment.getAt(depth, name.Lexeme)
	}
	value, ok := interp.globals.get(name)
	if !ok {
		interp.runtimeErr(name, "Undefined variable '"+name.Lexeme+"'.")
	}
	return value
}

// --- statement visitors ---

func (interp *Interpreter) visitBlockStmt(s *BlockStmt) interface{} {
	interp.executeBlock(s.Stmts, NewEnvironment(interp.environment))
	return nil
}

func (interp *Interpreter) visitClassStmt(s *ClassStmt) interface{} {
	var superclass *LoxClass
	if s.Superclass != nil {
		value := interp.evaluate(s.Superclass)
		sc, ok := value.(*LoxClass)
		if !ok {
			interp.runtimeErr(s.Superclass.Name, "Superclass must be a class.")
		}
		superclass = sc
	}

	interp.environment.define(s.Name.Lexeme, nil)

	if s.Superclass != nil {
		interp.environment = NewEnvironment(interp.environment)
		interp.environment.define("super", superclass)
	}

	methods := make(map[string]*LoxFunction, len(s.Methods))
	for _, method := range s.Methods {
		fn := &LoxFunction{
			declaration:   method,
			closure:       interp.environment,
			isInitializer: method.Name.Lexeme == "init",
		}
		methods[method.Name.Lexeme] = fn
	}

	class := &LoxClass{name: s.Name.Lexeme, superclass: superclass, methods: methods}

	if s.Superclass != nil {
		interp.environment = interp.environment.enclosing
	}

	interp.environment.assign(s.Name, class)
	return nil
}

func (interp *Interpreter) visitExpressionStmt(s *ExpressionStmt) interface{} {
	interp.evaluate(s.Expression)
	return nil
}

func (interp *Interpreter) visitFunctionStmt(s *FunctionStmt) interface{} {
	fn := &LoxFunction{declaration: s, closure: interp.environment}
	interp.environment.define(s.Name.Lexeme, fn)
	return nil
}

func (interp *Interpreter) visitIfStmt(s *IfStmt) interface{} {
	if isTruthy(interp.evaluate(s.Condition)) {
		interp.execute(s.ThenBranch)
	} else if s.ElseBranch != nil {
		interp.execute(s.ElseBranch)
	}
	return nil
}

func (interp *Interpreter) visitPrintStmt(s *PrintStmt) interface{} {
	value := interp.evaluate(s.Expression)
	fmt.Fprintln(interp.out, stringify(value))
	return nil
}

func (interp *Interpreter) visitReturnStmt(s *ReturnStmt) interface{} {
	var value interface{}
	if s.Value != nil {
		value = interp.evaluate(s.Value)
	}
	panic(returnSignal{value: value})
}

func (interp *Interpreter) visitVarStmt(s *VarStmt) interface{} {
	var value interface{}
	if s.Init != nil {
		value = interp.evaluate(s.Init)
	}
	interp.environment.define(s.Name.Lexeme, value)
	return nil
}

func (interp *Interpreter) visitWhileStmt(s *WhileStmt) interface{} {
	for isTruthy(interp.evaluate(s.Condition)) {
		interp.execute(s.Body)
	}
	return nil
}

// --- expression visitors ---

func (interp *Interpreter) visitAssignExpr(e *AssignExpr) interface{} {
	value := interp.evaluate(e.Value)

	if depth, ok := interp.locals[e]; ok {
		interp.environment.assignAt(depth, e.Name, value)
	} else if !interp.globals.assign(e.Name, value) {
		interp.runtimeErr(e.Name, "Undefined variable '"+e.Name.Lexeme+"'.")
	}

	return value
}

func (interp *Interpreter) visitBinaryExpr(e *BinaryExpr) interface{} {
	left := interp.evaluate(e.Left)
	right := interp.evaluate(e.Right)

	switch e.Operator.Kind {
	case EQUAL_EQUAL:
		return isEqual(left, right)
	case BANG_EQUAL:
		return !isEqual(left, right)
	case GREATER:
		l, r := interp.numberOperands(e.Operator, left, right)
		return l > r
	case GREATER_EQUAL:
		l, r := interp.numberOperands(e.Operator, left, right)
		return l >= r
	case LESS:
		l, r := interp.numberOperands(e.Operator, left, right)
		return l < r
	case LESS_EQUAL:
		l, r := interp.numberOperands(e.Operator, left, right)
		return l <= r
	case MINUS:
		l, r := interp.numberOperands(e.Operator, left, right)
		return l - r
	case SLASH:
		l, r := interp.numberOperands(e.Operator, left, right)
		return l / r
	case STAR:
		l, r := interp.numberOperands(e.Operator, left, right)
		return l * r
	case PLUS:
		return interp.add(e.Operator, left, right)
	}

	interp.runtimeErr(e.Operator, "Unknown operator.")
	return nil
}

// add implements `+`, numeric if both operands are Number, string
// concatenation if either is a String, else a runtime error (spec.md
// §4.6).
func (interp *Interpreter) add(op Token, left, right interface{}) interface{} {
	lNum, lIsNum := left.(float64)
	rNum, rIsNum := right.(float64)
	if lIsNum && rIsNum {
		return lNum + rNum
	}

	_, lIsStr := left.(string)
	_, rIsStr := right.(string)
	if lIsStr || rIsStr {
		return stringify(left) + stringify(right)
	}

	interp.runtimeErr(op, "Operands must be numbers.")
	return nil
}

func (interp *Interpreter) numberOperands(op Token, left, right interface{}) (float64, float64) {
	l, lok := left.(float64)
	r, rok := right.(float64)
	if !lok || !rok {
		interp.runtimeErr(op, "Operands must be numbers.")
	}
	return l, r
}

func (interp *Interpreter) visitCallExpr(e *CallExpr) interface{} {
	callee := interp.evaluate(e.Callee)

	args := make([]interface{}, len(e.Args))
	for i, a := range e.Args {
		args[i] = interp.evaluate(a)
	}

	fn, ok := callee.(Callable)
	if !ok {
		interp.runtimeErr(e.ClosingParen, "Can only call functions and classes.")
	}

	if len(args) != fn.arity() {
		interp.runtimeErr(e.ClosingParen, fmt.Sprintf(
			"Expected %d arguments but got %d.", fn.arity(), len(args)))
	}

	return fn.call(interp, args)
}

func (interp *Interpreter) visitGetExpr(e *GetExpr) interface{} {
	object := interp.evaluate(e.Target)

	instance, ok := object.(*LoxInstance)
	if !ok {
		interp.runtimeErr(e.Name, "Only instances have properties.")
	}

	value, ok := instance.get(e.Name.Lexeme)
	if !ok {
		interp.runtimeErr(e.Name, "Undefined property '"+e.Name.Lexeme+"'.")
	}
	return value
}

func (interp *Interpreter) visitGroupingExpr(e *GroupingExpr) interface{} {
	return interp.evaluate(e.Inner)
}

func (interp *Interpreter) visitLiteralExpr(e *LiteralExpr) interface{} {
	return e.Value
}

func (interp *Interpreter) visitLogicalExpr(e *LogicalExpr) interface{} {
	left := interp.evaluate(e.Left)

	if e.Operator.Kind == OR {
		if isTruthy(left) {
			return left
		}
	} else {
		if !isTruthy(left) {
			return left
		}
	}

	return interp.evaluate(e.Right)
}

func (interp *Interpreter) visitSetExpr(e *SetExpr) interface{} {
	object := interp.evaluate(e.Target)

	instance, ok := object.(*LoxInstance)
	if !ok {
		interp.runtimeErr(e.Name, "Only instances have fields.")
	}

	value := interp.evaluate(e.Value)
	instance.set(e.Name.Lexeme, value)
	return value
}

func (interp *Interpreter) visitSuperExpr(e *SuperExpr) interface{} {
	depth := interp.locals[e]
	superclass := interp.environment.getAt(depth, "super").(*LoxClass)
	instance := interp.environment.getAt(depth-1, "this").(*LoxInstance)

	method := superclass.findMethod(e.MethodName.Lexeme)
	if method == nil {
		interp.runtimeErr(e.MethodName, "Undefined property '"+e.MethodName.Lexeme+"'.")
	}
	return method.bind(instance)
}

func (interp *Interpreter) visitThisExpr(e *ThisExpr) interface{} {
	return interp.lookUpVariable(e.Keyword, e)
}

func (interp *Interpreter) visitUnaryExpr(e *UnaryExpr) interface{} {
	right := interp.evaluate(e.Right)

	switch e.Operator.Kind {
	case BANG:
		return !isTruthy(right)
	case MINUS:
		num, ok := right.(float64)
		if !ok {
			interp.runtimeErr(e.Operator, "Operand must be a number.")
		}
		return -num
	}

	interp.runtimeErr(e.Operator, "Unknown operator.")
	return nil
}

func (interp *Interpreter) visitVariableExpr(e *VariableExpr) interface{} {
	return interp.lookUpVariable(e.Name, e)
}

// defineGlobals installs the implicit globals spec.md §6 and SPEC_FULL.md
// §6 require, grounded on the teacher's defineGlobals/grotskyGlobals.go
// shape (native functions registered by name into an Environment).
func defineGlobals(globals *Environment) {
	globals.define("clock", &nativeFn{
		name:       "clock",
		arityValue: 0,
		callFn: func(interp *Interpreter, args []interface{}) interface{} {
			return float64(time.Now().UnixNano()) / float64(time.Second)
		},
	})

	globals.define("type", &nativeFn{
		name:       "type",
		arityValue: 1,
		callFn: func(interp *Interpreter, args []interface{}) interface{} {
			return typeName(args[0])
		},
	})

	globals.define("str", &nativeFn{
		name:       "str",
		arityValue: 1,
		callFn: func(interp *Interpreter, args []interface{}) interface{} {
			return stringify(args[0])
		},
	})
}
