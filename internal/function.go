package internal

import "fmt"

// Callable is the capability every invokable Value implements: functions,
// classes (construction), and builtins. Shape grounded on the teacher's
// callable/grotskyCallable interfaces in function.go/grotskyFunction.go.
type Callable interface {
	arity() int
	call(interp *Interpreter, args []interface{}) interface{}
}

// LoxFunction holds a Function AST node together with the environment
// captured at definition (its closure) and whether it is a class
// initializer. Grounded on the teacher's grotskyFunction (declaration +
// closure + isInitializer, bind()).
type LoxFunction struct {
	declaration   *FunctionStmt
	closure       *Environment
	isInitializer bool
}

func (f *LoxFunction) arity() int {
	return len(f.declaration.Params)
}

// call allocates a fresh child environment of the closure, binds each
// parameter, then executes the body via executeBlock. A returnSignal
// raised inside is caught here (spec.md §4.5/§4.6); an initializer always
// yields `this` regardless of how it exits.
func (f *LoxFunction) call(interp *Interpreter, args []interface{}) (result interface{}) {
	env := NewEnvironment(f.closure)
	for i, param := range f.declaration.Params {
		env.define(param.Lexeme, args[i])
	}

	defer func() {
		if r := recover(); r != nil {
			ret, ok := r.(returnSignal)
			if !ok {
				panic(r)
			}
			if f.isInitializer {
				result = f.closure.getAt(0, "this")
				return
			}
			result = ret.value
		}
	}()

	interp.executeBlock(f.declaration.Body, env)

	if f.isInitializer {
		return f.closure.getAt(0, "this")
	}
	return nil
}

// bind produces a new LoxFunction whose closure is a fresh child
// environment of the original closure with `this` defined to instance,
// used when a method is read via '.' (spec.md §4.5).
func (f *LoxFunction) bind(instance *LoxInstance) *LoxFunction {
	env := NewEnvironment(f.closure)
	env.define("this", instance)
	return &LoxFunction{
		declaration:   f.declaration,
		closure:       env,
		isInitializer: f.isInitializer,
	}
}

func (f *LoxFunction) String() string {
	return fmt.Sprintf("<fn %s>", f.declaration.Name.Lexeme)
}

// returnSignal is the confined control-flow value Return raises, caught
// only inside LoxFunction.call (spec.md §4.6/§9), mirroring the teacher's
// `panic(returnValue(...))` idiom in function.go.
type returnSignal struct {
	value interface{}
}

// nativeFn is a host-provided builtin (e.g. clock), grounded on the
// teacher's nativeFn in function.go/grotskyGlobals.go.
type nativeFn struct {
	name       string
	arityValue int
	callFn     func(interp *Interpreter, args []interface{}) interface{}
}

func (n *nativeFn) arity() int { return n.arityValue }

func (n *nativeFn) call(interp *Interpreter, args []interface{}) interface{} {
	return n.callFn(interp, args)
}

func (n *nativeFn) String() string {
	return fmt.Sprintf("<native fn %s>", n.name)
}
