package internal

import "fmt"

// LoxClass is itself Callable: calling it constructs a LoxInstance, then,
// if an `init` method exists anywhere in the chain, invokes it with the
// call's arguments. Grounded on the teacher's grotskyClass (name,
// superclass, methods map, findMethod/arity/call).
type LoxClass struct {
	name       string
	superclass *LoxClass
	methods    map[string]*LoxFunction
}

// findMethod looks up name in this class, then its superclass chain.
func (c *LoxClass) findMethod(name string) *LoxFunction {
	if method, ok := c.methods[name]; ok {
		return method
	}
	if c.superclass != nil {
		return c.superclass.findMethod(name)
	}
	return nil
}

func (c *LoxClass) arity() int {
	if init := c.findMethod("init"); init != nil {
		return init.arity()
	}
	return 0
}

func (c *LoxClass) call(interp *Interpreter, args []interface{}) interface{} {
	instance := &LoxInstance{class: c, fields: make(map[string]interface{})}
	if init := c.findMethod("init"); init != nil {
		init.bind(instance).call(interp, args)
	}
	return instance
}

func (c *LoxClass) String() string {
	return fmt.Sprintf("<class %s>", c.name)
}
