package internal

import "fmt"

// LoxInstance holds a reference to its class plus an own-field mapping.
// Fields may be created by assignment, overriding methods of the same
// name. Grounded on the teacher's grotskyObject (class + fields,
// get/set).
type LoxInstance struct {
	class  *LoxClass
	fields map[string]interface{}
}

// get returns a field if present, else resolves and binds a method from
// the class chain. Returns ok=false when neither is found, so the caller
// (the Interpreter, which has the offending token) can raise the runtime
// error.
func (o *LoxInstance) get(name string) (interface{}, bool) {
	if val, ok := o.fields[name]; ok {
		return val, true
	}
	if method := o.class.findMethod(name); method != nil {
		return method.bind(o), true
	}
	return nil, false
}

func (o *LoxInstance) set(name string, value interface{}) {
	o.fields[name] = value
}

func (o *LoxInstance) String() string {
	return fmt.Sprintf("%s instance", o.class.name)
}
