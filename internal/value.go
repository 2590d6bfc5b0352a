package internal

import (
	"fmt"
	"strconv"
	"strings"
)

// isTruthy implements Lox truthiness: nil and false are falsey, everything
// else (including 0 and "") is truthy (spec.md §4.6).
func isTruthy(value interface{}) bool {
	if value == nil {
		return false
	}
	if b, ok := value.(bool); ok {
		return b
	}
	return true
}

// isEqual implements Lox equality: nil == nil is true, then structural for
// primitives, identity for callables/instances (Go's == already gives
// pointer identity for the *LoxFunction/*LoxClass/*LoxInstance/*nativeFn
// cases, since they are compared by interface value).
func isEqual(a, b interface{}) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	aNum, aIsNum := a.(float64)
	bNum, bIsNum := b.(float64)
	if aIsNum && bIsNum {
		return aNum == bNum
	}
	if aIsNum != bIsNum {
		return false
	}
	return a == b
}

// stringify renders a Value the way `print` and string concatenation do.
// Number formatting trims a trailing ".0"; this is purely a display rule,
// never a rounding of the underlying float64 (spec.md §9).
func stringify(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return "nil"
	case bool:
		return strconv.FormatBool(v)
	case float64:
		text := strconv.FormatFloat(v, 'f', -1, 64)
		return strings.TrimSuffix(text, ".0")
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// typeName powers the `type` builtin (SPEC_FULL.md §6).
func typeName(value interface{}) string {
	switch value.(type) {
	case nil:
		return "nil"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case string:
		return "string"
	case *LoxClass:
		return "class"
	case *LoxInstance:
		return "instance"
	case Callable:
		return "function"
	default:
		return "unknown"
	}
}
