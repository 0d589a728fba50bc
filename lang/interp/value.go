// Package interp evaluates a resolved program: it holds the runtime
// environment model, the value representation, and the tree-walking
// evaluator itself.
package interp

import (
	"fmt"
	"strconv"
)

// Value is any value Lox code can hold: nil, bool, float64, string, or one
// of the Callable implementations below (*Function, *NativeFn, *Class) plus
// *Instance. Using Go's native types directly for the primitive cases, as
// opposed to a wrapper struct per kind, keeps arithmetic and comparison
// implemented as ordinary Go type assertions instead of a method per
// operator per type.
type Value = any

// Callable is implemented by anything that can appear on the left of a call
// expression: user-defined functions and methods, native functions, and
// classes (calling a class constructs an Instance).
type Callable interface {
	Arity() int
	Call(ev *Evaluator, args []Value) (Value, error)
	String() string
}

// Truthy implements Lox's truthiness rule: nil and false are falsy,
// everything else (including 0 and "") is truthy.
func Truthy(v Value) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}

// Equal implements Lox's `==`: nil equals only nil, and there is no implicit
// conversion between types (1 is never equal to "1").
func Equal(a, b Value) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a == b
}

// Stringify renders v the way `print` and the REPL do. Numbers that happen
// to be integral print without a trailing ".0", matching the reference
// implementation's float-to-string conversion.
func Stringify(v Value) string {
	switch v := v.(type) {
	case nil:
		return "nil"
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// TypeName describes v's runtime type for error messages.
func TypeName(v Value) string {
	switch v.(type) {
	case nil:
		return "nil"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case string:
		return "string"
	case *Function:
		return "function"
	case *NativeFn:
		return "native function"
	case *Class:
		return "class"
	case *Instance:
		return "instance"
	default:
		return "value"
	}
}
