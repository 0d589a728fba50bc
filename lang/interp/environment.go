package interp

import "github.com/dolthub/swiss"

// Environment is a lexical scope: a name-to-value store chained to an
// enclosing scope. The store is swiss.Map rather than a built-in map,
// following the teacher's choice of a SwissTable-based hash map for value
// stores that are created and torn down as often as a function call or a
// block enters and exits scope.
type Environment struct {
	enclosing *Environment
	values    *swiss.Map[string, Value]
}

// NewEnvironment creates a top-level (global) environment with no enclosing
// scope.
func NewEnvironment() *Environment {
	return &Environment{values: swiss.NewMap[string, Value](8)}
}

// NewChildEnvironment creates a scope nested directly inside enclosing, such
// as a block body or a function call's parameter scope.
func NewChildEnvironment(enclosing *Environment) *Environment {
	return &Environment{enclosing: enclosing, values: swiss.NewMap[string, Value](8)}
}

// Define binds name to value in this environment, shadowing (rather than
// erroring on) a binding of the same name in an enclosing scope. Redefining
// a name already bound in THIS environment is allowed, since it is exactly
// how Lox's `var x = x;` pattern and REPL re-declarations behave.
func (e *Environment) Define(name string, value Value) {
	e.values.Put(name, value)
}

// Get resolves name by walking the scope chain outward from e. Undefined
// variable is a RuntimeError rather than a zero value, so typos fail loudly.
func (e *Environment) Get(name string) (Value, bool) {
	for env := e; env != nil; env = env.enclosing {
		if v, ok := env.values.Get(name); ok {
			return v, true
		}
	}
	return nil, false
}

// GetAt resolves name in the environment exactly distance scopes outward
// from e (0 meaning e itself), per the resolver's computed side-table
// distance. It panics if distance is inconsistent with the chain's depth,
// which would indicate a resolver bug rather than a user error.
func (e *Environment) GetAt(distance int, name string) Value {
	env := e.ancestor(distance)
	v, _ := env.values.Get(name)
	return v
}

// AssignAt assigns name in the environment exactly distance scopes outward
// from e, per GetAt.
func (e *Environment) AssignAt(distance int, name string, value Value) {
	env := e.ancestor(distance)
	env.values.Put(name, value)
}

func (e *Environment) ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		env = env.enclosing
	}
	return env
}

// Assign sets an existing binding of name, walking the scope chain outward,
// and reports whether name was found. Unlike Define, Assign never creates a
// new binding: assigning to an undeclared global is a runtime error.
func (e *Environment) Assign(name string, value Value) bool {
	for env := e; env != nil; env = env.enclosing {
		if _, ok := env.values.Get(name); ok {
			env.values.Put(name, value)
			return true
		}
	}
	return false
}
