package interp

import "github.com/mna/lox/lang/ast"

// Function is a user-defined function or method: the declaration's AST plus
// the environment that was live when it was declared (its closure). Storing
// the closure on the value, rather than re-looking it up from the call
// site, is what makes two closures created by the same function literal but
// in different enclosing calls see different captured variables.
type Function struct {
	decl          *ast.FunctionStmt
	closure       *Environment
	isInitializer bool
}

var _ Callable = (*Function)(nil)

func (f *Function) Arity() int { return len(f.decl.Params) }

func (f *Function) String() string { return "<fn " + f.decl.Name.Lexeme + ">" }

// Bind returns a copy of f whose closure is extended with `this` bound to
// instance, used when a method is looked up off an instance (`obj.method`)
// so the method body can refer to the instance it was fetched from.
func (f *Function) Bind(instance *Instance) *Function {
	env := NewChildEnvironment(f.closure)
	env.Define("this", instance)
	return &Function{decl: f.decl, closure: env, isInitializer: f.isInitializer}
}

func (f *Function) Call(ev *Evaluator, args []Value) (Value, error) {
	env := NewChildEnvironment(f.closure)
	for i, p := range f.decl.Params {
		env.Define(p.Lexeme, args[i])
	}

	err := ev.executeBlock(f.decl.Body, env)
	if ret, ok := err.(returnSignal); ok {
		if f.isInitializer {
			return f.closure.GetAt(0, "this"), nil
		}
		return ret.value, nil
	}
	if err != nil {
		return nil, err
	}
	if f.isInitializer {
		return f.closure.GetAt(0, "this"), nil
	}
	return nil, nil
}

// returnSignal unwinds the Go call stack from a `return` statement back to
// the Function.Call that's executing the enclosing function body. It
// implements error so executeBlock/execute can propagate it through the
// same return path as an actual evaluation error, and Call above type-
// asserts it back out before it would ever reach a caller as a real error.
type returnSignal struct {
	value Value
}

func (returnSignal) Error() string { return "return outside of function" }
