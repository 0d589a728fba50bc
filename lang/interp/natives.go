package interp

import (
	"fmt"
	"time"
)

// NativeFn is a Callable implemented in Go rather than in Lox, such as the
// `clock` builtin installed into every global environment.
type NativeFn struct {
	name  string
	arity int
	fn    func(ev *Evaluator, args []Value) (Value, error)
}

var _ Callable = (*NativeFn)(nil)

func (n *NativeFn) Arity() int      { return n.arity }
func (n *NativeFn) String() string  { return "<native fn " + n.name + ">" }
func (n *NativeFn) Call(ev *Evaluator, args []Value) (Value, error) {
	return n.fn(ev, args)
}

// defineGlobals installs the small set of built-ins every Lox program gets
// for free, with no `import` mechanism (Non-goal: no module system).
func defineGlobals(env *Environment) {
	env.Define("clock", &NativeFn{
		name:  "clock",
		arity: 0,
		fn: func(_ *Evaluator, _ []Value) (Value, error) {
			return float64(time.Now().UnixNano()) / float64(time.Second), nil
		},
	})

	env.Define("println", &NativeFn{
		name:  "println",
		arity: 1,
		fn: func(ev *Evaluator, args []Value) (Value, error) {
			fmt.Fprintln(ev.out, Stringify(args[0]))
			return nil, nil
		},
	})
}
