package interp_test

import (
	"strings"
	"testing"

	"github.com/mna/lox/lang/errors"
	"github.com/mna/lox/lang/interp"
	"github.com/mna/lox/lang/parser"
	"github.com/mna/lox/lang/resolver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run parses, resolves, and interprets src, returning everything written to
// stdout by `print` and the last top-level expression statement's value.
func run(t *testing.T, src string) (string, interp.Value, error) {
	t.Helper()
	var errs errors.List
	prog := parser.Parse(src, &errs)
	require.Zero(t, errs.Len(), "unexpected parse errors: %v", errs.All())

	locals := resolver.Resolve(prog, &errs)
	require.Zero(t, errs.Len(), "unexpected resolve errors: %v", errs.All())

	var out strings.Builder
	ev := interp.New(locals, &out)
	v, err := ev.Interpret(prog)
	return out.String(), v, err
}

func TestArithmetic(t *testing.T) {
	out, _, err := run(t, `print 1 + 2 * 3;`)
	require.NoError(t, err)
	assert.Equal(t, "7\n", out)
}

func TestStringConcatenation(t *testing.T) {
	out, _, err := run(t, `print "foo" + "bar";`)
	require.NoError(t, err)
	assert.Equal(t, "foobar\n", out)
}

func TestMixedPlusIsRuntimeError(t *testing.T) {
	_, _, err := run(t, `print "foo" + 1;`)
	require.Error(t, err)
	rerr, ok := err.(*errors.Error)
	require.True(t, ok)
	assert.Equal(t, errors.RuntimeError, rerr.Kind)
}

func TestDivisionByZeroIsInfNotError(t *testing.T) {
	out, _, err := run(t, `print 1 / 0;`)
	require.NoError(t, err)
	assert.Equal(t, "+Inf\n", out)
}

func TestTruthiness(t *testing.T) {
	out, _, err := run(t, `
		if (nil) print "a"; else print "b";
		if (false) print "c"; else print "d";
		if (0) print "e"; else print "f";
		if ("") print "g"; else print "h";
	`)
	require.NoError(t, err)
	assert.Equal(t, "b\nd\ne\ng\n", out)
}

func TestVariableShadowingAndBlocks(t *testing.T) {
	out, _, err := run(t, `
		var a = "global";
		{
			var a = "block";
			print a;
		}
		print a;
	`)
	require.NoError(t, err)
	assert.Equal(t, "block\nglobal\n", out)
}

func TestAssignmentReturnsValue(t *testing.T) {
	_, v, err := run(t, `var a = 1; a = 2;`)
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)
}

func TestUndefinedVariableIsRuntimeError(t *testing.T) {
	_, _, err := run(t, `print x;`)
	require.Error(t, err)
}

func TestWhileLoop(t *testing.T) {
	out, _, err := run(t, `
		var i = 0;
		while (i < 3) {
			print i;
			i = i + 1;
		}
	`)
	require.NoError(t, err)
	assert.Equal(t, "0\n1\n2\n", out)
}

func TestForLoop(t *testing.T) {
	out, _, err := run(t, `
		for (var i = 0; i < 3; i = i + 1) print i;
	`)
	require.NoError(t, err)
	assert.Equal(t, "0\n1\n2\n", out)
}

func TestFunctionCallAndReturn(t *testing.T) {
	out, _, err := run(t, `
		fun add(a, b) {
			return a + b;
		}
		print add(1, 2);
	`)
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)
}

func TestClosureCapturesByReference(t *testing.T) {
	out, _, err := run(t, `
		fun makeCounter() {
			var i = 0;
			fun count() {
				i = i + 1;
				print i;
			}
			return count;
		}
		var counter = makeCounter();
		counter();
		counter();
	`)
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n", out)
}

func TestRecursion(t *testing.T) {
	out, _, err := run(t, `
		fun fib(n) {
			if (n < 2) return n;
			return fib(n - 1) + fib(n - 2);
		}
		print fib(10);
	`)
	require.NoError(t, err)
	assert.Equal(t, "55\n", out)
}

func TestArityMismatchIsRuntimeError(t *testing.T) {
	_, _, err := run(t, `
		fun f(a, b) { return a + b; }
		f(1);
	`)
	require.Error(t, err)
}

func TestClassInstantiationAndFields(t *testing.T) {
	out, _, err := run(t, `
		class Point {}
		var p = Point();
		p.x = 1;
		p.y = 2;
		print p.x + p.y;
	`)
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)
}

func TestMethodsAndThis(t *testing.T) {
	out, _, err := run(t, `
		class Counter {
			init() {
				this.count = 0;
			}
			increment() {
				this.count = this.count + 1;
				return this.count;
			}
		}
		var c = Counter();
		print c.increment();
		print c.increment();
	`)
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n", out)
}

func TestFieldShadowsMethod(t *testing.T) {
	out, _, err := run(t, `
		class A {
			f() { return "method"; }
		}
		var a = A();
		a.f = "field";
		print a.f;
	`)
	require.NoError(t, err)
	assert.Equal(t, "field\n", out)
}

func TestInheritanceAndSuper(t *testing.T) {
	out, _, err := run(t, `
		class Pastry {
			cook() {
				return "cooked";
			}
		}
		class Cake < Pastry {
			cook() {
				return super.cook() + " cake";
			}
		}
		print Cake().cook();
	`)
	require.NoError(t, err)
	assert.Equal(t, "cooked cake\n", out)
}

func TestClassCannotInheritFromNonClass(t *testing.T) {
	_, _, err := run(t, `
		var NotAClass = 1;
		class Bad < NotAClass {}
	`)
	require.Error(t, err)
}

func TestBoundMethodRetainsInstanceAcrossAssignment(t *testing.T) {
	out, _, err := run(t, `
		class Greeter {
			init(name) {
				this.name = name;
			}
			greet() {
				print "hi " + this.name;
			}
		}
		var g = Greeter("ren");
		var fn = g.greet;
		fn();
	`)
	require.NoError(t, err)
	assert.Equal(t, "hi ren\n", out)
}

func TestClockBuiltinIsCallableWithZeroArgs(t *testing.T) {
	_, v, err := run(t, `clock();`)
	require.NoError(t, err)
	_, ok := v.(float64)
	assert.True(t, ok)
}
