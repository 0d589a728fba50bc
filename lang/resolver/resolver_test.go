package resolver_test

import (
	"testing"

	"github.com/mna/lox/lang/errors"
	"github.com/mna/lox/lang/parser"
	"github.com/mna/lox/lang/resolver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolve(t *testing.T, src string) (*errors.List, resolver.Locals) {
	t.Helper()
	var errs errors.List
	prog := parser.Parse(src, &errs)
	require.Zero(t, errs.Len(), "unexpected parse errors")
	locals := resolver.Resolve(prog, &errs)
	return &errs, locals
}

func TestResolveGlobalNotInLocals(t *testing.T) {
	errs, locals := resolve(t, "var x = 1; print x;")
	require.Zero(t, errs.Len())
	assert.Empty(t, locals)
}

func TestResolveLocalDistance(t *testing.T) {
	errs, locals := resolve(t, `
		var a = "global";
		{
			var a = "block";
			print a;
		}
	`)
	require.Zero(t, errs.Len())
	assert.Len(t, locals, 1)
	for _, dist := range locals {
		assert.Equal(t, 0, dist)
	}
}

func TestResolveClosureDistance(t *testing.T) {
	errs, locals := resolve(t, `
		fun outer() {
			var a = 1;
			fun inner() {
				print a;
			}
		}
	`)
	require.Zero(t, errs.Len())
	assert.Len(t, locals, 1)
	for _, dist := range locals {
		assert.Equal(t, 1, dist)
	}
}

func TestResolveReadInOwnInitializer(t *testing.T) {
	errs, _ := resolve(t, `{ var a = a; }`)
	require.Equal(t, 1, errs.Len())
	assert.Equal(t, errors.ResolveError, errs.All()[0].Kind)
}

func TestResolveDuplicateInScope(t *testing.T) {
	errs, _ := resolve(t, `{ var a = 1; var a = 2; }`)
	require.Equal(t, 1, errs.Len())
}

func TestResolveDuplicateAllowedAcrossScopes(t *testing.T) {
	errs, _ := resolve(t, `var a = 1; { var a = 2; }`)
	require.Zero(t, errs.Len())
}

func TestResolveReturnAtTopLevel(t *testing.T) {
	errs, _ := resolve(t, `return 1;`)
	require.Equal(t, 1, errs.Len())
	assert.Equal(t, errors.ResolveError, errs.All()[0].Kind)
}

func TestResolveReturnValueFromInitializer(t *testing.T) {
	errs, _ := resolve(t, `class A { init() { return 1; } }`)
	require.Equal(t, 1, errs.Len())
}

func TestResolveBareReturnFromInitializerAllowed(t *testing.T) {
	errs, _ := resolve(t, `class A { init() { return; } }`)
	require.Zero(t, errs.Len())
}

func TestResolveThisOutsideClass(t *testing.T) {
	errs, _ := resolve(t, `print this;`)
	require.Equal(t, 1, errs.Len())
}

func TestResolveSuperOutsideClass(t *testing.T) {
	errs, _ := resolve(t, `fun f() { print super.x; }`)
	require.Equal(t, 1, errs.Len())
}

func TestResolveSuperWithNoSuperclass(t *testing.T) {
	errs, _ := resolve(t, `class A { f() { print super.x; } }`)
	require.Equal(t, 1, errs.Len())
}

func TestResolveClassInheritsFromItself(t *testing.T) {
	errs, _ := resolve(t, `class A < A {}`)
	require.Equal(t, 1, errs.Len())
}

func TestResolveThisInsideMethod(t *testing.T) {
	errs, _ := resolve(t, `class A { f() { print this; } }`)
	require.Zero(t, errs.Len())
}

func TestResolveSuperInsideSubclassMethod(t *testing.T) {
	errs, _ := resolve(t, `class A { f() {} } class B < A { f() { super.f(); } }`)
	require.Zero(t, errs.Len())
}
