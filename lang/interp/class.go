package interp

import "github.com/dolthub/swiss"

// Class is a runtime class value, callable to construct an Instance.
// Methods are looked up by name directly on the class first, falling back
// to the superclass chain, matching single inheritance with no interfaces
// or mixins.
type Class struct {
	Name       string
	Superclass *Class
	methods    *swiss.Map[string, *Function]
}

var _ Callable = (*Class)(nil)

// NewClass builds a Class from its resolved method set.
func NewClass(name string, superclass *Class, methods map[string]*Function) *Class {
	m := swiss.NewMap[string, *Function](uint32(len(methods)))
	for k, v := range methods {
		m.Put(k, v)
	}
	return &Class{Name: name, Superclass: superclass, methods: m}
}

func (c *Class) String() string { return c.Name }

// FindMethod looks up a method by name on c, then on its superclass chain.
func (c *Class) FindMethod(name string) (*Function, bool) {
	if fn, ok := c.methods.Get(name); ok {
		return fn, true
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil, false
}

// Arity is the arity of the class's `init` method, or 0 if it declares none
// (calling a class with no initializer takes no arguments).
func (c *Class) Arity() int {
	if init, ok := c.FindMethod("init"); ok {
		return init.Arity()
	}
	return 0
}

// Call constructs a new Instance and, if the class declares an `init`
// method, runs it against the constructor arguments.
func (c *Class) Call(ev *Evaluator, args []Value) (Value, error) {
	instance := NewInstance(c)
	if init, ok := c.FindMethod("init"); ok {
		if _, err := init.Bind(instance).Call(ev, args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

// Instance is a runtime object: a class plus its own field store. Field
// lookups take precedence over class methods, so assigning to `this.f` in
// one method shadows a same-named method for subsequent property reads.
type Instance struct {
	class  *Class
	fields *swiss.Map[string, Value]
}

// NewInstance constructs a bare instance of class with no fields set.
func NewInstance(class *Class) *Instance {
	return &Instance{class: class, fields: swiss.NewMap[string, Value](4)}
}

func (i *Instance) String() string { return i.class.Name + " instance" }

// Get reads a field or bound method off the instance.
func (i *Instance) Get(name string) (Value, bool) {
	if v, ok := i.fields.Get(name); ok {
		return v, true
	}
	if fn, ok := i.class.FindMethod(name); ok {
		return fn.Bind(i), true
	}
	return nil, false
}

// Set assigns a field on the instance, creating it if absent. Lox has no
// notion of declared fields; any name can be set on any instance.
func (i *Instance) Set(name string, value Value) {
	i.fields.Put(name, value)
}
