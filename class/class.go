package class

import (
	"fmt"

	"github.com/hasbyte1/go-objutil/kind"
	"github.com/hasbyte1/go-objutil/object"
)

// InitializeKey is the reserved member name invoked by New on every fresh
// instance.
const InitializeKey = "_initialize"

// Constructor is anything instances can be derived from: it only needs to
// expose the prototype those instances delegate to.
type Constructor interface {
	Prototype() *object.Object
}

// Class is a constructed type. Its prototype holds the members given to
// Inherit and delegates everything else to the parent's prototype.
type Class struct {
	prototype *object.Object
	parent    Constructor
}

// Object is the root class. Its prototype is [object.Prototype], so every
// instance of every class is an instance of Object.
var Object = &Class{prototype: object.Prototype}

// Wrap turns an existing object into a parentless class whose prototype is
// proto. Use it to derive classes from hand-built prototypes.
func Wrap(proto *object.Object) *Class {
	return &Class{prototype: proto}
}

// ─────────────────────────────────────────────────────────────────────────────
// Building
// ─────────────────────────────────────────────────────────────────────────────

// Inherit creates a class whose instances delegate to parent's prototype.
// The own properties of members are copied onto the new prototype, later
// keys overriding earlier ones; members may be nil.
//
//	Animal, _ := class.Inherit(class.Object, object.New().
//	    Set("_initialize", object.Func(func(this *object.Object, args ...any) any {
//	        this.Set("name", args[0])
//	        return nil
//	    })))
//	Dog, _ := Animal.Extend(object.New().Set("sound", "woof"))
//
// Inherit fails with [ErrInvalidArgument] when parent is nil or has no
// prototype.
func Inherit(parent Constructor, members *object.Object) (*Class, error) {
	if kind.IsNil(parent) {
		return nil, fmt.Errorf("%w: nil parent", ErrInvalidArgument)
	}
	proto := parent.Prototype()
	if proto == nil {
		return nil, fmt.Errorf("%w: parent %T has no prototype", ErrInvalidArgument, parent)
	}

	child := &Class{
		prototype: object.Create(proto),
		parent:    parent,
	}
	object.Mix(child.prototype, members)
	return child, nil
}

// Extend derives a subclass of c. It is Inherit with c as the parent.
func (c *Class) Extend(members *object.Object) (*Class, error) {
	return Inherit(c, members)
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Prototype returns the object instances of c delegate to.
func (c *Class) Prototype() *object.Object {
	if c == nil {
		return nil
	}
	return c.prototype
}

// Superclass returns the parent's prototype (the same pointer, not a copy),
// or nil for root classes.
func (c *Class) Superclass() *object.Object {
	if c == nil || c.parent == nil {
		return nil
	}
	return c.parent.Prototype()
}

// Parent returns the constructor c was derived from, or nil for root
// classes.
func (c *Class) Parent() Constructor { return c.parent }

// ─────────────────────────────────────────────────────────────────────────────
// Instances
// ─────────────────────────────────────────────────────────────────────────────

// New allocates an instance of c. When _initialize resolves on the
// prototype chain it is called with the instance as this and args forwarded.
// A nil or Undef _initialize counts as absent. A non-nil error returned by
// the initializer is returned as is, with no instance; typed nil error
// pointers count as success.
func (c *Class) New(args ...any) (*object.Object, error) {
	inst := object.Create(c.Prototype())

	v, ok := inst.Get(InitializeKey)
	if !ok || kind.IsNil(v) {
		return inst, nil
	}
	initialize, ok := object.AsFunc(v)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrInvalidInitializer, v)
	}
	if err, isErr := initialize(inst, args...).(error); isErr && !kind.IsNil(err) {
		return nil, err
	}
	return inst, nil
}

// Super invokes the parent's version of method name with this as receiver.
func (c *Class) Super(this *object.Object, name string, args ...any) (any, error) {
	super := c.Superclass()
	if super == nil {
		return nil, fmt.Errorf("%w: super.%s", object.ErrNoSuchMethod, name)
	}
	v, ok := super.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: super.%s", object.ErrNoSuchMethod, name)
	}
	fn, ok := object.AsFunc(v)
	if !ok {
		return nil, fmt.Errorf("%w: super.%s is %T", object.ErrNotFunction, name, v)
	}
	return fn(this, args...), nil
}

// InstanceOf reports whether v is an object whose prototype chain contains
// c's prototype.
func InstanceOf(v any, c Constructor) bool {
	o, ok := v.(*object.Object)
	if !ok || o == nil || kind.IsNil(c) {
		return false
	}
	return c.Prototype().IsPrototypeOf(o)
}
