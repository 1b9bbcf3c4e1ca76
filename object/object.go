package object

import (
	"fmt"
	"sort"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"github.com/hasbyte1/go-objutil/arr"
)

// Func is a method value. this is the receiver the method was resolved on,
// which may be an object further down the prototype chain than the one that
// owns the property.
type Func func(this *Object, args ...any) any

// asFunc accepts both the named Func type and an unconverted literal of the
// same signature.
func asFunc(v any) (Func, bool) {
	switch fn := v.(type) {
	case Func:
		return fn, fn != nil
	case func(*Object, ...any) any:
		return fn, fn != nil
	}
	return nil, false
}

// AsFunc reports whether v is a method value and returns it as a Func.
func AsFunc(v any) (Func, bool) { return asFunc(v) }

// Object is a mutable, insertion-ordered record of own properties with an
// optional prototype it delegates unresolved lookups to.
//
// Own properties are the ones stored directly on the object; Keys, Values,
// Each and the copy helpers only ever see those. Get, Has and Call fall back
// to the prototype chain.
//
// The zero value is an empty object with no prototype, ready to use.
// Object is not safe for concurrent mutation.
type Object struct {
	keys   []string
	values map[string]any
	proto  *Object
	frozen bool
}

// Prototype is the root prototype every New object delegates to. It is
// frozen at init and carries no properties.
var Prototype = Create(nil).Freeze()

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New returns an empty object delegating to [Prototype].
func New() *Object { return Create(Prototype) }

// Create returns an empty object delegating to proto. A nil proto yields a
// bare object with no chain at all.
func Create(proto *Object) *Object {
	return &Object{values: make(map[string]any), proto: proto}
}

// FromMap builds an object from m. Go maps are unordered, so keys are
// inserted in sorted order to keep enumeration deterministic.
func FromMap(m map[string]any) *Object {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	o := New()
	for _, k := range keys {
		o.Set(k, m[k])
	}
	return o
}

// Combine builds an object from parallel key and value slices, keeping the
// order of keys. A repeated key keeps its first slot and its last value.
func Combine(keys []string, values []any) (*Object, error) {
	pairs, err := arr.Combine(keys, values)
	if err != nil {
		return nil, fmt.Errorf("%w: %d keys, %d values", ErrMismatchedLengths, len(keys), len(values))
	}
	o := New()
	for _, p := range pairs {
		o.Set(p.First, p.Second)
	}
	return o, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Own properties
// ─────────────────────────────────────────────────────────────────────────────

// Set assigns an own property and returns o for chaining. Re-assigning an
// existing key keeps its position. Setting on a frozen object is a no-op.
func (o *Object) Set(key string, value any) *Object {
	if o.frozen {
		return o
	}
	if o.values == nil {
		o.values = make(map[string]any)
	}
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
	return o
}

// Own returns the own property stored under key, ignoring the chain.
func (o *Object) Own(key string) (any, bool) {
	v, ok := o.values[key]
	return v, ok
}

// HasOwn reports whether key is an own property of o.
func (o *Object) HasOwn(key string) bool {
	_, ok := o.values[key]
	return ok
}

// Delete removes an own property. It reports whether anything was removed;
// frozen objects never change.
func (o *Object) Delete(key string) bool {
	if o.frozen || !o.HasOwn(key) {
		return false
	}
	delete(o.values, key)
	o.keys = arr.Filter(o.keys, func(k string, _ int) bool { return k != key })
	return true
}

// Len returns the number of own properties.
func (o *Object) Len() int { return len(o.keys) }

// Freeze makes o read-only and returns it.
func (o *Object) Freeze() *Object {
	o.frozen = true
	return o
}

// IsFrozen reports whether o has been frozen.
func (o *Object) IsFrozen() bool { return o.frozen }

// Clone returns a shallow copy of o's own properties sharing o's prototype.
// The copy is never frozen.
func (o *Object) Clone() *Object {
	c := Create(o.proto)
	for _, k := range o.keys {
		c.Set(k, o.values[k])
	}
	return c
}

// ToMap returns the own properties as a plain map.
func (o *Object) ToMap() map[string]any {
	m := make(map[string]any, len(o.keys))
	for _, k := range o.keys {
		m[k] = o.values[k]
	}
	return m
}

// ─────────────────────────────────────────────────────────────────────────────
// Prototype chain
// ─────────────────────────────────────────────────────────────────────────────

// Proto returns the object o delegates to, or nil.
func (o *Object) Proto() *Object { return o.proto }

// Get resolves key on o, then along the prototype chain.
func (o *Object) Get(key string) (any, bool) {
	for cur := o; cur != nil; cur = cur.proto {
		if v, ok := cur.values[key]; ok {
			return v, true
		}
	}
	return nil, false
}

// Has reports whether key resolves on o or its prototype chain.
func (o *Object) Has(key string) bool {
	_, ok := o.Get(key)
	return ok
}

// IsPrototypeOf reports whether o appears on v's prototype chain (v itself
// excluded).
func (o *Object) IsPrototypeOf(v *Object) bool {
	if o == nil || v == nil {
		return false
	}
	for cur := v.proto; cur != nil; cur = cur.proto {
		if cur == o {
			return true
		}
	}
	return false
}

// Call resolves name through the chain and invokes it with o as this.
func (o *Object) Call(name string, args ...any) (any, error) {
	v, ok := o.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoSuchMethod, name)
	}
	fn, ok := asFunc(v)
	if !ok {
		return nil, fmt.Errorf("%w: %q is %T", ErrNotFunction, name, v)
	}
	return fn(o, args...), nil
}

// String renders the own properties in enumeration order, e.g. {x: 1, y: 2}.
func (o *Object) String() string {
	if o == nil {
		return "<nil>"
	}
	var b strings.Builder
	b.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s: %v", k, o.values[k])
	}
	b.WriteByte('}')
	return b.String()
}

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisableMethods:          true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// GoString dumps the full structure of o, own properties and prototype
// chain included. It backs the %#v verb.
func (o *Object) GoString() string {
	return strings.TrimSuffix(dumpConfig.Sdump(o), "\n")
}
