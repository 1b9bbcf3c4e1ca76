package object

import "github.com/hasbyte1/go-objutil/arr"

// Keys returns the own property names of o in enumeration order.
// A nil object has no keys.
func Keys(o *Object) []string {
	if o == nil {
		return []string{}
	}
	return arr.ToArray(o.keys...)
}

// Values returns the own property values of o, index-aligned with [Keys].
func Values(o *Object) []any {
	if o == nil {
		return []any{}
	}
	return arr.Map(o.keys, func(k string, _ int) any { return o.values[k] })
}

// Each calls fn(value, key, o) for every own property of o, in enumeration
// order. Keys are snapshotted first, so fn may mutate o without disturbing
// the walk.
func Each(o *Object, fn func(value any, key string, o *Object)) {
	if o == nil {
		return
	}
	for _, k := range Keys(o) {
		v, ok := o.values[k]
		if !ok {
			continue
		}
		fn(v, k, o)
	}
}

// EachBound is Each with an explicit receiver: fn is invoked as
// fn(this, value, key, o).
func EachBound(o *Object, this *Object, fn Func) {
	Each(o, func(v any, k string, o *Object) {
		fn(this, v, k, o)
	})
}
