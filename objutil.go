package objutil

import (
	"fmt"

	"github.com/hasbyte1/go-objutil/arr"
	"github.com/hasbyte1/go-objutil/class"
	"github.com/hasbyte1/go-objutil/kind"
	"github.com/hasbyte1/go-objutil/object"
)

// Undefined is the "no value" sentinel; see [kind.Undef].
var Undefined = kind.Undef

// ─────────────────────────────────────────────────────────────────────────────
// Type predicates
// ─────────────────────────────────────────────────────────────────────────────

// IsBoolean reports whether v is an unboxed bool.
func IsBoolean(v any) bool { return kind.IsBoolean(v) }

// IsNumber reports whether v is an unboxed integer, float or complex value.
func IsNumber(v any) bool { return kind.IsNumber(v) }

// IsString reports whether v is an unboxed string.
func IsString(v any) bool { return kind.IsString(v) }

// IsFunction reports whether v is a non-nil func value.
func IsFunction(v any) bool { return kind.IsFunction(v) }

// IsNull reports whether v is nil or a typed nil reference.
func IsNull(v any) bool { return kind.IsNull(v) }

// IsUndefined reports whether v is the Undefined sentinel.
func IsUndefined(v any) bool { return kind.IsUndefined(v) }

// IsObject reports whether v is record-like or a byte buffer (the catch-all).
func IsObject(v any) bool { return kind.IsObject(v) }

// IsArray reports whether v is a slice or array other than []byte.
func IsArray(v any) bool { return kind.IsArray(v) }

// IsDate reports whether v is a time.Time or *time.Time.
func IsDate(v any) bool { return kind.IsDate(v) }

// IsRegExp reports whether v is a compiled *regexp.Regexp.
func IsRegExp(v any) bool { return kind.IsRegExp(v) }

// IsError reports whether v is an error.
func IsError(v any) bool { return kind.IsError(v) }

// IsBuffer reports whether v is a []byte or *bytes.Buffer.
func IsBuffer(v any) bool { return kind.IsBuffer(v) }

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// ToArray copies a call's argument list into a fresh slice.
func ToArray(args ...any) []any { return arr.ToArray(args...) }

// Each calls fn(value, key, o) for every own property of o.
func Each(o *object.Object, fn func(value any, key string, o *object.Object)) {
	object.Each(o, fn)
}

// EachBound is Each with an explicit receiver passed to fn as this.
func EachBound(o, this *object.Object, fn object.Func) { object.EachBound(o, this, fn) }

// Keys returns the own property names of o in enumeration order.
func Keys(o *object.Object) []string { return object.Keys(o) }

// Values returns the own property values of o, aligned with Keys.
func Values(o *object.Object) []any { return object.Values(o) }

// ─────────────────────────────────────────────────────────────────────────────
// Composition
// ─────────────────────────────────────────────────────────────────────────────

// Mix copies sources onto target, later sources winning, and returns target.
func Mix(target *object.Object, sources ...*object.Object) *object.Object {
	return object.Mix(target, sources...)
}

// MixWith is Mix with an explicit override policy.
func MixWith(target *object.Object, opts object.Options, sources ...*object.Object) *object.Object {
	return object.MixWith(target, opts, sources...)
}

// Merge copies sources into a new object, later sources winning.
func Merge(sources ...*object.Object) *object.Object { return object.Merge(sources...) }

// MergeWith is Merge with an explicit override policy.
func MergeWith(opts object.Options, sources ...*object.Object) *object.Object {
	return object.MergeWith(opts, sources...)
}

// Inherit derives a class from parent; see [class.Inherit].
func Inherit(parent class.Constructor, members *object.Object) (*class.Class, error) {
	return class.Inherit(parent, members)
}

// ─────────────────────────────────────────────────────────────────────────────
// Formatting
// ─────────────────────────────────────────────────────────────────────────────

// Format is fmt.Sprintf.
func Format(format string, args ...any) string { return fmt.Sprintf(format, args...) }
