// Package kind classifies arbitrary Go values into the small, fixed set of
// value kinds used throughout go-objutil.
//
// Every value belongs to exactly one [Kind]:
//
//	kind.Of(nil)               // → kind.Null
//	kind.Of(kind.Undef)        // → kind.Undefined
//	kind.Of(42)                // → kind.Number
//	kind.Of([]int{1, 2})       // → kind.Array
//	kind.Of(object.New())      // → kind.Object
//
// The Is* predicates are thin wrappers over [Of]. They never panic and never
// return an error: values the package does not recognise fall through to
// [Object].
//
// # Strictness
//
// Predicates are strict about boxing. A pointer to a primitive is a
// reference, so it classifies as an Object rather than as the primitive:
//
//	b := false
//	kind.IsBoolean(b)  // → true
//	kind.IsBoolean(&b) // → false
//	kind.IsObject(&b)  // → true
//
// # Numbers
//
// Every built-in numeric type is a [Number]: signed and unsigned integers,
// floats and complex values, including named types over them such as
// time.Duration.
//
// # Null and Undefined
//
// Go has a single nil, which maps to [Null]. The package exports the
// [Undef] sentinel, classified as [Undefined], for the "no value at all"
// case. Typed nil pointers, maps, funcs and channels are Null too; a nil
// slice is still an empty Array.
package kind
