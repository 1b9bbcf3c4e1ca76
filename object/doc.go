// Package object provides an insertion-ordered, string-keyed record with
// prototype delegation, plus the copy helpers built on it.
//
// # Objects
//
//	o := object.New().Set("x", 1).Set("y", 2)
//	object.Keys(o)   // → [x y]
//	object.Values(o) // → [1 2]
//
// Own properties keep insertion order. An object may delegate lookups to a
// prototype ([Create]); [Object.Get], [Object.Has] and [Object.Call] walk
// that chain while everything else only sees own properties.
//
// # Mix and Merge
//
// [Mix] copies the own properties of zero or more sources onto a target and
// returns the target. [Merge] does the same into a fresh object. nil sources
// are skipped.
//
// Both default to last-writer-wins. Pass [Options] with Override false to
// keep the first value written for each key instead:
//
//	foo := object.New().Set("x", 1)
//	bar := object.New().Set("x", 2).Set("y", 2)
//	object.MixWith(foo, object.Options{Override: false}, bar)
//	// foo → {x: 1, y: 2}
//
// Copies are shallow. Nested objects are shared, not cloned.
package object
