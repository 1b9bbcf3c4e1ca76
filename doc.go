// Package objutil is the flat entry point of go-objutil: type predicates,
// object composition, classical inheritance and iteration helpers, all as
// stateless free functions.
//
// Each helper forwards to the package that implements it:
//
//   - [kind]: IsString, IsNumber, IsArray and the other predicates
//   - [arr]: ToArray and slice iteration
//   - [object]: Keys, Values, Each, Mix and Merge over ordered objects
//   - [class]: Inherit and the classes it builds
//
// Import the sub-packages directly when you need their full surface (for
// example [object.Options] or [class.Class.Super]).
//
//	foo := object.New().Set("x", 1)
//	bar := object.New().Set("x", 2).Set("y", 2)
//	objutil.Mix(foo, nil, bar)         // foo → {x: 2, y: 2}
//	objutil.Merge(foo, bar).Len()      // → 2
//	objutil.Keys(foo)                  // → [x y]
//
// The package holds no mutable state and needs no initialisation.
package objutil
