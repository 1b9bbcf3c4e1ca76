// Package arr provides the slice side of go-objutil's iteration helpers.
//
// All helpers are generic and operate on plain []T values:
//
//	args := arr.ToArray(1, 2, 3)             // → []int{1, 2, 3}, a fresh copy
//	arr.Each(args, func(v, i int, all []int) { fmt.Println(i, v) })
//	arr.Keys(args)                           // → [0 1 2]
//	arr.Values(args)                         // → [1 2 3]
//
// For string-keyed records, see the object package, which offers Keys,
// Values and Each over insertion-ordered own properties.
package arr
