package object

import "errors"

// Sentinel errors returned by Object operations.
var (
	// ErrNoSuchMethod is returned by Call when the name resolves to nothing
	// on the receiver or its prototype chain.
	ErrNoSuchMethod = errors.New("object: no such method")

	// ErrNotFunction is returned by Call when the name resolves to a value
	// that is not a Func.
	ErrNotFunction = errors.New("object: property is not a function")

	// ErrMismatchedLengths is returned by Combine when the key and value
	// slices have different lengths.
	ErrMismatchedLengths = errors.New("object: keys and values must have the same length")
)
