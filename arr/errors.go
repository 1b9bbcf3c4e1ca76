package arr

import "errors"

// ErrMismatchedLengths is returned by Combine when the key and value slices
// have different lengths.
var ErrMismatchedLengths = errors.New("arr: keys and values must have the same length")
