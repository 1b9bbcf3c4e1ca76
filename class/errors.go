package class

import "errors"

// Sentinel errors returned by the class helpers.
var (
	// ErrInvalidArgument is returned by Inherit when the parent is nil or
	// exposes no prototype to delegate to.
	ErrInvalidArgument = errors.New("class: invalid argument")

	// ErrInvalidInitializer is returned by New when the resolved
	// _initialize member is not a function.
	ErrInvalidInitializer = errors.New("class: _initialize is not a function")
)
