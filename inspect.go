package objutil

import "github.com/davecgh/go-spew/spew"

var inspectConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Inspect returns a multi-line debug rendering of v, walking pointers and
// nested values. Objects print through their String method.
func Inspect(v any) string {
	return inspectConfig.Sdump(v)
}
