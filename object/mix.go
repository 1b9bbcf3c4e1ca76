package object

// Options configures the copy engine.
type Options struct {
	// Override selects last-writer-wins when true. When false the first
	// writer wins: a key already owned by the target, whether it was there
	// before the call or was written by an earlier source, is kept.
	Override bool
}

// DefaultOptions is what Mix and Merge use: later sources override.
var DefaultOptions = Options{Override: true}

// Mix copies the own properties of each source onto target, in argument
// order, later sources overriding earlier ones. nil sources are skipped.
// It returns target.
//
//	foo := object.New().Set("x", 1)
//	bar := object.New().Set("x", 2).Set("y", 2)
//	object.Mix(foo, nil, bar) // foo is now {x: 2, y: 2}
func Mix(target *Object, sources ...*Object) *Object {
	return MixWith(target, DefaultOptions, sources...)
}

// MixWith is Mix with explicit Options.
//
// A nil target is a no-op and returns nil. A frozen target is left untouched
// and returned as is. Sources are never modified.
func MixWith(target *Object, opts Options, sources ...*Object) *Object {
	if target == nil || target.frozen {
		return target
	}
	for _, src := range sources {
		if src == nil {
			continue
		}
		for _, k := range src.keys {
			if !opts.Override && target.HasOwn(k) {
				continue
			}
			target.Set(k, src.values[k])
		}
	}
	return target
}

// Merge returns a new object holding the own properties of every source,
// later sources overriding earlier ones. It never returns one of its inputs.
func Merge(sources ...*Object) *Object {
	return MergeWith(DefaultOptions, sources...)
}

// MergeWith is Merge with explicit Options.
func MergeWith(opts Options, sources ...*Object) *Object {
	return MixWith(New(), opts, sources...)
}
