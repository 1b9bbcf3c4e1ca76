package kind

// IsUndefined reports whether v is the Undefined sentinel.
func IsUndefined(v any) bool { return Of(v) == Undefined }

// IsNull reports whether v is nil or a typed nil reference.
func IsNull(v any) bool { return Of(v) == Null }

// IsNil reports whether v is either Null or Undefined, i.e. a skip value
// for the object helpers.
func IsNil(v any) bool {
	k := Of(v)
	return k == Null || k == Undefined
}

// IsBoolean reports whether v is an unboxed bool.
func IsBoolean(v any) bool { return Of(v) == Boolean }

// IsNumber reports whether v is an unboxed integer, float or complex value.
func IsNumber(v any) bool { return Of(v) == Number }

// IsString reports whether v is an unboxed string.
func IsString(v any) bool { return Of(v) == String }

// IsFunction reports whether v is a non-nil func value.
func IsFunction(v any) bool { return Of(v) == Function }

// IsArray reports whether v is a slice or array (byte slices excluded).
func IsArray(v any) bool { return Of(v) == Array }

// IsDate reports whether v is a time.Time or *time.Time.
func IsDate(v any) bool { return Of(v) == Date }

// IsRegExp reports whether v is a compiled *regexp.Regexp.
func IsRegExp(v any) bool { return Of(v) == RegExp }

// IsError reports whether v implements error.
func IsError(v any) bool { return Of(v) == Error }

// IsBuffer reports whether v is a []byte or *bytes.Buffer.
func IsBuffer(v any) bool { return Of(v) == Buffer }

// IsObject is the catch-all predicate. It reports true for record-like values
// (structs, maps, non-nil pointers, *object.Object) and for byte buffers,
// which are object-backed.
func IsObject(v any) bool {
	switch Of(v) {
	case Object, Buffer:
		return true
	default:
		return false
	}
}
