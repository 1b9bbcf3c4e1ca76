package kind

import (
	"bytes"
	"reflect"
	"regexp"
	"strconv"
	"time"
)

// Kind identifies the classification of a value.
type Kind int

const (
	Invalid Kind = iota // zero value, never returned by Of

	Undefined
	Null
	Boolean
	Number
	String
	Function
	Array
	Date
	RegExp
	Error
	Buffer
	Object

	// Total is the number of kinds including Invalid.
	Total = int(iota)
)

var kindNames = [...]string{
	Invalid:   "Invalid",
	Undefined: "Undefined",
	Null:      "Null",
	Boolean:   "Boolean",
	Number:    "Number",
	String:    "String",
	Function:  "Function",
	Array:     "Array",
	Date:      "Date",
	RegExp:    "RegExp",
	Error:     "Error",
	Buffer:    "Buffer",
	Object:    "Object",
}

// String returns the kind name, e.g. "Number".
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// IsPrimitive reports whether k is one of the unboxed scalar kinds.
func (k Kind) IsPrimitive() bool {
	switch k {
	case Undefined, Null, Boolean, Number, String:
		return true
	default:
		return false
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Undefined sentinel
// ─────────────────────────────────────────────────────────────────────────────

type undefined struct{}

func (undefined) String() string { return "undefined" }

// Undef is the "no value" sentinel, classified as Undefined. It is distinct
// from nil, which classifies as Null.
var Undef any = undefined{}

// ─────────────────────────────────────────────────────────────────────────────
// Classification
// ─────────────────────────────────────────────────────────────────────────────

var timeType = reflect.TypeOf(time.Time{})

// Of classifies v into exactly one Kind.
func Of(v any) Kind {
	if v == nil {
		return Null
	}
	if _, ok := v.(undefined); ok {
		return Undefined
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Func, reflect.Chan, reflect.Interface:
		if rv.IsNil() {
			return Null
		}
	}

	switch v.(type) {
	case []byte, *bytes.Buffer:
		return Buffer
	case time.Time, *time.Time:
		return Date
	case *regexp.Regexp:
		return RegExp
	case error:
		return Error
	}

	switch rv.Kind() {
	case reflect.Bool:
		return Boolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return Number
	case reflect.String:
		return String
	case reflect.Func:
		return Function
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
			return Buffer
		}
		return Array
	case reflect.Struct:
		if rv.Type().ConvertibleTo(timeType) {
			return Date
		}
	}
	return Object
}
