package kind_test

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-objutil/kind"
)

// various mirrors a fixed spread of values, one per interesting kind:
// undefined, nil, false, 0, "", record, array, func, regexp, date, error, buffer.
func various() []any {
	return []any{
		kind.Undef, nil, false, 0,
		"", map[string]any{}, []any{}, func() {},
		regexp.MustCompile(`^`), time.Now(), errors.New("boom"), []byte(""),
	}
}

func classify(pred func(any) bool) []bool {
	vs := various()
	out := make([]bool, len(vs))
	for i, v := range vs {
		out[i] = pred(v)
	}
	return out
}

// ─── Predicate grid ──────────────────────────────────────────────────────────

func TestPredicateGrid(t *testing.T) {
	const F, T = false, true
	tests := []struct {
		name string
		pred func(any) bool
		want []bool
	}{
		{"IsUndefined", kind.IsUndefined, []bool{T, F, F, F, F, F, F, F, F, F, F, F}},
		{"IsNull", kind.IsNull, []bool{F, T, F, F, F, F, F, F, F, F, F, F}},
		{"IsBoolean", kind.IsBoolean, []bool{F, F, T, F, F, F, F, F, F, F, F, F}},
		{"IsNumber", kind.IsNumber, []bool{F, F, F, T, F, F, F, F, F, F, F, F}},
		{"IsString", kind.IsString, []bool{F, F, F, F, T, F, F, F, F, F, F, F}},
		{"IsObject", kind.IsObject, []bool{F, F, F, F, F, T, F, F, F, F, F, T}},
		{"IsArray", kind.IsArray, []bool{F, F, F, F, F, F, T, F, F, F, F, F}},
		{"IsFunction", kind.IsFunction, []bool{F, F, F, F, F, F, F, T, F, F, F, F}},
		{"IsRegExp", kind.IsRegExp, []bool{F, F, F, F, F, F, F, F, T, F, F, F}},
		{"IsDate", kind.IsDate, []bool{F, F, F, F, F, F, F, F, F, T, F, F}},
		{"IsError", kind.IsError, []bool{F, F, F, F, F, F, F, F, F, F, T, F}},
		{"IsBuffer", kind.IsBuffer, []bool{F, F, F, F, F, F, F, F, F, F, F, T}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classify(tt.pred))
		})
	}
}

func TestOfIsExclusive(t *testing.T) {
	for _, v := range various() {
		k := kind.Of(v)
		assert.NotEqual(t, kind.Invalid, k, "value %#v", v)
	}
}

// ─── Boxing ──────────────────────────────────────────────────────────────────

func TestBoxedPrimitivesAreObjects(t *testing.T) {
	b, n, s := false, 0, ""

	assert.False(t, kind.IsBoolean(&b), "*bool is not boolean")
	assert.False(t, kind.IsNumber(&n), "*int is not number")
	assert.False(t, kind.IsString(&s), "*string is not string")

	assert.True(t, kind.IsObject(&b))
	assert.True(t, kind.IsObject(&n))
	assert.True(t, kind.IsObject(&s))
}

// ─── Edge cases ──────────────────────────────────────────────────────────────

type celsius float64
type label string
type stamp time.Time

func TestNamedTypesFollowUnderlyingKind(t *testing.T) {
	assert.Equal(t, kind.Number, kind.Of(celsius(21.5)))
	assert.Equal(t, kind.String, kind.Of(label("x")))
	assert.Equal(t, kind.Date, kind.Of(stamp(time.Now())))
}

func TestComplexIsNumber(t *testing.T) {
	assert.True(t, kind.IsNumber(complex64(1+2i)))
	assert.True(t, kind.IsNumber(3i))
	assert.False(t, kind.IsObject(3i))
}

func TestTypedNilIsNull(t *testing.T) {
	var p *int
	var m map[string]any
	var f func()
	var re *regexp.Regexp

	assert.True(t, kind.IsNull(p))
	assert.True(t, kind.IsNull(m))
	assert.True(t, kind.IsNull(f))
	assert.True(t, kind.IsNull(re))
	assert.False(t, kind.IsRegExp(re))
}

func TestNilSliceIsArray(t *testing.T) {
	var s []int
	assert.True(t, kind.IsArray(s))
	assert.True(t, kind.IsArray([3]int{}))
}

func TestBuffers(t *testing.T) {
	assert.True(t, kind.IsBuffer(new(bytes.Buffer)))
	assert.True(t, kind.IsBuffer([]byte("abc")))
	assert.False(t, kind.IsArray([]byte("abc")))
}

func TestDatesAndErrors(t *testing.T) {
	now := time.Now()
	assert.True(t, kind.IsDate(&now))
	assert.True(t, kind.IsError(fmt.Errorf("wrapped: %w", errors.New("x"))))
	assert.True(t, kind.IsNumber(time.Second), "durations are numbers")
}

func TestIsNil(t *testing.T) {
	assert.True(t, kind.IsNil(nil))
	assert.True(t, kind.IsNil(kind.Undef))
	assert.False(t, kind.IsNil(false))
	assert.False(t, kind.IsNil(0))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "Number", kind.Number.String())
	assert.Equal(t, "Object", kind.Object.String())
	assert.Equal(t, "Kind(99)", kind.Kind(99).String())
	assert.Equal(t, "undefined", fmt.Sprint(kind.Undef))
}

func TestIsPrimitive(t *testing.T) {
	assert.True(t, kind.String.IsPrimitive())
	assert.True(t, kind.Null.IsPrimitive())
	assert.False(t, kind.Array.IsPrimitive())
	assert.False(t, kind.Object.IsPrimitive())
}
