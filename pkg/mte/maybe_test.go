package mte

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueOf_HoldsValue(t *testing.T) {
	t.Parallel()
	m := ValueOf(5)

	assert.True(t, m.HasValue())
	assert.False(t, m.IsEmpty())
	assert.Equal(t, 5, m.Value())
	assert.Equal(t, 5, m.ValueOrZero())
}

func TestValueOf_NilPayloadIsStillAValue(t *testing.T) {
	t.Parallel()
	var p *int
	m := ValueOf(p)

	assert.True(t, m.HasValue())
	assert.Nil(t, m.Value())
}

func TestNone_ValueOrDefault(t *testing.T) {
	t.Parallel()
	m := None[int]()

	assert.True(t, m.IsEmpty())
	assert.Equal(t, 0, m.ValueOrZero())
	assert.Equal(t, 9, m.ValueOrDefault(9))
	assert.Equal(t, 11, m.ValueOrElse(func() int { return 11 }))
}

func TestMaybe_ZeroValueIsNone(t *testing.T) {
	t.Parallel()
	var m Maybe[string]
	assert.True(t, m.IsEmpty())
	assert.Equal(t, "None", m.String())
}

func TestMaybe_ValueOnNonePanics(t *testing.T) {
	t.Parallel()
	assert.PanicsWithError(t, ErrNoValue.Error(), func() {
		None[int]().Value()
	})
}

func TestMaybe_ValueOrElseIsLazy(t *testing.T) {
	t.Parallel()
	called := false
	v := ValueOf(1).ValueOrElse(func() int {
		called = true
		return 2
	})

	assert.Equal(t, 1, v)
	assert.False(t, called)
}

func TestMaybeOf_CommaOk(t *testing.T) {
	t.Parallel()
	values := map[string]int{"a": 1}

	v, ok := values["a"]
	assert.Equal(t, ValueOf(1), MaybeOf(v, ok))

	v, ok = values["b"]
	assert.Equal(t, None[int](), MaybeOf(v, ok))
}

func TestMaybe_PointerRoundTrip(t *testing.T) {
	t.Parallel()
	n := 3
	m := FromPtr(&n)
	require.True(t, m.HasValue())
	assert.Equal(t, 3, *m.ToPtr())

	assert.True(t, FromPtr[int](nil).IsEmpty())
	assert.Nil(t, None[int]().ToPtr())
}

func TestMaybe_Or(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		self     Maybe[int]
		other    Maybe[int]
		expected Maybe[int]
	}{
		{"value keeps self", ValueOf(1), ValueOf(2), ValueOf(1)},
		{"none takes other", None[int](), ValueOf(2), ValueOf(2)},
		{"none and none", None[int](), None[int](), None[int]()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.self.Or(tt.other))
		})
	}
}

func TestMaybe_OrElse(t *testing.T) {
	t.Parallel()
	called := false
	gen := func() Maybe[int] {
		called = true
		return ValueOf(7)
	}

	assert.Equal(t, ValueOf(3), ValueOf(3).OrElse(gen))
	assert.False(t, called)

	assert.Equal(t, 7, None[int]().OrElse(gen).ValueOrDefault(0))
	assert.True(t, called)
}

func TestMaybe_Filter(t *testing.T) {
	t.Parallel()
	even := func(v int) bool { return v%2 == 0 }

	assert.Equal(t, ValueOf(4), ValueOf(4).Filter(even))
	assert.True(t, ValueOf(3).Filter(even).IsEmpty())
	assert.True(t, None[int]().Filter(even).IsEmpty())
}

func TestMaybe_AsTry(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 3, ValueOf(3).AsTry().Value())

	failed := None[int]().AsTry()
	require.True(t, failed.IsFailure())
	assert.ErrorIs(t, failed.Err(), ErrNoValue)
}

func TestMaybe_Do(t *testing.T) {
	t.Parallel()
	var got []string

	ValueOf("x").Do(func(v string) { got = append(got, "value:"+v) }, func() { got = append(got, "empty") })
	None[string]().Do(func(v string) { got = append(got, "value:"+v) }, func() { got = append(got, "empty") })
	ValueOf("y").DoValue(func(v string) { got = append(got, "only:"+v) })
	None[string]().DoValue(func(v string) { got = append(got, "only:"+v) })
	None[string]().DoIfEmpty(func() { got = append(got, "if-empty") })
	ValueOf("z").DoIfEmpty(func() { got = append(got, "if-empty") })

	assert.Equal(t, []string{"value:x", "empty", "only:y", "if-empty"}, got)
}

func TestMaybe_NilFunctionsPanic(t *testing.T) {
	t.Parallel()
	tests := map[string]func(){
		"ValueOrElse": func() { ValueOf(1).ValueOrElse(nil) },
		"OrElse":      func() { ValueOf(1).OrElse(nil) },
		"Filter":      func() { None[int]().Filter(nil) },
		"Do":          func() { ValueOf(1).Do(func(int) {}, nil) },
		"DoValue":     func() { None[int]().DoValue(nil) },
		"DoIfEmpty":   func() { ValueOf(1).DoIfEmpty(nil) },
	}

	for name, fn := range tests {
		t.Run(name, func(t *testing.T) {
			defer func() {
				r := recover()
				require.NotNil(t, r)
				err, ok := r.(error)
				require.True(t, ok)
				assert.True(t, errors.Is(err, ErrNilArgument))
			}()
			fn()
		})
	}
}

func TestMaybe_String(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Value(3)", ValueOf(3).String())
	assert.Equal(t, "None", None[int]().String())
}
