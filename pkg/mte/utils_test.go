package mte

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
)

func TestIsNil(t *testing.T) {
	t.Parallel()
	var fn func()
	var ptr *int
	var m map[string]int

	assert.True(t, IsNil(nil))
	assert.True(t, IsNil(fn))
	assert.True(t, IsNil(ptr))
	assert.True(t, IsNil(m))
	assert.False(t, IsNil(0))
	assert.False(t, IsNil(func() {}))
}

func TestGetErrors(t *testing.T) {
	t.Parallel()
	a, b := errors.New("a"), errors.New("b")

	assert.Empty(t, GetErrors(nil))
	assert.Equal(t, []error{a}, GetErrors(a))
	assert.Equal(t, []error{a, b}, GetErrors(errors.Join(a, b)))
	assert.Equal(t, []error{a, b}, GetErrors(multierror.Append(a, b)))
}

func TestIsCancellationError(t *testing.T) {
	t.Parallel()
	assert.True(t, IsCancellationError(context.Canceled))
	assert.True(t, IsCancellationError(fmt.Errorf("wrapped: %w", context.DeadlineExceeded)))
	assert.False(t, IsCancellationError(errors.New("other")))
	assert.False(t, IsCancellationError(nil))
}

func TestRequireNonNil(t *testing.T) {
	t.Parallel()
	assert.PanicsWithError(t, "nil argument: fn", func() { RequireNonNil((func())(nil), "fn") })
	assert.NotPanics(t, func() { RequireNonNil(func() {}, "fn") })

	var ptr *Try[int]
	var ch chan int
	var seq iter.Seq[int]
	assert.PanicsWithError(t, "nil argument: future", func() { RequireNonNil(ptr, "future") })
	assert.PanicsWithError(t, "nil argument: ch", func() { RequireNonNil(ch, "ch") })
	assert.PanicsWithError(t, "nil argument: src", func() { RequireNonNil(seq, "src") })
	assert.NotPanics(t, func() { RequireNonNil(&Try[int]{}, "future") })
	assert.NotPanics(t, func() { RequireNonNil(0, "n") })
}
