package async

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func await[T any](t *testing.T, f *Future[T]) T {
	t.Helper()
	v, err := f.Await(testContext(t))
	require.NoError(t, err)
	return v
}

// later settles with v on another goroutine.
func later[T any](ctx context.Context, v T) *Future[T] {
	return Go(ctx, func(context.Context) (T, error) { return v, nil })
}

// whenPending builds on a Future that is still pending and fulfils it with
// v only afterwards, so the waiting path is taken.
func whenPending[A, B any](t *testing.T, v A, build func(*Future[A]) *Future[B]) B {
	t.Helper()
	p, f := Create[A]()
	out := build(f)
	require.False(t, out.IsCompleted())
	p.Fulfill(v)
	return await(t, out)
}

// whenRejected builds on a pending Future and then rejects it with cause.
func whenRejected[A, B any](t *testing.T, cause error, build func(*Future[A]) *Future[B]) (B, error) {
	t.Helper()
	p, f := Create[A]()
	out := build(f)
	p.Reject(cause)
	return out.Await(testContext(t))
}
