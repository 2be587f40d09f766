package async

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/ib-77/mte/pkg/mte"
)

func TestThen_CompletedInputRunsSynchronously(t *testing.T) {
	t.Parallel()
	called := false
	out := Then(testContext(t), Immediate(2), func(v int) int {
		called = true
		return v * 10
	})

	require.True(t, called)
	require.True(t, out.IsCompleted())
	v, err := out.Await(testContext(t))
	require.NoError(t, err)
	require.Equal(t, 20, v)
}

func TestThen_PendingInputWaits(t *testing.T) {
	t.Parallel()
	ctx := testContext(t)
	promise, future := Create[int]()

	out := Then(ctx, future, strconv.Itoa)
	require.False(t, out.IsCompleted())

	promise.Fulfill(4)
	v, err := out.Await(ctx)
	require.NoError(t, err)
	require.Equal(t, "4", v)
}

func TestThen_PassesRejectionThrough(t *testing.T) {
	t.Parallel()
	cause := errors.New("upstream")
	called := false
	out := Then(testContext(t), Failed[int](cause), func(v int) int {
		called = true
		return v
	})

	_, err := out.Await(testContext(t))
	require.Equal(t, cause, err)
	require.False(t, called)
}

func TestThen_PanicInContinuationRejects(t *testing.T) {
	t.Parallel()
	ctx := testContext(t)
	promise, future := Create[int]()
	out := Then(ctx, future, func(int) int { panic("continuation") })
	promise.Fulfill(1)

	_, err := out.Await(ctx)
	var pe *mte.PanicError
	require.ErrorAs(t, err, &pe)
}

func TestThenFuture(t *testing.T) {
	t.Parallel()
	ctx := testContext(t)
	promise, future := Create[int]()

	out := ThenFuture(ctx, future, func(ctx context.Context, v int) *Future[string] {
		return Go(ctx, func(context.Context) (string, error) { return strconv.Itoa(v + 1), nil })
	})
	promise.Fulfill(1)

	v, err := out.Await(ctx)
	require.NoError(t, err)
	require.Equal(t, "2", v)

	sync := ThenFuture(ctx, Immediate(1), func(_ context.Context, v int) *Future[int] { return Immediate(v * 3) })
	require.True(t, sync.IsCompleted())
}

func TestThen_ManyContinuationsOnOneFuture(t *testing.T) {
	t.Parallel()
	ctx := testContext(t)
	promise, future := Create[int]()

	results := make([]int, 8)
	g, gctx := errgroup.WithContext(ctx)
	for i := range results {
		g.Go(func() error {
			v, err := Then(gctx, future, func(v int) int { return v + i }).Await(gctx)
			results[i] = v
			return err
		})
	}
	promise.Fulfill(100)

	require.NoError(t, g.Wait())
	if diff := cmp.Diff([]int{100, 101, 102, 103, 104, 105, 106, 107}, results); diff != "" {
		t.Fatalf("unexpected results (-want +got):\n%s", diff)
	}
}

func TestCapture(t *testing.T) {
	t.Parallel()
	ctx := testContext(t)
	cause := errors.New("captured")

	res, err := Capture(ctx, Immediate(1)).Await(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, res.Value())

	res, err = Capture(ctx, Failed[int](cause)).Await(ctx)
	require.NoError(t, err)
	require.Equal(t, cause, res.Err())

	res, err = Capture(ctx, Failed[int](errors.Join(cause))).Await(ctx)
	require.NoError(t, err)
	require.Equal(t, cause, res.Err())

	_, err = Capture(ctx, Failed[int](context.Canceled)).Await(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestCapture_CancelledWhileWaiting(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	_, future := Create[int]()
	out := Capture(ctx, future)
	cancel()

	_, err := out.Await(testContext(t))
	require.ErrorIs(t, err, context.Canceled)
}

func TestResult(t *testing.T) {
	t.Parallel()
	ctx := testContext(t)
	cause := errors.New("not started")

	res, err := Result(ctx, func(ctx context.Context) *Future[int] {
		return Go(ctx, func(context.Context) (int, error) { return 5, nil })
	}).Await(ctx)
	require.NoError(t, err)
	require.Equal(t, 5, res.Value())

	res, err = Result(ctx, func(context.Context) *Future[int] { return Failed[int](cause) }).Await(ctx)
	require.NoError(t, err)
	require.Equal(t, cause, res.Err())

	started := Result(ctx, func(context.Context) *Future[int] { panic(cause) })
	require.True(t, started.IsCompleted())
	res, err = started.Await(ctx)
	require.NoError(t, err)
	require.Equal(t, cause, res.Err())

	_, err = Result(ctx, func(context.Context) *Future[int] { return Failed[int](context.Canceled) }).Await(ctx)
	require.ErrorIs(t, err, context.Canceled)

	require.Panics(t, func() {
		Result(ctx, func(context.Context) *Future[int] { panic(context.DeadlineExceeded) })
	})
}
