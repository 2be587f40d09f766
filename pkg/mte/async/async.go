package async

import (
	"context"
	"runtime/debug"

	"github.com/ib-77/mte/pkg/mte"
)

func panicError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return &mte.PanicError{Value: r, Stack: debug.Stack()}
}

func settled[T any](v T, err error) *Future[T] {
	if err != nil {
		return Failed[T](err)
	}
	return Immediate(v)
}

// requireFuture returns f after checking that a step actually produced one.
func requireFuture[T any](f *Future[T]) *Future[T] {
	mte.RequireNonNil(f, "future")
	return f
}

// continueWith feeds the outcome of f to cont. When f has already settled
// cont runs on the caller's goroutine and the returned Future is settled
// too; otherwise a single goroutine awaits f and then runs cont.
func continueWith[A, B any](ctx context.Context, f *Future[A], cont func(A, error) (B, error)) *Future[B] {
	requireFuture(f)
	if f.IsCompleted() {
		return settled[B](cont(f.value, f.err))
	}

	p, out := Create[B]()
	go func() {
		defer p.recoverInto()
		p.settle(cont(f.Await(ctx)))
	}()
	return out
}

// flatten settles with the Future that outer settles with.
func flatten[T any](ctx context.Context, outer *Future[*Future[T]]) *Future[T] {
	if outer.IsCompleted() {
		if outer.err != nil {
			return Failed[T](outer.err)
		}
		return requireFuture(outer.value)
	}

	p, out := Create[T]()
	go func() {
		defer p.recoverInto()
		inner, err := outer.Await(ctx)
		if err != nil {
			p.Reject(err)
			return
		}
		p.Forward(ctx, inner)
	}()
	return out
}

// chain continues f with the Future that next returns for its value.
func chain[A, B any](ctx context.Context, f *Future[A], next func(A) *Future[B]) *Future[B] {
	return flatten(ctx, Then(ctx, f, next))
}

// captureErr applies the mte.Result policy to an error raised while
// awaiting: cancellation is passed through, anything else becomes a
// failed Try.
func captureErr[T any](err error) (mte.Try[T], error) {
	return mte.Result(func() (T, error) {
		var zero T
		return zero, err
	})
}

// thenCapture is Then for conversions that produce a Try: a rejection of f
// becomes the failure instead of being passed through.
func thenCapture[A, T any](ctx context.Context, f *Future[A], fn func(A) mte.Try[T]) *Future[mte.Try[T]] {
	return continueWith(ctx, f, func(a A, err error) (mte.Try[T], error) {
		if err != nil {
			return captureErr[T](err)
		}
		return fn(a), nil
	})
}

// thenTry hands the settled Try to fn. A rejection of ft reaches fn as a
// failed Try; cancellation rejects the returned Future instead.
func thenTry[T, U any](ctx context.Context, ft *Future[mte.Try[T]], fn func(mte.Try[T]) mte.Try[U]) *Future[mte.Try[U]] {
	return continueWith(ctx, ft, func(t mte.Try[T], err error) (mte.Try[U], error) {
		if err != nil {
			captured, cancelErr := captureErr[T](err)
			if cancelErr != nil {
				return mte.Try[U]{}, cancelErr
			}
			t = captured
		}
		return fn(t), nil
	})
}

// Then maps the value of f. A rejection of f is passed through.
func Then[A, B any](ctx context.Context, f *Future[A], fn func(A) B) *Future[B] {
	mte.RequireNonNil(fn, "fn")
	return continueWith(ctx, f, func(a A, err error) (B, error) {
		if err != nil {
			var zero B
			return zero, err
		}
		return fn(a), nil
	})
}

// ThenFuture chains an asynchronous step after f.
func ThenFuture[A, B any](ctx context.Context, f *Future[A],
	fn func(ctx context.Context, a A) *Future[B]) *Future[B] {

	mte.RequireNonNil(fn, "fn")
	return chain(ctx, f, func(a A) *Future[B] { return fn(ctx, a) })
}

// Capture turns the outcome of f into a Try. Cancellation is not captured:
// it rejects the returned Future instead.
func Capture[T any](ctx context.Context, f *Future[T]) *Future[mte.Try[T]] {
	return thenCapture(ctx, f, mte.Value[T])
}

// Result starts the computation gen returns and captures its outcome the
// way mte.Result captures a synchronous call. A panic raised while starting
// it becomes the failure; a cancellation panic keeps unwinding.
func Result[T any](ctx context.Context, gen func(ctx context.Context) *Future[T]) *Future[mte.Try[T]] {
	mte.RequireNonNil(gen, "gen")
	started := mte.Capture(func() *Future[T] { return gen(ctx) })
	if started.IsFailure() {
		return Immediate(mte.ErrorFrom[T](started))
	}
	return Capture(ctx, started.Value())
}

// resultTry is Result for computations that already produce a Try.
func resultTry[T any](ctx context.Context, gen func(ctx context.Context) *Future[mte.Try[T]]) *Future[mte.Try[T]] {
	started := mte.Capture(func() *Future[mte.Try[T]] { return gen(ctx) })
	if started.IsFailure() {
		return Immediate(mte.ErrorFrom[T](started))
	}
	return thenTry(ctx, started.Value(), mte.Try[T].AsTry)
}
