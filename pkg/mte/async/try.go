package async

import (
	"context"

	"github.com/ib-77/mte/pkg/mte"
	"github.com/ib-77/mte/pkg/mte/solo"
)

// SelectTry maps the settled Try. A rejection of ft becomes the failure,
// except for cancellation which rejects the returned Future.
func SelectTry[T, U any](ctx context.Context, ft *Future[mte.Try[T]], fn func(T) U) *Future[mte.Try[U]] {
	mte.RequireNonNil(fn, "fn")
	return thenTry(ctx, ft, func(t mte.Try[T]) mte.Try[U] {
		return solo.SelectTry(t, fn)
	})
}

func SelectTryAsync[T, U any](ctx context.Context, t mte.Try[T],
	fn func(ctx context.Context, v T) *Future[U]) *Future[mte.Try[U]] {

	mte.RequireNonNil(fn, "fn")
	v, err := t.Get()
	if err != nil {
		return Immediate(mte.ErrorFrom[U](t))
	}
	return Result(ctx, func(ctx context.Context) *Future[U] { return fn(ctx, v) })
}

func BindTry[T, U any](ctx context.Context, ft *Future[mte.Try[T]], fn func(T) mte.Try[U]) *Future[mte.Try[U]] {
	mte.RequireNonNil(fn, "fn")
	return thenTry(ctx, ft, func(t mte.Try[T]) mte.Try[U] {
		return solo.BindTry(t, fn)
	})
}

func BindTryAsync[T, U any](ctx context.Context, t mte.Try[T],
	fn func(ctx context.Context, v T) *Future[mte.Try[U]]) *Future[mte.Try[U]] {

	mte.RequireNonNil(fn, "fn")
	v, err := t.Get()
	if err != nil {
		return Immediate(mte.ErrorFrom[U](t))
	}
	return resultTry(ctx, func(ctx context.Context) *Future[mte.Try[U]] { return fn(ctx, v) })
}

// TrySelect is SelectTry for functions that report failure with an error.
// A cancellation error returned by fn rejects the returned Future.
func TrySelect[T, U any](ctx context.Context, ft *Future[mte.Try[T]], fn func(T) (U, error)) *Future[mte.Try[U]] {
	mte.RequireNonNil(fn, "fn")
	return continueWith(ctx, ft, func(t mte.Try[T], err error) (mte.Try[U], error) {
		if err != nil {
			return captureErr[U](err)
		}
		return solo.TrySelect(t, fn)
	})
}

// TrySelectAsync starts fn for a successful t. fn may refuse to start by
// returning an error; that error and a rejection of the started Future are
// both captured, cancellation excepted.
func TrySelectAsync[T, U any](ctx context.Context, t mte.Try[T],
	fn func(ctx context.Context, v T) (*Future[U], error)) *Future[mte.Try[U]] {

	mte.RequireNonNil(fn, "fn")
	v, err := t.Get()
	if err != nil {
		return Immediate(mte.ErrorFrom[U](t))
	}
	started, cancelErr := mte.Result(func() (*Future[U], error) { return fn(ctx, v) })
	if cancelErr != nil {
		return Failed[mte.Try[U]](cancelErr)
	}
	if started.IsFailure() {
		return Immediate(mte.ErrorFrom[U](started))
	}
	return Capture(ctx, started.Value())
}

func UnwrapTry[T any](ctx context.Context, ft *Future[mte.Try[mte.Try[T]]]) *Future[mte.Try[T]] {
	return thenTry(ctx, ft, solo.UnwrapTry[T])
}

// TryOr settles with Left(value) or Right(other), like solo.TryOr. A
// rejection of ft is passed through.
func TryOr[T, R any](ctx context.Context, ft *Future[mte.Try[T]], other R) *Future[mte.Either[T, R]] {
	return Then(ctx, ft, func(t mte.Try[T]) mte.Either[T, R] {
		return solo.TryOr(t, other)
	})
}

func TryOrElse[T, R any](ctx context.Context, ft *Future[mte.Try[T]], gen func(err error) R) *Future[mte.Either[T, R]] {
	mte.RequireNonNil(gen, "gen")
	return Then(ctx, ft, func(t mte.Try[T]) mte.Either[T, R] {
		return solo.TryOrElse(t, gen)
	})
}

// TryOrElseAsync starts gen with the failure cause only when t failed.
func TryOrElseAsync[T, R any](ctx context.Context, t mte.Try[T],
	gen func(ctx context.Context, err error) *Future[R]) *Future[mte.Either[T, R]] {

	mte.RequireNonNil(gen, "gen")
	v, err := t.Get()
	if err == nil {
		return Immediate(mte.Left[T, R](v))
	}
	return Then(ctx, gen(ctx, err), mte.Right[T, R])
}

// TryOrTry is Try.Or over a pending Try. A rejection of ft counts as a
// failure.
func TryOrTry[T any](ctx context.Context, ft *Future[mte.Try[T]], other mte.Try[T]) *Future[mte.Try[T]] {
	return thenTry(ctx, ft, func(t mte.Try[T]) mte.Try[T] {
		return t.Or(other)
	})
}

// TryOrElseTry calls gen when ft settles with a failure or is rejected for
// a reason other than cancellation.
func TryOrElseTry[T any](ctx context.Context, ft *Future[mte.Try[T]], gen func() mte.Try[T]) *Future[mte.Try[T]] {
	mte.RequireNonNil(gen, "gen")
	return thenTry(ctx, ft, func(t mte.Try[T]) mte.Try[T] {
		return t.OrElse(gen)
	})
}

func TryOrElseTryAsync[T any](ctx context.Context, t mte.Try[T],
	gen func(ctx context.Context) *Future[mte.Try[T]]) *Future[mte.Try[T]] {

	mte.RequireNonNil(gen, "gen")
	if t.IsSuccess() {
		return Immediate(t)
	}
	return resultTry(ctx, gen)
}

// TryAsMaybe drops the failure of the settled Try. A rejection of ft is
// passed through, since a Maybe has nowhere to keep it.
func TryAsMaybe[T any](ctx context.Context, ft *Future[mte.Try[T]]) *Future[mte.Maybe[T]] {
	return Then(ctx, ft, mte.Try[T].AsMaybe)
}

func TryValueOrDefault[T any](ctx context.Context, ft *Future[mte.Try[T]], d T) *Future[T] {
	return Then(ctx, ft, func(t mte.Try[T]) T {
		return t.ValueOrDefault(d)
	})
}

func TryValueOrElse[T any](ctx context.Context, ft *Future[mte.Try[T]], gen func(err error) T) *Future[T] {
	mte.RequireNonNil(gen, "gen")
	return Then(ctx, ft, func(t mte.Try[T]) T {
		return t.ValueOrElse(gen)
	})
}

// TryDo runs one of the actions once ft settles and passes the Try on. A
// rejection of ft reaches errorAction as a failure.
func TryDo[T any](ctx context.Context, ft *Future[mte.Try[T]],
	valueAction func(T), errorAction func(error)) *Future[mte.Try[T]] {

	mte.RequireNonNil(valueAction, "valueAction")
	mte.RequireNonNil(errorAction, "errorAction")
	return thenTry(ctx, ft, func(t mte.Try[T]) mte.Try[T] {
		t.Do(valueAction, errorAction)
		return t
	})
}
