package async

import (
	"context"

	"github.com/ib-77/mte/pkg/mte"
	"github.com/ib-77/mte/pkg/mte/solo"
)

func SelectLeft[L, R, U any](ctx context.Context, fe *Future[mte.Either[L, R]], fn func(L) U) *Future[mte.Either[U, R]] {
	mte.RequireNonNil(fn, "fn")
	return Then(ctx, fe, func(e mte.Either[L, R]) mte.Either[U, R] {
		return solo.SelectLeft(e, fn)
	})
}

// SelectLeftAsync maps the left side with an asynchronous fn. A right is
// passed through without calling fn.
func SelectLeftAsync[L, R, U any](ctx context.Context, e mte.Either[L, R],
	fn func(ctx context.Context, v L) *Future[U]) *Future[mte.Either[U, R]] {

	mte.RequireNonNil(fn, "fn")
	l, ok := e.GetLeft()
	if !ok {
		return Immediate(mte.Right[U](e.RightValue()))
	}
	return Then(ctx, fn(ctx, l), mte.Left[U, R])
}

func SelectRight[L, R, U any](ctx context.Context, fe *Future[mte.Either[L, R]], fn func(R) U) *Future[mte.Either[L, U]] {
	mte.RequireNonNil(fn, "fn")
	return Then(ctx, fe, func(e mte.Either[L, R]) mte.Either[L, U] {
		return solo.SelectRight(e, fn)
	})
}

func SelectRightAsync[L, R, U any](ctx context.Context, e mte.Either[L, R],
	fn func(ctx context.Context, v R) *Future[U]) *Future[mte.Either[L, U]] {

	mte.RequireNonNil(fn, "fn")
	r, ok := e.GetRight()
	if !ok {
		return Immediate(mte.Left[L, U](e.LeftValue()))
	}
	return Then(ctx, fn(ctx, r), mte.Right[L, U])
}

func SelectEither[L, R, L2, R2 any](ctx context.Context, fe *Future[mte.Either[L, R]],
	onLeft func(L) L2, onRight func(R) R2) *Future[mte.Either[L2, R2]] {

	mte.RequireNonNil(onLeft, "onLeft")
	mte.RequireNonNil(onRight, "onRight")
	return Then(ctx, fe, func(e mte.Either[L, R]) mte.Either[L2, R2] {
		return solo.SelectEither(e, onLeft, onRight)
	})
}

// SelectEitherAsync starts the function for whichever side is present.
func SelectEitherAsync[L, R, L2, R2 any](ctx context.Context, e mte.Either[L, R],
	onLeft func(ctx context.Context, v L) *Future[L2],
	onRight func(ctx context.Context, v R) *Future[R2]) *Future[mte.Either[L2, R2]] {

	mte.RequireNonNil(onLeft, "onLeft")
	mte.RequireNonNil(onRight, "onRight")
	if r, ok := e.GetRight(); ok {
		return Then(ctx, onRight(ctx, r), mte.Right[L2, R2])
	}
	return Then(ctx, onLeft(ctx, e.LeftValue()), mte.Left[L2, R2])
}

func BindLeft[L, R, U any](ctx context.Context, fe *Future[mte.Either[L, R]], fn func(L) mte.Either[U, R]) *Future[mte.Either[U, R]] {
	mte.RequireNonNil(fn, "fn")
	return Then(ctx, fe, func(e mte.Either[L, R]) mte.Either[U, R] {
		return solo.BindLeft(e, fn)
	})
}

func BindLeftAsync[L, R, U any](ctx context.Context, e mte.Either[L, R],
	fn func(ctx context.Context, v L) *Future[mte.Either[U, R]]) *Future[mte.Either[U, R]] {

	mte.RequireNonNil(fn, "fn")
	if l, ok := e.GetLeft(); ok {
		return requireFuture(fn(ctx, l))
	}
	return Immediate(mte.Right[U](e.RightValue()))
}

func BindRight[L, R, U any](ctx context.Context, fe *Future[mte.Either[L, R]], fn func(R) mte.Either[L, U]) *Future[mte.Either[L, U]] {
	mte.RequireNonNil(fn, "fn")
	return Then(ctx, fe, func(e mte.Either[L, R]) mte.Either[L, U] {
		return solo.BindRight(e, fn)
	})
}

func BindRightAsync[L, R, U any](ctx context.Context, e mte.Either[L, R],
	fn func(ctx context.Context, v R) *Future[mte.Either[L, U]]) *Future[mte.Either[L, U]] {

	mte.RequireNonNil(fn, "fn")
	if r, ok := e.GetRight(); ok {
		return requireFuture(fn(ctx, r))
	}
	return Immediate(mte.Left[L, U](e.LeftValue()))
}

func BindEither[L, R, L2, R2 any](ctx context.Context, fe *Future[mte.Either[L, R]],
	onLeft func(L) mte.Either[L2, R2], onRight func(R) mte.Either[L2, R2]) *Future[mte.Either[L2, R2]] {

	mte.RequireNonNil(onLeft, "onLeft")
	mte.RequireNonNil(onRight, "onRight")
	return Then(ctx, fe, func(e mte.Either[L, R]) mte.Either[L2, R2] {
		return solo.BindEither(e, onLeft, onRight)
	})
}

func BindEitherAsync[L, R, L2, R2 any](ctx context.Context, e mte.Either[L, R],
	onLeft func(ctx context.Context, v L) *Future[mte.Either[L2, R2]],
	onRight func(ctx context.Context, v R) *Future[mte.Either[L2, R2]]) *Future[mte.Either[L2, R2]] {

	mte.RequireNonNil(onLeft, "onLeft")
	mte.RequireNonNil(onRight, "onRight")
	if r, ok := e.GetRight(); ok {
		return requireFuture(onRight(ctx, r))
	}
	return requireFuture(onLeft(ctx, e.LeftValue()))
}

func ToValue[L, R, U any](ctx context.Context, fe *Future[mte.Either[L, R]],
	fromLeft func(L) U, fromRight func(R) U) *Future[U] {

	mte.RequireNonNil(fromLeft, "fromLeft")
	mte.RequireNonNil(fromRight, "fromRight")
	return Then(ctx, fe, func(e mte.Either[L, R]) U {
		return solo.ToValue(e, fromLeft, fromRight)
	})
}

func ToValueAsync[L, R, U any](ctx context.Context, e mte.Either[L, R],
	fromLeft func(ctx context.Context, v L) *Future[U],
	fromRight func(ctx context.Context, v R) *Future[U]) *Future[U] {

	mte.RequireNonNil(fromLeft, "fromLeft")
	mte.RequireNonNil(fromRight, "fromRight")
	if r, ok := e.GetRight(); ok {
		return requireFuture(fromRight(ctx, r))
	}
	return requireFuture(fromLeft(ctx, e.LeftValue()))
}

func EitherToLeft[L, R any](ctx context.Context, fe *Future[mte.Either[L, R]], rightToLeft func(R) L) *Future[L] {
	mte.RequireNonNil(rightToLeft, "rightToLeft")
	return Then(ctx, fe, func(e mte.Either[L, R]) L {
		return e.ToLeft(rightToLeft)
	})
}

// EitherToLeftAsync starts rightToLeft only for a right.
func EitherToLeftAsync[L, R any](ctx context.Context, e mte.Either[L, R],
	rightToLeft func(ctx context.Context, v R) *Future[L]) *Future[L] {

	mte.RequireNonNil(rightToLeft, "rightToLeft")
	if r, ok := e.GetRight(); ok {
		return requireFuture(rightToLeft(ctx, r))
	}
	return Immediate(e.LeftValue())
}

func EitherToRight[L, R any](ctx context.Context, fe *Future[mte.Either[L, R]], leftToRight func(L) R) *Future[R] {
	mte.RequireNonNil(leftToRight, "leftToRight")
	return Then(ctx, fe, func(e mte.Either[L, R]) R {
		return e.ToRight(leftToRight)
	})
}

func EitherToRightAsync[L, R any](ctx context.Context, e mte.Either[L, R],
	leftToRight func(ctx context.Context, v L) *Future[R]) *Future[R] {

	mte.RequireNonNil(leftToRight, "leftToRight")
	if l, ok := e.GetLeft(); ok {
		return requireFuture(leftToRight(ctx, l))
	}
	return Immediate(e.RightValue())
}

func EitherInvert[L, R any](ctx context.Context, fe *Future[mte.Either[L, R]]) *Future[mte.Either[R, L]] {
	return Then(ctx, fe, mte.Either[L, R].Invert)
}

// EitherDo runs the action for the present side once fe settles and passes
// the Either on.
func EitherDo[L, R any](ctx context.Context, fe *Future[mte.Either[L, R]],
	leftAction func(L), rightAction func(R)) *Future[mte.Either[L, R]] {

	mte.RequireNonNil(leftAction, "leftAction")
	mte.RequireNonNil(rightAction, "rightAction")
	return Then(ctx, fe, func(e mte.Either[L, R]) mte.Either[L, R] {
		e.Do(leftAction, rightAction)
		return e
	})
}

func EitherMaybeLeft[L, R any](ctx context.Context, fe *Future[mte.Either[L, R]]) *Future[mte.Maybe[L]] {
	return Then(ctx, fe, mte.Either[L, R].MaybeLeft)
}

func EitherMaybeRight[L, R any](ctx context.Context, fe *Future[mte.Either[L, R]]) *Future[mte.Maybe[R]] {
	return Then(ctx, fe, mte.Either[L, R].MaybeRight)
}

// EitherTryRight is the Try-producing conversion: a rejection of fe is
// captured as the failure, cancellation excepted.
func EitherTryRight[L, R any](ctx context.Context, fe *Future[mte.Either[L, R]]) *Future[mte.Try[R]] {
	return thenCapture(ctx, fe, mte.Either[L, R].TryRight)
}

func EitherTryLeft[L, R any](ctx context.Context, fe *Future[mte.Either[L, R]]) *Future[mte.Try[L]] {
	return thenCapture(ctx, fe, mte.Either[L, R].TryLeft)
}
