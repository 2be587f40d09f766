package async

import (
	"context"

	"github.com/ib-77/mte/pkg/mte"
	"github.com/ib-77/mte/pkg/mte/solo"
)

func SelectMaybe[T, U any](ctx context.Context, fm *Future[mte.Maybe[T]], fn func(T) U) *Future[mte.Maybe[U]] {
	mte.RequireNonNil(fn, "fn")
	return Then(ctx, fm, func(m mte.Maybe[T]) mte.Maybe[U] {
		return solo.SelectMaybe(m, fn)
	})
}

// SelectMaybeAsync maps the value of m with an asynchronous fn. fn is not
// called when m is empty.
func SelectMaybeAsync[T, U any](ctx context.Context, m mte.Maybe[T],
	fn func(ctx context.Context, v T) *Future[U]) *Future[mte.Maybe[U]] {

	mte.RequireNonNil(fn, "fn")
	v, ok := m.Get()
	if !ok {
		return Immediate(mte.None[U]())
	}
	return Then(ctx, fn(ctx, v), mte.ValueOf[U])
}

func BindMaybe[T, U any](ctx context.Context, fm *Future[mte.Maybe[T]], fn func(T) mte.Maybe[U]) *Future[mte.Maybe[U]] {
	mte.RequireNonNil(fn, "fn")
	return Then(ctx, fm, func(m mte.Maybe[T]) mte.Maybe[U] {
		return solo.BindMaybe(m, fn)
	})
}

func BindMaybeAsync[T, U any](ctx context.Context, m mte.Maybe[T],
	fn func(ctx context.Context, v T) *Future[mte.Maybe[U]]) *Future[mte.Maybe[U]] {

	mte.RequireNonNil(fn, "fn")
	v, ok := m.Get()
	if !ok {
		return Immediate(mte.None[U]())
	}
	return requireFuture(fn(ctx, v))
}

func SelectMaybeOrZero[T, U any](ctx context.Context, fm *Future[mte.Maybe[T]], fn func(T) U) *Future[U] {
	mte.RequireNonNil(fn, "fn")
	return Then(ctx, fm, func(m mte.Maybe[T]) U {
		return solo.SelectMaybeOrZero(m, fn)
	})
}

func SelectMaybeOrZeroAsync[T, U any](ctx context.Context, m mte.Maybe[T],
	fn func(ctx context.Context, v T) *Future[U]) *Future[U] {

	return Then(ctx, SelectMaybeAsync(ctx, m, fn), mte.Maybe[U].ValueOrZero)
}

func SelectMaybeOr[T, U any](ctx context.Context, fm *Future[mte.Maybe[T]], fn func(T) U, d U) *Future[U] {
	mte.RequireNonNil(fn, "fn")
	return Then(ctx, fm, func(m mte.Maybe[T]) U {
		return solo.SelectMaybeOr(m, fn, d)
	})
}

func SelectMaybeOrAsync[T, U any](ctx context.Context, m mte.Maybe[T],
	fn func(ctx context.Context, v T) *Future[U], d U) *Future[U] {

	return MaybeValueOrDefault(ctx, SelectMaybeAsync(ctx, m, fn), d)
}

// SelectMaybeOrElse calls gen only when fm settles with an empty Maybe.
func SelectMaybeOrElse[T, U any](ctx context.Context, fm *Future[mte.Maybe[T]], fn func(T) U, gen func() U) *Future[U] {
	mte.RequireNonNil(fn, "fn")
	mte.RequireNonNil(gen, "gen")
	return Then(ctx, fm, func(m mte.Maybe[T]) U {
		return solo.SelectMaybeOrElse(m, fn, gen)
	})
}

// SelectMaybeOrElseAsync starts exactly one of fn and gen.
func SelectMaybeOrElseAsync[T, U any](ctx context.Context, m mte.Maybe[T],
	fn func(ctx context.Context, v T) *Future[U], gen func(ctx context.Context) *Future[U]) *Future[U] {

	mte.RequireNonNil(fn, "fn")
	mte.RequireNonNil(gen, "gen")
	if v, ok := m.Get(); ok {
		return requireFuture(fn(ctx, v))
	}
	return requireFuture(gen(ctx))
}

func BindMaybeOr[T, U any](ctx context.Context, fm *Future[mte.Maybe[T]], fn func(T) mte.Maybe[U], d U) *Future[U] {
	mte.RequireNonNil(fn, "fn")
	return Then(ctx, fm, func(m mte.Maybe[T]) U {
		return solo.BindMaybeOr(m, fn, d)
	})
}

func BindMaybeOrAsync[T, U any](ctx context.Context, m mte.Maybe[T],
	fn func(ctx context.Context, v T) *Future[mte.Maybe[U]], d U) *Future[U] {

	return MaybeValueOrDefault(ctx, BindMaybeAsync(ctx, m, fn), d)
}

func BindMaybeOrElse[T, U any](ctx context.Context, fm *Future[mte.Maybe[T]], fn func(T) mte.Maybe[U], gen func() U) *Future[U] {
	mte.RequireNonNil(fn, "fn")
	mte.RequireNonNil(gen, "gen")
	return Then(ctx, fm, func(m mte.Maybe[T]) U {
		return solo.BindMaybeOrElse(m, fn, gen)
	})
}

// BindMaybeOrElseAsync starts gen when m is empty or fn settles with an
// empty Maybe.
func BindMaybeOrElseAsync[T, U any](ctx context.Context, m mte.Maybe[T],
	fn func(ctx context.Context, v T) *Future[mte.Maybe[U]], gen func(ctx context.Context) *Future[U]) *Future[U] {

	mte.RequireNonNil(gen, "gen")
	return chain(ctx, BindMaybeAsync(ctx, m, fn), func(r mte.Maybe[U]) *Future[U] {
		if v, ok := r.Get(); ok {
			return Immediate(v)
		}
		return gen(ctx)
	})
}

func UnwrapMaybe[T any](ctx context.Context, fm *Future[mte.Maybe[mte.Maybe[T]]]) *Future[mte.Maybe[T]] {
	return Then(ctx, fm, solo.UnwrapMaybe[T])
}

// MaybeOr settles with Left(value) or Right(other), like solo.MaybeOr.
func MaybeOr[T, R any](ctx context.Context, fm *Future[mte.Maybe[T]], other R) *Future[mte.Either[T, R]] {
	return Then(ctx, fm, func(m mte.Maybe[T]) mte.Either[T, R] {
		return solo.MaybeOr(m, other)
	})
}

func MaybeOrElse[T, R any](ctx context.Context, fm *Future[mte.Maybe[T]], gen func() R) *Future[mte.Either[T, R]] {
	mte.RequireNonNil(gen, "gen")
	return Then(ctx, fm, func(m mte.Maybe[T]) mte.Either[T, R] {
		return solo.MaybeOrElse(m, gen)
	})
}

// MaybeOrElseAsync starts gen only when m is empty.
func MaybeOrElseAsync[T, R any](ctx context.Context, m mte.Maybe[T],
	gen func(ctx context.Context) *Future[R]) *Future[mte.Either[T, R]] {

	mte.RequireNonNil(gen, "gen")
	if v, ok := m.Get(); ok {
		return Immediate(mte.Left[T, R](v))
	}
	return Then(ctx, gen(ctx), mte.Right[T, R])
}

// MaybeOrMaybe is Maybe.Or over a pending Maybe.
func MaybeOrMaybe[T any](ctx context.Context, fm *Future[mte.Maybe[T]], other mte.Maybe[T]) *Future[mte.Maybe[T]] {
	return Then(ctx, fm, func(m mte.Maybe[T]) mte.Maybe[T] {
		return m.Or(other)
	})
}

// MaybeOrElseMaybe calls gen only when fm settles with an empty Maybe.
func MaybeOrElseMaybe[T any](ctx context.Context, fm *Future[mte.Maybe[T]], gen func() mte.Maybe[T]) *Future[mte.Maybe[T]] {
	mte.RequireNonNil(gen, "gen")
	return Then(ctx, fm, func(m mte.Maybe[T]) mte.Maybe[T] {
		return m.OrElse(gen)
	})
}

func MaybeOrElseMaybeAsync[T any](ctx context.Context, m mte.Maybe[T],
	gen func(ctx context.Context) *Future[mte.Maybe[T]]) *Future[mte.Maybe[T]] {

	mte.RequireNonNil(gen, "gen")
	if m.HasValue() {
		return Immediate(m)
	}
	return requireFuture(gen(ctx))
}

func MaybeFilter[T any](ctx context.Context, fm *Future[mte.Maybe[T]], predicate func(T) bool) *Future[mte.Maybe[T]] {
	mte.RequireNonNil(predicate, "predicate")
	return Then(ctx, fm, func(m mte.Maybe[T]) mte.Maybe[T] {
		return m.Filter(predicate)
	})
}

// MaybeFilterAsync keeps the value of m when predicate settles with true.
func MaybeFilterAsync[T any](ctx context.Context, m mte.Maybe[T],
	predicate func(ctx context.Context, v T) *Future[bool]) *Future[mte.Maybe[T]] {

	mte.RequireNonNil(predicate, "predicate")
	v, ok := m.Get()
	if !ok {
		return Immediate(m)
	}
	return Then(ctx, predicate(ctx, v), func(keep bool) mte.Maybe[T] {
		return mte.MaybeOf(v, keep)
	})
}

func MaybeValueOrDefault[T any](ctx context.Context, fm *Future[mte.Maybe[T]], d T) *Future[T] {
	return Then(ctx, fm, func(m mte.Maybe[T]) T {
		return m.ValueOrDefault(d)
	})
}

func MaybeValueOrElse[T any](ctx context.Context, fm *Future[mte.Maybe[T]], gen func() T) *Future[T] {
	mte.RequireNonNil(gen, "gen")
	return Then(ctx, fm, func(m mte.Maybe[T]) T {
		return m.ValueOrElse(gen)
	})
}

// MaybeDo runs one of the actions once fm settles and passes the Maybe on.
func MaybeDo[T any](ctx context.Context, fm *Future[mte.Maybe[T]],
	valueAction func(T), emptyAction func()) *Future[mte.Maybe[T]] {

	mte.RequireNonNil(valueAction, "valueAction")
	mte.RequireNonNil(emptyAction, "emptyAction")
	return Then(ctx, fm, func(m mte.Maybe[T]) mte.Maybe[T] {
		m.Do(valueAction, emptyAction)
		return m
	})
}

// MaybeAsTry converts the settled Maybe. A rejection of fm is captured as
// the failure, cancellation excepted.
func MaybeAsTry[T any](ctx context.Context, fm *Future[mte.Maybe[T]]) *Future[mte.Try[T]] {
	return thenCapture(ctx, fm, mte.Maybe[T].AsTry)
}
