package solo

import "github.com/ib-77/mte/pkg/mte"

func SelectMaybe[T, U any](m mte.Maybe[T], fn func(T) U) mte.Maybe[U] {
	mte.RequireNonNil(fn, "fn")
	if v, ok := m.Get(); ok {
		return mte.ValueOf(fn(v))
	}
	return mte.None[U]()
}

// BindMaybe returns fn(value) as is, without wrapping it again.
func BindMaybe[T, U any](m mte.Maybe[T], fn func(T) mte.Maybe[U]) mte.Maybe[U] {
	mte.RequireNonNil(fn, "fn")
	if v, ok := m.Get(); ok {
		return fn(v)
	}
	return mte.None[U]()
}

func SelectMaybeOrZero[T, U any](m mte.Maybe[T], fn func(T) U) U {
	return SelectMaybe(m, fn).ValueOrZero()
}

func SelectMaybeOr[T, U any](m mte.Maybe[T], fn func(T) U, d U) U {
	return SelectMaybe(m, fn).ValueOrDefault(d)
}

// SelectMaybeOrElse calls gen only when m is empty.
func SelectMaybeOrElse[T, U any](m mte.Maybe[T], fn func(T) U, gen func() U) U {
	mte.RequireNonNil(gen, "gen")
	return SelectMaybe(m, fn).ValueOrElse(gen)
}

func BindMaybeOr[T, U any](m mte.Maybe[T], fn func(T) mte.Maybe[U], d U) U {
	return BindMaybe(m, fn).ValueOrDefault(d)
}

func BindMaybeOrElse[T, U any](m mte.Maybe[T], fn func(T) mte.Maybe[U], gen func() U) U {
	mte.RequireNonNil(gen, "gen")
	return BindMaybe(m, fn).ValueOrElse(gen)
}

func UnwrapMaybe[T any](m mte.Maybe[mte.Maybe[T]]) mte.Maybe[T] {
	if inner, ok := m.Get(); ok {
		return inner
	}
	return mte.None[T]()
}

// MaybeOr returns Left(value) when m has one and Right(other) otherwise.
func MaybeOr[T, R any](m mte.Maybe[T], other R) mte.Either[T, R] {
	if v, ok := m.Get(); ok {
		return mte.Left[T, R](v)
	}
	return mte.Right[T](other)
}

// MaybeOrElse calls gen only when m is empty.
func MaybeOrElse[T, R any](m mte.Maybe[T], gen func() R) mte.Either[T, R] {
	mte.RequireNonNil(gen, "gen")
	if v, ok := m.Get(); ok {
		return mte.Left[T, R](v)
	}
	return mte.Right[T](gen())
}

// SelectTry maps a successful value. A panic in fn becomes the new failure,
// except for cancellation which keeps unwinding. A failure is carried over
// unchanged.
func SelectTry[T, U any](t mte.Try[T], fn func(T) U) mte.Try[U] {
	mte.RequireNonNil(fn, "fn")
	if t.IsFailure() {
		return mte.ErrorFrom[U](t)
	}
	return mte.Capture(func() U { return fn(t.Value()) })
}

func BindTry[T, U any](t mte.Try[T], fn func(T) mte.Try[U]) mte.Try[U] {
	mte.RequireNonNil(fn, "fn")
	if t.IsFailure() {
		return mte.ErrorFrom[U](t)
	}
	return UnwrapTry(mte.Capture(func() mte.Try[U] { return fn(t.Value()) }))
}

// TrySelect is SelectTry for functions that report failure with an error.
// A cancellation error is returned as the second result, as in mte.Result.
func TrySelect[T, U any](t mte.Try[T], fn func(T) (U, error)) (mte.Try[U], error) {
	mte.RequireNonNil(fn, "fn")
	if t.IsFailure() {
		return mte.ErrorFrom[U](t), nil
	}
	return mte.Result(func() (U, error) { return fn(t.Value()) })
}

func UnwrapTry[T any](t mte.Try[mte.Try[T]]) mte.Try[T] {
	if t.IsFailure() {
		return mte.ErrorFrom[T](t)
	}
	return t.Value()
}

// TryOr returns Left(value) on success and Right(other) on failure. The
// failure cause is dropped.
func TryOr[T, R any](t mte.Try[T], other R) mte.Either[T, R] {
	if v, err := t.Get(); err == nil {
		return mte.Left[T, R](v)
	}
	return mte.Right[T](other)
}

func TryOrElse[T, R any](t mte.Try[T], gen func(err error) R) mte.Either[T, R] {
	mte.RequireNonNil(gen, "gen")
	v, err := t.Get()
	if err == nil {
		return mte.Left[T, R](v)
	}
	return mte.Right[T](gen(err))
}

func SelectLeft[L, R, U any](e mte.Either[L, R], fn func(L) U) mte.Either[U, R] {
	mte.RequireNonNil(fn, "fn")
	if l, ok := e.GetLeft(); ok {
		return mte.Left[U, R](fn(l))
	}
	return mte.Right[U](e.RightValue())
}

func BindLeft[L, R, U any](e mte.Either[L, R], fn func(L) mte.Either[U, R]) mte.Either[U, R] {
	mte.RequireNonNil(fn, "fn")
	if l, ok := e.GetLeft(); ok {
		return fn(l)
	}
	return mte.Right[U](e.RightValue())
}

func SelectRight[L, R, U any](e mte.Either[L, R], fn func(R) U) mte.Either[L, U] {
	mte.RequireNonNil(fn, "fn")
	if r, ok := e.GetRight(); ok {
		return mte.Right[L](fn(r))
	}
	return mte.Left[L, U](e.LeftValue())
}

func BindRight[L, R, U any](e mte.Either[L, R], fn func(R) mte.Either[L, U]) mte.Either[L, U] {
	mte.RequireNonNil(fn, "fn")
	if r, ok := e.GetRight(); ok {
		return fn(r)
	}
	return mte.Left[L, U](e.LeftValue())
}

// SelectEither maps whichever side is present.
func SelectEither[L, R, L2, R2 any](e mte.Either[L, R],
	onLeft func(L) L2, onRight func(R) R2) mte.Either[L2, R2] {

	mte.RequireNonNil(onLeft, "onLeft")
	mte.RequireNonNil(onRight, "onRight")
	if r, ok := e.GetRight(); ok {
		return mte.Right[L2](onRight(r))
	}
	return mte.Left[L2, R2](onLeft(e.LeftValue()))
}

func BindEither[L, R, L2, R2 any](e mte.Either[L, R],
	onLeft func(L) mte.Either[L2, R2], onRight func(R) mte.Either[L2, R2]) mte.Either[L2, R2] {

	mte.RequireNonNil(onLeft, "onLeft")
	mte.RequireNonNil(onRight, "onRight")
	if r, ok := e.GetRight(); ok {
		return onRight(r)
	}
	return onLeft(e.LeftValue())
}

// ToValue collapses both sides to a single U.
func ToValue[L, R, U any](e mte.Either[L, R], fromLeft func(L) U, fromRight func(R) U) U {
	mte.RequireNonNil(fromLeft, "fromLeft")
	mte.RequireNonNil(fromRight, "fromRight")
	if r, ok := e.GetRight(); ok {
		return fromRight(r)
	}
	return fromLeft(e.LeftValue())
}
