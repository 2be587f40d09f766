package seq

import (
	"iter"

	"github.com/ib-77/mte/pkg/mte"
)

// extract yields what get reports as present, in source order. Nothing is
// kept between iterations, so the result restarts whenever src does.
func extract[C, T any](src iter.Seq[C], get func(C) (T, bool), where func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for c := range src {
			v, ok := get(c)
			if !ok || (where != nil && !where(v)) {
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

func maybeGet[T any](m mte.Maybe[T]) (T, bool) {
	return m.Get()
}

func tryGet[T any](t mte.Try[T]) (T, bool) {
	v, err := t.Get()
	return v, err == nil
}

func leftGet[L, R any](e mte.Either[L, R]) (L, bool) {
	return e.GetLeft()
}

func rightGet[L, R any](e mte.Either[L, R]) (R, bool) {
	return e.GetRight()
}

// MaybeValues yields the values of src, skipping empty entries.
func MaybeValues[T any](src iter.Seq[mte.Maybe[T]]) iter.Seq[T] {
	mte.RequireNonNil(src, "src")
	return extract(src, maybeGet[T], nil)
}

// MaybeValuesWhere is MaybeValues keeping only values that satisfy where.
func MaybeValuesWhere[T any](src iter.Seq[mte.Maybe[T]], where func(T) bool) iter.Seq[T] {
	mte.RequireNonNil(src, "src")
	mte.RequireNonNil(where, "where")
	return extract(src, maybeGet[T], where)
}

// TryValues yields the successful values of src, skipping failures.
func TryValues[T any](src iter.Seq[mte.Try[T]]) iter.Seq[T] {
	mte.RequireNonNil(src, "src")
	return extract(src, tryGet[T], nil)
}

func TryValuesWhere[T any](src iter.Seq[mte.Try[T]], where func(T) bool) iter.Seq[T] {
	mte.RequireNonNil(src, "src")
	mte.RequireNonNil(where, "where")
	return extract(src, tryGet[T], where)
}

// TryErrors yields the failure causes of src, skipping successes.
func TryErrors[T any](src iter.Seq[mte.Try[T]]) iter.Seq[error] {
	mte.RequireNonNil(src, "src")
	return extract(src, func(t mte.Try[T]) (error, bool) {
		err := t.Err()
		return err, err != nil
	}, nil)
}

func LeftValues[L, R any](src iter.Seq[mte.Either[L, R]]) iter.Seq[L] {
	mte.RequireNonNil(src, "src")
	return extract(src, leftGet[L, R], nil)
}

func LeftValuesWhere[L, R any](src iter.Seq[mte.Either[L, R]], where func(L) bool) iter.Seq[L] {
	mte.RequireNonNil(src, "src")
	mte.RequireNonNil(where, "where")
	return extract(src, leftGet[L, R], where)
}

func RightValues[L, R any](src iter.Seq[mte.Either[L, R]]) iter.Seq[R] {
	mte.RequireNonNil(src, "src")
	return extract(src, rightGet[L, R], nil)
}

func RightValuesWhere[L, R any](src iter.Seq[mte.Either[L, R]], where func(R) bool) iter.Seq[R] {
	mte.RequireNonNil(src, "src")
	mte.RequireNonNil(where, "where")
	return extract(src, rightGet[L, R], where)
}
