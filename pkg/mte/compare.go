package mte

import "cmp"

// MaybeEqual reports whether both are empty or both hold equal values.
func MaybeEqual[T comparable](a, b Maybe[T]) bool {
	return MaybeEqualFunc(a, b, func(x, y T) bool { return x == y })
}

func MaybeEqualFunc[T any](a, b Maybe[T], eq func(T, T) bool) bool {
	RequireNonNil(eq, "eq")
	if a.hasValue != b.hasValue {
		return false
	}
	return !a.hasValue || eq(a.value, b.value)
}

// MaybeEqualValue reports whether m holds v.
func MaybeEqualValue[T comparable](m Maybe[T], v T) bool {
	return m.hasValue && m.value == v
}

// MaybeCompare orders an empty Maybe before any value.
func MaybeCompare[T cmp.Ordered](a, b Maybe[T]) int {
	switch {
	case !a.hasValue && !b.hasValue:
		return 0
	case !a.hasValue:
		return -1
	case !b.hasValue:
		return 1
	}
	return cmp.Compare(a.value, b.value)
}

// TryEqual treats any two failures as equal, whatever their causes.
func TryEqual[T comparable](a, b Try[T]) bool {
	return TryEqualFunc(a, b, func(x, y T) bool { return x == y })
}

func TryEqualFunc[T any](a, b Try[T], eq func(T, T) bool) bool {
	RequireNonNil(eq, "eq")
	if a.isSuccess != b.isSuccess {
		return false
	}
	return !a.isSuccess || eq(a.value, b.value)
}

func TryEqualValue[T comparable](t Try[T], v T) bool {
	return t.isSuccess && t.value == v
}

// TryCompare orders failures before successes; failures compare equal.
func TryCompare[T cmp.Ordered](a, b Try[T]) int {
	switch {
	case !a.isSuccess && !b.isSuccess:
		return 0
	case !a.isSuccess:
		return -1
	case !b.isSuccess:
		return 1
	}
	return cmp.Compare(a.value, b.value)
}

func EitherEqual[L, R comparable](a, b Either[L, R]) bool {
	if a.isRight != b.isRight {
		return false
	}
	if a.isRight {
		return a.right == b.right
	}
	return a.left == b.left
}

func EitherEqualLeft[L, R comparable](e Either[L, R], v L) bool {
	return !e.isRight && e.left == v
}

func EitherEqualRight[L, R comparable](e Either[L, R], v R) bool {
	return e.isRight && e.right == v
}

// EitherEqualInverted compares e with the inverted form of other.
func EitherEqualInverted[L, R comparable](e Either[L, R], other Either[R, L]) bool {
	return EitherEqual(e, other.Invert())
}

// EitherCompare orders lefts before rights, then by payload.
func EitherCompare[L, R cmp.Ordered](a, b Either[L, R]) int {
	switch {
	case a.isRight != b.isRight && a.isRight:
		return 1
	case a.isRight != b.isRight:
		return -1
	case a.isRight:
		return cmp.Compare(a.right, b.right)
	}
	return cmp.Compare(a.left, b.left)
}

func EitherCompareInverted[L, R cmp.Ordered](e Either[L, R], other Either[R, L]) int {
	return EitherCompare(e, other.Invert())
}
