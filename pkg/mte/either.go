package mte

import "fmt"

// Either holds exactly one of a left L or a right R. The zero Either is a
// left holding the zero L.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

func Left[L, R any](v L) Either[L, R] {
	return Either[L, R]{left: v}
}

func Right[L, R any](v R) Either[L, R] {
	return Either[L, R]{right: v, isRight: true}
}

func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// LeftValue panics with ErrNoLeftValue when e is a right.
func (e Either[L, R]) LeftValue() L {
	if e.isRight {
		panic(ErrNoLeftValue)
	}
	return e.left
}

// RightValue panics with ErrNoRightValue when e is a left.
func (e Either[L, R]) RightValue() R {
	if !e.isRight {
		panic(ErrNoRightValue)
	}
	return e.right
}

func (e Either[L, R]) GetLeft() (L, bool) {
	return e.left, !e.isRight
}

func (e Either[L, R]) GetRight() (R, bool) {
	return e.right, e.isRight
}

func (e Either[L, R]) LeftOrZero() L {
	return e.left
}

func (e Either[L, R]) LeftOrDefault(d L) L {
	if e.isRight {
		return d
	}
	return e.left
}

func (e Either[L, R]) LeftOrElse(gen func() L) L {
	RequireNonNil(gen, "gen")
	if e.isRight {
		return gen()
	}
	return e.left
}

func (e Either[L, R]) RightOrZero() R {
	return e.right
}

func (e Either[L, R]) RightOrDefault(d R) R {
	if e.isRight {
		return e.right
	}
	return d
}

func (e Either[L, R]) RightOrElse(gen func() R) R {
	RequireNonNil(gen, "gen")
	if e.isRight {
		return e.right
	}
	return gen()
}

// ToLeft collapses e to an L, converting a right with rightToLeft.
func (e Either[L, R]) ToLeft(rightToLeft func(R) L) L {
	RequireNonNil(rightToLeft, "rightToLeft")
	if e.isRight {
		return rightToLeft(e.right)
	}
	return e.left
}

// ToRight collapses e to an R, converting a left with leftToRight.
func (e Either[L, R]) ToRight(leftToRight func(L) R) R {
	RequireNonNil(leftToRight, "leftToRight")
	if e.isRight {
		return e.right
	}
	return leftToRight(e.left)
}

// Invert swaps the sides, keeping the payload.
func (e Either[L, R]) Invert() Either[R, L] {
	if e.isRight {
		return Left[R, L](e.right)
	}
	return Right[R, L](e.left)
}

func (e Either[L, R]) MaybeLeft() Maybe[L] {
	if e.isRight {
		return None[L]()
	}
	return ValueOf(e.left)
}

func (e Either[L, R]) MaybeRight() Maybe[R] {
	if e.isRight {
		return ValueOf(e.right)
	}
	return None[R]()
}

// TryLeft fails with ErrNoLeftValue when e is a right.
func (e Either[L, R]) TryLeft() Try[L] {
	if e.isRight {
		return Error[L](ErrNoLeftValue)
	}
	return Value(e.left)
}

// TryRight fails with ErrNoRightValue when e is a left.
func (e Either[L, R]) TryRight() Try[R] {
	if e.isRight {
		return Value(e.right)
	}
	return Error[R](ErrNoRightValue)
}

func (e Either[L, R]) Do(leftAction func(L), rightAction func(R)) {
	RequireNonNil(leftAction, "leftAction")
	RequireNonNil(rightAction, "rightAction")
	if e.isRight {
		rightAction(e.right)
	} else {
		leftAction(e.left)
	}
}

func (e Either[L, R]) DoLeft(leftAction func(L)) {
	RequireNonNil(leftAction, "leftAction")
	if !e.isRight {
		leftAction(e.left)
	}
}

func (e Either[L, R]) DoRight(rightAction func(R)) {
	RequireNonNil(rightAction, "rightAction")
	if e.isRight {
		rightAction(e.right)
	}
}

func (e Either[L, R]) String() string {
	if e.isRight {
		return fmt.Sprintf("Right(%v)", e.right)
	}
	return fmt.Sprintf("Left(%v)", e.left)
}
