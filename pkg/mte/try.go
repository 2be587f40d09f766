package mte

import (
	"errors"
	"fmt"
)

// Try holds either a value or the error that prevented producing it.
// The zero Try is a failure whose cause is ErrNoValue.
type Try[T any] struct {
	value     T
	err       error
	isSuccess bool
}

func Value[T any](v T) Try[T] {
	return Try[T]{value: v, isSuccess: true}
}

// Error returns a failed Try. An aggregate error holding exactly one cause
// is stored as that cause. A nil cause panics with ErrNilArgument.
func Error[T any](cause error) Try[T] {
	if IsNil(cause) {
		panic(argumentError("cause"))
	}
	return Try[T]{err: unwrapSingle(cause)}
}

// ErrorFrom carries the cause of a failed Try over to another value type
// without wrapping it again. from must be a failure.
func ErrorFrom[Out, In any](from Try[In]) Try[Out] {
	return Try[Out]{err: from.Err()}
}

// Result runs fn and captures a returned error or a recovered panic as a
// failed Try. Cancellation is never captured: a returned cancellation error
// comes back as the second result, a cancellation panic keeps unwinding.
func Result[T any](fn func() (T, error)) (res Try[T], cancelErr error) {
	RequireNonNil(fn, "fn")
	defer func() {
		if r := recover(); r != nil {
			res, cancelErr = Error[T](recovered(r)), nil
		}
	}()

	v, err := fn()
	if err != nil {
		if IsCancellationError(err) {
			return Try[T]{}, err
		}
		return Error[T](err), nil
	}
	return Value(v), nil
}

// Capture runs fn and turns a panic into a failed Try. Cancellation panics
// are re-raised.
func Capture[T any](fn func() T) (res Try[T]) {
	RequireNonNil(fn, "fn")
	defer func() {
		if r := recover(); r != nil {
			res = Error[T](recovered(r))
		}
	}()
	return Value(fn())
}

func (t Try[T]) IsSuccess() bool {
	return t.isSuccess
}

func (t Try[T]) IsFailure() bool {
	return !t.isSuccess
}

// Err returns the failure cause, or nil on success.
func (t Try[T]) Err() error {
	if t.isSuccess {
		return nil
	}
	if t.err == nil {
		return ErrNoValue
	}
	return t.err
}

// Value returns the payload. On failure it panics with the stored cause.
func (t Try[T]) Value() T {
	if !t.isSuccess {
		panic(t.Err())
	}
	return t.value
}

func (t Try[T]) Get() (T, error) {
	return t.value, t.Err()
}

func (t Try[T]) ValueOrZero() T {
	return t.value
}

func (t Try[T]) ValueOrDefault(d T) T {
	if t.isSuccess {
		return t.value
	}
	return d
}

func (t Try[T]) ValueOrElse(gen func(err error) T) T {
	RequireNonNil(gen, "gen")
	if t.isSuccess {
		return t.value
	}
	return gen(t.Err())
}

func (t Try[T]) Or(other Try[T]) Try[T] {
	if t.isSuccess {
		return t
	}
	return other
}

// OrElse calls gen only on failure.
func (t Try[T]) OrElse(gen func() Try[T]) Try[T] {
	RequireNonNil(gen, "gen")
	if t.isSuccess {
		return t
	}
	return gen()
}

// OrMaybe returns the value on success and m otherwise.
func (t Try[T]) OrMaybe(m Maybe[T]) Maybe[T] {
	if t.isSuccess {
		return ValueOf(t.value)
	}
	return m
}

// AsMaybe drops the failure cause.
func (t Try[T]) AsMaybe() Maybe[T] {
	if t.isSuccess {
		return ValueOf(t.value)
	}
	return None[T]()
}

func (t Try[T]) AsTry() Try[T] {
	return t
}

// ThrowIfError panics with the stored cause on failure and returns t
// otherwise.
func (t Try[T]) ThrowIfError() Try[T] {
	if !t.isSuccess {
		panic(t.Err())
	}
	return t
}

// ThrowIfErrorIs panics with the stored cause only when it matches target
// according to errors.Is.
func (t Try[T]) ThrowIfErrorIs(target error) Try[T] {
	if !t.isSuccess && errors.Is(t.Err(), target) {
		panic(t.Err())
	}
	return t
}

// ThrowIfErrorAs panics with the stored cause only when its chain holds an
// error of type E.
func ThrowIfErrorAs[E error, T any](t Try[T]) Try[T] {
	var target E
	if !t.isSuccess && errors.As(t.Err(), &target) {
		panic(t.Err())
	}
	return t
}

func (t Try[T]) Do(valueAction func(T), errorAction func(error)) {
	RequireNonNil(valueAction, "valueAction")
	RequireNonNil(errorAction, "errorAction")
	if t.isSuccess {
		valueAction(t.value)
	} else {
		errorAction(t.Err())
	}
}

// DoValue runs valueAction on success. On failure it panics with the cause
// when throwIfError is set and does nothing otherwise.
func (t Try[T]) DoValue(valueAction func(T), throwIfError bool) {
	RequireNonNil(valueAction, "valueAction")
	if t.isSuccess {
		valueAction(t.value)
		return
	}
	if throwIfError {
		panic(t.Err())
	}
}

func (t Try[T]) DoIfError(errorAction func(error)) {
	RequireNonNil(errorAction, "errorAction")
	if !t.isSuccess {
		errorAction(t.Err())
	}
}

func (t Try[T]) String() string {
	if t.isSuccess {
		return fmt.Sprintf("Value(%v)", t.value)
	}
	return fmt.Sprintf("Error(%v)", t.Err())
}
