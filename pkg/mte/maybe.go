package mte

import "fmt"

// Maybe holds either a value or nothing. The zero Maybe is empty.
type Maybe[T any] struct {
	value    T
	hasValue bool
}

func None[T any]() Maybe[T] {
	return Maybe[T]{}
}

// ValueOf returns a Maybe holding v. Presence is tracked by a flag, so a
// nil v still counts as a value.
func ValueOf[T any](v T) Maybe[T] {
	return Maybe[T]{value: v, hasValue: true}
}

// MaybeOf builds a Maybe from the comma-ok idiom.
func MaybeOf[T any](v T, ok bool) Maybe[T] {
	if !ok {
		return None[T]()
	}
	return ValueOf(v)
}

func FromPtr[T any](ptr *T) Maybe[T] {
	if ptr == nil {
		return None[T]()
	}
	return ValueOf(*ptr)
}

func (m Maybe[T]) HasValue() bool {
	return m.hasValue
}

func (m Maybe[T]) IsEmpty() bool {
	return !m.hasValue
}

// Value returns the payload and panics with ErrNoValue when m is empty.
func (m Maybe[T]) Value() T {
	if !m.hasValue {
		panic(ErrNoValue)
	}
	return m.value
}

func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.hasValue
}

func (m Maybe[T]) ValueOrZero() T {
	return m.value
}

func (m Maybe[T]) ValueOrDefault(d T) T {
	if m.hasValue {
		return m.value
	}
	return d
}

// ValueOrElse calls gen only when m is empty.
func (m Maybe[T]) ValueOrElse(gen func() T) T {
	RequireNonNil(gen, "gen")
	if m.hasValue {
		return m.value
	}
	return gen()
}

func (m Maybe[T]) Or(other Maybe[T]) Maybe[T] {
	if m.hasValue {
		return m
	}
	return other
}

// OrElse calls gen only when m is empty.
func (m Maybe[T]) OrElse(gen func() Maybe[T]) Maybe[T] {
	RequireNonNil(gen, "gen")
	if m.hasValue {
		return m
	}
	return gen()
}

func (m Maybe[T]) Filter(predicate func(T) bool) Maybe[T] {
	RequireNonNil(predicate, "predicate")
	if m.hasValue && predicate(m.value) {
		return m
	}
	return None[T]()
}

func (m Maybe[T]) AsMaybe() Maybe[T] {
	return m
}

// AsTry fails with ErrNoValue when m is empty.
func (m Maybe[T]) AsTry() Try[T] {
	if m.hasValue {
		return Value(m.value)
	}
	return Error[T](ErrNoValue)
}

func (m Maybe[T]) ToPtr() *T {
	if m.hasValue {
		v := m.value
		return &v
	}
	return nil
}

func (m Maybe[T]) Do(valueAction func(T), emptyAction func()) {
	RequireNonNil(valueAction, "valueAction")
	RequireNonNil(emptyAction, "emptyAction")
	if m.hasValue {
		valueAction(m.value)
	} else {
		emptyAction()
	}
}

func (m Maybe[T]) DoValue(valueAction func(T)) {
	RequireNonNil(valueAction, "valueAction")
	if m.hasValue {
		valueAction(m.value)
	}
}

func (m Maybe[T]) DoIfEmpty(emptyAction func()) {
	RequireNonNil(emptyAction, "emptyAction")
	if !m.hasValue {
		emptyAction()
	}
}

func (m Maybe[T]) String() string {
	if m.hasValue {
		return fmt.Sprintf("Value(%v)", m.value)
	}
	return "None"
}
