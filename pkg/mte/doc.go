// Package mte contains the three value containers and their same-type
// operations:
// - Maybe[T]: a value or nothing (None/ValueOf)
// - Try[T]: a value or the error that prevented it (Value/Error/Result)
// - Either[L, R]: exactly one of two values (Left/Right)
//
// Containers are immutable values. Reading a payload that is not there
// panics with ErrNoValue, ErrNoLeftValue or ErrNoRightValue; a failed Try
// re-panics its own cause instead. Nil function arguments panic with
// ErrNilArgument before any other work.
//
// Conversions between containers (AsTry, AsMaybe, MaybeLeft, TryRight, ...)
// are methods. Type-changing combinators live in package solo, lazy
// sequence filters in package seq and the future-based mirror in async.
package mte
