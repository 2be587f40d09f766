// Package async mirrors the mte combinators over pending computations.
//
// A Future is settled once by its Promise with a value or an error; Await
// blocks until then or until the context is done. Every combinator here is
// a thin adapter: it awaits, then re-enters the synchronous code in mte and
// solo. When the input Future has already settled the continuation runs on
// the caller's goroutine and the result is settled on return. Otherwise a
// single goroutine waits for the input; nothing else is scheduled.
//
// Two shapes are offered for each operation:
// - container in flight: SelectMaybe(ctx, *Future[mte.Maybe[T]], fn)
// - asynchronous step: SelectMaybeAsync(ctx, mte.Maybe[T], fn returning *Future[U])
//
// Combinators that produce a Try capture a rejected input as the failure,
// exactly like mte.Result. Cancellation (context.Canceled,
// context.DeadlineExceeded) is never captured: it rejects the returned
// Future. Combinators that produce a Maybe, an Either or a bare value pass
// every rejection through.
//
// Names follow package solo. Mirrors of the same-type fallback methods
// repeat the container they return (MaybeOrMaybe, MaybeOrElseMaybe,
// TryOrTry, TryOrElseTry) so they stay apart from solo.MaybeOrElse and
// solo.TryOrElse, which fall back to an Either. Method mirrors that take
// no function of their own are prefixed with the container (MaybeFilter,
// EitherInvert, TryAsMaybe).
//
// Result(ctx, gen) is the asynchronous mte.Result: it starts gen and
// captures its outcome.
//
// Futures carry a uuid and a creation time for diagnostics.
package async
