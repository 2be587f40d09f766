package async

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/mte/pkg/mte"
)

// Future is a placeholder for a value, or an error, that becomes available
// once its Promise settles.
type Future[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	done      chan struct{}
	value     T
	err       error
}

// Promise settles its Future. Only the first Fulfill, Reject or Forward
// takes effect.
type Promise[T any] struct {
	future *Future[T]
	once   sync.Once
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		done:      make(chan struct{}),
	}
}

// Create returns a linked Promise and Future.
func Create[T any]() (*Promise[T], *Future[T]) {
	f := newFuture[T]()
	return &Promise[T]{future: f}, f
}

// Immediate returns a Future that is already fulfilled with v.
func Immediate[T any](v T) *Future[T] {
	p, f := Create[T]()
	p.Fulfill(v)
	return f
}

// Failed returns a Future that is already rejected with err.
func Failed[T any](err error) *Future[T] {
	mte.RequireNonNil(err, "err")
	p, f := Create[T]()
	p.Reject(err)
	return f
}

// Go runs fn in its own goroutine. A panic in fn rejects the Future.
func Go[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) *Future[T] {
	mte.RequireNonNil(fn, "fn")
	p, f := Create[T]()
	go func() {
		defer p.recoverInto()
		res, cancelErr := mte.Result(func() (T, error) { return fn(ctx) })
		if cancelErr != nil {
			p.Reject(cancelErr)
			return
		}
		p.settle(res.Get())
	}()
	return f
}

// FromChan adopts the first value received from ch. A channel closed
// without a value rejects the Future with mte.ErrNoValue.
func FromChan[T any](ctx context.Context, ch <-chan T) *Future[T] {
	mte.RequireNonNil(ch, "ch")
	select {
	case v, ok := <-ch:
		if !ok {
			return Failed[T](mte.ErrNoValue)
		}
		return Immediate(v)
	default:
	}

	p, f := Create[T]()
	go func() {
		select {
		case v, ok := <-ch:
			if !ok {
				p.Reject(mte.ErrNoValue)
				return
			}
			p.Fulfill(v)
		case <-ctx.Done():
			p.Reject(ctx.Err())
		}
	}()
	return f
}

func (p *Promise[T]) settle(v T, err error) {
	p.once.Do(func() {
		p.future.value = v
		p.future.err = err
		close(p.future.done)
	})
}

func (p *Promise[T]) Fulfill(v T) {
	p.settle(v, nil)
}

func (p *Promise[T]) Reject(err error) {
	mte.RequireNonNil(err, "err")
	var zero T
	p.settle(zero, err)
}

// Forward settles p with the outcome of f.
func (p *Promise[T]) Forward(ctx context.Context, f *Future[T]) {
	requireFuture(f)
	if f.IsCompleted() {
		p.settle(f.value, f.err)
		return
	}
	go func() {
		p.settle(f.Await(ctx))
	}()
}

// recoverInto rejects p with a recovered panic. It must be deferred.
func (p *Promise[T]) recoverInto() {
	if r := recover(); r != nil {
		p.Reject(panicError(r))
	}
}

func (f *Future[T]) ID() uuid.UUID {
	return f.id
}

func (f *Future[T]) CreatedAt() time.Time {
	return f.createdAt
}

// Done is closed once the Future settles.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// IsCompleted reports, without blocking, whether the Future has settled.
func (f *Future[T]) IsCompleted() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Await blocks until the Future settles or ctx is done, in which case it
// returns ctx.Err(). A Future can be awaited any number of times.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	if f.IsCompleted() {
		return f.value, f.err
	}
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
