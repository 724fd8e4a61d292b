package sources

import (
	"context"
	"sync"

	"github.com/emirpasic/gods/v2/queues/linkedlistqueue"
	"github.com/google/uuid"

	serrors "github.com/seqflow/sequences/errors"
	"github.com/seqflow/sequences/internal/logging"
	"github.com/seqflow/sequences/seqs"
)

// bridgeState tracks the terminal condition of a push source.
type bridgeState int

const (
	bridgeOpen bridgeState = iota
	bridgeClosedNormal
	bridgeClosedError
)

// bridge converts push notifications into a pollable queue. It is the
// Observer registered with the push source: OnNext appends to the buffer
// while the bridge is open, OnError and OnComplete latch the terminal state.
// The pull side drains buffered values before surfacing the terminal signal,
// so no value delivered ahead of complete/error is ever dropped.
//
// Notifications and pulls interleave from different goroutines; the mutex
// guards the buffer and state, and the capacity-1 wake channel replaces a
// busy poll. Unsubscription happens exactly once, on the first observed
// terminal condition or on abandonment, and a bridge that has closed ignores
// further notifications.
type bridge[T any] struct {
	id      string
	mu      sync.Mutex
	buf     *linkedlistqueue.Queue[*T]
	state   bridgeState
	err     error
	wake    chan struct{}
	sub     seqs.Subscription
	release sync.Once
}

func newBridge[T any]() *bridge[T] {
	return &bridge[T]{
		id:   uuid.NewString(),
		buf:  linkedlistqueue.New[*T](),
		wake: make(chan struct{}, 1),
	}
}

// attach subscribes the bridge to the push source. Notifications may start
// arriving before Subscribe returns; the buffer absorbs them.
func (b *bridge[T]) attach(src seqs.Observable[T]) {
	sub := src.Subscribe(b)
	b.mu.Lock()
	b.sub = sub
	b.mu.Unlock()
	l := logging.Logger()
	l.Debug().
		Str("bridge_id", b.id).
		Msg("subscribed to push source")
}

// OnNext implements seqs.Observer.
func (b *bridge[T]) OnNext(v T) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.state != bridgeOpen {
		return
	}
	b.buf.Enqueue(&v)
	b.signal()
}

// OnError implements seqs.Observer.
func (b *bridge[T]) OnError(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.state != bridgeOpen {
		return
	}
	b.state = bridgeClosedError
	b.err = err
	b.signal()
	l := logging.Logger()
	l.Debug().
		Str("bridge_id", b.id).
		Err(err).
		Msg("push source errored")
}

// OnComplete implements seqs.Observer.
func (b *bridge[T]) OnComplete() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.state != bridgeOpen {
		return
	}
	b.state = bridgeClosedNormal
	b.signal()
	l := logging.Logger()
	l.Debug().
		Str("bridge_id", b.id).
		Msg("push source completed")
}

// signal wakes the pull side. Callers hold the mutex; the send never blocks
// because the channel has capacity one and a pending wake is equivalent.
func (b *bridge[T]) signal() {
	select {
	case b.wake <- struct{}{}:
	default:
	}
}

// pull blocks until a buffered value, a terminal condition, or context
// cancellation. Buffered values win over a latched terminal state.
func (b *bridge[T]) pull(ctx context.Context) (T, bool, error) {
	var zero T
	for {
		b.mu.Lock()
		if v, ok := b.buf.Dequeue(); ok {
			b.mu.Unlock()
			return *v, true, nil
		}
		switch b.state {
		case bridgeClosedError:
			err := b.err
			b.mu.Unlock()
			b.unsubscribe()
			return zero, false, serrors.NewPushError(err)
		case bridgeClosedNormal:
			b.mu.Unlock()
			b.unsubscribe()
			return zero, false, nil
		}
		b.mu.Unlock()
		select {
		case <-b.wake:
		case <-ctx.Done():
			return zero, false, ctx.Err()
		}
	}
}

// unsubscribe releases the subscription exactly once.
func (b *bridge[T]) unsubscribe() {
	b.release.Do(func() {
		b.mu.Lock()
		sub := b.sub
		b.mu.Unlock()
		if sub != nil {
			sub.Unsubscribe()
		}
		l := logging.Logger()
		l.Debug().
			Str("bridge_id", b.id).
			Msg("unsubscribed from push source")
	})
}
