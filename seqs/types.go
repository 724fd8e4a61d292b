package seqs

import "context"

// MaxLen is the canonical upper bound on an Indexed length. Reported lengths
// are clamped to [0, MaxLen]; a negative length reads as 0.
const MaxLen = 1<<53 - 1

// Indexed is the array-like shape: a numeric length with random access to
// ordinal positions 0..Len()-1.
type Indexed[T any] interface {
	Len() int
	At(i int) T
}

// IndexedSlice adapts a slice to the Indexed shape.
type IndexedSlice[T any] []T

func (s IndexedSlice[T]) Len() int   { return len(s) }
func (s IndexedSlice[T]) At(i int) T { return s[i] }

// ClampLength coerces a reported length to a canonical value in [0, MaxLen].
func ClampLength(n int) int {
	if n < 0 {
		return 0
	}
	if n > MaxLen {
		return MaxLen
	}
	return n
}

// Deferred is the promise shape: a single value that resolves once.
type Deferred[T any] interface {
	Await(ctx context.Context) (T, error)
}

// DeferredFunc adapts a plain function to the Deferred shape.
type DeferredFunc[T any] func(ctx context.Context) (T, error)

// Await implements Deferred.
func (f DeferredFunc[T]) Await(ctx context.Context) (T, error) {
	return f(ctx)
}

// Observer receives push notifications from an Observable. After a terminal
// notification (OnError or OnComplete) no further notifications are honored.
type Observer[T any] interface {
	OnNext(v T)
	OnError(err error)
	OnComplete()
}

// Subscription represents an active registration with an Observable.
// Unsubscribe releases it; implementations must tolerate repeated calls.
type Subscription interface {
	Unsubscribe()
}

// SubscriptionFunc adapts a func to the Subscription interface.
type SubscriptionFunc func()

// Unsubscribe implements Subscription.
func (f SubscriptionFunc) Unsubscribe() {
	if f != nil {
		f()
	}
}

// Observable is a push-based producer: it delivers values by invoking an
// Observer's callbacks rather than being pulled.
type Observable[T any] interface {
	Subscribe(o Observer[T]) Subscription
}
