package sequences

import (
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/seqflow/sequences/seqs"
)

// MockObservable is a scripted push source: on Subscribe it replays the
// configured values to the observer, then the terminal signal (Err when set,
// complete otherwise). Delivery runs on a separate goroutine so notifications
// interleave with the puller, mirroring a live push producer.
type MockObservable[T any] struct {
	Values       []T
	Err          error
	Subscription seqs.Subscription

	mu         sync.Mutex
	subscribed int
}

// NewMockObservable creates a MockObservable that emits the given values and
// then completes.
func NewMockObservable[T any](values ...T) *MockObservable[T] {
	return &MockObservable[T]{Values: values}
}

// Subscribe implements seqs.Observable.
func (m *MockObservable[T]) Subscribe(o seqs.Observer[T]) seqs.Subscription {
	m.mu.Lock()
	m.subscribed++
	m.mu.Unlock()
	go func() {
		for _, v := range m.Values {
			o.OnNext(v)
		}
		if m.Err != nil {
			o.OnError(m.Err)
			return
		}
		o.OnComplete()
	}()
	if m.Subscription != nil {
		return m.Subscription
	}
	return seqs.SubscriptionFunc(nil)
}

// Subscribed reports how many times Subscribe has been called.
func (m *MockObservable[T]) Subscribed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.subscribed
}

// MockSubscription records Unsubscribe calls through testify's mock package.
type MockSubscription struct {
	mock.Mock
}

// NewMockSubscription creates a MockSubscription.
func NewMockSubscription() *MockSubscription {
	return &MockSubscription{}
}

// Unsubscribe implements seqs.Subscription.
func (m *MockSubscription) Unsubscribe() {
	m.Called()
}
