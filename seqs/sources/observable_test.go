package sources

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	serrors "github.com/seqflow/sequences/errors"
	"github.com/seqflow/sequences/seqs"
)

type recordingSub struct {
	calls atomic.Int32
}

func (r *recordingSub) Unsubscribe() { r.calls.Add(1) }

// replayObservable delivers its script to the observer on Subscribe. With
// async set, delivery runs on a separate goroutine so notifications race the
// puller; otherwise everything is delivered before Subscribe returns, which
// exercises the buffer-then-drain ordering.
type replayObservable[T any] struct {
	values []T
	err    error
	async  bool

	sub        *recordingSub
	subscribed atomic.Int32
}

func (m *replayObservable[T]) Subscribe(o seqs.Observer[T]) seqs.Subscription {
	m.subscribed.Add(1)
	m.sub = &recordingSub{}
	deliver := func() {
		for _, v := range m.values {
			o.OnNext(v)
		}
		if m.err != nil {
			o.OnError(m.err)
			return
		}
		o.OnComplete()
	}
	if m.async {
		go deliver()
	} else {
		deliver()
	}
	return m.sub
}

// manualObservable hands the registered observer to the test for direct control.
type manualObservable[T any] struct {
	mu  sync.Mutex
	obs seqs.Observer[T]
	sub *recordingSub
}

func (m *manualObservable[T]) Subscribe(o seqs.Observer[T]) seqs.Subscription {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.obs = o
	m.sub = &recordingSub{}
	return m.sub
}

func (m *manualObservable[T]) observer() seqs.Observer[T] {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.obs
}

func TestFromObservable(t *testing.T) {
	tests := []struct {
		name  string
		async bool
	}{
		{name: "given completion before the puller drains, should yield every value then exhaust"},
		{name: "given delivery racing the puller, should yield every value then exhaust", async: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &replayObservable[int]{values: []int{1, 2, 3}, async: tt.async}
			s := FromObservable(src, func(_ context.Context, v int, i int) (string, error) {
				return fmt.Sprintf("%d:%d", i, v), nil
			})

			assert.Equal(t, []string{"0:1", "1:2", "2:3"}, drain(t, s))
			assert.Equal(t, int32(1), src.sub.calls.Load(), "unsubscribe should happen exactly once")
		})
	}

	t.Run("given no pulls, should not subscribe", func(t *testing.T) {
		src := &replayObservable[int]{values: []int{1}}
		s := FromObservable(src, seqs.Identity[int]())
		assert.Equal(t, int32(0), src.subscribed.Load())

		v, ok, err := s.Next(context.Background())
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, 1, v)
		assert.Equal(t, int32(1), src.subscribed.Load())
		require.NoError(t, s.Close())
	})

	t.Run("given an error after values, should drain buffered values before the PUSH error", func(t *testing.T) {
		upstream := errors.New("producer failed")
		src := &replayObservable[int]{values: []int{7}, err: upstream}
		s := FromObservable(src, seqs.Identity[int]())

		got, err := seqs.Collect(context.Background(), s)
		assert.Equal(t, []int{7}, got)
		require.Error(t, err)
		assert.True(t, serrors.IsPushError(err))
		require.ErrorIs(t, err, upstream)
		assert.Equal(t, int32(1), src.sub.calls.Load())

		// The terminal error stays latched.
		_, ok, err2 := s.Next(context.Background())
		assert.False(t, ok)
		assert.True(t, serrors.IsPushError(err2))
		assert.Equal(t, int32(1), src.sub.calls.Load())
	})

	t.Run("given abandonment, should unsubscribe exactly once", func(t *testing.T) {
		src := &manualObservable[int]{}
		s := FromObservable(src, seqs.Identity[int]())

		done := make(chan struct{})
		go func() {
			defer close(done)
			v, ok, err := s.Next(context.Background())
			assert.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, 42, v)
		}()
		require.Eventually(t, func() bool { return src.observer() != nil }, time.Second, time.Millisecond)
		src.observer().OnNext(42)
		<-done

		require.NoError(t, s.Close())
		require.NoError(t, s.Close())
		assert.Equal(t, int32(1), src.sub.calls.Load())

		_, ok, err := s.Next(context.Background())
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("given notifications after completion, should ignore them", func(t *testing.T) {
		src := &manualObservable[int]{}
		s := FromObservable(src, seqs.Identity[int]())

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, _, err := s.Next(ctx) // forces subscription without blocking forever
		require.ErrorIs(t, err, context.Canceled)

		src.observer().OnNext(1)
		src.observer().OnComplete()
		src.observer().OnNext(2)
		src.observer().OnError(errors.New("late"))

		got, err := seqs.Collect(context.Background(), s)
		require.NoError(t, err)
		assert.Equal(t, []int{1}, got)
	})

	t.Run("given a failing projection, should unsubscribe and latch a PROJECT error", func(t *testing.T) {
		src := &replayObservable[int]{values: []int{1, 2}}
		s := FromObservable(src, func(_ context.Context, _ int, _ int) (int, error) {
			return 0, errors.New("boom")
		})

		_, _, err := s.Next(context.Background())
		require.Error(t, err)
		assert.True(t, serrors.IsProjectionError(err))
		assert.Equal(t, int32(1), src.sub.calls.Load())

		_, ok, err2 := s.Next(context.Background())
		assert.False(t, ok)
		assert.Equal(t, err, err2)
	})
}
