package seqs

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClampLength(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want int
	}{
		{
			name: "given a valid length, should return it unchanged",
			n:    42,
			want: 42,
		},
		{
			name: "given zero, should return zero",
			n:    0,
			want: 0,
		},
		{
			name: "given a negative length, should clamp to zero",
			n:    -7,
			want: 0,
		},
		{
			name: "given a length above the canonical bound, should clamp to MaxLen",
			n:    MaxLen + 1,
			want: MaxLen,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampLength(tt.n))
		})
	}
}

func TestIndexedSlice(t *testing.T) {
	s := IndexedSlice[string]{"a", "b", "c"}
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, "b", s.At(1))
}

func TestDeferredFunc_Await(t *testing.T) {
	wantErr := errors.New("rejected")
	f := DeferredFunc[int](func(_ context.Context) (int, error) {
		return 0, wantErr
	})
	_, err := f.Await(context.Background())
	require.ErrorIs(t, err, wantErr)
}

func TestSubscriptionFunc_Unsubscribe(t *testing.T) {
	t.Run("given a func, should invoke it", func(t *testing.T) {
		calls := 0
		SubscriptionFunc(func() { calls++ }).Unsubscribe()
		assert.Equal(t, 1, calls)
	})

	t.Run("given nil, should be a no-op", func(t *testing.T) {
		assert.NotPanics(t, func() {
			SubscriptionFunc(nil).Unsubscribe()
		})
	})
}
