package sequences_test

import (
	"context"
	"fmt"

	"github.com/seqflow/sequences"
	"github.com/seqflow/sequences/seqs"
)

// ticker is a push-based producer: it delivers a fixed burst of readings to
// its observer and then completes.
type ticker struct{}

func (tk ticker) Subscribe(o seqs.Observer[int]) seqs.Subscription {
	go func() {
		for _, reading := range []int{100, 101, 102} {
			o.OnNext(reading)
		}
		o.OnComplete()
	}()
	return seqs.SubscriptionFunc(func() {})
}

func ExampleFrom_observable() {
	// The push source is bridged into the pull protocol: values buffer until
	// the consumer asks for them, and nothing delivered before completion is
	// ever dropped.
	s := sequences.From[int](ticker{})

	err := sequences.ForEach(context.Background(), s, func(_ context.Context, v int, i int) error {
		fmt.Printf("reading %d: %d\n", i, v)
		return nil
	})
	if err != nil {
		fmt.Println("stream failed:", err)
	}
	// Output:
	// reading 0: 100
	// reading 1: 101
	// reading 2: 102
}
