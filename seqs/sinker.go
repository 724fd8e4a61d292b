package seqs

import "context"

// Sinker is an interface that defines the Sink method
type Sinker[T any] interface {
	Sink(ctx context.Context, s Sequence[T]) error
}
