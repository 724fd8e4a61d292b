package sequences

import (
	"context"

	serrors "github.com/seqflow/sequences/errors"
	"github.com/seqflow/sequences/seqs"
)

// VisitFunc is invoked once per produced element with the element and its
// ordinal position, starting at 0.
type VisitFunc[T any] func(ctx context.Context, v T, ordinal int) error

// ForEach drives a sequence to completion, invoking visit for each produced
// element. Each invocation completes before the next element is requested;
// callbacks never run concurrently. A failure raised by the sequence or by
// the callback halts iteration and is returned; callback failures are wrapped
// as VISIT errors. The sequence is closed on every exit path.
func ForEach[T any](ctx context.Context, s seqs.Sequence[T], visit VisitFunc[T]) error {
	defer s.Close()
	for i := 0; ; i++ {
		v, ok, err := s.Next(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := visit(ctx, v, i); err != nil {
			return serrors.NewVisitError(i, err)
		}
	}
}
