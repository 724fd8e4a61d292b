package sources

import (
	"context"

	serrors "github.com/seqflow/sequences/errors"
	"github.com/seqflow/sequences/seqs"
)

// observable routes a push-based producer through the push-to-pull bridge
type observable[T any, U any] struct {
	src     seqs.Observable[T]
	project seqs.Projection[T, U]
	br      *bridge[T]
	pos     int
	done    bool
	err     error
}

// FromObservable creates a sequence over a push-based producer. Subscription
// happens at the first pull, so building the sequence has no side effects;
// abandoning it via Close releases the subscription.
func FromObservable[T any, U any](src seqs.Observable[T], project seqs.Projection[T, U]) seqs.Sequence[U] {
	return &observable[T, U]{
		src:     src,
		project: project,
	}
}

// Next implements seqs.Sequence.
func (s *observable[T, U]) Next(ctx context.Context) (U, bool, error) {
	var zero U
	if s.err != nil {
		return zero, false, s.err
	}
	if s.done {
		return zero, false, nil
	}
	if s.br == nil {
		s.br = newBridge[T]()
		s.br.attach(s.src)
	}
	v, ok, err := s.br.pull(ctx)
	if err != nil {
		// The bridge keeps its terminal error latched, so a push failure
		// resurfaces on every later pull; context errors pass through raw.
		return zero, false, err
	}
	if !ok {
		s.done = true
		return zero, false, nil
	}
	u, err := s.project(ctx, v, s.pos)
	if err != nil {
		s.err = serrors.NewProjectionError(s.pos, err)
		s.br.unsubscribe()
		return zero, false, s.err
	}
	s.pos++
	return u, true, nil
}

// Close implements seqs.Sequence.
func (s *observable[T, U]) Close() error {
	s.done = true
	if s.br != nil {
		s.br.unsubscribe()
	}
	return nil
}
