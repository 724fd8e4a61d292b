package sources

import (
	"context"
	"errors"

	serrors "github.com/seqflow/sequences/errors"
	"github.com/seqflow/sequences/seqs"
)

// deferred awaits a single value and yields it once, a sequence of length one
type deferred[T any, U any] struct {
	src     seqs.Deferred[T]
	project seqs.Projection[T, U]
	done    bool
	err     error
}

// FromDeferred creates a sequence over a deferred single value. A resolved
// deferred yields exactly one element at ordinal 0; a rejected deferred yields
// no elements and propagates the rejection.
func FromDeferred[T any, U any](src seqs.Deferred[T], project seqs.Projection[T, U]) seqs.Sequence[U] {
	return &deferred[T, U]{
		src:     src,
		project: project,
	}
}

// Next implements seqs.Sequence.
func (s *deferred[T, U]) Next(ctx context.Context) (U, bool, error) {
	var zero U
	if s.err != nil {
		return zero, false, s.err
	}
	if s.done {
		return zero, false, nil
	}
	s.done = true
	v, err := s.src.Await(ctx)
	if err != nil {
		if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
			// Cancellation of this pull, not a rejection; the value may
			// still resolve on a later pull.
			s.done = false
			return zero, false, err
		}
		s.err = serrors.NewDeferredError(err)
		return zero, false, s.err
	}
	u, err := s.project(ctx, v, 0)
	if err != nil {
		s.err = serrors.NewProjectionError(0, err)
		return zero, false, s.err
	}
	return u, true, nil
}

// Close implements seqs.Sequence.
func (s *deferred[T, U]) Close() error {
	s.done = true
	return nil
}

// Fault creates a sequence that fails immediately with the given error.
func Fault[T any](err error) seqs.Sequence[T] {
	return &fault[T]{err: err}
}

type fault[T any] struct {
	err error
}

// Next implements seqs.Sequence.
func (s *fault[T]) Next(_ context.Context) (T, bool, error) {
	var zero T
	return zero, false, s.err
}

// Close implements seqs.Sequence.
func (s *fault[T]) Close() error {
	return nil
}
