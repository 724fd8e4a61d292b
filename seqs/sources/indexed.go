// Package sources implements the sequence adapters over each supported kind
// of producer: array-like values, iteration mechanisms, deferred single
// values, and push-based observables. Every constructor binds a projection
// that is applied to each element, together with its ordinal, before the
// element reaches the consumer.
package sources

import (
	"context"

	serrors "github.com/seqflow/sequences/errors"
	"github.com/seqflow/sequences/seqs"
)

// indexed is a sequence that walks the ordinal positions of an array-like value
type indexed[T any, U any] struct {
	src     seqs.Indexed[T]
	project seqs.Projection[T, U]
	pos     int
	length  int
	started bool
	done    bool
	err     error
}

// FromIndexed creates a sequence over an array-like value. The reported length
// is read once, at the first pull, and clamped to [0, seqs.MaxLen].
func FromIndexed[T any, U any](src seqs.Indexed[T], project seqs.Projection[T, U]) seqs.Sequence[U] {
	return &indexed[T, U]{
		src:     src,
		project: project,
	}
}

// FromSlice creates a sequence over the elements of a slice.
func FromSlice[T any, U any](values []T, project seqs.Projection[T, U]) seqs.Sequence[U] {
	return FromIndexed(seqs.IndexedSlice[T](values), project)
}

// Next implements seqs.Sequence.
func (s *indexed[T, U]) Next(ctx context.Context) (U, bool, error) {
	var zero U
	if s.err != nil {
		return zero, false, s.err
	}
	if s.done {
		return zero, false, nil
	}
	if !s.started {
		s.started = true
		s.length = seqs.ClampLength(s.src.Len())
	}
	if s.pos >= s.length {
		s.done = true
		return zero, false, nil
	}
	v, err := s.project(ctx, s.src.At(s.pos), s.pos)
	if err != nil {
		s.err = serrors.NewProjectionError(s.pos, err)
		return zero, false, s.err
	}
	s.pos++
	return v, true, nil
}

// Close implements seqs.Sequence.
func (s *indexed[T, U]) Close() error {
	s.done = true
	return nil
}
