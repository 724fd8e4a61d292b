// Package seqs defines the pull-based protocol shared by every lazy sequence:
// a Sequence produces one element per request, in source order, until it
// reports exhaustion or a failure. Construction of sequences from concrete
// producers lives in seqs/sources; dispatch and composition live in the root
// sequences package.
package seqs

import (
	"context"
	"iter"
)

// Sequence is a lazy, pull-driven producer of ordered elements.
//
// Next returns the next element and true, or the zero value and false once the
// sequence is exhausted, or a non-nil error once it has failed. Terminal
// states are sticky: after exhaustion every call reports done, and after a
// failure every call returns the same error. Elements are produced in the
// underlying source's order with no skips and no duplicates. A Sequence
// supports a single live cursor; behavior under concurrent Next calls is
// undefined.
//
// Close abandons iteration and releases any resources the sequence holds,
// such as an upstream subscription. Close is idempotent and must be called
// when a consumer stops before exhaustion.
type Sequence[T any] interface {
	Next(ctx context.Context) (T, bool, error)
	Close() error
}

// Projection is a per-element transform applied during production. It receives
// the element and its ordinal position, starting at 0. A Projection may block;
// its context is the one passed to the Next call driving it.
type Projection[T any, U any] func(ctx context.Context, v T, ordinal int) (U, error)

// Identity returns a Projection that yields each element unchanged.
func Identity[T any]() Projection[T, T] {
	return func(_ context.Context, v T, _ int) (T, error) {
		return v, nil
	}
}

// Collect drains a sequence and returns all produced elements as a slice.
// On failure it returns the elements produced so far together with the error.
func Collect[T any](ctx context.Context, s Sequence[T]) ([]T, error) {
	defer s.Close()
	var out []T
	for {
		v, ok, err := s.Next(ctx)
		if err != nil {
			return out, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, v)
	}
}

// All adapts a sequence to a range-over-func iterator. A failure is yielded as
// the final pair's error; exhaustion ends the range with no error pair. The
// sequence is closed when the range stops, including early breaks.
func All[T any](ctx context.Context, s Sequence[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		defer s.Close()
		for {
			v, ok, err := s.Next(ctx)
			if err != nil {
				var zero T
				yield(zero, err)
				return
			}
			if !ok {
				return
			}
			if !yield(v, nil) {
				return
			}
		}
	}
}
