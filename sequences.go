package sequences

import (
	"context"
	"fmt"
	"iter"

	serrors "github.com/seqflow/sequences/errors"
	"github.com/seqflow/sequences/internal/logging"
	"github.com/seqflow/sequences/seqs"
	"github.com/seqflow/sequences/seqs/sources"
)

// From classifies an input value and returns a sequence over its elements,
// unchanged. See FromWith for the classification rules.
func From[T any](input any) seqs.Sequence[T] {
	return FromWith(input, seqs.Identity[T]())
}

// FromWith classifies an input value and returns the matching source adapter,
// pre-bound with the given projection.
//
// Classification is a structural match over a closed set of input kinds, in
// precedence order: an existing seqs.Sequence[T]; an iteration mechanism
// (iter.Seq[T], a raw push-function iterator, or a channel of T); an
// array-like value ([]T or seqs.Indexed[T]); a deferred single value
// (seqs.Deferred[T] or a plain func(ctx) (T, error)); a push-based
// seqs.Observable[T]. A bare T falls back to a one-element sequence holding
// just that value. Any other input yields a sequence that fails with a
// SOURCE error on the first pull, since Go cannot coerce it to a T element.
func FromWith[T any, U any](input any, project seqs.Projection[T, U]) seqs.Sequence[U] {
	s, kind := dispatch(input, project)
	l := logging.Logger()
	l.Debug().
		Str("source_kind", kind).
		Msg("classified sequence input")
	return s
}

// Of returns a sequence over exactly the given values, in order.
func Of[T any](values ...T) seqs.Sequence[T] {
	return sources.FromSlice(values, seqs.Identity[T]())
}

func dispatch[T any, U any](input any, project seqs.Projection[T, U]) (seqs.Sequence[U], string) {
	switch src := input.(type) {
	case nil:
		return sources.Fault[U](serrors.NewSourceError(
			fmt.Errorf("cannot build a sequence from a nil input"),
		)), "fault"
	case seqs.Sequence[T]:
		return sources.FromSequence(src, project), "sequence"
	case iter.Seq[T]:
		return sources.FromSeq(src, project), "iterator"
	case func(func(T) bool):
		return sources.FromSeq(iter.Seq[T](src), project), "iterator"
	case <-chan T:
		return sources.FromChannel(src, project), "channel"
	case chan T:
		return sources.FromChannel(src, project), "channel"
	case []T:
		return sources.FromSlice(src, project), "indexed"
	case seqs.Indexed[T]:
		return sources.FromIndexed(src, project), "indexed"
	case seqs.Deferred[T]:
		return sources.FromDeferred(src, project), "deferred"
	case func(context.Context) (T, error):
		return sources.FromDeferred(seqs.DeferredFunc[T](src), project), "deferred"
	case seqs.Observable[T]:
		return sources.FromObservable(src, project), "observable"
	case T:
		return sources.FromSlice([]T{src}, project), "singleton"
	default:
		var zero T
		return sources.Fault[U](serrors.NewSourceError(
			fmt.Errorf("input of type %T cannot produce elements of type %T", input, zero),
		)), "fault"
	}
}
