package sources

import (
	"context"
	"iter"

	serrors "github.com/seqflow/sequences/errors"
	"github.com/seqflow/sequences/seqs"
)

// iterator delegates production to a range-over-func iterator
type iterator[T any, U any] struct {
	src     iter.Seq[T]
	project seqs.Projection[T, U]
	next    func() (T, bool)
	stop    func()
	pos     int
	done    bool
	err     error
}

// FromSeq creates a sequence that delegates iteration to an iter.Seq. The
// underlying iterator is not started until the first pull.
func FromSeq[T any, U any](src iter.Seq[T], project seqs.Projection[T, U]) seqs.Sequence[U] {
	return &iterator[T, U]{
		src:     src,
		project: project,
	}
}

// Next implements seqs.Sequence.
func (s *iterator[T, U]) Next(ctx context.Context) (U, bool, error) {
	var zero U
	if s.err != nil {
		return zero, false, s.err
	}
	if s.done {
		return zero, false, nil
	}
	if s.next == nil {
		s.next, s.stop = iter.Pull(s.src)
	}
	v, ok := s.next()
	if !ok {
		s.close()
		return zero, false, nil
	}
	u, err := s.project(ctx, v, s.pos)
	if err != nil {
		s.err = serrors.NewProjectionError(s.pos, err)
		s.close()
		return zero, false, s.err
	}
	s.pos++
	return u, true, nil
}

// Close implements seqs.Sequence.
func (s *iterator[T, U]) Close() error {
	s.close()
	return nil
}

func (s *iterator[T, U]) close() {
	s.done = true
	if s.stop != nil {
		s.stop()
	}
}

// channelSource receives elements from a channel until it is closed
type channelSource[T any, U any] struct {
	receiver <-chan T
	project  seqs.Projection[T, U]
	pos      int
	done     bool
	err      error
}

// FromChannel creates a sequence that receives each element from a channel,
// exhausting when the channel is closed.
func FromChannel[T any, U any](receiver <-chan T, project seqs.Projection[T, U]) seqs.Sequence[U] {
	return &channelSource[T, U]{
		receiver: receiver,
		project:  project,
	}
}

// Next implements seqs.Sequence.
func (s *channelSource[T, U]) Next(ctx context.Context) (U, bool, error) {
	var zero U
	if s.err != nil {
		return zero, false, s.err
	}
	if s.done {
		return zero, false, nil
	}
	select {
	case <-ctx.Done():
		return zero, false, ctx.Err()
	case v, ok := <-s.receiver:
		if !ok {
			s.done = true
			return zero, false, nil
		}
		u, err := s.project(ctx, v, s.pos)
		if err != nil {
			s.err = serrors.NewProjectionError(s.pos, err)
			return zero, false, s.err
		}
		s.pos++
		return u, true, nil
	}
}

// Close implements seqs.Sequence.
func (s *channelSource[T, U]) Close() error {
	s.done = true
	return nil
}

// resequenced re-projects an already-pull sequence
type resequenced[T any, U any] struct {
	src     seqs.Sequence[T]
	project seqs.Projection[T, U]
	pos     int
	err     error
}

// FromSequence creates a sequence over an existing sequence, applying the
// projection to each element it produces.
func FromSequence[T any, U any](src seqs.Sequence[T], project seqs.Projection[T, U]) seqs.Sequence[U] {
	return &resequenced[T, U]{
		src:     src,
		project: project,
	}
}

// Next implements seqs.Sequence.
func (s *resequenced[T, U]) Next(ctx context.Context) (U, bool, error) {
	var zero U
	if s.err != nil {
		return zero, false, s.err
	}
	v, ok, err := s.src.Next(ctx)
	if err != nil {
		return zero, false, err
	}
	if !ok {
		return zero, false, nil
	}
	u, err := s.project(ctx, v, s.pos)
	if err != nil {
		s.err = serrors.NewProjectionError(s.pos, err)
		_ = s.src.Close()
		return zero, false, s.err
	}
	s.pos++
	return u, true, nil
}

// Close implements seqs.Sequence.
func (s *resequenced[T, U]) Close() error {
	return s.src.Close()
}
