// Package sinks implements terminal consumers that drain a sequence.
package sinks

import (
	"context"

	"github.com/seqflow/sequences/seqs"
)

type channelSink[T any] struct {
	sender chan<- T
}

// ToChannel creates a Sinker that forwards each produced element to a channel.
func ToChannel[T any](sender chan<- T) seqs.Sinker[T] {
	return &channelSink[T]{
		sender: sender,
	}
}

// Sink pulls every element from the sequence and sends it to the output
// channel, stopping on exhaustion, sequence failure, or context cancellation.
func (p *channelSink[T]) Sink(ctx context.Context, s seqs.Sequence[T]) error {
	defer s.Close()
	for {
		v, ok, err := s.Next(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case p.sender <- v:
		}
	}
}
