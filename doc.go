// Package sequences provides a unified lazy-sequence abstraction: sequences
// built from heterogeneous producers and iterated through a single pull-based
// protocol.
//
// A sequence can be constructed from a finite in-memory collection, an
// iteration mechanism, a deferred single value, or a push-based observable
// stream. The From and FromWith constructors classify the input and wrap it
// in the matching source adapter; push-based producers are reconciled with
// the pull protocol by an internal buffer-and-drain bridge. Whole-sequence
// transforms chain through Compose without materializing intermediate
// results, and ForEach drives a full iteration with per-element callbacks.
//
// Below is an example that projects a slice through a sequence and drains it
// element by element:
//
//	package yourapp
//
//	import (
//		"context"
//		"log/slog"
//
//		"github.com/seqflow/sequences"
//	)
//
//	func Run() {
//		squares := sequences.FromWith([]int{1, 2, 3, 4}, func(_ context.Context, v int, _ int) (int, error) {
//			return v * v, nil
//		})
//
//		err := sequences.ForEach(context.Background(), squares, func(_ context.Context, v int, i int) error {
//			slog.Info("produced", slog.Int("ordinal", i), slog.Int("value", v))
//			return nil
//		})
//		if err != nil {
//			slog.Error("sequence failed: " + err.Error())
//		}
//	}
//
// Production is strictly on demand: one element at a time, in source order,
// with no internal buffering beyond what is required to bridge push-based
// sources. A sequence supports one live cursor; consumers that stop early
// must Close the sequence to release any upstream subscription.
package sequences
