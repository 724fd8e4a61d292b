package sequences

import "github.com/seqflow/sequences/seqs"

// Transform is a whole-sequence transformation, the unit of pipeline
// composition. Operators such as skip or take are Transforms: they consume
// one sequence and produce another without pulling any elements themselves.
type Transform[T any] func(seqs.Sequence[T]) seqs.Sequence[T]

// Compose applies each transform to the previous result, left to right,
// starting from the original sequence. Composition is purely structural: no
// transform's production logic runs until the returned sequence is iterated.
// Composing zero transforms returns the original sequence itself, not a
// wrapper. Nil transforms are skipped.
func Compose[T any](s seqs.Sequence[T], transforms ...Transform[T]) seqs.Sequence[T] {
	for _, transform := range transforms {
		if transform == nil {
			continue
		}
		s = transform(s)
	}
	return s
}
