package catgo

import (
	"github.com/hupe1980/catgo/dict"
	"golang.org/x/sync/errgroup"
)

// translateChunkSize is the number of codes one worker rewrites at a time
// when a translation is applied in parallel.
const translateChunkSize = 1 << 16

// reconcile unifies the code spaces of two columns for a join or a vertical
// concatenation.
//
// It returns the RevMap of the combined code space and, when the right side
// needs rewriting, a translation table indexed by the right side's codes.
// A nil translation means the right side's codes are already valid in the
// combined space.
//
// Outcomes by RevMap kind:
//   - Global/Global, same generation: compatible; the longer snapshot of the
//     shared dictionary is the union, no translation.
//   - Local/Local, same owning dictionary: compatible as-is.
//   - Local/Local, independent dictionaries: reconciled through
//     dict.Merge — left codes dominate, right-only strings are appended in
//     the right side's first-seen order, and the right codes are rewritten.
//   - Global/Global with different generations, or Global/Local in either
//     order: ErrIncompatibleSources.
func reconcile(left, right *RevMap) (*RevMap, []uint32, error) {
	if left.SameSource(right) {
		if left.kind == RevMapGlobal && right.dict.Len() > left.dict.Len() {
			// Snapshots of one append-only dictionary; the longer one is a
			// superset of the other.
			return right, nil, nil
		}
		return left, nil, nil
	}

	if left.kind == RevMapLocal && right.kind == RevMapLocal {
		merged, translation := left.dict.Merge(right.dict)
		return newLocalRevMap(merged), translation, nil
	}

	return nil, nil, ErrIncompatibleSources
}

// checkSameSource is the eager compatibility gate for elementwise operations
// between two categorical columns. It runs before any row-level work so a
// failed operation leaves no partial results.
func checkSameSource(left, right *Categorical) error {
	if len(left.codes) != len(right.codes) {
		return &ErrLengthMismatch{Left: len(left.codes), Right: len(right.codes)}
	}
	if !left.revmap.SameSource(right.revmap) {
		return ErrIncompatibleSources
	}
	return nil
}

// translateCodes rewrites codes through a translation table, leaving null
// rows at their placeholder value. Large columns are rewritten in chunks by
// up to parallelism workers.
func translateCodes(codes []uint32, validity *Bitmap, table []uint32, parallelism int) ([]uint32, error) {
	out := make([]uint32, len(codes))

	translate := func(start, end int) error {
		for i := start; i < end; i++ {
			if validity != nil && !validity.Contains(uint32(i)) {
				continue
			}
			code := codes[i]
			if int(code) >= len(table) {
				return translateError(&dict.ErrOutOfRange{Code: code, Len: len(table)})
			}
			out[i] = table[code]
		}
		return nil
	}

	if parallelism <= 1 || len(codes) <= translateChunkSize {
		if err := translate(0, len(codes)); err != nil {
			return nil, err
		}
		return out, nil
	}

	var g errgroup.Group
	g.SetLimit(parallelism)
	for start := 0; start < len(codes); start += translateChunkSize {
		end := min(start+translateChunkSize, len(codes))
		g.Go(func() error {
			return translate(start, end)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
