package catgo

import "time"

// JoinType selects the join variant for JoinOn.
type JoinType uint8

const (
	// JoinInner keeps key matches only.
	JoinInner JoinType = iota
	// JoinOuter keeps unmatched rows from both sides.
	JoinOuter
)

// String implements fmt.Stringer.
func (jt JoinType) String() string {
	switch jt {
	case JoinInner:
		return "inner"
	case JoinOuter:
		return "outer"
	default:
		return "unknown"
	}
}

// JoinResult describes the outcome of matching two categorical key columns.
type JoinResult struct {
	// Keys is the merged key column, one row per output row, backed by the
	// union dictionary of both inputs.
	Keys *Categorical

	// LeftRows and RightRows map each output row to the contributing input
	// row on each side; -1 marks the missing side of an outer row.
	LeftRows  []int
	RightRows []int

	// Translation maps the right column's original codes to the merged code
	// space. Nil when the right side needed no rewriting.
	Translation []uint32
}

// JoinOn matches two categorical key columns for the row-assembly
// collaborator.
//
// Source compatibility is checked before any row-level work, with the same
// rules as Concat: same cache generation or a shared local dictionary joins
// on raw codes, independent local dictionaries are reconciled through a
// dictionary merge (left codes dominant), and anything else fails with
// ErrIncompatibleSources.
//
// Inner joins emit matches in left-row order. Outer joins emit the right
// side's rows first — matched keys coalesced with their left partners — then
// the unmatched left rows in left order. Null keys never match; under an
// outer join they survive as null key rows.
func JoinOn(left, right *Categorical, how JoinType, opts ...Option) (*JoinResult, error) {
	o := applyOptions(opts)
	start := time.Now()

	revmap, translation, err := reconcile(left.revmap, right.revmap)
	if err != nil {
		o.metricsCollector.RecordJoin(0, time.Since(start), err)
		o.logger.LogMerge("join", left.Len(), right.Len(), err)
		return nil, err
	}

	rightCodes := right.codes
	if translation != nil {
		rightCodes, err = translateCodes(right.codes, right.validity, translation, o.parallelism)
		if err != nil {
			o.metricsCollector.RecordJoin(0, time.Since(start), err)
			return nil, err
		}
	}

	// Left codes are dominant in the merged space and need no rewriting.
	leftIndex := make(map[uint32][]int, left.Len())
	for i := range left.codes {
		if left.isNull(i) {
			continue
		}
		leftIndex[left.codes[i]] = append(leftIndex[left.codes[i]], i)
	}

	res := &JoinResult{Translation: translation}
	keys := &Categorical{revmap: revmap}
	keyValidity := NewBitmap()
	hasNullKey := false

	emit := func(code uint32, null bool, l, r int) {
		if !null {
			keyValidity.Add(uint32(len(keys.codes)))
		} else {
			hasNullKey = true
		}
		keys.codes = append(keys.codes, code)
		res.LeftRows = append(res.LeftRows, l)
		res.RightRows = append(res.RightRows, r)
	}

	switch how {
	case JoinInner:
		rightIndex := make(map[uint32][]int, len(rightCodes))
		for i := range rightCodes {
			if right.isNull(i) {
				continue
			}
			rightIndex[rightCodes[i]] = append(rightIndex[rightCodes[i]], i)
		}
		for i := range left.codes {
			if left.isNull(i) {
				continue
			}
			for _, r := range rightIndex[left.codes[i]] {
				emit(left.codes[i], false, i, r)
			}
		}

	case JoinOuter:
		matchedLeft := make(map[int]struct{})
		for i := range rightCodes {
			if right.isNull(i) {
				emit(0, true, -1, i)
				continue
			}
			partners := leftIndex[rightCodes[i]]
			if len(partners) == 0 {
				emit(rightCodes[i], false, -1, i)
				continue
			}
			for _, l := range partners {
				matchedLeft[l] = struct{}{}
				emit(rightCodes[i], false, l, i)
			}
		}
		for i := range left.codes {
			if _, ok := matchedLeft[i]; ok {
				continue
			}
			emit(left.codes[i], left.isNull(i), i, -1)
		}
	}

	if hasNullKey {
		keys.validity = keyValidity
	}
	res.Keys = keys

	o.metricsCollector.RecordJoin(keys.Len(), time.Since(start), nil)
	o.logger.LogMerge("join", left.Len(), right.Len(), nil)

	return res, nil
}
