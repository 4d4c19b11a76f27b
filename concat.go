package catgo

import "time"

// Concat vertically concatenates two categorical columns.
//
// Compatible sources (same cache generation, or a shared local dictionary)
// concatenate without touching any code. Two columns with independent local
// dictionaries are reconciled: the left dictionary's codes are preserved, the
// right side's additions are appended in their first-seen order, and every
// right-side code is rewritten through the resulting translation table before
// the rows are stitched together. A global column cannot be concatenated with
// a column from another cache lifetime or with a local one;
// ErrIncompatibleSources is returned before any row is copied.
//
// The result is never flagged as sorted, even if both inputs were.
func Concat(left, right *Categorical, opts ...Option) (*Categorical, error) {
	o := applyOptions(opts)
	start := time.Now()

	revmap, translation, err := reconcile(left.revmap, right.revmap)
	if err != nil {
		o.metricsCollector.RecordConcat(left.Len()+right.Len(), time.Since(start), err)
		o.logger.LogMerge("concat", left.Len(), right.Len(), err)
		return nil, err
	}

	rightCodes := right.codes
	if translation != nil {
		rightCodes, err = translateCodes(right.codes, right.validity, translation, o.parallelism)
		if err != nil {
			o.metricsCollector.RecordConcat(left.Len()+right.Len(), time.Since(start), err)
			return nil, err
		}
	}

	out := &Categorical{
		codes:  make([]uint32, 0, left.Len()+right.Len()),
		revmap: revmap,
	}
	out.codes = append(out.codes, left.codes...)
	out.codes = append(out.codes, rightCodes...)

	if left.validity != nil || right.validity != nil {
		out.validity = NewBitmap()
		for i := range left.codes {
			if !left.isNull(i) {
				out.validity.Add(uint32(i))
			}
		}
		for i := range rightCodes {
			if !right.isNull(i) {
				out.validity.Add(uint32(left.Len() + i))
			}
		}
	}

	o.metricsCollector.RecordConcat(out.Len(), time.Since(start), nil)
	o.logger.LogMerge("concat", left.Len(), right.Len(), nil)

	return out, nil
}
