package catgo

import (
	"fmt"
	"sort"
	"time"

	"github.com/hupe1980/catgo/dict"
	"github.com/hupe1980/catgo/internal/stringcache"
)

// StringColumn is a nullable sequence of strings, the exchange type between
// the categorical subsystem and its collaborators (value storage, casting,
// I/O).
//
// Validity holds the indices of non-null rows; a nil Validity means every row
// is valid. Values always has one entry per row, with null rows holding the
// empty string.
type StringColumn struct {
	Values   []string
	Validity *Bitmap
}

// NewStringColumn creates a StringColumn with no nulls.
func NewStringColumn(values ...string) StringColumn {
	return StringColumn{Values: values}
}

// NewNullableStringColumn creates a StringColumn from pointers, treating nil
// entries as nulls.
func NewNullableStringColumn(values []*string) StringColumn {
	col := StringColumn{
		Values:   make([]string, len(values)),
		Validity: NewBitmap(),
	}
	for i, v := range values {
		if v != nil {
			col.Values[i] = *v
			col.Validity.Add(uint32(i))
		}
	}
	return col
}

// Len returns the number of rows.
func (sc StringColumn) Len() int {
	return len(sc.Values)
}

// IsNull reports whether row i is null.
func (sc StringColumn) IsNull(i int) bool {
	return sc.Validity != nil && !sc.Validity.Contains(uint32(i))
}

// Value returns the string at row i and whether it is non-null.
func (sc StringColumn) Value(i int) (string, bool) {
	if sc.IsNull(i) {
		return "", false
	}
	return sc.Values[i], true
}

// ToPointers returns the column as a pointer slice with nil for null rows.
func (sc StringColumn) ToPointers() []*string {
	out := make([]*string, len(sc.Values))
	for i := range sc.Values {
		if !sc.IsNull(i) {
			out[i] = &sc.Values[i]
		}
	}
	return out
}

// Categorical is a nullable sequence of dictionary codes plus the reverse
// mapping that translates the codes back to strings.
//
// Codes and RevMap are immutable after construction; operations that need a
// different code space (concat, join) produce a new column. Null rows hold
// code 0 with their validity bit cleared.
type Categorical struct {
	codes    []uint32
	validity *Bitmap
	revmap   *RevMap
	sorted   bool
}

// Cast encodes a string column into a categorical column.
//
// With a string cache scope active, values are interned into the shared
// dictionary and the result carries a generation-stamped global RevMap; the
// scope must stay open for the duration of the cast. Without an active scope
// the column gets a privately owned local dictionary, and the shared cache is
// never touched.
func Cast(col StringColumn, opts ...Option) (*Categorical, error) {
	o := applyOptions(opts)
	start := time.Now()

	out := &Categorical{codes: make([]uint32, col.Len())}
	if col.Validity != nil {
		out.validity = col.Validity.Clone()
	}

	cache := stringcache.Global()
	global := cache.Active()
	if global {
		for i, v := range col.Values {
			if col.IsNull(i) {
				continue
			}
			out.codes[i], _ = cache.Encode(v)
		}
		out.revmap = newGlobalRevMap(cache.Generation(), dict.FromValues(cache.Snapshot()))
	} else {
		d := dict.New()
		for i, v := range col.Values {
			if col.IsNull(i) {
				continue
			}
			out.codes[i] = d.Encode(v)
		}
		out.revmap = newLocalRevMap(d)
	}

	o.metricsCollector.RecordCast(col.Len(), time.Since(start), nil)
	o.logger.LogCast(col.Len(), global, nil)

	return out, nil
}

// FromDictionary builds a categorical column from pre-encoded codes and their
// category list, as produced by dictionary-encoded interchange formats.
//
// Codes index into categories; every valid code must be in range and the
// category list must be free of duplicates. With a string cache scope active
// the categories are interned into the shared dictionary and the codes are
// rewritten accordingly; otherwise the column gets a local RevMap owning the
// supplied categories. Deserializers must never assume global-cache
// membership for persisted codes.
func FromDictionary(codes []uint32, validity *Bitmap, categories []string, opts ...Option) (*Categorical, error) {
	o := applyOptions(opts)
	start := time.Now()

	local := dict.FromValues(categories)
	if local.Len() != len(categories) {
		return nil, fmt.Errorf("%w: %d categories, %d distinct", ErrDuplicateCategory, len(categories), local.Len())
	}

	out := &Categorical{codes: make([]uint32, len(codes))}
	if validity != nil {
		out.validity = validity.Clone()
	}

	for i, code := range codes {
		if out.isNull(i) {
			continue
		}
		if int(code) >= len(categories) {
			err := translateError(&dict.ErrOutOfRange{Code: code, Len: len(categories)})
			o.metricsCollector.RecordCast(len(codes), time.Since(start), err)
			return nil, err
		}
		out.codes[i] = code
	}

	cache := stringcache.Global()
	if cache.Active() {
		// Rebase the supplied codes onto the shared dictionary.
		translation := make([]uint32, len(categories))
		for i, s := range categories {
			translation[i], _ = cache.Encode(s)
		}
		for i := range out.codes {
			if !out.isNull(i) {
				out.codes[i] = translation[out.codes[i]]
			}
		}
		out.revmap = newGlobalRevMap(cache.Generation(), dict.FromValues(cache.Snapshot()))
	} else {
		out.revmap = newLocalRevMap(local)
	}

	o.metricsCollector.RecordCast(len(codes), time.Since(start), nil)
	o.logger.LogCast(len(codes), cache.Active(), nil)

	return out, nil
}

// CastUtf8 decodes the column back to strings, preserving null positions.
//
// A code that cannot be resolved yields ErrStaleRevMap: the column's RevMap
// outlived its source dictionary, which indicates an internal invariant
// violation rather than user error.
func (c *Categorical) CastUtf8(opts ...Option) (StringColumn, error) {
	o := applyOptions(opts)
	start := time.Now()

	out := StringColumn{Values: make([]string, len(c.codes))}
	if c.validity != nil {
		out.Validity = c.validity.Clone()
	}

	for i, code := range c.codes {
		if c.isNull(i) {
			continue
		}
		s, err := c.revmap.Decode(code)
		if err != nil {
			err = translateError(err)
			o.metricsCollector.RecordDecode(len(c.codes), time.Since(start), err)
			return StringColumn{}, err
		}
		out.Values[i] = s
	}

	o.metricsCollector.RecordDecode(len(c.codes), time.Since(start), nil)

	return out, nil
}

// Len returns the number of rows.
func (c *Categorical) Len() int {
	return len(c.codes)
}

func (c *Categorical) isNull(i int) bool {
	return c.validity != nil && !c.validity.Contains(uint32(i))
}

// IsNull reports whether row i is null.
func (c *Categorical) IsNull(i int) bool {
	return c.isNull(i)
}

// Code returns the code at row i and whether the row is non-null.
func (c *Categorical) Code(i int) (uint32, bool) {
	if c.isNull(i) {
		return 0, false
	}
	return c.codes[i], true
}

// Codes returns a copy of the code sequence, including placeholder zeros at
// null rows.
func (c *Categorical) Codes() []uint32 {
	out := make([]uint32, len(c.codes))
	copy(out, c.codes)
	return out
}

// Validity returns a copy of the validity mask, or nil if no row is null.
func (c *Categorical) Validity() *Bitmap {
	if c.validity == nil {
		return nil
	}
	return c.validity.Clone()
}

// RevMap returns the column's reverse mapping.
func (c *Categorical) RevMap() *RevMap {
	return c.revmap
}

// Categories returns the distinct values of the column's dictionary in code
// order. After a merge this order is left-side codes first, right-only
// additions after, in first-seen order.
func (c *Categorical) Categories() []string {
	return c.revmap.Categories()
}

// IsSorted reports whether the column is flagged as sorted by a collaborator.
func (c *Categorical) IsSorted() bool {
	return c.sorted
}

// SetSorted flags the column as sorted. The flag is informational, set by the
// sorting collaborator and cleared by operations that break row order, such
// as vertical concatenation.
func (c *Categorical) SetSorted(sorted bool) {
	c.sorted = sorted
}

// Slice returns a view of rows [offset, offset+length) sharing the parent's
// RevMap, so the parent and the slice remain directly comparable.
func (c *Categorical) Slice(offset, length int) (*Categorical, error) {
	if offset < 0 || length < 0 || offset+length > len(c.codes) {
		return nil, fmt.Errorf("slice bounds [%d:%d] out of range for %d rows", offset, offset+length, len(c.codes))
	}

	out := &Categorical{
		codes:  c.codes[offset : offset+length],
		revmap: c.revmap,
		sorted: c.sorted,
	}
	if c.validity != nil {
		out.validity = NewBitmap()
		for i := 0; i < length; i++ {
			if c.validity.Contains(uint32(offset + i)) {
				out.validity.Add(uint32(i))
			}
		}
	}
	return out, nil
}

// ValueCount is one entry of a ValueCounts result.
type ValueCount struct {
	Value string
	Null  bool
	Count int
}

// ValueCounts returns per-category row counts. Null rows are counted as their
// own group. With sortByCount set, groups are ordered by descending count
// (ties broken by first appearance); otherwise groups appear in code order
// with the null group last.
func (c *Categorical) ValueCounts(sortByCount bool) ([]ValueCount, error) {
	counts := make(map[uint32]int)
	nulls := 0
	for i, code := range c.codes {
		if c.isNull(i) {
			nulls++
			continue
		}
		counts[code]++
	}

	out := make([]ValueCount, 0, len(counts)+1)
	for _, code := range sortedCodes(counts) {
		s, err := c.revmap.Decode(code)
		if err != nil {
			return nil, translateError(err)
		}
		out = append(out, ValueCount{Value: s, Count: counts[code]})
	}
	if nulls > 0 {
		out = append(out, ValueCount{Null: true, Count: nulls})
	}

	if sortByCount {
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Count > out[j].Count
		})
	}
	return out, nil
}

func sortedCodes(counts map[uint32]int) []uint32 {
	codes := make([]uint32, 0, len(counts))
	for code := range counts {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}
