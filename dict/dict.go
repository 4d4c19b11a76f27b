// Package dict implements the append-only bidirectional string/code mapping
// that backs categorical columns.
//
// A Dictionary assigns small dense codes to strings in first-seen order.
// Codes start at 0, are contiguous, and are never reused or reassigned:
// growing the backing storage must not change the code of any previously
// encoded string. This stability is what allows a column to keep raw codes
// while the dictionary behind it keeps growing.
//
// A Dictionary is not safe for concurrent use. The process-wide instance is
// guarded by the string cache (see internal/stringcache); a column-local
// instance is owned by exactly one column or by a family of columns that
// explicitly share it.
package dict

import "fmt"

// ErrOutOfRange indicates that a code has no entry in the dictionary it was
// decoded against. For correctly scoped usage this never happens; it signals
// a stale reverse mapping that outlived its source dictionary and is treated
// as an internal-consistency bug rather than user error.
type ErrOutOfRange struct {
	Code uint32
	Len  int
}

func (e *ErrOutOfRange) Error() string {
	return fmt.Sprintf("categorical code %d out of range: dictionary holds %d entries", e.Code, e.Len)
}

// Dictionary is an append-only mapping between strings and dense uint32 codes.
type Dictionary struct {
	values []string
	lookup map[string]uint32
}

// New creates an empty Dictionary.
func New() *Dictionary {
	return NewWithCapacity(0)
}

// NewWithCapacity creates an empty Dictionary with room for n entries.
func NewWithCapacity(n int) *Dictionary {
	return &Dictionary{
		values: make([]string, 0, n),
		lookup: make(map[string]uint32, n),
	}
}

// FromValues creates a Dictionary whose codes follow the order of values.
// Duplicate strings keep their first-seen code.
func FromValues(values []string) *Dictionary {
	d := NewWithCapacity(len(values))
	for _, s := range values {
		d.Encode(s)
	}
	return d
}

// Encode returns the code for s, assigning the next free code if s has not
// been seen before. It never fails and never invalidates existing codes;
// slice append keeps growth amortized.
func (d *Dictionary) Encode(s string) uint32 {
	if code, ok := d.lookup[s]; ok {
		return code
	}
	code := uint32(len(d.values))
	d.values = append(d.values, s)
	d.lookup[s] = code
	return code
}

// Lookup returns the code for s without inserting it.
func (d *Dictionary) Lookup(s string) (uint32, bool) {
	code, ok := d.lookup[s]
	return code, ok
}

// Contains reports whether s has been encoded.
func (d *Dictionary) Contains(s string) bool {
	_, ok := d.lookup[s]
	return ok
}

// Decode returns the string assigned to code.
func (d *Dictionary) Decode(code uint32) (string, error) {
	if int(code) >= len(d.values) {
		return "", &ErrOutOfRange{Code: code, Len: len(d.values)}
	}
	return d.values[code], nil
}

// Len returns the number of encoded strings.
func (d *Dictionary) Len() int {
	return len(d.values)
}

// Values returns the encoded strings in code order. The returned slice is a
// copy and safe to retain.
func (d *Dictionary) Values() []string {
	out := make([]string, len(d.values))
	copy(out, d.values)
	return out
}

// Clear drops all entries while keeping the backing storage for reuse.
func (d *Dictionary) Clear() {
	d.values = d.values[:0]
	clear(d.lookup)
}

// Merge builds the union of d and other.
//
// Codes of d are preserved verbatim in the result; strings only present in
// other are appended in other's first-seen order. The returned translation
// table maps each of other's codes to its code in the merged dictionary
// (len(translation) == other.Len()). The result is deterministic, and the
// ordering contract (left codes first, right-only additions after) is the
// observable ordering of distinct categorical values after a merge.
func (d *Dictionary) Merge(other *Dictionary) (*Dictionary, []uint32) {
	merged := NewWithCapacity(len(d.values) + len(other.values))
	for _, s := range d.values {
		merged.Encode(s)
	}
	translation := make([]uint32, len(other.values))
	for i, s := range other.values {
		translation[i] = merged.Encode(s)
	}
	return merged, translation
}
