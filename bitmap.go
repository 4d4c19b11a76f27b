package catgo

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// Bitmap is a set of row indices backed by a 32-bit Roaring Bitmap.
//
// It serves two roles: as the validity (non-null) mask of a column, and as
// the row selection returned by filter-style operations such as Equal and
// IsIn.
type Bitmap struct {
	rb *roaring.Bitmap
}

// NewBitmap creates an empty Bitmap.
func NewBitmap() *Bitmap {
	return &Bitmap{rb: roaring.New()}
}

// Add adds a row index to the bitmap.
func (b *Bitmap) Add(i uint32) {
	b.rb.Add(i)
}

// AddRange adds all row indices in [start, end).
func (b *Bitmap) AddRange(start, end uint64) {
	b.rb.AddRange(start, end)
}

// Contains checks if a row index is in the bitmap.
func (b *Bitmap) Contains(i uint32) bool {
	return b.rb.Contains(i)
}

// IsEmpty returns true if the bitmap is empty.
func (b *Bitmap) IsEmpty() bool {
	return b.rb.IsEmpty()
}

// Cardinality returns the number of row indices in the bitmap.
func (b *Bitmap) Cardinality() uint64 {
	return b.rb.GetCardinality()
}

// Clone returns a deep copy of the bitmap.
func (b *Bitmap) Clone() *Bitmap {
	return &Bitmap{rb: b.rb.Clone()}
}

// Equals reports whether two bitmaps contain the same row indices.
func (b *Bitmap) Equals(other *Bitmap) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.rb.Equals(other.rb)
}

// ToArray returns the row indices in ascending order.
func (b *Bitmap) ToArray() []uint32 {
	return b.rb.ToArray()
}

// Iterator returns an iterator over the row indices in ascending order.
func (b *Bitmap) Iterator() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		it := b.rb.Iterator()
		for it.HasNext() {
			if !yield(it.Next()) {
				return
			}
		}
	}
}
