package catgo

// Equal compares two categorical columns elementwise and returns the row
// indices where both sides are non-null and hold the same value.
//
// Both columns must originate from one source: the same string cache
// generation, or the same owning local dictionary. The check runs before any
// row is touched; on failure the whole operation is rejected with
// ErrIncompatibleSources and no partial result is produced.
func (c *Categorical) Equal(other *Categorical) (*Bitmap, error) {
	if err := checkSameSource(c, other); err != nil {
		return nil, err
	}

	out := NewBitmap()
	for i := range c.codes {
		if c.isNull(i) || other.isNull(i) {
			continue
		}
		if c.codes[i] == other.codes[i] {
			out.Add(uint32(i))
		}
	}
	return out, nil
}

// NotEqual returns the row indices where both sides are non-null and hold
// different values. Source-compatibility rules match Equal.
func (c *Categorical) NotEqual(other *Categorical) (*Bitmap, error) {
	if err := checkSameSource(c, other); err != nil {
		return nil, err
	}

	out := NewBitmap()
	for i := range c.codes {
		if c.isNull(i) || other.isNull(i) {
			continue
		}
		if c.codes[i] != other.codes[i] {
			out.Add(uint32(i))
		}
	}
	return out, nil
}

// EqualString returns the row indices holding exactly s.
//
// The literal is resolved against the column's own RevMap and never interned
// anywhere, so this can never mint an independent source and never fails,
// regardless of string cache state. A value absent from the dictionary simply
// matches no row.
func (c *Categorical) EqualString(s string) *Bitmap {
	out := NewBitmap()
	code, ok := c.revmap.Lookup(s)
	if !ok {
		return out
	}
	for i, rc := range c.codes {
		if !c.isNull(i) && rc == code {
			out.Add(uint32(i))
		}
	}
	return out
}

// IsIn returns the row indices whose value is one of the given literals.
//
// Like EqualString, the literal list is resolved against the column's own
// RevMap up front (one lookup per literal, not per row), so membership tests
// stay cheap inside grouped or repeated evaluation and can never fail.
func (c *Categorical) IsIn(values []string) *Bitmap {
	out := NewBitmap()

	accept := make(map[uint32]struct{}, len(values))
	for _, s := range values {
		if code, ok := c.revmap.Lookup(s); ok {
			accept[code] = struct{}{}
		}
	}
	if len(accept) == 0 {
		return out
	}

	for i, code := range c.codes {
		if c.isNull(i) {
			continue
		}
		if _, ok := accept[code]; ok {
			out.Add(uint32(i))
		}
	}
	return out
}
