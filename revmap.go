package catgo

import "github.com/hupe1980/catgo/dict"

// RevMapKind discriminates the two kinds of reverse mapping a categorical
// column can carry.
type RevMapKind uint8

const (
	// RevMapLocal marks a privately owned dictionary, used when a column is
	// materialized with no string cache scope active.
	RevMapLocal RevMapKind = iota
	// RevMapGlobal marks a dictionary minted under the process-wide string
	// cache, stamped with the cache generation it was produced in.
	RevMapGlobal
)

// String implements fmt.Stringer.
func (k RevMapKind) String() string {
	switch k {
	case RevMapLocal:
		return "Local"
	case RevMapGlobal:
		return "Global"
	default:
		return "Unknown"
	}
}

// RevMap is the reverse (code -> string) mapping attached to a categorical
// column.
//
// A global RevMap holds a snapshot of the shared cache dictionary as of the
// column's construction, stamped with the cache generation; columns carrying
// the same generation share one code space. A local RevMap owns its
// dictionary outright — or shares it with columns explicitly derived from the
// same one, which is the only way two local RevMaps can be compatible.
type RevMap struct {
	kind       RevMapKind
	generation uint32
	dict       *dict.Dictionary
}

func newGlobalRevMap(generation uint32, d *dict.Dictionary) *RevMap {
	return &RevMap{kind: RevMapGlobal, generation: generation, dict: d}
}

func newLocalRevMap(d *dict.Dictionary) *RevMap {
	return &RevMap{kind: RevMapLocal, dict: d}
}

// Kind returns the RevMap kind tag.
func (rm *RevMap) Kind() RevMapKind {
	return rm.kind
}

// Generation returns the string cache generation for a global RevMap, and 0
// for a local one.
func (rm *RevMap) Generation() uint32 {
	if rm.kind != RevMapGlobal {
		return 0
	}
	return rm.generation
}

// Len returns the number of categories in the mapping.
func (rm *RevMap) Len() int {
	return rm.dict.Len()
}

// Decode resolves a code to its string value.
func (rm *RevMap) Decode(code uint32) (string, error) {
	return rm.dict.Decode(code)
}

// Lookup returns the code for s without extending the mapping. Literals
// compared against a column go through here so they never mint an
// independent source.
func (rm *RevMap) Lookup(s string) (uint32, bool) {
	return rm.dict.Lookup(s)
}

// Categories returns the category strings in code order.
func (rm *RevMap) Categories() []string {
	return rm.dict.Values()
}

// SameSource reports whether rm and other are provably backed by one code
// space: both global with equal generation, or both local sharing the same
// owning dictionary. The switch over kinds is the single place the
// compatibility rule lives.
func (rm *RevMap) SameSource(other *RevMap) bool {
	if rm == nil || other == nil || rm.kind != other.kind {
		return false
	}
	switch rm.kind {
	case RevMapGlobal:
		return rm.generation == other.generation
	case RevMapLocal:
		return rm.dict == other.dict
	default:
		return false
	}
}
