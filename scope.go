package catgo

import (
	"sync"

	"github.com/hupe1980/catgo/internal/stringcache"
)

// ScopeHandle keeps a string cache scope open until released.
//
// Release is idempotent and never fails, so a handle can be released on every
// exit path (typically via defer) without unbalancing the scope depth.
type ScopeHandle struct {
	once  sync.Once
	cache *stringcache.Cache
}

// EnterStringCache opens a string cache scope.
//
// While at least one scope is open, every cast to categorical interns into
// the shared dictionary, making the resulting columns mutually comparable.
// Scopes nest: releasing an inner handle leaves an outer scope's dictionary
// intact, and only the release of the outermost handle clears the cache.
//
//	h := catgo.EnterStringCache()
//	defer h.Release()
func EnterStringCache() *ScopeHandle {
	c := stringcache.Global()
	c.Enter()
	return &ScopeHandle{cache: c}
}

// Release closes the scope. Calling Release more than once is safe; only the
// first call decrements the scope depth.
func (h *ScopeHandle) Release() {
	if h == nil {
		return
	}
	h.once.Do(h.cache.Exit)
}

// UsingStringCache reports whether a string cache scope is currently active.
func UsingStringCache() bool {
	return stringcache.Global().Active()
}

// EnableStringCache opens a string cache scope without a handle. Prefer
// EnterStringCache with a deferred Release; the unscoped form exists for
// interactive use where a lexical scope is impractical.
func EnableStringCache() {
	stringcache.Global().Enter()
}

// DisableStringCache closes one unscoped string cache level. It is a no-op
// when the cache is inactive.
func DisableStringCache() {
	stringcache.Global().Exit()
}

// ResetStringCache forces the process-wide cache back to an inactive, empty
// state, invalidating every global RevMap minted so far. It exists for test
// teardown.
func ResetStringCache() {
	stringcache.Global().Reset()
}
