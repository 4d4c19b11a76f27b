// Package stringcache holds the process-wide categorical string cache.
//
// The cache is a single guarded unit of {dictionary, generation, depth}.
// Activation is depth-counted so independently written pipeline stages can
// nest scopes without an inner exit tearing down an outer scope's dictionary.
// The generation stamp lets reverse mappings produced under one cache
// lifetime be told apart from those produced under another.
package stringcache

import (
	"sync"

	"github.com/hupe1980/catgo/dict"
)

// Cache is a depth-counted, generation-stamped string cache.
//
// All methods are safe for concurrent use. One RWMutex guards the dictionary,
// the generation counter and the scope depth as a single unit; it is held
// only for the duration of an encode or an enter/exit call.
type Cache struct {
	mu         sync.RWMutex
	dict       *dict.Dictionary
	generation uint32
	depth      int
}

// New creates an inactive Cache.
func New() *Cache {
	return &Cache{dict: dict.New()}
}

var global = New()

// Global returns the process-wide cache instance.
func Global() *Cache {
	return global
}

// Enter increments the scope depth and returns the generation the scope runs
// under. On the 0->1 transition the cache becomes active; entering while
// already active joins the outer scope and leaves dictionary and generation
// untouched.
func (c *Cache) Enter() uint32 {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.depth++
	return c.generation
}

// Exit decrements the scope depth. On the 1->0 transition the dictionary is
// cleared and the generation bumped, so reverse mappings minted during that
// lifetime become detectably stale once the cache is reused. Exit at depth
// zero is a no-op: scope release must never fail on unwind paths.
func (c *Cache) Exit() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.depth == 0 {
		return
	}
	c.depth--
	if c.depth == 0 {
		c.dict.Clear()
		c.generation++
	}
}

// Active reports whether at least one scope is open.
func (c *Cache) Active() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.depth > 0
}

// Generation returns the current cache generation.
func (c *Cache) Generation() uint32 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.generation
}

// Encode interns s into the shared dictionary and returns its code together
// with the generation it was minted under.
func (c *Cache) Encode(s string) (code, generation uint32) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.dict.Encode(s), c.generation
}

// Decode resolves a code against the shared dictionary.
func (c *Cache) Decode(code uint32) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.dict.Decode(code)
}

// Lookup returns the code for s without interning it.
func (c *Cache) Lookup(s string) (uint32, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.dict.Lookup(s)
}

// Len returns the number of interned strings.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.dict.Len()
}

// Snapshot returns the interned strings in code order.
func (c *Cache) Snapshot() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.dict.Values()
}

// Reset forces the cache back to an inactive, empty state and bumps the
// generation. It exists for test teardown; production code balances Enter
// and Exit instead.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.depth = 0
	c.dict.Clear()
	c.generation++
}
