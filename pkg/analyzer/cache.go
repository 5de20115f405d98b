package analyzer

import (
	"crypto/sha256"
	"encoding/hex"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Cache holds analyzed modules keyed by path and content hash, so an
// unchanged file is never parsed twice. Analysis is a pure function of
// the source, which makes hits indistinguishable from fresh results.
type Cache struct {
	entries *lru.Cache[string, *Module]
	hits    atomic.Int64
	misses  atomic.Int64
}

// NewCache creates a cache holding at most size modules
func NewCache(size int) (*Cache, error) {
	entries, err := lru.New[string, *Module](size)
	if err != nil {
		return nil, err
	}
	return &Cache{entries: entries}, nil
}

// ContentHash returns the hex sha256 of src
func ContentHash(src []byte) string {
	sum := sha256.Sum256(src)
	return hex.EncodeToString(sum[:])
}

func cacheKey(path, hash string) string {
	return path + "\x00" + hash
}

// Get returns the module cached for path at hash
func (c *Cache) Get(path, hash string) (*Module, bool) {
	if c == nil {
		return nil, false
	}
	m, ok := c.entries.Get(cacheKey(path, hash))
	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return m, ok
}

// Add stores m under its path and hash
func (c *Cache) Add(m *Module) {
	if c == nil || m == nil {
		return
	}
	c.entries.Add(cacheKey(m.Path, m.Hash), m)
}

// Len returns the number of cached modules
func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	return c.entries.Len()
}

// Purge drops every entry
func (c *Cache) Purge() {
	if c == nil {
		return
	}
	c.entries.Purge()
}

// Stats returns the hit and miss counts
func (c *Cache) Stats() (hits, misses int64) {
	if c == nil {
		return 0, 0
	}
	return c.hits.Load(), c.misses.Load()
}
