package colormap

import (
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
)

// Resolver resolves a colormap name or gradient file path.
type Resolver interface {
	Resolve(desc string) (Scalar, error)
}

// Cache resolves built-in names and memoizes gradient images loaded from
// disk. It is safe for concurrent use.
//
// A descriptor is a built-in name or image path, optionally followed by "^g" to
// warp the domain with Gamma, e.g. "plasma^2".
type Cache struct {
	mu    sync.RWMutex
	items map[string]*cacheEntry
}

type cacheEntry struct {
	cm  Listed
	err error
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{items: make(map[string]*cacheEntry)}
}

// Resolve returns the colormap described by desc. An empty descriptor resolves
// to (nil, nil) so callers can fall back to a scheme default.
func (c *Cache) Resolve(desc string) (Scalar, error) {
	desc = strings.TrimSpace(desc)
	if desc == "" {
		return nil, nil
	}

	base, gamma, err := splitGamma(desc)
	if err != nil {
		return nil, err
	}

	var cm Scalar
	if b, ok := Lookup(base); ok {
		cm = b
	} else {
		l, err := c.load(base)
		if err != nil {
			return nil, err
		}
		cm = l
	}

	if gamma != 1 {
		cm = Gamma(cm, gamma)
	}
	if err := Validate(cm); err != nil {
		return nil, errors.Wrapf(err, "colormap: %s", desc)
	}
	return cm, nil
}

func (c *Cache) load(path string) (Listed, error) {
	key := path
	if abs, err := filepath.Abs(path); err == nil {
		key = abs
	}

	// Fast path: read lock
	c.mu.RLock()
	if entry, exists := c.items[key]; exists {
		c.mu.RUnlock()
		return entry.cm, entry.err
	}
	c.mu.RUnlock()

	// Slow path: load from disk
	cm, err := LoadImage(path)

	// Write lock with double-check
	c.mu.Lock()
	defer c.mu.Unlock()
	if entry, exists := c.items[key]; exists {
		return entry.cm, entry.err
	}
	c.items[key] = &cacheEntry{cm: cm, err: err}
	return cm, err
}

// Len returns the number of cached gradient files.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func splitGamma(desc string) (string, float64, error) {
	i := strings.LastIndexByte(desc, '^')
	if i < 0 {
		return desc, 1, nil
	}
	g, err := strconv.ParseFloat(desc[i+1:], 64)
	if err != nil || !(g > 0) {
		return "", 0, errors.Wrapf(ErrInvalidColormap, "colormap: bad gamma in %q", desc)
	}
	return desc[:i], g, nil
}
