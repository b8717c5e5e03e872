package engine

import (
	"sort"
	"strings"
	"sync"
)

// FilterCache memoizes Filter results per selection. Filtering is pure,
// so a cached view is always equal to a fresh one; the cache exists only
// to skip re-scanning the table when a dashboard re-requests the same
// selection. Invalidate swaps the underlying table when the data source
// changes, dropping every cached view.
//
// Safe for concurrent readers (HTTP handlers share one cache).
type FilterCache struct {
	mu    sync.RWMutex
	table *Table
	views map[string]*View
}

func NewFilterCache(t *Table) *FilterCache {
	return &FilterCache{table: t, views: make(map[string]*View)}
}

// Filter returns the memoized view for sel, computing it on first use.
func (c *FilterCache) Filter(sel Selection) *View {
	key := fingerprint(sel)

	c.mu.RLock()
	v, ok := c.views[key]
	c.mu.RUnlock()
	if ok {
		return v
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.views[key]; ok {
		return v
	}
	v = Filter(c.table, sel)
	c.views[key] = v
	return v
}

// Invalidate replaces the table and drops all cached views.
func (c *FilterCache) Invalidate(t *Table) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.table = t
	c.views = make(map[string]*View)
}

// fingerprint canonicalizes a selection by value: dimensions sorted,
// values within each dimension sorted, so equal selections share a key
// regardless of construction order.
func fingerprint(sel Selection) string {
	dims := make([]string, 0, len(sel))
	for dim := range sel {
		dims = append(dims, dim)
	}
	sort.Strings(dims)

	var b strings.Builder
	for _, dim := range dims {
		vals := make([]string, len(sel[dim]))
		copy(vals, sel[dim])
		sort.Strings(vals)
		b.WriteString(dim)
		b.WriteByte('=')
		b.WriteString(strings.Join(vals, "\x1f"))
		b.WriteByte('\x1e')
	}
	return b.String()
}
