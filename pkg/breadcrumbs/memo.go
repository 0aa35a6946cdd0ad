package breadcrumbs

import (
	"strconv"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru"
	"golang.org/x/sync/singleflight"

	"github.com/mesh-intelligence/breadcrumbs/pkg/types"
)

// DefaultMemoSize is the number of results a Memo keeps when NewMemo is
// given a non-positive size.
const DefaultMemoSize = 1024

// MemoStats reports cache activity.
type MemoStats struct {
	Hits   uint64 `json:"hits"`
	Misses uint64 `json:"misses"`
	Size   int    `json:"size"`
}

// Memo caches Compute results keyed by the current path, the route table
// version and the config. Entries are evicted least recently used first.
// Concurrent misses on one key compute once. Memo is safe for concurrent
// use.
//
// The key does not cover the live route metadata, so callers must derive
// the current route from the same table revision they pass in.
type Memo struct {
	cache  *lru.Cache
	group  singleflight.Group
	hits   atomic.Uint64
	misses atomic.Uint64
}

// NewMemo creates a Memo holding up to size results.
func NewMemo(size int) *Memo {
	if size <= 0 {
		size = DefaultMemoSize
	}
	// lru.New only fails for non-positive sizes.
	cache, _ := lru.New(size)
	return &Memo{cache: cache}
}

// Compute returns the cached result for (current.Path, table.Version, cfg)
// or computes and stores it. A table with an empty Version is never
// cached. The second return value reports a cache hit. Cached results are
// shared between callers and must not be modified.
func (m *Memo) Compute(current types.CurrentRoute, table types.RouteTable, cfg types.Config) (types.Result, bool) {
	if table.Version == "" {
		m.misses.Add(1)
		return Compute(current, table.Routes, cfg), false
	}
	key := memoKey(current.Path, table.Version, cfg)
	if v, ok := m.cache.Get(key); ok {
		m.hits.Add(1)
		return v.(types.Result), true
	}
	m.misses.Add(1)
	v, _, _ := m.group.Do(key, func() (any, error) {
		res := Compute(current, table.Routes, cfg)
		m.cache.Add(key, res)
		return res, nil
	})
	return v.(types.Result), false
}

// Purge drops every cached result.
func (m *Memo) Purge() {
	m.cache.Purge()
}

// Stats returns the hit and miss counters and the current size.
func (m *Memo) Stats() MemoStats {
	return MemoStats{
		Hits:   m.hits.Load(),
		Misses: m.misses.Load(),
		Size:   m.cache.Len(),
	}
}

func memoKey(path, version string, cfg types.Config) string {
	slash := "unset"
	if cfg.TrailingSlash != nil {
		slash = strconv.FormatBool(*cfg.TrailingSlash)
	}
	return version + "\x00" + slash + "\x00" + cfg.Prefix + "\x00" + path
}
