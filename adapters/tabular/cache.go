package tabular

import (
	"crypto/sha256"
	"encoding/hex"
	"log"
	"sync"

	"desa/domain/survey"

	"golang.org/x/sync/singleflight"
)

// CachingLoader memoizes ReadTable results keyed by file content. The
// loader is a pure function of its input bytes, so a content-addressed
// cache never serves stale data. singleflight collapses concurrent
// uploads of the same file into a single parse.
type CachingLoader struct {
	mu         sync.RWMutex
	cache      map[string]*survey.Table
	group      singleflight.Group
	maxEntries int
}

// NewCachingLoader creates a loader cache holding up to maxEntries
// parsed tables.
func NewCachingLoader(maxEntries int) *CachingLoader {
	if maxEntries < 1 {
		maxEntries = 1
	}
	return &CachingLoader{
		cache:      make(map[string]*survey.Table),
		maxEntries: maxEntries,
	}
}

// Load returns the parsed table for the given file, parsing at most once
// per distinct content.
func (l *CachingLoader) Load(name string, data []byte) (*survey.Table, error) {
	key := contentKey(data)

	l.mu.RLock()
	cached, ok := l.cache[key]
	l.mu.RUnlock()
	if ok {
		log.Printf("[CachingLoader] Cache hit for %s", name)
		return cached, nil
	}

	result, err, _ := l.group.Do(key, func() (interface{}, error) {
		table, err := NewDataReader(name, data).ReadTable()
		if err != nil {
			return nil, err
		}
		l.store(key, table)
		return table, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*survey.Table), nil
}

// Len returns the number of cached tables.
func (l *CachingLoader) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.cache)
}

func (l *CachingLoader) store(key string, table *survey.Table) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.cache) >= l.maxEntries {
		// Cache is an efficiency aid, not correctness: reset wholesale
		// rather than tracking recency.
		log.Printf("[CachingLoader] Cache full (%d entries), resetting", len(l.cache))
		l.cache = make(map[string]*survey.Table)
	}
	l.cache[key] = table
}

func contentKey(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
