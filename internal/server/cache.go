package server

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	cache "github.com/patrickmn/go-cache"
)

// ResponseCache caches analysis responses keyed by request body. Dashboards
// tend to re-post the same batch on every refresh; identical bodies within
// the TTL skip recomputation.
type ResponseCache struct {
	cache      *cache.Cache
	maxEntries int
}

// NewResponseCache creates a cache with the given entry TTL and size bound.
func NewResponseCache(ttl time.Duration, maxEntries int) *ResponseCache {
	return &ResponseCache{
		cache:      cache.New(ttl, ttl*2),
		maxEntries: maxEntries,
	}
}

// Get returns the cached response for an identical request body, if any.
func (rc *ResponseCache) Get(body []byte) (*AnalyzeResponse, bool) {
	v, found := rc.cache.Get(bodyKey(body))
	if !found {
		return nil, false
	}
	resp, ok := v.(*AnalyzeResponse)
	return resp, ok
}

// Set stores a response. When the cache is full the entry is dropped;
// entries expire on their own soon enough that eviction is not worth the
// bookkeeping.
func (rc *ResponseCache) Set(body []byte, resp *AnalyzeResponse) {
	if rc.cache.ItemCount() >= rc.maxEntries {
		return
	}
	rc.cache.SetDefault(bodyKey(body), resp)
}

func bodyKey(body []byte) string {
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:])
}
