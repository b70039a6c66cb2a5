package cache

import (
	"sync"
	"time"
)

type entry struct {
	values   []string
	storedAt time.Time
}

// SuggestionCache は検索サジェスト専用のTTLキャッシュ。
// キーは生のクエリ文字列。エントリ数の上限は設けない
// （サジェストのクエリ種類は実運用上少ないため）。
type SuggestionCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]entry
}

func NewSuggestionCache(ttl time.Duration) *SuggestionCache {
	return &SuggestionCache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]entry),
	}
}

func (c *SuggestionCache) Get(query string) ([]string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[query]
	if !ok {
		return nil, false
	}
	if c.now().Sub(e.storedAt) >= c.ttl {
		delete(c.entries, query)
		return nil, false
	}
	return e.values, true
}

func (c *SuggestionCache) Set(query string, values []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[query] = entry{values: values, storedAt: c.now()}
}

// Purge は全エントリを破棄する（Meal変更イベント時に呼ぶ）。
func (c *SuggestionCache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry)
}
