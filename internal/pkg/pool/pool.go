package pool

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/allegro/bigcache/v3"
)

// BigCache L1 cache backed by bigcache with a JSON codec.
// Serialization lives here so services deal in typed values only.
type BigCache[V any] struct {
	cache *bigcache.BigCache
}

// NewBigCache Create a bigcache instance.
// capacityMB is the hard memory limit, expiration the entry TTL.
func NewBigCache[V any](capacityMB int, expiration time.Duration) (*BigCache[V], error) {
	config := bigcache.DefaultConfig(expiration)
	config.HardMaxCacheSize = capacityMB
	config.MaxEntrySize = 512 * 1024

	cache, err := bigcache.NewBigCache(config)
	if err != nil {
		return nil, err
	}
	return &BigCache[V]{cache: cache}, nil
}

func (c *BigCache[V]) Get(key string) (V, bool) {
	var v V
	data, err := c.cache.Get(key)
	if err != nil {
		return v, false
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return v, false
	}
	return v, true
}

func (c *BigCache[V]) Set(key string, value V) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.cache.Set(key, data)
}

func (c *BigCache[V]) Remove(key string) error {
	return c.cache.Delete(key)
}

func (c *BigCache[V]) Flush() error {
	return c.cache.Reset()
}

func (c *BigCache[V]) Close() error {
	return c.cache.Close()
}

// Cache Bounded in-process map cache.
// Evicts an arbitrary entry once capacity is reached; entries are small
// DTOs so precision of the eviction order does not matter here.
type Cache[K comparable, V any] struct {
	mu       sync.RWMutex
	data     map[K]V
	capacity int
}

// NewCache Create a bounded map cache
func NewCache[K comparable, V any](capacity int) *Cache[K, V] {
	if capacity < 1 {
		capacity = 1
	}
	return &Cache[K, V]{
		data:     make(map[K]V, capacity),
		capacity: capacity,
	}
}

func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.data[key]
	return v, ok
}

func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.data[key]; !ok && len(c.data) >= c.capacity {
		for k := range c.data {
			delete(c.data, k)
			break
		}
	}
	c.data[key] = value
}

func (c *Cache[K, V]) Remove(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
}

func (c *Cache[K, V]) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[K]V, c.capacity)
}

func (c *Cache[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}
