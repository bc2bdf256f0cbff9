/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package cache

import (
	"sync"
	"time"

	"github.com/neuroinfo/dwiqc/common/interfaces"
)

// Instance implements the Cache interface and provides
// a simple in-memory cache for byte slices indexed by string keys.
// It is safe for concurrent use.
type Instance struct {
	mu    sync.Mutex
	cache map[string]cacheItem
	ttl   int // seconds, 0 disables expiry
}

type cacheItem struct {
	bytes   []byte
	created time.Time
}

func New(ttl int) interfaces.Cache {
	return &Instance{
		cache: make(map[string]cacheItem),
		ttl:   ttl}
}

func (c *Instance) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache = make(map[string]cacheItem)
}

func (c *Instance) TTL(ttl int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ttl = ttl
}

func (c *Instance) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.cache)
}

func (c *Instance) Set(key string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache[key] = cacheItem{bytes: data, created: time.Now()}
}

func (c *Instance) Get(key string) []byte {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.cache[key]
	if !ok {
		return nil
	}

	if c.ttl > 0 && isOlderThan(v.created, c.ttl) {
		delete(c.cache, key)
		return nil
	}
	return v.bytes
}

func isOlderThan(t time.Time, s int) bool {
	return time.Since(t) > time.Duration(s)*time.Second
}
