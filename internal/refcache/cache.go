// Package refcache maps platform-assigned resource ids to the stable keys
// drafts are written against. An upstream pipeline fills it; the diff engine
// only reads.
package refcache

import (
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Cache is the read side used during reference resolution.
type Cache interface {
	Get(id string) (string, bool)
	Contains(id string) bool
}

// Memory is a plain in-process id to key map.
type Memory struct {
	mu   sync.RWMutex
	keys map[string]string
}

func NewMemory() *Memory {
	return &Memory{keys: make(map[string]string)}
}

func (m *Memory) Put(id, key string) {
	m.mu.Lock()
	m.keys[id] = key
	m.mu.Unlock()
}

func (m *Memory) Get(id string) (string, bool) {
	m.mu.RLock()
	key, ok := m.keys[id]
	m.mu.RUnlock()
	return key, ok
}

func (m *Memory) Contains(id string) bool {
	_, ok := m.Get(id)
	return ok
}

// Expiring evicts entries after a TTL so long-running processes pick up key
// changes made on the platform.
type Expiring struct {
	inner *gocache.Cache
}

func NewExpiring(ttl, sweep time.Duration) *Expiring {
	return &Expiring{inner: gocache.New(ttl, sweep)}
}

func (e *Expiring) Put(id, key string) {
	e.inner.SetDefault(id, key)
}

func (e *Expiring) Get(id string) (string, bool) {
	v, ok := e.inner.Get(id)
	if !ok {
		return "", false
	}
	return v.(string), true
}

func (e *Expiring) Contains(id string) bool {
	_, ok := e.Get(id)
	return ok
}
