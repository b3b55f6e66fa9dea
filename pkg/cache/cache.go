package cache

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const defaultJanitorInterval = 2 * time.Minute

var (
	lookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "shipping_service",
		Subsystem: "cache",
		Name:      "lookups_total",
		Help:      "Cache lookups by result.",
	}, []string{"cache", "result"})

	evictions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "shipping_service",
		Subsystem: "cache",
		Name:      "evictions_total",
		Help:      "Entries removed because of capacity or expiry.",
	}, []string{"cache", "reason"})
)

type entry struct {
	key       string
	value     []byte
	expiresAt time.Time
}

type LRUCache struct {
	name     string
	capacity int
	ttl      time.Duration
	interval time.Duration

	mu    sync.Mutex
	ll    *list.List
	items map[string]*list.Element
	now   func() time.Time
}

type Option func(*LRUCache)

// WithName labels the cache metrics.
func WithName(name string) Option {
	return func(c *LRUCache) { c.name = name }
}

func WithJanitorInterval(d time.Duration) Option {
	return func(c *LRUCache) { c.interval = d }
}

func NewLRUCache(capacity int, ttl time.Duration, opts ...Option) *LRUCache {
	c := &LRUCache{
		name:     "default",
		capacity: max(capacity, 1),
		ttl:      ttl,
		interval: defaultJanitorInterval,
		ll:       list.New(),
		items:    make(map[string]*list.Element),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *LRUCache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ele, ok := c.items[key]
	if !ok {
		lookups.WithLabelValues(c.name, "miss").Inc()
		return nil, false
	}

	ent := ele.Value.(*entry)
	if c.now().After(ent.expiresAt) {
		c.removeElement(ele, "expired")
		lookups.WithLabelValues(c.name, "miss").Inc()
		return nil, false
	}

	c.ll.MoveToFront(ele)
	lookups.WithLabelValues(c.name, "hit").Inc()
	return ent.value, true
}

func (c *LRUCache) Set(key string, value []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expiresAt := c.now().Add(c.ttl)
	if ele, ok := c.items[key]; ok {
		c.ll.MoveToFront(ele)
		ent := ele.Value.(*entry)
		ent.value = value
		ent.expiresAt = expiresAt
		return
	}

	c.items[key] = c.ll.PushFront(&entry{key: key, value: value, expiresAt: expiresAt})

	for c.ll.Len() > c.capacity {
		c.removeElement(c.ll.Back(), "capacity")
	}
}

func (c *LRUCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ele, ok := c.items[key]; ok {
		c.ll.Remove(ele)
		delete(c.items, key)
	}
}

func (c *LRUCache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}

// Start runs the janitor until ctx is done.
func (c *LRUCache) Start(ctx context.Context) error {
	go func() {
		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				c.cleanup()
			case <-ctx.Done():
				return
			}
		}
	}()
	return nil
}

func (c *LRUCache) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for e := c.ll.Back(); e != nil; {
		prev := e.Prev()
		if now.After(e.Value.(*entry).expiresAt) {
			c.removeElement(e, "expired")
		}
		e = prev
	}
}

func (c *LRUCache) removeElement(e *list.Element, reason string) {
	c.ll.Remove(e)
	delete(c.items, e.Value.(*entry).key)
	evictions.WithLabelValues(c.name, reason).Inc()
}
