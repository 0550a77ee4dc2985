package fitcache

import (
	"math"
	"sync"

	"github.com/go-logr/logr"

	"github.com/darkroomkit/easelcalc/internal/logging"
	"github.com/darkroomkit/easelcalc/internal/metrics"
	"github.com/darkroomkit/easelcalc/pkg/config"
	"github.com/darkroomkit/easelcalc/pkg/core"
)

// Key identifies a fit computation.
type Key struct {
	Width     float64
	Height    float64
	Landscape bool
}

// Cache memoizes a Resolver with a bounded, insertion-ordered (FIFO) eviction policy.
// Reads never refresh an entry: a frequently read old entry is still the first to go.
// It is safe for concurrent use.
type Cache struct {
	resolver Resolver
	capacity int
	metrics  *metrics.CacheMetrics
	logger   logr.Logger

	mu    sync.Mutex
	items map[Key]core.FitResult
	order []Key
}

var _ ReadWriter = (*Cache)(nil)

// Option configures a Cache.
type Option func(*Cache)

// WithCapacity sets the maximum number of entries. Values below 1 are coerced to 1.
func WithCapacity(n int) Option {
	return func(c *Cache) {
		c.capacity = n
	}
}

// WithMetrics instruments the cache.
func WithMetrics(m *metrics.CacheMetrics) Option {
	return func(c *Cache) {
		c.metrics = m
	}
}

// WithLogger sets the logger used for eviction traces.
func WithLogger(l logr.Logger) Option {
	return func(c *Cache) {
		c.logger = l
	}
}

// New creates a cache in front of resolver.
func New(resolver Resolver, opts ...Option) *Cache {
	c := &Cache{
		resolver: resolver,
		capacity: config.DefaultCacheCapacity,
		logger:   logging.Log(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.capacity < 1 {
		c.capacity = 1
	}
	c.items = make(map[Key]core.FitResult, c.capacity)
	c.order = make([]Key, 0, c.capacity)
	return c
}

// GetCachedFit returns the memoized fit, running the resolver on a miss.
func (c *Cache) GetCachedFit(paperWidth, paperHeight float64, isLandscape bool) core.FitResult {
	key := Key{Width: paperWidth, Height: paperHeight, Landscape: isLandscape}

	if fit, ok := c.Get(key); ok {
		if c.metrics != nil {
			c.metrics.Hits.Inc()
		}
		return fit
	}

	if c.metrics != nil {
		c.metrics.Misses.Inc()
		c.metrics.ResolverCalls.Inc()
	}
	fit := c.resolver.ResolveFit(paperWidth, paperHeight, isLandscape)
	c.Put(key, fit)
	return fit
}

// cacheable reports whether key can be looked up again; NaN never compares equal.
func cacheable(key Key) bool {
	return !math.IsNaN(key.Width) && !math.IsNaN(key.Height)
}

// Get returns the stored fit for key.
func (c *Cache) Get(key Key) (core.FitResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	fit, ok := c.items[key]
	return fit, ok
}

// Put stores fit under key, evicting the oldest entry when a new key arrives at capacity.
// Keys with a NaN dimension are not stored.
func (c *Cache) Put(key Key, fit core.FitResult) {
	if !cacheable(key) {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.items[key]; exists {
		c.items[key] = fit
		return
	}

	if len(c.order) >= c.capacity {
		oldest := c.order[0]
		c.order[0] = Key{}
		c.order = c.order[1:]
		delete(c.items, oldest)

		if c.metrics != nil {
			c.metrics.Evictions.Inc()
		}
		c.logger.V(logging.TRACE).Info("Evicted fit cache entry",
			"width", oldest.Width,
			"height", oldest.Height,
			"landscape", oldest.Landscape)
	}

	c.items[key] = fit
	c.order = append(c.order, key)

	if c.metrics != nil {
		c.metrics.Entries.Set(float64(len(c.items)))
	}
}

// Keys returns the cached keys, oldest first.
func (c *Cache) Keys() []Key {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := make([]Key, len(c.order))
	copy(keys, c.order)
	return keys
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Capacity returns the maximum number of entries.
func (c *Cache) Capacity() int {
	return c.capacity
}

// Purge removes every entry.
func (c *Cache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[Key]core.FitResult, c.capacity)
	c.order = make([]Key, 0, c.capacity)

	if c.metrics != nil {
		c.metrics.Entries.Set(0)
	}
}
