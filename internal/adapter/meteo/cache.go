package meteo

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/couchcryptid/gameday-weather/internal/domain"
	"github.com/couchcryptid/gameday-weather/internal/observability"
)

// CachedSource wraps a WeatherSource with an in-memory LRU cache. A slate has
// at most one request per venue per day, so cached entries mostly serve repeat
// slate builds within the same process.
type CachedSource struct {
	inner   domain.WeatherSource
	cache   *lruCache
	metrics *observability.Metrics
}

// NewCachedSource creates a cache decorator around a weather source.
func NewCachedSource(inner domain.WeatherSource, maxEntries int, metrics *observability.Metrics) *CachedSource {
	return &CachedSource{
		inner:   inner,
		cache:   newLRUCache(maxEntries),
		metrics: metrics,
	}
}

func (c *CachedSource) HourlyWeather(ctx context.Context, lat, lon float64, date time.Time) (domain.ProviderHours, error) {
	key := fmt.Sprintf("%.4f,%.4f|%s", lat, lon, date.Format("2006-01-02"))
	if raw, ok := c.cache.get(key); ok {
		c.metrics.ProviderCache.WithLabelValues("hit").Inc()
		return raw, nil
	}
	c.metrics.ProviderCache.WithLabelValues("miss").Inc()

	raw, err := c.inner.HourlyWeather(ctx, lat, lon, date)
	if err != nil {
		return raw, err
	}
	// Only cache responses that carried hourly data so transient empty
	// responses can be retried on the next build.
	if len(raw.TemperatureF) > 0 {
		c.cache.put(key, raw)
	}
	return raw, nil
}

// lruCache is a simple thread-safe LRU cache for ProviderHours.
type lruCache struct {
	maxEntries int
	mu         sync.Mutex
	entries    map[string]*entry
	head       *entry // most recently used
	tail       *entry // least recently used
}

type entry struct {
	key   string
	value domain.ProviderHours
	prev  *entry
	next  *entry
}

func newLRUCache(maxEntries int) *lruCache {
	return &lruCache{
		maxEntries: maxEntries,
		entries:    make(map[string]*entry),
	}
}

func (c *lruCache) get(key string) (domain.ProviderHours, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return domain.ProviderHours{}, false
	}
	c.moveToFront(e)
	return e.value, true
}

func (c *lruCache) put(key string, value domain.ProviderHours) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		e.value = value
		c.moveToFront(e)
		return
	}

	e := &entry{key: key, value: value}
	c.entries[key] = e
	c.addToFront(e)

	if len(c.entries) > c.maxEntries {
		c.evictTail()
	}
}

func (c *lruCache) moveToFront(e *entry) {
	if e == c.head {
		return
	}
	c.remove(e)
	c.addToFront(e)
}

func (c *lruCache) addToFront(e *entry) {
	e.next = c.head
	e.prev = nil
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e
	if c.tail == nil {
		c.tail = e
	}
}

func (c *lruCache) remove(e *entry) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		c.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		c.tail = e.prev
	}
}

func (c *lruCache) evictTail() {
	if c.tail == nil {
		return
	}
	delete(c.entries, c.tail.key)
	c.remove(c.tail)
}
