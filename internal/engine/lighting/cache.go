package lighting

import (
	"fmt"
	gomath "math"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru"
	"golang.org/x/sync/singleflight"
)

// DefaultCacheSize holds a full day at minute resolution for one latitude.
const DefaultCacheSize = minutesPerDay

// ProfileCache memoizes profiles by minute of day and latitude. The owner
// creates it and decides its lifetime; there is no package-level instance.
// Concurrent misses on the same key compute the profile once.
type ProfileCache struct {
	profiles *lru.Cache
	group    singleflight.Group
	compute  func(hour, latitude float64) Profile

	hits   atomic.Uint64
	misses atomic.Uint64
}

// CacheStats reports cache effectiveness.
type CacheStats struct {
	Hits   uint64
	Misses uint64
	Len    int
}

// NewProfileCache creates a cache holding up to size profiles.
func NewProfileCache(size int) (*ProfileCache, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	profiles, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("creating profile cache: %w", err)
	}
	return &ProfileCache{
		profiles: profiles,
		compute:  GetLightingProfile,
	}, nil
}

// Get returns the profile for the minute containing hour. The returned
// profile is computed for that minute, so every caller sharing a key sees the
// same value.
func (c *ProfileCache) Get(hour, latitude float64) Profile {
	minute, lat := cacheKey(hour, latitude)
	key := fmt.Sprintf("%d@%.2f", minute, lat)

	if v, ok := c.profiles.Get(key); ok {
		c.hits.Add(1)
		return v.(Profile)
	}

	v, _, _ := c.group.Do(key, func() (interface{}, error) {
		if v, ok := c.profiles.Get(key); ok {
			return v, nil
		}
		c.misses.Add(1)
		p := c.compute(float64(minute)/60, lat)
		c.profiles.Add(key, p)
		return p, nil
	})
	return v.(Profile)
}

// Purge drops every cached profile.
func (c *ProfileCache) Purge() {
	c.profiles.Purge()
}

// Stats returns hit/miss counters and the current size.
func (c *ProfileCache) Stats() CacheStats {
	return CacheStats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Len:    c.profiles.Len(),
	}
}

func cacheKey(hour, latitude float64) (int, float64) {
	minute := int(gomath.Floor(NormalizeHour(hour)*60)) % minutesPerDay
	return minute, gomath.Round(latitude*100) / 100
}
