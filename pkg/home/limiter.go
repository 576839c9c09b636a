package home

import (
	"sync"

	"golang.org/x/time/rate"
)

// RateLimiterStore holds one token bucket per ingest sensor. Keys are the
// sensor identifiers the collectors report under: "pump" for the well pump,
// or a temperature location such as "freezer". Sensors not seen before get a
// bucket at the store's defaults on first lookup.
type RateLimiterStore struct {
	limiters     map[string]*rate.Limiter
	mu           sync.Mutex
	defaultRate  rate.Limit
	defaultBurst int
}

func NewRateLimiterStore(defaultRate rate.Limit, defaultBurst int) *RateLimiterStore {
	return &RateLimiterStore{
		limiters:     make(map[string]*rate.Limiter),
		defaultRate:  defaultRate,
		defaultBurst: defaultBurst,
	}
}

func (s *RateLimiterStore) GetLimiter(sensorKey string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, exists := s.limiters[sensorKey]
	if !exists {
		limiter = rate.NewLimiter(s.defaultRate, s.defaultBurst)
		s.limiters[sensorKey] = limiter
	}
	return limiter
}

// SetLimiter replaces a sensor's bucket; any accumulated tokens are dropped.
func (s *RateLimiterStore) SetLimiter(sensorKey string, sensorRate rate.Limit, sensorBurst int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.limiters[sensorKey] = rate.NewLimiter(sensorRate, sensorBurst)
}
