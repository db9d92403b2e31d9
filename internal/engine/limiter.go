package engine

import (
	"sync"

	"golang.org/x/time/rate"
)

// limiterPool hands out one token bucket per appraisal so a noisy client
// hammering a single appraisal cannot starve the rest.
type limiterPool struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rate     rate.Limit
	burst    int
}

// TODO: evict limiters for deleted appraisals.
func newLimiterPool(perSecond float64, burst int) *limiterPool {
	return &limiterPool{
		limiters: make(map[string]*rate.Limiter),
		rate:     rate.Limit(perSecond),
		burst:    burst,
	}
}

func (p *limiterPool) allow(id string) bool {
	if p.rate <= 0 {
		return true
	}

	p.mu.Lock()
	l, ok := p.limiters[id]
	if !ok {
		l = rate.NewLimiter(p.rate, p.burst)
		p.limiters[id] = l
	}
	p.mu.Unlock()

	return l.Allow()
}
