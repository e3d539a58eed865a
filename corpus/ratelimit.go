package corpus

import (
	"context"
	"sync"

	"github.com/fwojciec/wikigrouth"
	"golang.org/x/time/rate"
)

var _ wikigrouth.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter rate limits requests per host using token buckets.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
}

// NewDomainLimiter creates a DomainLimiter allowing rps requests per
// second to each host, with no bursting. A non-positive rps disables
// limiting.
func NewDomainLimiter(rps float64) *DomainLimiter {
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
	}
}

// Wait blocks until the rate limit allows a request to the domain.
// Returns an error if the context is canceled before the wait completes.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	d.mu.Lock()
	limiter, ok := d.limiters[domain]
	if !ok {
		limit := rate.Limit(d.rps)
		if d.rps <= 0 {
			limit = rate.Inf
		}
		limiter = rate.NewLimiter(limit, 1)
		d.limiters[domain] = limiter
	}
	d.mu.Unlock()

	return limiter.Wait(ctx)
}
