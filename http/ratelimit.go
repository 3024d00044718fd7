package http

import (
	"context"
	"sync"

	"github.com/fwojciec/docscrape"
	"golang.org/x/time/rate"
)

var _ docscrape.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter spaces requests per domain with one token bucket each.
// Buckets are keyed by docscrape.Domain, so every spelling of a host
// shares one budget and pages on other hosts never wait on it.
type DomainLimiter struct {
	limit rate.Limit

	mu      sync.Mutex
	buckets map[string]*rate.Limiter
}

// NewDomainLimiter creates a DomainLimiter allowing rps requests per second
// to each domain, with a burst of 1.
func NewDomainLimiter(rps float64) *DomainLimiter {
	return &DomainLimiter{
		limit:   rate.Limit(rps),
		buckets: make(map[string]*rate.Limiter),
	}
}

// Wait blocks until a request to the domain of rawURL is allowed.
// Returns EMALFORMED or ENODOMAIN if rawURL has no usable domain, and the
// context error if ctx ends first.
func (l *DomainLimiter) Wait(ctx context.Context, rawURL string) error {
	domain, err := docscrape.Domain(rawURL)
	if err != nil {
		return err
	}
	return l.bucket(domain).Wait(ctx)
}

func (l *DomainLimiter) bucket(domain string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	b, ok := l.buckets[domain]
	if !ok {
		b = rate.NewLimiter(l.limit, 1)
		l.buckets[domain] = b
	}
	return b
}
