package mock

import (
	"context"

	"github.com/fwojciec/docscrape"
)

// Compile-time interface verification.
var (
	_ docscrape.LinkExtractor = (*LinkExtractor)(nil)
	_ docscrape.DomainLimiter = (*DomainLimiter)(nil)
)

// LinkExtractor is a mock implementation of docscrape.LinkExtractor.
type LinkExtractor struct {
	ExtractLinksFn func(html string, baseURL string) ([]string, error)
}

func (e *LinkExtractor) ExtractLinks(html string, baseURL string) ([]string, error) {
	return e.ExtractLinksFn(html, baseURL)
}

// DomainLimiter is a mock implementation of docscrape.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, rawURL string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, rawURL string) error {
	return l.WaitFn(ctx, rawURL)
}
