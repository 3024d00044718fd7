// Package readability extracts the main content of a page with
// go-readability, the Mozilla Readability algorithm.
package readability

import (
	"strings"

	"github.com/fwojciec/docscrape"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements docscrape.Extractor at compile time.
var _ docscrape.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content. The article
// excerpt stands in for the page description.
func (e *Extractor) Extract(rawHTML string) (*docscrape.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, docscrape.Errorf(docscrape.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &docscrape.ExtractResult{
		Title:       strings.TrimSpace(article.Title),
		Description: strings.TrimSpace(article.Excerpt),
		ContentHTML: article.Content,
	}, nil
}
