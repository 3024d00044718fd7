// Package trafilatura extracts the main content and metadata of a page
// using go-trafilatura.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docscrape"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements docscrape.Extractor at compile time.
var _ docscrape.Extractor = (*Extractor)(nil)

// pageChrome selects navigation, sidebars and footers. On short pages
// trafilatura falls back to the text of the whole body, so these are
// removed before extraction.
const pageChrome = "nav, aside, footer, [role=navigation], [role=complementary], [role=contentinfo]"

// Extractor wraps go-trafilatura to strip navigation, sidebars and footers.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns its title, description and main
// content. Links inside the content are kept so the markdown stays navigable.
func (e *Extractor) Extract(rawHTML string) (*docscrape.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, docscrape.Errorf(docscrape.EINVALID, "empty HTML input")
	}

	cleaned, err := stripChrome(rawHTML)
	if err != nil {
		return nil, err
	}

	opts := trafilatura.Options{
		EnableFallback: true,
		IncludeLinks:   true,
	}

	result, err := trafilatura.Extract(strings.NewReader(cleaned), opts)
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &docscrape.ExtractResult{
		Title:       strings.TrimSpace(result.Metadata.Title),
		Description: strings.TrimSpace(result.Metadata.Description),
		ContentHTML: contentHTML,
	}, nil
}

// stripChrome removes page chrome from rawHTML. Headers are removed too,
// except those inside an article or main element, which hold the page heading.
func stripChrome(rawHTML string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return "", docscrape.WrapError(docscrape.EINVALID, err, "failed to parse HTML")
	}
	doc.Find(pageChrome).Remove()
	doc.Find("header").Not("article header, main header").Remove()
	return doc.Html()
}

func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
