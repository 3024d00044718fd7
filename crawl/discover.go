package crawl

import (
	"context"

	"github.com/fwojciec/docscrape"
)

// Discoverer finds the same-domain pages linked from a start URL.
type Discoverer struct {
	Scraper docscrape.Scraper
	Options *docscrape.ScrapeOptions
}

// Discover asks the scraper for the links on targetURL and returns the
// ones on targetURL's exact domain, with fragments stripped and duplicates
// removed. Links keep the order of their first appearance.
//
// Candidates that do not parse or belong to another domain are dropped
// silently. Returns EDISCOVERY if targetURL has no domain or the request
// fails.
func (d *Discoverer) Discover(ctx context.Context, targetURL string) ([]string, error) {
	domain, err := docscrape.Domain(targetURL)
	if err != nil {
		return nil, docscrape.WrapError(docscrape.EDISCOVERY, err, "cannot determine domain of %s", targetURL)
	}

	res, err := d.Scraper.Scrape(ctx, targetURL, []docscrape.Format{docscrape.FormatLinks}, d.Options)
	if err != nil {
		return nil, docscrape.WrapError(docscrape.EDISCOVERY, err, "link discovery failed for %s", targetURL)
	}
	if res == nil {
		return nil, docscrape.Errorf(docscrape.EDISCOVERY, "link discovery returned no response for %s", targetURL)
	}

	return filterLinks(domain, res.Links), nil
}

// filterLinks keeps candidates on domain, strips fragments and deduplicates.
func filterLinks(domain string, candidates []string) []string {
	seen := make(map[string]struct{}, len(candidates))
	links := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		d, err := docscrape.Domain(candidate)
		if err != nil || d != domain {
			continue
		}
		link, err := docscrape.StripFragment(candidate)
		if err != nil {
			continue
		}
		if _, ok := seen[link]; ok {
			continue
		}
		seen[link] = struct{}{}
		links = append(links, link)
	}
	return links
}
