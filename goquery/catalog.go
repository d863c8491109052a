// Package goquery implements entity discovery by scraping the catalog
// index page with CSS selectors.
package goquery

import (
	"context"
	"net/url"
	"path"
	"strings"

	"github.com/PuerkitoBio/goquery"

	parasite "github.com/trstickland/parasite-static"
)

// Ensure CatalogSource implements parasite.EntitySource.
var _ parasite.EntitySource = (*CatalogSource)(nil)

// CatalogSource discovers entities from the species index page. Every
// anchor whose target's last path segment matches the species page
// naming pattern becomes an entity; everything else on the page is
// ignored. Entities keep document order, deduplicated by page slug.
type CatalogSource struct {
	fetcher    parasite.Fetcher
	catalogURL string
}

// NewCatalogSource creates a CatalogSource that reads the page at
// catalogURL through fetcher.
func NewCatalogSource(fetcher parasite.Fetcher, catalogURL string) *CatalogSource {
	return &CatalogSource{fetcher: fetcher, catalogURL: catalogURL}
}

// Discover fetches and scrapes the catalog page.
func (s *CatalogSource) Discover(ctx context.Context) ([]parasite.Entity, error) {
	body, err := s.fetcher.Fetch(ctx, s.catalogURL)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, parasite.Errorf(parasite.EINVALID, "failed to parse catalog page: %v", err)
	}

	seen := make(map[string]bool)
	var entities []parasite.Entity

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists || href == "" {
			return
		}

		slug := hrefSlug(href)
		if slug == "" || seen[slug] {
			return
		}

		entity, ok := parasite.ParsePageName(slug)
		if !ok {
			return
		}
		seen[slug] = true
		entities = append(entities, entity)
	})

	return entities, nil
}

// hrefSlug returns the last path segment of href, or "" if href cannot
// be parsed or has no path.
func hrefSlug(href string) string {
	parsed, err := url.Parse(href)
	if err != nil {
		return ""
	}
	p := strings.TrimSuffix(parsed.Path, "/")
	if p == "" {
		return ""
	}
	return path.Base(p)
}
