package mock

import (
	parasite "github.com/trstickland/parasite-static"
)

var _ parasite.SectionExtractor = (*SectionExtractor)(nil)

// SectionExtractor is a mock implementation of parasite.SectionExtractor.
type SectionExtractor struct {
	ExtractFn func(html string) (*parasite.PageSections, error)
}

func (e *SectionExtractor) Extract(html string) (*parasite.PageSections, error) {
	return e.ExtractFn(html)
}
