package parasite

import "strings"

// Section names recognized on a species page. The set is closed: the
// page template only anchors these three regions.
const (
	SectionAbout      = "about"
	SectionAssembly   = "assembly"
	SectionAnnotation = "annotation"
)

// SectionNames returns every recognized section name in template order.
func SectionNames() []string {
	return []string{SectionAbout, SectionAssembly, SectionAnnotation}
}

// IsSectionName reports whether name is one of the recognized sections.
func IsSectionName(name string) bool {
	switch name {
	case SectionAbout, SectionAssembly, SectionAnnotation:
		return true
	}
	return false
}

// SectionContent holds what accumulated for one section during a single
// parse pass: the raw markup fragments in document order, and the
// normalized text fragments with empty strings excluded.
type SectionContent struct {
	HTML []string
	Text []string
}

// PageSections is the result of extracting one page. Querying a section
// that never accumulated anything yields empty slices, never an error.
type PageSections struct {
	sections map[string]*SectionContent
}

// NewPageSections returns an empty PageSections.
func NewPageSections() *PageSections {
	return &PageSections{sections: make(map[string]*SectionContent)}
}

// HTML returns the accumulated markup fragments for name.
func (p *PageSections) HTML(name string) []string {
	if s, ok := p.sections[name]; ok {
		return s.HTML
	}
	return nil
}

// Text returns the accumulated normalized text fragments for name.
func (p *PageSections) Text(name string) []string {
	if s, ok := p.sections[name]; ok {
		return s.Text
	}
	return nil
}

// AppendHTML appends a raw markup fragment to the named section.
func (p *PageSections) AppendHTML(name, raw string) {
	p.section(name).HTML = append(p.section(name).HTML, raw)
}

// AppendText appends a normalized text fragment to the named section.
func (p *PageSections) AppendText(name, text string) {
	p.section(name).Text = append(p.section(name).Text, text)
}

func (p *PageSections) section(name string) *SectionContent {
	s, ok := p.sections[name]
	if !ok {
		s = &SectionContent{}
		p.sections[name] = s
	}
	return s
}

// SectionExtractor extracts the recognized sections from a species page.
type SectionExtractor interface {
	// Extract consumes a full page and returns the accumulated content
	// per section. Returns an EINVALID error if the page cannot be
	// interpreted as markup.
	Extract(html string) (*PageSections, error)
}

// NormalizeText trims leading and trailing whitespace and collapses
// internal whitespace runs to single spaces. Entity decoding happens
// upstream, in the tokenizer.
func NormalizeText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
