// Package html implements section extraction on the streaming tokenizer
// from golang.org/x/net/html.
package html

import (
	"io"
	"strings"

	"golang.org/x/net/html"

	parasite "github.com/trstickland/parasite-static"
)

// Page template boundaries. Every section sits inside a container div;
// assembly and annotation additionally end at the next subsection
// heading, about does not.
const (
	containerTag = "div"
	headingTag   = "h3"
)

// Ensure Extractor implements parasite.SectionExtractor at compile time.
var _ parasite.SectionExtractor = (*Extractor)(nil)

// Extractor accumulates the recognized sections of a species page from
// the tokenizer's event stream. It holds no state between pages; each
// Extract call owns its parse state for the duration of the pass.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract scans page and returns the accumulated markup and normalized
// text per section. Markup and text outside any recognized section are
// discarded. Returns an EINVALID error if the page cannot be tokenized.
func (e *Extractor) Extract(page string) (*parasite.PageSections, error) {
	z := html.NewTokenizer(strings.NewReader(page))
	sections := parasite.NewPageSections()

	// current is the open section name; empty means none. Content up to
	// the end of the stream is retained even if the section is never
	// explicitly closed.
	current := ""

	for {
		switch z.Next() {
		case html.ErrorToken:
			if z.Err() == io.EOF {
				return sections, nil
			}
			return nil, parasite.Errorf(parasite.EINVALID, "malformed markup: %v", z.Err())

		case html.StartTagToken, html.SelfClosingTagToken:
			raw := string(z.Raw())
			tok := z.Token()

			// A name anchor matching a recognized section opens that
			// section regardless of nesting depth; the anchor itself
			// belongs to the section it opens.
			if name := anchorName(tok); parasite.IsSectionName(name) {
				current = name
				sections.AppendHTML(current, raw)
				continue
			}
			if current == "" {
				continue
			}
			sections.AppendHTML(current, raw)

			// A subsection heading ends assembly and annotation early.
			// About runs on until the container closes.
			if tok.Data == headingTag &&
				(current == parasite.SectionAssembly || current == parasite.SectionAnnotation) {
				current = ""
			}

		case html.EndTagToken:
			raw := string(z.Raw())
			tok := z.Token()
			if current == "" {
				continue
			}
			sections.AppendHTML(current, raw)
			if tok.Data == containerTag {
				current = ""
			}

		case html.CommentToken:
			// Comments carry no text but stay part of the markup, so
			// the accumulated sequence reproduces the page byte for
			// byte within a section.
			if current != "" {
				sections.AppendHTML(current, string(z.Raw()))
			}

		case html.TextToken:
			if current == "" {
				continue
			}
			// Raw text goes to the markup sequence unconditionally;
			// the text sequence gets the decoded, normalized form and
			// skips anything that normalizes away.
			sections.AppendHTML(current, string(z.Raw()))
			if text := parasite.NormalizeText(string(z.Text())); text != "" {
				sections.AppendText(current, text)
			}
		}
	}
}

// anchorName returns the name attribute of an anchor token, or "" when
// tok is not an anchor or carries no name.
func anchorName(tok html.Token) string {
	if tok.Data != "a" {
		return ""
	}
	for _, attr := range tok.Attr {
		if attr.Key == "name" {
			return attr.Val
		}
	}
	return ""
}
