// Package mirror drives the fetch, extract, and reconcile loop over a
// set of entities. Entities are processed strictly one at a time; each
// is fetched, parsed, and reconciled to completion before the next
// begins.
package mirror

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	parasite "github.com/trstickland/parasite-static"
	"github.com/trstickland/parasite-static/fs"
)

// Mirror reconciles the on-disk documentation tree against the remote
// catalog for every entity its Source produces.
type Mirror struct {
	Source    parasite.EntitySource
	Fetcher   parasite.Fetcher
	Extractor parasite.SectionExtractor

	// Converter, when set, turns each section's markup into markdown
	// before it is written. When nil the raw accumulated markup is
	// written as-is.
	Converter parasite.Converter

	// BaseURL is the catalog root the species pages live under.
	BaseURL string

	// Root is the top of the mirrored directory tree.
	Root string

	Logger *slog.Logger
}

// Summary reports what one run did.
type Summary struct {
	Entities      int
	Fetched       int
	Skipped       int
	Placeheld     int
	Materialized  int
	ParseFailures int
}

// Run processes every discovered entity in order. A page that does not
// exist gets placeholders; a page that cannot be parsed is skipped; any
// transport or filesystem failure aborts the run, since it indicates an
// environment problem rather than a per-entity condition.
func (m *Mirror) Run(ctx context.Context) (*Summary, error) {
	entities, err := m.Source.Discover(ctx)
	if err != nil {
		return nil, fmt.Errorf("discovering entities: %w", err)
	}

	summary := &Summary{Entities: len(entities)}
	for _, entity := range entities {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		if err := m.processEntity(ctx, entity, summary); err != nil {
			return summary, err
		}
	}
	return summary, nil
}

func (m *Mirror) processEntity(ctx context.Context, entity parasite.Entity, summary *Summary) error {
	leaf, err := fs.EnsureEntityDir(m.Root, entity.Species, entity.Bioproject)
	if err != nil {
		return err
	}
	speciesDir := filepath.Dir(leaf)

	targets := materializeTargets(speciesDir, leaf, entity)

	// Fetching is the expensive step; skip it entirely when every
	// artifact is already populated. Materialize re-checks each path
	// itself either way.
	needed, err := anyUnpopulated(targets)
	if err != nil {
		return err
	}
	if !needed {
		m.logger().Debug("artifacts already populated", "entity", entity.PageName())
		summary.Skipped++
		return nil
	}

	body, err := m.Fetcher.Fetch(ctx, entity.PageURL(m.BaseURL))
	if parasite.ErrorCode(err) == parasite.ENOTFOUND {
		// The entity has no published page. Scaffold placeholders at
		// both levels; CreatePlaceholders is idempotent, so a species
		// seen before simply reports its existing marker.
		if err := m.scaffold(entity, speciesDir, leaf); err != nil {
			return err
		}
		m.logger().Info("no page published, placeholders ensured", "entity", entity.PageName())
		summary.Placeheld++
		return nil
	}
	if err != nil {
		return fmt.Errorf("fetching %s: %w", entity.PageName(), err)
	}
	summary.Fetched++

	sections, err := m.Extractor.Extract(body)
	if err != nil {
		m.logger().Warn("page not parseable, skipping entity",
			"entity", entity.PageName(), "error", err)
		summary.ParseFailures++
		return nil
	}

	content, err := m.renderSections(sections)
	if err != nil {
		return err
	}

	// Only write sections the page actually carried; an absent section
	// leaves its target file for a later pass.
	writable := make(map[string]string, len(targets))
	for name := range content {
		writable[name] = targets[name]
	}
	if err := fs.Materialize(writable, content); err != nil {
		return err
	}
	m.logger().Info("materialized", "entity", entity.PageName(), "sections", len(writable))
	summary.Materialized++
	return nil
}

// materializeTargets maps section names to the files extraction fills:
// the species-level about fragment plus the bioproject-level assembly
// and annotation fragments. Note the bioproject files use the
// underscore naming, not the dot naming the placeholder scan uses.
func materializeTargets(speciesDir, leaf string, entity parasite.Entity) map[string]string {
	return map[string]string{
		parasite.SectionAbout:      filepath.Join(speciesDir, entity.SpeciesBase()+parasite.SuffixAbout),
		parasite.SectionAssembly:   filepath.Join(leaf, entity.MaterializeName(parasite.SuffixAssembly)),
		parasite.SectionAnnotation: filepath.Join(leaf, entity.MaterializeName(parasite.SuffixAnnotation)),
	}
}

// renderSections builds the content lines per section, converting to
// markdown when a converter is configured. Sections with no accumulated
// markup are omitted.
func (m *Mirror) renderSections(sections *parasite.PageSections) (map[string][]string, error) {
	content := make(map[string][]string)
	for _, name := range parasite.SectionNames() {
		markup := sections.HTML(name)
		if len(markup) == 0 {
			continue
		}
		if m.Converter == nil {
			content[name] = markup
			continue
		}
		md, err := m.Converter.Convert(strings.Join(markup, ""))
		if err != nil {
			return nil, fmt.Errorf("converting %s section: %w", name, err)
		}
		content[name] = []string{strings.TrimRight(md, "\n")}
	}
	return content, nil
}

func (m *Mirror) scaffold(entity parasite.Entity, speciesDir, leaf string) error {
	if _, err := fs.CreatePlaceholders(speciesDir, entity.SpeciesBase(), parasite.SpeciesSuffixes()); err != nil {
		return err
	}
	if _, err := fs.CreatePlaceholders(leaf, entity.ScanBase(), parasite.BioprojectSuffixes()); err != nil {
		return err
	}
	return nil
}

// anyUnpopulated reports whether any target is absent or zero-size.
func anyUnpopulated(targets map[string]string) (bool, error) {
	for _, path := range targets {
		populated, err := fs.HasContent(path)
		if err != nil {
			return false, err
		}
		if !populated {
			return true, nil
		}
	}
	return false, nil
}

func (m *Mirror) logger() *slog.Logger {
	if m.Logger != nil {
		return m.Logger
	}
	return slog.New(slog.DiscardHandler)
}
