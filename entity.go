package parasite

import (
	"context"
	"regexp"
	"strings"
	"time"
)

// Artifact suffixes. Species-level documentation carries only the about
// fragment; each bioproject additionally carries assembly and annotation
// fragments.
const (
	SuffixAbout      = ".about.md"
	SuffixAssembly   = ".assembly.md"
	SuffixAnnotation = ".annotation.md"
)

// SpeciesSuffixes is the expected suffix list for species-level files.
func SpeciesSuffixes() []string {
	return []string{SuffixAbout}
}

// BioprojectSuffixes is the expected suffix list for bioproject-level files.
func BioprojectSuffixes() []string {
	return []string{SuffixAbout, SuffixAssembly, SuffixAnnotation}
}

// Entity identifies one unit of documentation to mirror: a species and
// one of its bioproject assemblies.
type Entity struct {
	ID         string    `json:"id"`
	Species    string    `json:"species"`    // e.g. "Acanthocheilonema_viteae"
	Bioproject string    `json:"bioproject"` // e.g. "prjeb1697"
	CreatedAt  time.Time `json:"createdAt"`
}

// Validate returns an error if the entity contains invalid fields.
func (e *Entity) Validate() error {
	if e.Species == "" {
		return Errorf(EINVALID, "entity species required")
	}
	if e.Bioproject == "" {
		return Errorf(EINVALID, "entity bioproject required")
	}
	return nil
}

// PageName returns the catalog page slug for the entity,
// e.g. "Acanthocheilonema_viteae_prjeb1697".
func (e Entity) PageName() string {
	return e.Species + "_" + strings.ToLower(e.Bioproject)
}

// PageURL returns the catalog page URL under baseURL.
func (e Entity) PageURL(baseURL string) string {
	return strings.TrimSuffix(baseURL, "/") + "/" + e.PageName()
}

// SpeciesBase returns the file stem for species-level artifacts.
func (e Entity) SpeciesBase() string {
	return e.Species
}

// ScanBase returns the file stem used when scanning for missing
// bioproject-level artifacts and creating their placeholders,
// e.g. "Acanthocheilonema_viteae_PRJEB1697". Files are named
// ScanBase() + suffix.
func (e Entity) ScanBase() string {
	return e.Species + "_" + strings.ToUpper(e.Bioproject)
}

// MaterializeName returns the filename used when writing extracted
// content for a bioproject-level artifact. The suffix loses its leading
// dot and is joined with an underscore instead,
// e.g. "Acanthocheilonema_viteae_PRJEB1697_assembly.md".
//
// This deliberately differs from the ScanBase() + suffix convention;
// downstream tooling depends on both forms, so neither is unified into
// the other.
func (e Entity) MaterializeName(suffix string) string {
	return e.ScanBase() + "_" + strings.TrimPrefix(suffix, ".")
}

// pageNameRE is the naming-pattern filter applied to catalog and sitemap
// entries before enumeration: a capitalized genus, one or more
// lowercase name parts, then a bioproject accession.
var pageNameRE = regexp.MustCompile(`^([A-Z][a-z0-9]*(?:_[a-z0-9]+)+?)_(prj[a-z]{2}[0-9]+)$`)

// ParsePageName splits a catalog page slug into an Entity. The second
// return value reports whether the slug matches the naming pattern.
func ParsePageName(slug string) (Entity, bool) {
	m := pageNameRE.FindStringSubmatch(slug)
	if m == nil {
		return Entity{}, false
	}
	return Entity{Species: m[1], Bioproject: m[2]}, true
}

// EntitySource produces the ordered list of entities to reconcile.
// Implementations hide where the list comes from: the sqlite registry,
// a sitemap, or the catalog index page.
type EntitySource interface {
	Discover(ctx context.Context) ([]Entity, error)
}

// EntityService represents a service for managing the entity registry.
type EntityService interface {
	// CreateEntity registers a new entity.
	CreateEntity(ctx context.Context, entity *Entity) error

	// FindEntities retrieves entities matching the filter, ordered by
	// species then bioproject.
	FindEntities(ctx context.Context, filter EntityFilter) ([]*Entity, error)

	// DeleteEntity permanently removes an entity from the registry.
	// Returns ENOTFOUND if the entity does not exist.
	DeleteEntity(ctx context.Context, id string) error
}

// EntityFilter represents a filter for FindEntities.
type EntityFilter struct {
	ID         *string `json:"id"`
	Species    *string `json:"species"`
	Bioproject *string `json:"bioproject"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
