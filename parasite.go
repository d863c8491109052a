// Package parasite maintains a per-entity directory tree of markdown
// documentation fragments mirrored from a remote catalog of species
// pages. It extracts named sections from fetched pages, reconciles the
// expected file set for each entity against the filesystem, and fills
// gaps with extracted content or zero-byte placeholder markers.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., html/,
// sqlite/, goquery/).
package parasite
