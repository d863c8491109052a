// Package fs reconciles expected documentation artifacts against the
// filesystem, treating it as the system of record. Nothing here caches
// state between calls; presence and size are checked fresh every pass.
package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	parasite "github.com/trstickland/parasite-static"
)

// PlaceholderSuffix is appended to an expected filename to form its
// zero-byte marker, signaling "known to be expected, not yet populated".
const PlaceholderSuffix = ".placeholder"

// Expected returns the canonical artifact paths for base under dir, one
// per suffix, in suffix order. Consumers rely on that iteration order.
// Returns EINVALID if dir is not an existing directory, base is empty,
// or suffixes is empty.
func Expected(dir, base string, suffixes []string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, parasite.Errorf(parasite.EINVALID, "directory %q does not exist", dir)
	}
	if base == "" {
		return nil, parasite.Errorf(parasite.EINVALID, "base name required")
	}
	if len(suffixes) == 0 {
		return nil, parasite.Errorf(parasite.EINVALID, "at least one suffix required")
	}

	paths := make([]string, 0, len(suffixes))
	for _, suffix := range suffixes {
		paths = append(paths, filepath.Join(dir, base+suffix))
	}
	return paths, nil
}

// FindMissing returns the subsequence of Expected paths that do not
// currently exist on disk, preserving suffix order. Pure observation;
// no side effects.
func FindMissing(dir, base string, suffixes []string) ([]string, error) {
	expected, err := Expected(dir, base, suffixes)
	if err != nil {
		return nil, err
	}

	var missing []string
	for _, path := range expected {
		exists, err := pathExists(path)
		if err != nil {
			return nil, err
		}
		if !exists {
			missing = append(missing, path)
		}
	}
	return missing, nil
}

// CreatePlaceholders ensures an empty marker file exists next to every
// expected path that is absent, and returns every marker now present
// for an absent primary, pre-existing markers included. Calling it
// again with no intervening filesystem change returns the same set and
// creates nothing.
func CreatePlaceholders(dir, base string, suffixes []string) ([]string, error) {
	missing, err := FindMissing(dir, base, suffixes)
	if err != nil {
		return nil, err
	}

	var placeholders []string
	for _, path := range missing {
		marker := path + PlaceholderSuffix
		exists, err := pathExists(marker)
		if err != nil {
			return nil, err
		}
		if !exists {
			if err := os.WriteFile(marker, nil, 0644); err != nil {
				return nil, fmt.Errorf("creating placeholder %s: %w", marker, err)
			}
		}
		placeholders = append(placeholders, marker)
	}
	return placeholders, nil
}

// Materialize writes the content lines for each key whose target path
// is absent or zero-size, each line followed by a newline, overwriting
// the target. Targets that already hold data are left untouched, which
// makes repeated calls safe regardless of what the caller checked
// beforehand.
func Materialize(targets map[string]string, content map[string][]string) error {
	for key, path := range targets {
		populated, err := HasContent(path)
		if err != nil {
			return err
		}
		if populated {
			continue
		}

		var b strings.Builder
		for _, line := range content[key] {
			b.WriteString(line)
			b.WriteByte('\n')
		}
		if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	return nil
}

// HasContent reports whether path exists with non-zero size.
func HasContent(path string) (bool, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return info.Size() > 0, nil
}

func pathExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
