package fs

import (
	"fmt"
	"os"
	"path/filepath"

	parasite "github.com/trstickland/parasite-static"
)

// SentinelFile is dropped into every directory this package creates so
// otherwise-empty directories survive in a git-tracked mirror.
const SentinelFile = ".gitkeep"

// EnsureEntityDir creates the <root>/<species>/<bioproject> nesting as
// needed, leaving a sentinel in each newly created level, and returns
// the leaf directory path. root itself must already exist.
func EnsureEntityDir(root, species, bioproject string) (string, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return "", parasite.Errorf(parasite.EINVALID, "root directory %q does not exist", root)
	}
	if species == "" || bioproject == "" {
		return "", parasite.Errorf(parasite.EINVALID, "species and bioproject names required")
	}

	leaf := root
	for _, name := range []string{species, bioproject} {
		leaf = filepath.Join(leaf, name)
		created, err := ensureDir(leaf)
		if err != nil {
			return "", err
		}
		if created {
			sentinel := filepath.Join(leaf, SentinelFile)
			if err := os.WriteFile(sentinel, nil, 0644); err != nil {
				return "", fmt.Errorf("creating sentinel %s: %w", sentinel, err)
			}
		}
	}
	return leaf, nil
}

// ensureDir creates path if absent and reports whether it was created.
func ensureDir(path string) (bool, error) {
	info, err := os.Stat(path)
	if err == nil {
		if !info.IsDir() {
			return false, parasite.Errorf(parasite.EINVALID, "%q exists and is not a directory", path)
		}
		return false, nil
	}
	if !os.IsNotExist(err) {
		return false, err
	}
	if err := os.Mkdir(path, 0755); err != nil {
		return false, fmt.Errorf("creating directory %s: %w", path, err)
	}
	return true, nil
}
