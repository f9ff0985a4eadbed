package driver

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// Matcher selects files by include and exclude globs relative to Root.
type Matcher struct {
	Root    string
	Include []string
	Exclude []string
}

// Validate rejects malformed glob patterns.
func (m Matcher) Validate() error {
	for _, p := range append(append([]string(nil), m.Include...), m.Exclude...) {
		if !doublestar.ValidatePattern(p) {
			return fmt.Errorf("invalid glob pattern %q", p)
		}
	}
	return nil
}

func (m Matcher) rel(path string) string {
	if m.Root == "" {
		return filepath.ToSlash(path)
	}
	rel, err := filepath.Rel(m.Root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

func matchAny(patterns []string, name string) bool {
	for _, p := range patterns {
		if ok, _ := doublestar.Match(p, name); ok {
			return true
		}
	}
	return false
}

// Included reports whether a file path passes both pattern lists.
func (m Matcher) Included(path string) bool {
	rel := m.rel(path)
	return matchAny(m.Include, rel) && !matchAny(m.Exclude, rel)
}

// prunes reports whether a directory is excluded as a whole.
func (m Matcher) prunes(dir string) bool {
	rel := m.rel(dir)
	if rel == "." {
		return false
	}
	return matchAny(m.Exclude, rel) || matchAny(m.Exclude, rel+"/")
}

// CollectFiles expands paths into a sorted, de-duplicated file list.
// Files named explicitly are always kept; directories are walked and
// filtered through m.
func CollectFiles(paths []string, m Matcher) ([]string, error) {
	seen := make(map[string]struct{})
	var files []string
	add := func(p string) {
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		files = append(files, p)
	}

	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", root, err)
		}
		if !info.IsDir() {
			add(filepath.Clean(root))
			continue
		}
		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path != root && m.prunes(path) {
					return filepath.SkipDir
				}
				return nil
			}
			if m.Included(path) {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", root, err)
		}
	}

	sort.Strings(files)
	return files, nil
}
