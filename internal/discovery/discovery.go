// Package discovery locates parameter-definition artifacts on disk.
//
// Definition documents follow a loose naming convention: the file name
// contains "paramdef" (first letters of either word optionally
// capitalized) with an .arxml extension for schema sources and .json for
// converted documents. Discovery walks a root directory with glob
// patterns, filters excluded subtrees, and returns a sorted, duplicate-free
// path list.
package discovery

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Glob patterns for the two artifact shapes.
const (
	DefinitionPattern = "**/*[Pp]aram[Dd]ef*.arxml"
	DocumentPattern   = "**/*[Pp]aram[Dd]ef*.json"
)

// DefaultExcludes are subtrees never worth scanning.
var DefaultExcludes = []string{
	"**/.git/**",
	"**/node_modules/**",
	"**/vendor/**",
	"**/build/**",
	"**/dist/**",
}

// Discoverer finds files under a fixed root directory.
type Discoverer struct {
	root string
}

// New creates a Discoverer rooted at the given directory.
func New(root string) *Discoverer {
	return &Discoverer{root: root}
}

// Root returns the directory the discoverer scans.
func (d *Discoverer) Root() string { return d.root }

// Definitions returns all ARXML parameter-definition files under the root.
func (d *Discoverer) Definitions() ([]string, error) {
	return d.Discover([]string{DefinitionPattern}, nil)
}

// Documents returns all converted JSON parameter documents under the root.
func (d *Discoverer) Documents() ([]string, error) {
	return d.Discover([]string{DocumentPattern}, nil)
}

// All returns definitions and documents together.
func (d *Discoverer) All() ([]string, error) {
	return d.Discover([]string{DefinitionPattern, DocumentPattern}, nil)
}

// Discover finds all files matching the include patterns, drops those
// matching an exclude pattern or a default exclude, and returns the
// remainder sorted and deduplicated.
func (d *Discoverer) Discover(includes, excludes []string) ([]string, error) {
	if len(includes) == 0 {
		return []string{}, nil
	}
	seen := make(map[string]bool)
	for _, pattern := range includes {
		if err := validatePattern(pattern); err != nil {
			return nil, err
		}

		// doublestar does not follow symbolic links by default.
		matches, err := doublestar.FilepathGlob(filepath.Join(d.root, pattern))
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
		}

		for _, match := range matches {
			rel, err := filepath.Rel(d.root, match)
			if err != nil || strings.HasPrefix(rel, "..") || filepath.IsAbs(rel) {
				return nil, fmt.Errorf("match %q escapes discovery root %q", match, d.root)
			}
			seen[match] = true
		}
	}

	files := make([]string, 0, len(seen))
	for file := range seen {
		if d.excluded(file, excludes) {
			continue
		}
		files = append(files, file)
	}
	slices.Sort(files)
	return files, nil
}

// validatePattern blocks traversal and absolute-path injections before
// the pattern ever reaches the filesystem.
func validatePattern(pattern string) error {
	clean := filepath.Clean(pattern)
	if filepath.IsAbs(clean) {
		return fmt.Errorf("absolute glob patterns not allowed: %s", pattern)
	}
	if slices.Contains(strings.Split(clean, string(filepath.Separator)), "..") {
		return fmt.Errorf("parent directory references not allowed in glob pattern: %s", pattern)
	}
	return nil
}

func (d *Discoverer) excluded(file string, excludes []string) bool {
	rel, err := filepath.Rel(d.root, file)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	base := filepath.Base(file)
	for _, pattern := range append(append([]string{}, DefaultExcludes...), excludes...) {
		pattern = filepath.ToSlash(pattern)
		if matched, err := doublestar.Match(pattern, rel); err == nil && matched {
			return true
		}
		if matched, err := doublestar.Match(pattern, base); err == nil && matched {
			return true
		}
	}
	return false
}
