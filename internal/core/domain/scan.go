package domain

import "path"

// ScanConfig carries the policy a scanner applies while building the
// module graph from a source tree.
type ScanConfig struct {
	// Convention maps directory names to layers.
	// Scanners fall back to DefaultConvention when nil.
	Convention *Convention

	// Exclude lists path globs (relative to the scan root) to skip.
	// A glob matching any path segment or the full relative path
	// excludes the file or directory.
	Exclude []string

	// External lists reference prefixes exempt from the
	// dangling-reference check.
	External []string
}

// Excluded reports whether a slash-separated relative path matches one
// of the exclude globs. Matches are attempted against the full path,
// its base name, and each individual segment so "testdata" excludes
// any testdata directory at any depth.
func (c ScanConfig) Excluded(rel string) bool {
	segments := append([]string{rel, path.Base(rel)}, splitPath(rel)...)
	for _, glob := range c.Exclude {
		for _, candidate := range segments {
			if ok, err := path.Match(glob, candidate); err == nil && ok {
				return true
			}
		}
	}
	return false
}

func splitPath(rel string) []string {
	var out []string
	for rel != "" {
		dir, base := path.Split(rel)
		out = append(out, base)
		rel = path.Clean(dir)
		if rel == "." || rel == "/" {
			break
		}
	}
	return out
}
