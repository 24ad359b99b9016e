package scanner

import "path/filepath"

// DefaultRoots returns the common project-root candidates, relative to
// home, that exist on disk. It is a CLI convenience only — Scan itself
// always takes an explicit root and never consults this list.
func DefaultRoots(home string, exists func(string) bool) []string {
	candidates := []string{
		filepath.Join(home, "Projects"),
		filepath.Join(home, "Code"),
		filepath.Join(home, "Developer"),
		filepath.Join(home, "go"),
		filepath.Join(home, ".cargo"),
	}

	var roots []string
	for _, c := range candidates {
		if exists(c) {
			roots = append(roots, c)
		}
	}
	return roots
}
