// Package schemamatch implements the shell-style glob filtering spec.md
// §4.2 requires of the catalog inspector: an object survives iff its
// schema matches at least one supplied pattern under "?", "*", "[...]"
// globbing.
package schemamatch

import "path/filepath"

// Match reports whether schema matches at least one pattern. With no
// patterns, every schema matches (no filtering is applied).
func Match(schema string, patterns []string) bool {
	if len(patterns) == 0 {
		return true
	}
	for _, p := range patterns {
		if ok, err := filepath.Match(p, schema); err == nil && ok {
			return true
		}
	}
	return false
}
