package patterns

import "strings"

// expandBraces expands the first unbalanced {a,b,c} alternation group in
// pattern, left to right, recursively expanding whatever brace groups remain
// in each produced alternative. A pattern with no brace group expands to
// itself. Nested groups inside an alternative ("{a,{b,c}}") are preserved
// intact for the recursive call rather than split on their inner commas.
func expandBraces(pattern string) []string {
	start := strings.IndexByte(pattern, '{')
	if start == -1 {
		return []string{pattern}
	}

	depth := 0
	end := -1
	for i := start; i < len(pattern); i++ {
		switch pattern[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				end = i
			}
		}
		if end != -1 {
			break
		}
	}
	if end == -1 {
		// Unbalanced brace with no close: leave pattern as-is.
		return []string{pattern}
	}

	prefix := pattern[:start]
	suffix := pattern[end+1:]
	alternatives := splitTopLevel(pattern[start+1 : end])

	var out []string
	for _, alt := range alternatives {
		out = append(out, expandBraces(prefix+alt+suffix)...)
	}
	return out
}

// splitTopLevel splits s on commas that are not nested inside another
// {...} group.
func splitTopLevel(s string) []string {
	var parts []string
	depth := 0
	last := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, s[last:i])
				last = i + 1
			}
		}
	}
	parts = append(parts, s[last:])
	return parts
}
