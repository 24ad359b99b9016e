package patterns

import "strings"

// kind is the compile-time classification of one (already brace-expanded,
// lowercased) sub-pattern.
type kind int

const (
	kindExact kind = iota
	kindEndsWith
	kindStartsWith
	kindContains
	kindGlob
)

// classified is the result of classifying one sub-pattern.
type classified struct {
	kind    kind
	literal string // basename for kindExact, segment for kindContains
	suffix  string // for kindEndsWith
	prefix  string // for kindStartsWith
	pattern string // original sub-pattern, used for kindGlob
}

const anyPrefix = "**/"

func hasGlobChars(s string) bool {
	return strings.ContainsAny(s, "*?[]{}")
}

// classify assigns sub to one of the five matcher kinds per the pattern
// dialect table: only patterns shaped "**/literal", "**/*suffix",
// "**/prefix*" or "**/segment/**", with no further glob characters or path
// separators in the literal part, get the fast-path kinds. Everything else
// — including any pattern not anchored with the "**/" prefix — falls back
// to kindGlob.
func classify(sub string) classified {
	if !strings.HasPrefix(sub, anyPrefix) {
		return classified{kind: kindGlob, pattern: sub}
	}
	rest := sub[len(anyPrefix):]

	if strings.HasSuffix(rest, "/**") {
		segment := rest[:len(rest)-len("/**")]
		if isPlainLiteral(segment) {
			return classified{kind: kindContains, literal: segment}
		}
	}

	if strings.HasPrefix(rest, "*") {
		suffix := rest[1:]
		if isPlainLiteral(suffix) {
			return classified{kind: kindEndsWith, suffix: suffix}
		}
	}

	if strings.HasSuffix(rest, "*") {
		prefix := rest[:len(rest)-1]
		if isPlainLiteral(prefix) {
			return classified{kind: kindStartsWith, prefix: prefix}
		}
	}

	if isPlainLiteral(rest) {
		return classified{kind: kindExact, literal: rest}
	}

	return classified{kind: kindGlob, pattern: sub}
}

func isPlainLiteral(s string) bool {
	return s != "" && !hasGlobChars(s) && !strings.Contains(s, "/")
}

// globSecondAttempt derives the pattern used for the Glob fallback's second
// match attempt (against the basename alone), per the "** suffix stripped
// before a second attempt" rule.
func globSecondAttempt(pattern string) string {
	if strings.HasSuffix(pattern, "/**") {
		return strings.TrimSuffix(pattern, "/**")
	}
	if strings.HasPrefix(pattern, anyPrefix) {
		return strings.TrimPrefix(pattern, anyPrefix)
	}
	return pattern
}
