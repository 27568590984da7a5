package ignore

import "github.com/arthur-debert/doot/pkg/errors"

// matchSegments aligns a slash-split pattern against path segments.
// "**" matches zero or more whole segments; every other pattern segment
// must match exactly one path segment.
func matchSegments(pattern, segs []string) bool {
	if len(pattern) == 0 {
		return len(segs) == 0
	}
	if pattern[0] == "**" {
		for i := 0; i <= len(segs); i++ {
			if matchSegments(pattern[1:], segs[i:]) {
				return true
			}
		}
		return false
	}
	if len(segs) == 0 {
		return false
	}
	if !matchSegment(pattern[0], segs[0]) {
		return false
	}
	return matchSegments(pattern[1:], segs[1:])
}

// matchSegment matches a single glob pattern segment against one path
// segment. '*' matches any run of characters within the segment, '?'
// matches one character, '[...]' is a character class, and '\' escapes
// the following character.
func matchSegment(pattern, name string) bool {
	p := []rune(pattern)
	n := []rune(name)

	var pi, ni int
	starP, starN := -1, 0

	for ni < len(n) {
		advanced := false
		if pi < len(p) {
			switch c := p[pi]; c {
			case '*':
				starP, starN = pi, ni
				pi++
				continue
			case '?':
				pi++
				ni++
				advanced = true
			case '[':
				if ok, next := matchClass(p, pi, n[ni]); ok {
					pi = next
					ni++
					advanced = true
				}
			case '\\':
				if pi+1 < len(p) && p[pi+1] == n[ni] {
					pi += 2
					ni++
					advanced = true
				}
			default:
				if c == n[ni] {
					pi++
					ni++
					advanced = true
				}
			}
		}
		if advanced {
			continue
		}
		// Backtrack: let the last '*' consume one more character
		if starP >= 0 {
			starN++
			ni = starN
			pi = starP + 1
			continue
		}
		return false
	}

	for pi < len(p) && p[pi] == '*' {
		pi++
	}
	return pi == len(p)
}

// matchClass matches r against the character class starting at p[start]
// (which must be '['). Returns whether the class matched and the index
// just past the closing ']'. A ']' immediately after '[' or '[!' is a
// literal member of the class.
func matchClass(p []rune, start int, r rune) (bool, int) {
	i := start + 1
	negate := false
	if i < len(p) && (p[i] == '!' || p[i] == '^') {
		negate = true
		i++
	}

	matched := false
	first := true
	for i < len(p) {
		if p[i] == ']' && !first {
			return matched != negate, i + 1
		}
		first = false

		lo := p[i]
		if lo == '\\' && i+1 < len(p) {
			i++
			lo = p[i]
		}
		hi := lo
		if i+2 < len(p) && p[i+1] == '-' && p[i+2] != ']' {
			hi = p[i+2]
			i += 2
		}
		if r >= lo && r <= hi {
			matched = true
		}
		i++
	}

	// Unterminated class; Compile rejects these before matching
	return false, len(p)
}

// validatePattern rejects globs that cannot be compiled: an unterminated
// character class or a trailing escape.
func validatePattern(pattern string) error {
	p := []rune(pattern)
	for i := 0; i < len(p); i++ {
		switch p[i] {
		case '\\':
			if i+1 >= len(p) {
				return errors.New(errors.ErrPatternInvalid, "trailing backslash")
			}
			i++
		case '[':
			j := i + 1
			if j < len(p) && (p[j] == '!' || p[j] == '^') {
				j++
			}
			first := true
			closed := false
			for ; j < len(p); j++ {
				if p[j] == '\\' {
					j++
					first = false
					continue
				}
				if p[j] == ']' && !first {
					closed = true
					break
				}
				first = false
			}
			if !closed {
				return errors.New(errors.ErrPatternInvalid, "unterminated character class")
			}
			i = j
		}
	}
	return nil
}
