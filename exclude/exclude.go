// Package exclude decides which directory entries the generator skips,
// using glob patterns matched against the entry name.
package exclude

// DunderPattern matches any name containing a double underscore, which
// covers package initializers (__init__.py) and caches (__pycache__).
const DunderPattern = "*__*"

// Matcher holds name patterns. A name is excluded when any pattern
// matches it.
type Matcher struct {
	patterns []string
}

// New creates a Matcher from glob patterns using * and ?. Empty patterns
// are ignored.
func New(patterns ...string) *Matcher {
	m := &Matcher{}
	for _, p := range patterns {
		if p != "" {
			m.patterns = append(m.patterns, p)
		}
	}
	return m
}

// Default returns the Matcher for the double-underscore marker.
func Default() *Matcher {
	return New(DunderPattern)
}

// Match reports whether the entry name should be skipped.
func (m *Matcher) Match(name string) bool {
	if m == nil {
		return false
	}
	for _, p := range m.patterns {
		if matchGlob(p, name) {
			return true
		}
	}
	return false
}

// matchGlob matches patterns with * and ? against a single name.
func matchGlob(pattern, name string) bool {
	px, nx := 0, 0
	starPx, starNx := -1, -1

	for nx < len(name) {
		if px < len(pattern) {
			switch pattern[px] {
			case '*':
				// Remember this position for backtracking
				starPx = px
				starNx = nx
				px++
				continue
			case '?':
				px++
				nx++
				continue
			default:
				if pattern[px] == name[nx] {
					px++
					nx++
					continue
				}
			}
		}

		// Try to match more with the last *
		if starPx >= 0 && starNx < len(name) {
			starNx++
			px = starPx + 1
			nx = starNx
			continue
		}

		return false
	}

	// Skip trailing *s in pattern
	for px < len(pattern) && pattern[px] == '*' {
		px++
	}

	return px == len(pattern)
}
