package tui

import "strings"

// FuzzyMatch reports whether every character of query appears in target in
// order, ignoring case, along with a relevance score. Consecutive runs, a
// match on the first character, and matches after a separator score higher.
func FuzzyMatch(query, target string) (bool, int) {
	q := strings.ToLower(query)
	t := strings.ToLower(target)

	score, run, qi := 0, 0, 0
	for ti := 0; ti < len(t) && qi < len(q); ti++ {
		if t[ti] != q[qi] {
			run = 0
			continue
		}
		qi++
		run++
		score += run
		switch {
		case ti == 0:
			score += 3
		case isSeparator(t[ti-1]):
			score += 2
		}
	}
	return qi == len(q), score
}

func isSeparator(c byte) bool {
	return strings.IndexByte(" ./-_+", c) >= 0
}
