package textutil

import "strings"

// Ratio scores how alike a and b are in [0, 1] using the Ratcliff/Obershelp
// measure: twice the matched rune count over the combined length. Matching
// blocks are found by taking the longest common substring and recursing on
// both sides of it.
func Ratio(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	total := len(ra) + len(rb)
	if total == 0 {
		return 1
	}
	return 2 * float64(matches(ra, rb)) / float64(total)
}

func matches(a, b []rune) int {
	i, j, n := longestCommon(a, b)
	if n == 0 {
		return 0
	}
	return n + matches(a[:i], b[:j]) + matches(a[i+n:], b[j+n:])
}

// longestCommon returns the earliest longest common substring of a and b.
func longestCommon(a, b []rune) (ai, bj, size int) {
	if len(a) == 0 || len(b) == 0 {
		return 0, 0, 0
	}
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				cur[j] = prev[j-1] + 1
				if cur[j] > size {
					size = cur[j]
					ai, bj = i-size, j-size
				}
			} else {
				cur[j] = 0
			}
		}
		prev, cur = cur, prev
	}
	return ai, bj, size
}

// BestMatch returns the index of the candidate whose lower-cased, trimmed
// name is most similar to name, or -1 when none reaches threshold. Ties keep
// the earliest candidate.
func BestMatch(name string, names []string, threshold float64) int {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return -1
	}
	best, bestRatio := -1, 0.0
	for i, n := range names {
		r := Ratio(needle, strings.ToLower(strings.TrimSpace(n)))
		if r > bestRatio {
			best, bestRatio = i, r
		}
	}
	if bestRatio < threshold {
		return -1
	}
	return best
}
