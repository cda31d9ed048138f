package span

// similarity.go - Normalization and character-ratio similarity.

// Normalize lowercases s and strips everything but letters and digits.
// Comparisons throughout the engine (titles, quotations) happen over
// normalized forms.
func Normalize(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z' || c >= '0' && c <= '9':
			out = append(out, c)
		case c >= 'A' && c <= 'Z':
			out = append(out, c+32)
		case c >= 0x80:
			out = append(out, c)
		}
	}
	return string(out)
}

// Ratio computes the classic similarity ratio 2*M/(len(a)+len(b)),
// where M is the total length of matching blocks found by recursively
// taking the longest common substring. Identical strings score 1,
// disjoint strings score 0.
func Ratio(a, b string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1
	}
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	m := matchLen(a, b)
	return 2 * float64(m) / float64(len(a)+len(b))
}

// TitleSimilarity normalizes both strings and returns their Ratio.
// Callers accept matches at or above 0.6.
func TitleSimilarity(a, b string) float64 {
	return Ratio(Normalize(a), Normalize(b))
}

// SimilarityThreshold is the acceptance threshold used for fuzzy title
// and quotation matching.
const SimilarityThreshold = 0.6

// matchLen returns the total length of matching blocks between a and b.
func matchLen(a, b string) int {
	ai, bi, n := longestCommon(a, b)
	if n == 0 {
		return 0
	}
	return n + matchLen(a[:ai], b[:bi]) + matchLen(a[ai+n:], b[bi+n:])
}

// longestCommon finds the longest common substring via dynamic
// programming over byte positions.
func longestCommon(a, b string) (ai, bi, n int) {
	if len(a) == 0 || len(b) == 0 {
		return 0, 0, 0
	}
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				cur[j] = prev[j-1] + 1
				if cur[j] > n {
					n = cur[j]
					ai = i - n
					bi = j - n
				}
			} else {
				cur[j] = 0
			}
		}
		prev, cur = cur, prev
	}
	return ai, bi, n
}
