package words

import "sort"

// Prefixes returns the len(w)+1 prefixes of w, including "", ordered by
// ascending length (so Prefixes("ab") == []string{"", "a", "ab"}).
func Prefixes(w string) []string {
	out := make([]string, 0, len(w)+1)
	for i := 0; i <= len(w); i++ {
		out = append(out, w[:i])
	}

	return out
}

// Suffixes returns the len(w)+1 suffixes of w, including "", ordered by
// ascending length (so Suffixes("ab") == []string{"", "b", "ab"}).
func Suffixes(w string) []string {
	out := make([]string, 0, len(w)+1)
	for i := len(w); i >= 0; i-- {
		out = append(out, w[i:])
	}

	return out
}

// IsPrefixClosed reports whether every prefix of every element of set is
// also a member of set.
func IsPrefixClosed(set map[string]struct{}) bool {
	for w := range set {
		for _, p := range Prefixes(w) {
			if _, ok := set[p]; !ok {
				return false
			}
		}
	}

	return true
}

// IsSuffixClosed reports whether every suffix of every element of set is
// also a member of set.
func IsSuffixClosed(set map[string]struct{}) bool {
	for w := range set {
		for _, s := range Suffixes(w) {
			if _, ok := set[s]; !ok {
				return false
			}
		}
	}

	return true
}

// LessLenLex reports whether a sorts before b under the (length,
// lexicographic) order used throughout the observation tables.
func LessLenLex(a, b string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}

	return a < b
}

// SortByLenLex sorts ss in place by (length, lexicographic) order.
func SortByLenLex(ss []string) {
	sort.Slice(ss, func(i, j int) bool { return LessLenLex(ss[i], ss[j]) })
}

// MinByLenLex returns the (length, lexicographic)-minimum element of ss.
// Panics on an empty slice — callers must only invoke it on non-empty
// candidate sets, the same contract the source algorithm relies on when
// it calls Python's min() over a non-empty set.
func MinByLenLex(ss []string) string {
	best := ss[0]
	for _, s := range ss[1:] {
		if LessLenLex(s, best) {
			best = s
		}
	}

	return best
}

// MinLex returns the plain lexicographic minimum of ss (length-unaware,
// ordinary byte-wise string comparison). This is Gold's historical
// blue/red choice-function default: Python's min() over a set of
// strings, which compares byte-by-byte rather than by length first.
// Panics on an empty slice, the same contract as MinByLenLex.
func MinLex(ss []string) string {
	best := ss[0]
	for _, s := range ss[1:] {
		if s < best {
			best = s
		}
	}

	return best
}
