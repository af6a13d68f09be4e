// Package pta builds the prefix-tree acceptor of a finite set of words: a
// tree-shaped DFA that accepts exactly the input words, each spelled by a
// path from the root to an accepting state, with no state merging. It is returned by gold.Gold when hole-filling or
// sample-consistency fails, as a trivial over-approximating fallback —
// spec's "Out of scope" note treats tries as "a fallback return value",
// so this package exists purely to produce one, not to be a general trie.
package pta
