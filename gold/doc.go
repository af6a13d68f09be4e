// Package gold implements Gold's algorithm: passive DFA inference from a
// fixed pair of finite sample sets S+ (words known to be in the target
// language) and S- (words known to be out of it).
//
// The engine is an observation table indexed by access-string prefixes
// (RED, the confirmed rows, and BLUE, their one-symbol frontier) against
// a fixed set of experiment suffixes EXP (every suffix of every sample).
// Cells hold {0, 1, *}: membership in S+, membership in S-, or unknown.
// Blue rows that are "obviously different" from every red row are
// repeatedly promoted into RED until no more promotions are possible
// (try_promote reaching a fixpoint), at which point the table is
// synthesized into a DFA — either by filling remaining holes from a
// compatible red row, or by resolving each blue row to a compatible red
// target at synthesis time.
//
// Complexity: O(|RED| * |BLUE| * |EXP|) per promotion step (every blue row
// is compared with every red row); the driver runs
// at most |RED ∪ BLUE| promotions.
//
// Errors:
//
//   - ErrInvalidAlphabet     a sample or a red_init seed contains a
//     character outside the declared alphabet.
//   - ErrInvalidRedSeed      red_init is not prefix-closed.
//   - ErrOverlappingSamples  S+ and S- share a word.
//
// Inference failure (hole-filling finds no compatible red row for some
// blue row) is not an error: Gold returns the prefix-tree acceptor of S+
// and a false success flag, per spec.
package gold
