// Package automaton defines the minimal DFA data type shared by the gold
// and lstar inference engines, plus the DFA-equivalence / counter-example
// procedure that drives L*'s conjecture loop.
//
// A DFA is a tuple (Q, Sigma, q0, F, delta) where Q is the dense integer
// range [0, n), delta is a partial function, and F is stored as a
// per-state boolean rather than a subset type. Construction never
// allocates more state than requested: AddEdge is the only way to grow
// the transition relation, and it is idempotent-safe (it reports,
// rather than panics on, an already-defined transition).
//
// Complexity:
//
//   - AddEdge, Delta, SetFinal, IsFinal: O(1).
//   - Sigma(q): O(|delta(q, ·)|).
//   - Alphabet(): O(|Q| * |Sigma|), recomputed on every call (the result
//     is not cached).
//   - Accepts(w): O(|w|).
//   - Match(g1, g2): O(|Q1| + |Q2|) amortized (see match.go).
//
// Errors:
//
//   - ErrUnknownState   an AddEdge/SetFinal/SetInitial call used a state id
//     outside [0, NumStates()). Delta, IsFinal and Sigma return no error:
//     for such an id they report an undefined transition, a non-accepting
//     state, and an empty symbol set respectively.
package automaton
