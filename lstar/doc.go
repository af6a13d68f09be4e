// Package lstar implements Angluin's L*: active inference of a DFA through
// membership and conjecture queries against a Teacher that holds a
// reference automaton. It grows a binary observation table — access
// prefixes against distinguishing suffixes — to a closed and consistent
// fixpoint, builds a hypothesis, and absorbs any counter-example the
// Teacher returns until the hypothesis matches.
package lstar
