// Package autolearn infers deterministic finite automata from finite
// evidence, two ways:
//
//	gold/    — Gold's algorithm: passive inference from a finite sample of
//	           accepted and rejected words, via a red/blue observation table.
//	lstar/   — Angluin's L*: active inference through membership and
//	           conjecture queries against a Teacher oracle.
//
// Both algorithms build on shared foundations:
//
//	automaton/ — the DFA type, its construction from named transitions,
//	             and the equivalence checker that drives L*'s counter-
//	             example loop.
//	words/     — prefix/suffix enumeration and the (length, lexicographic)
//	             ordering used throughout for deterministic iteration.
//	pta/       — the prefix-tree acceptor returned when Gold's synthesis
//	             fails to find a compatible DFA.
//	viz/       — formats a DFA as Graphviz DOT or an HTML table, a pure
//	             side-channel with no feedback into inference.
//
//	go get github.com/arcbound/autolearn
package autolearn
