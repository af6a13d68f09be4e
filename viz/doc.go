// Package viz formats an automaton.DFA as Graphviz DOT source or an HTML
// table, for display in external tooling. It is a pure side-channel: no
// function here mutates an automaton, and nothing downstream
// in this module reads these strings back.
package viz
