package lstar

import "github.com/arcbound/autolearn/automaton"

// Teacher answers the two queries L* needs: membership of a single word,
// and whether a hypothesis automaton already matches the reference
// automaton (returning a counter-example when it does not).
type Teacher interface {
	Alphabet() []byte
	MembershipQuery(w string) bool
	// Conjecture mirrors automaton.Match's convention: (word, true) is a
	// counter-example, ("", false) signals equivalence.
	Conjecture(h *automaton.DFA) (string, bool)
}

// ObservationTable is the binary table L* grows. S is the access-prefix
// working set; every row the algorithms touch lies in S or its one-symbol
// extensions S·A. Cells are a dense bool matrix paired with a same-shaped
// probed matrix, both indexed through insertion-ordered string->int maps
// so iteration over rows and columns stays deterministic.
type ObservationTable struct {
	alphabet []byte

	s    []string
	sSet map[string]struct{}

	rowIndex map[string]int
	rowOrder []string

	colIndex map[string]int
	colOrder []string

	cells  [][]bool
	probed [][]bool
}

// NewObservationTable returns an empty table over the given alphabet, with
// no rows or columns yet — the caller (Learn) seeds S and E.
func NewObservationTable(alphabet []byte) *ObservationTable {
	return &ObservationTable{
		alphabet: append([]byte{}, alphabet...),
		sSet:     make(map[string]struct{}),
		rowIndex: make(map[string]int),
		colIndex: make(map[string]int),
	}
}
