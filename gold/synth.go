package gold

import (
	"github.com/arcbound/autolearn/automaton"
	"github.com/arcbound/autolearn/words"
)

// ToAutomaton synthesizes a DFA from the table's current RED/BLUE rows.
// It assumes the caller has already driven TryPromote to a fixpoint (the
// gold driver does this). Mode A (FillHoles) resolves every hole before
// searching RED for a matching row; mode B resolves each blue row to a
// compatible red target at synthesis time, relying on the fixpoint
// invariant that no blue row is obviously different from every red row.
//
// Returns (nil, false) only in mode A, when hole-filling finds no
// compatible red for some blue row.
func (t *ObservationTable) ToAutomaton() (*automaton.DFA, bool) {
	if t.opts.FillHoles {
		if !t.fillHoles() {
			return nil, false
		}

		return t.synthesize(t.matchRedRow), true
	}

	return t.synthesize(t.resolveBlueRow), consistentWithSamples()
}

// consistentWithSamples is the sample-consistency check run after mode-B
// synthesis. Per spec 4.4 / 9 this is a documented stub: the automaton
// type here has no rejecting-state semantics beyond "non-accepting", so
// the check always passes.
func consistentWithSamples() bool { return true }

// synthesize builds the DFA common to both modes: states are RED sorted
// by (length, lexicographic), finality comes from the epsilon column, and
// resolve picks each state's (q, a) target according to the active mode.
func (t *ObservationTable) synthesize(resolve func(q, ext string) string) *automaton.DFA {
	states := append([]string{}, t.red...)
	words.SortByLenLex(states)

	id := make(map[string]int, len(states))
	for i, s := range states {
		id[s] = i
	}

	epsIdx := 0
	for i, e := range t.exp {
		if e == "" {
			epsIdx = i
			break
		}
	}

	g := automaton.NewDFA(len(states))
	_ = g.SetInitial(id[""])
	for _, q := range states {
		if t.rows[q][epsIdx] == One {
			_ = g.SetFinal(id[q], true)
		}
	}

	for _, q := range states {
		for _, a := range t.alphabetOrder {
			ext := q + string(a)
			target := resolve(q, ext)
			_, _ = g.AddEdge(id[q], id[target], a)
		}
	}

	return g
}

// matchRedRow (mode A) returns the first RED access string whose row
// equals ext's row, assuming fillHoles has already run so every row is
// fully resolved to 0/1.
func (t *ObservationTable) matchRedRow(_ string, ext string) string {
	row := t.rows[ext]
	for _, r := range t.red {
		if rowsEqual(t.rows[r], row) {
			return r
		}
	}

	// Unreachable given the table invariants: ext is either in RED
	// itself (trivially equal) or in BLUE with a row made equal to some
	// red row by fillHoles's second sweep.
	return t.red[0]
}

// resolveBlueRow (mode B) emits a self-labeled target when ext is itself
// a confirmed red state, else picks a compatible red via RedPick.
func (t *ObservationTable) resolveBlueRow(_ string, ext string) string {
	if _, ok := t.redSet[ext]; ok {
		return ext
	}

	compatible := t.compatibleReds(t.rows[ext])

	return t.opts.RedPick(compatible)
}

func rowsEqual(a, b []Cell) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
