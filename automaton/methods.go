package automaton

import "sort"

// AddEdge inserts the transition (q, a) -> r. If delta(q, a) is already
// defined, this is a no-op and AddEdge returns false (the "already
// present" signal of spec 4.2) rather than overwriting the existing
// target or erroring — transitions are meant to be added once, from
// data the caller already knows is consistent.
func (g *DFA) AddEdge(q, r State, a Symbol) (bool, error) {
	if !g.validState(q) || !g.validState(r) {
		return false, ErrUnknownState
	}
	row, ok := g.delta[q]
	if !ok {
		row = make(map[Symbol]State, 1)
		g.delta[q] = row
	}
	if _, exists := row[a]; exists {
		return false, nil
	}
	row[a] = r

	return true, nil
}

// Delta returns delta(q, a) and whether it is defined.
func (g *DFA) Delta(q State, a Symbol) (State, bool) {
	row, ok := g.delta[q]
	if !ok {
		return 0, false
	}
	r, ok := row[a]

	return r, ok
}

// Sigma returns the symbols for which delta(q, ·) is defined, sorted
// ascending.
func (g *DFA) Sigma(q State) []Symbol {
	row := g.delta[q]
	out := make([]Symbol, 0, len(row))
	for a := range row {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Alphabet returns the union of Sigma(q) over every state, sorted
// ascending.
func (g *DFA) Alphabet() []Symbol {
	seen := make(map[Symbol]struct{})
	for _, row := range g.delta {
		for a := range row {
			seen[a] = struct{}{}
		}
	}
	out := make([]Symbol, 0, len(seen))
	for a := range seen {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// SetFinal marks (or unmarks) q as accepting.
func (g *DFA) SetFinal(q State, b bool) error {
	if !g.validState(q) {
		return ErrUnknownState
	}
	g.final[q] = b

	return nil
}

// IsFinal reports whether q is an accepting state. An out-of-range state
// is simply not final — callers that need to distinguish "invalid state"
// from "non-accepting state" should validate q themselves first.
func (g *DFA) IsFinal(q State) bool {
	return g.final[q]
}

// Accepts runs w from q0, rejecting as soon as delta is undefined
// mid-word, and otherwise accepting iff the terminal state is final.
func (g *DFA) Accepts(w Word) bool {
	q := g.initial
	for i := 0; i < len(w); i++ {
		next, ok := g.Delta(q, w[i])
		if !ok {
			return false
		}
		q = next
	}

	return g.IsFinal(q)
}

// IsComplete reports whether delta(q, a) is defined for every q in Q and
// every a in Alphabet().
func (g *DFA) IsComplete() bool {
	alphabet := g.Alphabet()
	for q := 0; q < g.numStates; q++ {
		row := g.delta[q]
		if len(row) < len(alphabet) {
			return false
		}
		for _, a := range alphabet {
			if _, ok := row[a]; !ok {
				return false
			}
		}
	}

	return true
}

// IsDeterministic always returns true: delta is represented as a
// map[Symbol]State per source state, so at most one target per (q, a)
// is representable by construction.
func (g *DFA) IsDeterministic() bool { return true }

// IsFinite always returns true: Q is the fixed, finite range
// [0, NumStates()).
func (g *DFA) IsFinite() bool { return true }
