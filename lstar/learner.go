package lstar

import (
	"sort"

	"github.com/arcbound/autolearn/automaton"
	"github.com/arcbound/autolearn/words"
)

// Learn runs Angluin's L* against t: grow the table to closed and
// consistent, build a hypothesis, consult the Teacher's conjecture query,
// and absorb any counter-example's prefixes until the Teacher reports
// equivalence.
func Learn(t Teacher) *automaton.DFA {
	tbl := NewObservationTable(t.Alphabet())
	tbl.AddToS("")
	tbl.AddSuffix("")
	extend(tbl, t)

	for {
		for !tbl.IsClosed() || !tbl.IsConsistent() {
			if !tbl.IsConsistent() {
				_, _, a, e, _ := tbl.FindMismatchConsistency()
				tbl.AddSuffix(string(a) + e)
				extend(tbl, t)
			}
			if !tbl.IsClosed() {
				s, a, _ := tbl.FindMismatchClosedness()
				ext := s + string(a)
				tbl.AddToS(ext)
				tbl.AddPrefix(ext)
			}
			extend(tbl, t)
		}

		h := tbl.BuildHypothesis()

		cex, found := t.Conjecture(h)
		if !found {
			return h
		}

		for _, p := range words.Prefixes(cex) {
			tbl.AddToS(p)
			tbl.AddPrefix(p)
		}
		extend(tbl, t)
	}
}

// extend probes every unprobed cell of (S ∪ S·A) × E via the Teacher's
// membership query.
func extend(tbl *ObservationTable, t Teacher) {
	prefixes := make([]string, 0, len(tbl.s)*(1+len(tbl.alphabet)))
	for _, s := range tbl.s {
		prefixes = append(prefixes, s)
		for _, a := range tbl.alphabet {
			prefixes = append(prefixes, s+string(a))
		}
	}

	for _, s := range prefixes {
		for _, e := range tbl.colOrder {
			if _, known := tbl.Get(s, e); !known {
				tbl.Set(s, e, t.MembershipQuery(s+e))
			}
		}
	}
}

// BuildHypothesis assembles a DFA from the table's current rows: walk S in
// lexicographic order (so ε sorts first and becomes state 0), assign a
// fresh state to each newly-seen row, mark it final from the ε column, and
// wire each state's transitions from any S-member sharing its row.
func (t *ObservationTable) BuildHypothesis() *automaton.DFA {
	sorted := append([]string{}, t.s...)
	sort.Strings(sorted)

	stateOf := make(map[string]int, len(sorted))
	repr := make(map[string]string, len(sorted))
	var order []string

	for _, s := range sorted {
		r, ok := t.Row(s)
		if !ok {
			continue
		}
		key := string(r)
		if _, seen := stateOf[key]; !seen {
			stateOf[key] = len(order)
			repr[key] = s
			order = append(order, key)
		}
	}

	g := automaton.NewDFA(len(order))
	_ = g.SetInitial(0)

	for _, key := range order {
		id := stateOf[key]
		s := repr[key]

		if v, ok := t.Get(s, ""); ok && v {
			_ = g.SetFinal(id, true)
		}

		for _, a := range t.alphabet {
			extRow, ok := t.Row(s + string(a))
			if !ok {
				continue
			}
			target, ok := stateOf[string(extRow)]
			if !ok {
				continue
			}
			_, _ = g.AddEdge(id, target, a)
		}
	}

	return g
}
