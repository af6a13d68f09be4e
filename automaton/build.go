package automaton

import "sort"

// Transition is one (source, destination, symbol) edge in the
// name-addressed form MakeAutomaton accepts, before names are interned
// into dense integer state ids.
type Transition struct {
	From Word
	To   Word
	Sym  Symbol
}

// MakeAutomaton interns the state names appearing in transitions, q0Name
// and finalNames into dense integer ids assigned in sorted (lexicographic)
// order, builds the resulting DFA, marks the final set, and sets the
// initial state. Names absent from transitions but present in finalNames
// or equal to q0Name are still allocated a state.
func MakeAutomaton(transitions []Transition, q0Name Word, finalNames []Word) (*DFA, error) {
	names := make(map[Word]struct{})
	names[q0Name] = struct{}{}
	for _, t := range transitions {
		names[t.From] = struct{}{}
		names[t.To] = struct{}{}
	}
	for _, n := range finalNames {
		names[n] = struct{}{}
	}

	sorted := make([]Word, 0, len(names))
	for n := range names {
		sorted = append(sorted, n)
	}
	sort.Strings(sorted)

	id := make(map[Word]State, len(sorted))
	for i, n := range sorted {
		id[n] = i
	}

	g := NewDFA(len(sorted))
	if err := g.SetInitial(id[q0Name]); err != nil {
		return nil, err
	}
	for _, t := range transitions {
		if _, err := g.AddEdge(id[t.From], id[t.To], t.Sym); err != nil {
			return nil, err
		}
	}
	for _, n := range finalNames {
		if err := g.SetFinal(id[n], true); err != nil {
			return nil, err
		}
	}

	return g, nil
}
