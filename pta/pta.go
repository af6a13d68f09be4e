package pta

import (
	"github.com/arcbound/autolearn/automaton"
	"github.com/arcbound/autolearn/words"
)

// Build constructs the prefix-tree acceptor of sPlus: state 0 is the
// root, each word of sPlus spells one path from the root, and the state
// reached after consuming a full word is accepting, even when it is an
// inner node because the word is a prefix of another sample. Words are
// processed in (length, lexicographic) order for reproducibility, though
// the resulting tree's shape does not depend on that order.
func Build(sPlus []string) *automaton.DFA {
	ordered := append([]string{}, sPlus...)
	words.SortByLenLex(ordered)

	children := map[int]map[byte]int{0: {}}
	next := 1
	finals := make(map[int]bool)

	for _, w := range ordered {
		cur := 0
		for i := 0; i < len(w); i++ {
			a := w[i]
			if children[cur] == nil {
				children[cur] = make(map[byte]int)
			}
			nxt, ok := children[cur][a]
			if !ok {
				nxt = next
				next++
				children[cur][a] = nxt
			}
			cur = nxt
		}
		finals[cur] = true
	}

	g := automaton.NewDFA(next)
	for from, row := range children {
		for a, to := range row {
			_, _ = g.AddEdge(from, to, a)
		}
	}
	for q, ok := range finals {
		if ok {
			_ = g.SetFinal(q, true)
		}
	}

	return g
}
