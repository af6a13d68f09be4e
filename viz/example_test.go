package viz_test

import (
	"fmt"

	"github.com/arcbound/autolearn/automaton"
	"github.com/arcbound/autolearn/viz"
)

// ExampleDOT renders a one-state, one-symbol automaton as Graphviz source.
func ExampleDOT() {
	g, err := automaton.MakeAutomaton([]automaton.Transition{
		{From: "0", To: "0", Sym: 'a'},
	}, "0", []string{"0"})
	if err != nil {
		panic(err)
	}

	fmt.Print(viz.DOT(g))
	// Output:
	// digraph DFA {
	// 	rankdir=LR;
	// 	start [shape=point];
	// 	0 [shape=doublecircle];
	// 	start -> 0;
	// 	0 -> 0 [label="a"];
	// }
}
