package automaton_test

import (
	"fmt"

	"github.com/arcbound/autolearn/automaton"
)

// ExampleMakeAutomaton builds the DFA that accepts binary strings ending
// in "01" and checks it against a few words.
func ExampleMakeAutomaton() {
	g, err := automaton.MakeAutomaton(
		[]automaton.Transition{
			{From: "q0", To: "q1", Sym: '0'},
			{From: "q0", To: "q0", Sym: '1'},
			{From: "q1", To: "q1", Sym: '0'},
			{From: "q1", To: "q2", Sym: '1'},
			{From: "q2", To: "q1", Sym: '0'},
			{From: "q2", To: "q0", Sym: '1'},
		},
		"q0",
		[]string{"q2"},
	)
	if err != nil {
		panic(err)
	}

	for _, w := range []string{"01", "001", "10", "0101"} {
		fmt.Println(w, g.Accepts(w))
	}
	// Output:
	// 01 true
	// 001 true
	// 10 false
	// 0101 true
}
