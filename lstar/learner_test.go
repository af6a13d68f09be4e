package lstar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcbound/autolearn/automaton"
	"github.com/arcbound/autolearn/lstar"
)

// g1 is the 3-state DFA used throughout the automaton package's match
// fixtures: q0 --a--> q0, q0 --b--> q1, q1 --a--> q2, q1 --b--> q1,
// q2 --a--> q1, q2 --b--> q1, with F = {q1}.
func g1(t *testing.T) *automaton.DFA {
	t.Helper()
	g, err := automaton.MakeAutomaton([]automaton.Transition{
		{From: "0", To: "0", Sym: 'a'},
		{From: "0", To: "1", Sym: 'b'},
		{From: "1", To: "2", Sym: 'a'},
		{From: "1", To: "1", Sym: 'b'},
		{From: "2", To: "1", Sym: 'a'},
		{From: "2", To: "1", Sym: 'b'},
	}, "0", []string{"1"})
	require.NoError(t, err)

	return g
}

// evenA accepts binary strings over {a,b} with an even number of a's.
func evenA(t *testing.T) *automaton.DFA {
	t.Helper()
	g, err := automaton.MakeAutomaton([]automaton.Transition{
		{From: "0", To: "1", Sym: 'a'},
		{From: "0", To: "0", Sym: 'b'},
		{From: "1", To: "0", Sym: 'a'},
		{From: "1", To: "1", Sym: 'b'},
	}, "0", []string{"0"})
	require.NoError(t, err)

	return g
}

func TestLearn_MatchesReferenceAutomaton_G1(t *testing.T) {
	ref := g1(t)
	teacher, err := lstar.NewDFATeacher(ref)
	require.NoError(t, err)

	h := lstar.Learn(teacher)

	_, distinguished := automaton.Match(ref, h)
	assert.False(t, distinguished, "learned automaton should be equivalent to the reference")
}

func TestLearn_MatchesReferenceAutomaton_EvenA(t *testing.T) {
	ref := evenA(t)
	teacher, err := lstar.NewDFATeacher(ref)
	require.NoError(t, err)

	h := lstar.Learn(teacher)

	for _, w := range []string{"", "a", "aa", "aaa", "b", "ab", "ba", "abba"} {
		assert.Equal(t, ref.Accepts(w), h.Accepts(w), "mismatch on %q", w)
	}
}

func TestNewDFATeacher_RejectsIncompleteAutomaton(t *testing.T) {
	g := automaton.NewDFA(2)
	_, _ = g.AddEdge(0, 1, 'a')
	// state 1 has no outgoing edges at all, so sigma(1) != alphabet(): incomplete.

	_, err := lstar.NewDFATeacher(g)
	assert.ErrorIs(t, err, lstar.ErrTeacherPrecondition)
}
