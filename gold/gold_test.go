package gold_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcbound/autolearn/automaton"
	"github.com/arcbound/autolearn/gold"
)

func countEdges(g *automaton.DFA) int {
	n := 0
	for q := 0; q < g.NumStates(); q++ {
		n += len(g.Sigma(q))
	}

	return n
}

var (
	scenario1Plus  = []string{"bb", "abb", "bba", "bbb", "babb"}
	scenario1Minus = []string{"", "a", "ba"}
)

func TestGold_ScenarioOne_ModeB(t *testing.T) {
	g, ok, err := gold.Gold(scenario1Plus, scenario1Minus, []byte("ab"))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 3, g.NumStates())
	assert.Equal(t, 6, countEdges(g))

	for _, w := range scenario1Plus {
		assert.True(t, g.Accepts(w), "expected %q accepted", w)
	}
	for _, w := range scenario1Minus {
		assert.False(t, g.Accepts(w), "expected %q rejected", w)
	}
}

func TestGold_ScenarioOne_ModeA_FillHoles(t *testing.T) {
	g, ok, err := gold.Gold(scenario1Plus, scenario1Minus, []byte("ab"), gold.WithFillHoles())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 3, g.NumStates())
	assert.Equal(t, 6, countEdges(g))

	for _, w := range scenario1Plus {
		assert.True(t, g.Accepts(w), "expected %q accepted", w)
	}
	for _, w := range scenario1Minus {
		assert.False(t, g.Accepts(w), "expected %q rejected", w)
	}
}

func TestGold_ScenarioTwo_PreconditionFailures(t *testing.T) {
	t.Run("overlapping samples", func(t *testing.T) {
		_, _, err := gold.Gold([]string{"a"}, []string{"a"}, []byte("a"))
		assert.ErrorIs(t, err, gold.ErrOverlappingSamples)
	})

	t.Run("sample character outside the alphabet", func(t *testing.T) {
		_, _, err := gold.Gold([]string{"a"}, nil, []byte(""))
		assert.ErrorIs(t, err, gold.ErrInvalidAlphabet)
	})

	t.Run("red seed character outside the alphabet", func(t *testing.T) {
		_, _, err := gold.Gold([]string{"a"}, nil, []byte(""), gold.WithRedInit([]string{"a"}))
		assert.ErrorIs(t, err, gold.ErrInvalidAlphabet)
	})
}

func TestGold_InvalidRedSeed_NotPrefixClosed(t *testing.T) {
	_, _, err := gold.Gold([]string{"ab"}, nil, []byte("ab"), gold.WithRedInit([]string{"ab"}))
	assert.ErrorIs(t, err, gold.ErrInvalidRedSeed)
}

func TestGold_AcceptsSamplesRegardlessOfSynthesisOutcome(t *testing.T) {
	// Whether synthesis succeeds or falls back to the PTA, every positive
	// sample must still be accepted by the returned automaton.
	sPlus := []string{"a", "b"}
	g, _, err := gold.Gold(sPlus, nil, []byte("ab"), gold.WithFillHoles())
	require.NoError(t, err)
	for _, w := range sPlus {
		assert.True(t, g.Accepts(w))
	}
}
