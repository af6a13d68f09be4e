package gold

import (
	"github.com/arcbound/autolearn/automaton"
	"github.com/arcbound/autolearn/pta"
)

// Gold runs Gold's algorithm: build the observation table, drive
// blue-promotion to a fixpoint, then synthesize a DFA. On inference
// failure it returns the prefix-tree acceptor of S+ and a false success
// flag rather than an error — only precondition violations
// (ErrInvalidAlphabet, ErrInvalidRedSeed, ErrOverlappingSamples) are
// surfaced as errors.
func Gold(sPlus, sMinus []string, alphabet []byte, opts ...Option) (*automaton.DFA, bool, error) {
	t, err := NewObservationTable(sPlus, sMinus, alphabet, opts...)
	if err != nil {
		return nil, false, err
	}

	for t.TryPromote() {
	}

	g, ok := t.ToAutomaton()
	if !ok {
		return pta.Build(sPlus), false, nil
	}

	return g, true, nil
}
