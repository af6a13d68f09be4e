package automaton

// Symbol is a single alphabet character. The inference engines in this
// module operate over byte alphabets (small, explicit symbol sets), which
// covers every sample/query alphabet the Teacher or the Gold sample sets
// can express.
type Symbol = byte

// State is a dense, zero-based automaton state identifier.
type State = int

// Word is a finite sequence of Symbols.
type Word = string

// DFA is a deterministic finite automaton (Q, Sigma, q0, F, delta) with
// Q = {0, ..., n-1}. It is not safe for concurrent mutation — per spec
// the inference core is single-threaded and synchronous, so DFA carries
// no locking, unlike the mutable multigraph it is adapted from.
type DFA struct {
	numStates int
	initial   State
	final     map[State]bool
	delta     map[State]map[Symbol]State
}

// NewDFA constructs a DFA with states 0..n-1, no edges, no accepting
// states, and initial state 0.
func NewDFA(n int) *DFA {
	return &DFA{
		numStates: n,
		initial:   0,
		final:     make(map[State]bool, n),
		delta:     make(map[State]map[Symbol]State, n),
	}
}

// NumStates returns |Q|.
func (g *DFA) NumStates() int { return g.numStates }

// Initial returns q0.
func (g *DFA) Initial() State { return g.initial }

// SetInitial sets q0. Out-of-range ids are rejected.
func (g *DFA) SetInitial(q State) error {
	if !g.validState(q) {
		return ErrUnknownState
	}
	g.initial = q

	return nil
}

func (g *DFA) validState(q State) bool {
	return q >= 0 && q < g.numStates
}
