package automaton

import "errors"

// ErrUnknownState indicates a state id outside the automaton's declared
// range [0, NumStates()) was passed to a method that requires a valid
// state.
var ErrUnknownState = errors.New("automaton: unknown state")
