package lstar

import "errors"

// ErrTeacherPrecondition signals that a Teacher's reference automaton is
// not complete — L* assumes completeness (and finiteness, guaranteed by
// the automaton type's construction) and never checks it again afterward.
var ErrTeacherPrecondition = errors.New("lstar: teacher's automaton is not complete")
