package lstar

import "github.com/arcbound/autolearn/automaton"

// DFATeacher answers L*'s queries against a fixed reference automaton. It
// holds the reference by pointer — the automaton package gives it no
// mutators that Learn could reach, so sharing it read-only across
// concurrent learners is safe.
type DFATeacher struct {
	g *automaton.DFA
}

// NewDFATeacher wraps g, asserting it complete (finiteness holds by
// construction for every automaton.DFA; minimality is assumed, not
// checked, per spec).
func NewDFATeacher(g *automaton.DFA) (*DFATeacher, error) {
	if !g.IsComplete() {
		return nil, ErrTeacherPrecondition
	}

	return &DFATeacher{g: g}, nil
}

func (d *DFATeacher) Alphabet() []byte { return d.g.Alphabet() }

func (d *DFATeacher) MembershipQuery(w string) bool { return d.g.Accepts(w) }

func (d *DFATeacher) Conjecture(h *automaton.DFA) (string, bool) {
	return automaton.Match(d.g, h)
}
