package automaton

// matchItem pairs a work-list entry with the access word that reached it
// in g1, the same role queueItem plays in the teacher's bfs walker.
type matchItem struct {
	word Word
	q1   State
}

// matcher encapsulates the mutable state of one Match run: the partial
// bijection between g1's states and g2's states, and the work-list.
//
// The work-list is a FIFO queue: push enqueues at the tail, pop dequeues
// from the head, matching the source algorithm's deque(appendleft + pop)
// — appendleft inserts at the left end while pop() removes from the
// right end, so items come out in the order they went in. This is
// breadth-first exploration, exactly the "BFS-style walk" /
// "push-front/pop-back" framing spec 4.3 describes. Whichever
// counter-example is found first depends on this order, not on
// correctness.
type matcher struct {
	g1, g2 *DFA
	phi    map[State]State
	queue  []matchItem
	head   int
}

// Match returns ("", false) when g1 and g2 (assumed minimal, deterministic
// and complete) recognize the same language, or (w, true) where w is a
// word distinguishing them.
//
// On a phi-disagreement (r1 already mapped to some state other than r2),
// this implementation does not return immediately: it proceeds to the
// finality check for that pair, exactly as spec 4.3 step 4 describes,
// and only surfaces a counter-example when finality actually disagrees.
// A stricter variant that returns on the structural disagreement itself
// is a valid alternative reading (spec 9) but is not what is implemented
// here.
func Match(g1, g2 *DFA) (Word, bool) {
	if g1.IsFinal(g1.Initial()) != g2.IsFinal(g2.Initial()) {
		return "", true
	}

	m := &matcher{
		g1:  g1,
		g2:  g2,
		phi: map[State]State{g1.Initial(): g2.Initial()},
	}
	m.push("", g1.Initial())

	for m.head < len(m.queue) {
		item := m.pop()
		q2 := m.phi[item.q1]

		sigma1 := g1.Sigma(item.q1)
		sigma2 := g2.Sigma(q2)
		if w, ok := symmetricDifferenceMin(sigma1, sigma2); ok {
			return item.word + string(w), true
		}

		for _, a := range sigma1 {
			r1, _ := g1.Delta(item.q1, a)
			r2, _ := g2.Delta(q2, a)

			if mapped, ok := m.phi[r1]; !ok {
				m.phi[r1] = r2
				m.push(item.word+string(a), r1)
			} else if mapped == r2 {
				// already paired, nothing to do
			}
			// else: structural disagreement, deferred to the finality
			// check below (spec 9 open question).

			if g1.IsFinal(r1) != g2.IsFinal(r2) {
				return item.word + string(a), true
			}
		}
	}

	return "", false
}

func (m *matcher) push(w Word, q State) {
	m.queue = append(m.queue, matchItem{word: w, q1: q})
}

// pop dequeues from the head, the FIFO counterpart to push's tail
// enqueue. head only advances (no compaction) since one Match run's
// queue is bounded by |Q1|, not worth reclaiming.
func (m *matcher) pop() matchItem {
	item := m.queue[m.head]
	m.head++

	return item
}

// symmetricDifferenceMin returns the smallest symbol present in exactly
// one of a, b (both assumed sorted ascending), and whether such a symbol
// exists.
func symmetricDifferenceMin(a, b []Symbol) (Symbol, bool) {
	inA := make(map[Symbol]struct{}, len(a))
	for _, s := range a {
		inA[s] = struct{}{}
	}
	inB := make(map[Symbol]struct{}, len(b))
	for _, s := range b {
		inB[s] = struct{}{}
	}

	found := false
	var best Symbol
	consider := func(s Symbol) {
		if !found || s < best {
			best = s
			found = true
		}
	}
	for _, s := range a {
		if _, ok := inB[s]; !ok {
			consider(s)
		}
	}
	for _, s := range b {
		if _, ok := inA[s]; !ok {
			consider(s)
		}
	}

	return best, found
}
