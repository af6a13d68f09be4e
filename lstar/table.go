package lstar

// AddToS adds s to the access-prefix working set S if not already present,
// reporting whether it was newly added. It does not touch the matrix —
// callers pair it with AddPrefix to also grow the table's row.
func (t *ObservationTable) AddToS(s string) bool {
	if _, ok := t.sSet[s]; ok {
		return false
	}
	t.sSet[s] = struct{}{}
	t.s = append(t.s, s)

	return true
}

// AddPrefix returns s's row index, creating a new (all-false, unprobed) row
// if s hasn't been seen before.
func (t *ObservationTable) AddPrefix(s string) (int, bool) {
	if i, ok := t.rowIndex[s]; ok {
		return i, false
	}

	i := len(t.rowOrder)
	t.rowIndex[s] = i
	t.rowOrder = append(t.rowOrder, s)

	ncols := len(t.colOrder)
	t.cells = append(t.cells, make([]bool, ncols))
	t.probed = append(t.probed, make([]bool, ncols))

	return i, true
}

// AddSuffix returns e's column index, creating a new (all-false, unprobed)
// column across every existing row if e hasn't been seen before.
func (t *ObservationTable) AddSuffix(e string) (int, bool) {
	if j, ok := t.colIndex[e]; ok {
		return j, false
	}

	j := len(t.colOrder)
	t.colIndex[e] = j
	t.colOrder = append(t.colOrder, e)

	for i := range t.cells {
		t.cells[i] = append(t.cells[i], false)
		t.probed[i] = append(t.probed[i], false)
	}

	return j, true
}

// Set records the membership answer for (s, e), growing the table to fit
// if either index is new.
func (t *ObservationTable) Set(s, e string, v bool) {
	i, _ := t.AddPrefix(s)
	j, _ := t.AddSuffix(e)
	t.cells[i][j] = v
	t.probed[i][j] = true
}

// Get returns (value, true) if (s, e) has been probed, or (false, false)
// if it hasn't been probed yet or either index is unknown.
func (t *ObservationTable) Get(s, e string) (bool, bool) {
	i, ok := t.rowIndex[s]
	if !ok {
		return false, false
	}
	j, ok := t.colIndex[e]
	if !ok {
		return false, false
	}
	if !t.probed[i][j] {
		return false, false
	}

	return t.cells[i][j], true
}

// Row returns s's row packed into a hashable byte string (8 columns per
// byte), or (nil, false) if s has no row yet. Unprobed cells read as
// false, matching the underlying matrix's zero-valued default.
func (t *ObservationTable) Row(s string) ([]byte, bool) {
	i, ok := t.rowIndex[s]
	if !ok {
		return nil, false
	}

	row := t.cells[i]
	packed := make([]byte, (len(row)+7)/8)
	for col, v := range row {
		if v {
			packed[col/8] |= 1 << uint(col%8)
		}
	}

	return packed, true
}

func (t *ObservationTable) allProbed() bool {
	for _, row := range t.probed {
		for _, p := range row {
			if !p {
				return false
			}
		}
	}

	return true
}

// FindMismatchClosedness returns the first (s, a) with s in S, a in the
// alphabet, such that row(s·a) matches no row in S — a witness that the
// table isn't closed. ok is false when no such witness exists.
func (t *ObservationTable) FindMismatchClosedness() (s string, a byte, ok bool) {
	if !t.allProbed() {
		panic("lstar: closedness check requires every cell to be probed")
	}

	sRows := make(map[string]struct{}, len(t.s))
	for _, sv := range t.s {
		if r, ok := t.Row(sv); ok {
			sRows[string(r)] = struct{}{}
		}
	}

	for _, sv := range t.s {
		for _, av := range t.alphabet {
			r, rok := t.Row(sv + string(av))
			if !rok {
				continue
			}
			if _, in := sRows[string(r)]; !in {
				return sv, av, true
			}
		}
	}

	return "", 0, false
}

// IsClosed reports whether FindMismatchClosedness finds no witness.
func (t *ObservationTable) IsClosed() bool {
	_, _, ok := t.FindMismatchClosedness()

	return !ok
}

// FindMismatchConsistency returns (s1, s2, a, e) witnessing a consistency
// violation: s1 and s2 share a row, but s1·a and s2·a disagree at column e.
// ok is false when no such witness exists.
func (t *ObservationTable) FindMismatchConsistency() (s1, s2 string, a byte, e string, ok bool) {
	if !t.allProbed() {
		panic("lstar: consistency check requires every cell to be probed")
	}

	for i1, sv1 := range t.s {
		r1, ok1 := t.Row(sv1)
		if !ok1 {
			continue
		}
		for i2 := i1 + 1; i2 < len(t.s); i2++ {
			sv2 := t.s[i2]
			r2, ok2 := t.Row(sv2)
			if !ok2 || string(r1) != string(r2) {
				continue
			}

			for _, av := range t.alphabet {
				ra1, ok1 := t.Row(sv1 + string(av))
				ra2, ok2 := t.Row(sv2 + string(av))
				if !ok1 || !ok2 || string(ra1) == string(ra2) {
					continue
				}

				for _, ev := range t.colOrder {
					v1, k1 := t.Get(sv1+string(av), ev)
					v2, k2 := t.Get(sv2+string(av), ev)
					if k1 && k2 && v1 != v2 {
						return sv1, sv2, av, ev, true
					}
				}
			}
		}
	}

	return "", "", 0, "", false
}

// IsConsistent reports whether FindMismatchConsistency finds no witness.
func (t *ObservationTable) IsConsistent() bool {
	_, _, _, _, ok := t.FindMismatchConsistency()

	return !ok
}
