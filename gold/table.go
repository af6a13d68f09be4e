package gold

import (
	"github.com/arcbound/autolearn/words"
)

// ObservationTable is the Gold observation table over S+ union S-: rows
// indexed by RED (confirmed access strings) and BLUE (their frontier),
// columns indexed by EXP (every suffix of every sample).
type ObservationTable struct {
	alphabet      map[byte]struct{}
	alphabetOrder []byte

	sPlus  map[string]struct{}
	sMinus map[string]struct{}

	red    []string
	redSet map[string]struct{}

	blue    []string
	blueSet map[string]struct{}

	exp []string

	rows map[string][]Cell

	opts Options
}

// DefaultOptions returns Gold's default options: mode-B synthesis, the
// plain lexicographic minimum (length-unaware — the project's historical
// behavior) as both choice functions, and RedInit = {""}.
func DefaultOptions() Options {
	return Options{
		FillHoles: false,
		BluePick:  words.MinLex,
		RedPick:   words.MinLex,
		RedInit:   []string{""},
	}
}

// NewObservationTable validates (s+, s-, alphabet, red_init) and builds
// the initial table: EXP from every sample suffix, RED seeded from
// red_init (default {""}), BLUE as RED's one-symbol frontier, and every
// cell filled from the sample oracle.
func NewObservationTable(sPlus, sMinus []string, alphabet []byte, opts ...Option) (*ObservationTable, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	alphaSet := make(map[byte]struct{}, len(alphabet))
	var alphaOrder []byte
	for _, a := range alphabet {
		if _, seen := alphaSet[a]; !seen {
			alphaSet[a] = struct{}{}
			alphaOrder = append(alphaOrder, a)
		}
	}

	plusSet := toSet(sPlus)
	minusSet := toSet(sMinus)

	for w := range plusSet {
		if !wordInAlphabet(w, alphaSet) {
			return nil, ErrInvalidAlphabet
		}
	}
	for w := range minusSet {
		if !wordInAlphabet(w, alphaSet) {
			return nil, ErrInvalidAlphabet
		}
		if _, overlap := plusSet[w]; overlap {
			return nil, ErrOverlappingSamples
		}
	}

	redInitSet := toSet(o.RedInit)
	for w := range redInitSet {
		if !wordInAlphabet(w, alphaSet) {
			return nil, ErrInvalidAlphabet
		}
	}
	if !words.IsPrefixClosed(redInitSet) {
		return nil, ErrInvalidRedSeed
	}

	exp := computeExp(sPlus, sMinus)

	t := &ObservationTable{
		alphabet:      alphaSet,
		alphabetOrder: alphaOrder,
		sPlus:         plusSet,
		sMinus:        minusSet,
		redSet:        make(map[string]struct{}),
		blueSet:       make(map[string]struct{}),
		rows:          make(map[string][]Cell),
		exp:           exp,
		opts:          o,
	}

	t.red = append([]string{}, o.RedInit...)
	words.SortByLenLex(t.red)
	for _, r := range t.red {
		t.redSet[r] = struct{}{}
		t.rows[r] = t.fillRow(r)
	}

	for _, r := range t.red {
		for _, a := range t.alphabetOrder {
			ext := r + string(a)
			if _, inRed := t.redSet[ext]; inRed {
				continue
			}
			if _, inBlue := t.blueSet[ext]; inBlue {
				continue
			}
			t.blue = append(t.blue, ext)
			t.blueSet[ext] = struct{}{}
			t.rows[ext] = t.fillRow(ext)
		}
	}
	words.SortByLenLex(t.blue)

	return t, nil
}

// val implements the sample oracle: 1 if w in S+, 0 if w in S-, else Hole.
func (t *ObservationTable) val(w string) Cell {
	if _, ok := t.sPlus[w]; ok {
		return One
	}
	if _, ok := t.sMinus[w]; ok {
		return Zero
	}

	return Hole
}

func (t *ObservationTable) fillRow(p string) []Cell {
	row := make([]Cell, len(t.exp))
	for i, e := range t.exp {
		row[i] = t.val(p + e)
	}

	return row
}

// isObviouslyDifferent reports whether a and b disagree (1 vs 0, in
// either order) at some shared column. This realizes the symmetric
// reading of spec 9's open question: every calling site (promotion,
// compatibility, hole-filling) expects symmetry, so the predicate is
// implemented symmetrically rather than bug-for-bug with the original
// one-sided clause.
func isObviouslyDifferent(a, b []Cell) bool {
	for i := range a {
		if (a[i] == One && b[i] == Zero) || (a[i] == Zero && b[i] == One) {
			return true
		}
	}

	return false
}

// TryPromote performs one blue-promotion step: it collects every blue row
// obviously different from every red row, picks one via BluePick, moves
// it into RED, and extends BLUE with its fresh one-symbol successors.
// It returns false once no blue row is eligible (the driver's fixpoint
// condition).
func (t *ObservationTable) TryPromote() bool {
	var candidates []string
	for _, b := range t.blue {
		if t.differsFromEveryRed(b) {
			candidates = append(candidates, b)
		}
	}
	if len(candidates) == 0 {
		return false
	}

	chosen := t.opts.BluePick(candidates)

	t.blue = removeString(t.blue, chosen)
	delete(t.blueSet, chosen)
	t.red = append(t.red, chosen)
	t.redSet[chosen] = struct{}{}

	for _, a := range t.alphabetOrder {
		ext := chosen + string(a)
		if _, inRed := t.redSet[ext]; inRed {
			continue
		}
		if _, inBlue := t.blueSet[ext]; inBlue {
			continue
		}
		t.blue = append(t.blue, ext)
		t.blueSet[ext] = struct{}{}
		t.rows[ext] = t.fillRow(ext)
	}
	words.SortByLenLex(t.blue)

	return true
}

func (t *ObservationTable) differsFromEveryRed(p string) bool {
	row := t.rows[p]
	for _, r := range t.red {
		if !isObviouslyDifferent(row, t.rows[r]) {
			return false
		}
	}

	return true
}

// compatibleReds returns the red access strings not obviously different
// from p's row, in RED's current order.
func (t *ObservationTable) compatibleReds(row []Cell) []string {
	var out []string
	for _, r := range t.red {
		if !isObviouslyDifferent(row, t.rows[r]) {
			out = append(out, r)
		}
	}

	return out
}

func toSet(ss []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ss))
	for _, s := range ss {
		set[s] = struct{}{}
	}

	return set
}

func wordInAlphabet(w string, alphabet map[byte]struct{}) bool {
	for i := 0; i < len(w); i++ {
		if _, ok := alphabet[w[i]]; !ok {
			return false
		}
	}

	return true
}

func computeExp(sPlus, sMinus []string) []string {
	set := make(map[string]struct{})
	for _, w := range sPlus {
		for _, s := range words.Suffixes(w) {
			set[s] = struct{}{}
		}
	}
	for _, w := range sMinus {
		for _, s := range words.Suffixes(w) {
			set[s] = struct{}{}
		}
	}

	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	words.SortByLenLex(out)

	return out
}

func removeString(ss []string, target string) []string {
	out := ss[:0:0]
	for _, s := range ss {
		if s != target {
			out = append(out, s)
		}
	}

	return out
}
