package gold

// Cell is the three-valued membership mark of a Gold observation table
// entry: known-in (One), known-out (Zero), or unresolved (Hole).
type Cell int8

const (
	// Zero marks p+e as a known negative sample.
	Zero Cell = iota
	// One marks p+e as a known positive sample.
	One
	// Hole marks p+e as not present in either sample set.
	Hole
)

// Pick chooses one element from a non-empty set of candidate access
// strings — the strategy-object generalization of the blue_pick/red_pick
// tie-breakers (spec 9 "dynamic choice functions").
type Pick func(candidates []string) string

// Options configures Gold's observation table and driver.
type Options struct {
	// FillHoles selects the DFA-synthesis mode: true fills unresolved
	// cells before synthesis (mode A), false resolves blue rows to a
	// compatible red target at synthesis time (mode B).
	FillHoles bool

	// BluePick breaks ties among blue rows eligible for promotion.
	BluePick Pick

	// RedPick breaks ties among red rows compatible with a given blue
	// row, both during hole-filling and during mode-B synthesis.
	RedPick Pick

	// RedInit seeds RED. Must be prefix-closed and drawn from Sigma*.
	// Defaults to {""}.
	RedInit []string
}

// Option mutates Options; see WithFillHoles, WithBluePick, WithRedPick,
// WithRedInit.
type Option func(*Options)

// WithFillHoles enables hole-filling synthesis mode A.
func WithFillHoles() Option {
	return func(o *Options) { o.FillHoles = true }
}

// WithBluePick overrides the default plain-lexicographic minimum used to
// choose which promotable blue row to promote.
func WithBluePick(fn Pick) Option {
	return func(o *Options) {
		if fn != nil {
			o.BluePick = fn
		}
	}
}

// WithRedPick overrides the default plain-lexicographic minimum used to
// choose a compatible red row.
func WithRedPick(fn Pick) Option {
	return func(o *Options) {
		if fn != nil {
			o.RedPick = fn
		}
	}
}

// WithRedInit overrides the default RED seed ({""}).
func WithRedInit(seed []string) Option {
	return func(o *Options) {
		if seed != nil {
			o.RedInit = seed
		}
	}
}
