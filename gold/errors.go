package gold

import "errors"

// ErrInvalidAlphabet indicates a sample, or a red_init seed string,
// contains a character that is not a member of the declared alphabet.
var ErrInvalidAlphabet = errors.New("gold: character outside declared alphabet")

// ErrInvalidRedSeed indicates the red_init option is not prefix-closed.
var ErrInvalidRedSeed = errors.New("gold: red_init is not prefix-closed")

// ErrOverlappingSamples indicates S+ and S- share at least one word.
var ErrOverlappingSamples = errors.New("gold: S+ and S- overlap")
