package costmatrix

import "errors"

// ErrAlphabetTooLarge is returned when the requested alphabet size would
// overflow the native index width used by the expanded table (spec.md
// §4.B: K > 31 means 2^K * 2^K overflows a 32-bit index).
var ErrAlphabetTooLarge = errors.New("costmatrix: alphabet too large to expand")
