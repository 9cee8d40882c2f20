// SPDX-License-Identifier: MIT

package placement

import "errors"

// ErrCannotPlace indicates the draw budget ran out before every landmark was placed.
// Usage: if errors.Is(err, ErrCannotPlace) { /* grow the grid or shrink the range */ }.
var ErrCannotPlace = errors.New("placement: cannot place landmarks")

// ErrBadCountRange indicates a landmark count range with min < 1 or max < min.
var ErrBadCountRange = errors.New("placement: invalid landmark count range")

// ErrNeedRandSource indicates Sample was called without WithSeed or WithRand.
var ErrNeedRandSource = errors.New("placement: rng is required")
