// SPDX-License-Identifier: MIT

// Deterministic random source policy for Generate.
//
// math/rand.Rand is not goroutine-safe; a Generate call owns its source for
// its whole duration.
package level

import "math/rand"

// defaultRNGSeed is used when no seed is supplied or the seed is zero.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}
