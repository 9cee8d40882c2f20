// SPDX-License-Identifier: MIT

// Package placement chooses where a level's landmarks go.
//
// Sample draws a landmark count from a configured range, then repeatedly
// draws random grid indices until enough of them are accepted. A candidate
// is rejected when it
//
//   - was already accepted,
//   - lies on the grid border, or
//   - sits within two rows AND within two columns of an accepted index.
//
// The spacing rule only rejects candidates close along both axes, so two
// landmarks may still sit diagonally near each other; this is intentional.
//
// Accepted candidates are classified in priority order:
//
//  1. Store: the very first accepted index, if a coin flip succeeds.
//  2. StairUp, then StairDown: while fewer than two stairs exist, only
//     candidates strictly closer to the grid center than a quarter of the
//     shorter dimension are accepted.
//  3. Fountain: the same center test, once.
//  4. Room: everything after.
//
// The number of draws is bounded. When the bound is exhausted Sample returns
// ErrCannotPlace instead of spinning.
//
// Determinism: the same *rand.Rand state always yields the same Result.
// Sample has no default random source; supply one with WithSeed or WithRand.
package placement
