// Package rng provides the seedable random source injected into the Gibbs samplers.
//
// A Source wraps a PCG generator from math/rand/v2 and draws every variate through
// gonum's stat/distuv, so a given seed yields the same stream on every platform.
// A Source is NOT safe for concurrent use: each chain owns its own Source.
//
// Parameters are trusted. Callers validate shapes, scales and covariance matrices
// before drawing; the scalar draws do not re-check them.
package rng
