// Package bayeserr holds the error taxonomy shared by every lvbayes package.
//
// Three sentinel classes cover the fatal conditions:
//
//	ErrInvalidParameter: mass outside (0,1), non-positive shape/scale/precision,
//	    empty observation set, malformed sampling controls.
//	ErrLinearAlgebra: singular or non-positive-definite matrices.
//	ErrNumericalConvergence: an iterative solver missed its tolerance budget.
//
// Callers match them with errors.Is; every package wraps them with an operation tag
// ("conjugate.PoissonGamma: bayeserr: invalid parameter: ...").
//
// Non-fatal conditions (R-hat above threshold, truncated batches, HPD fallback) are
// reported as Warning values attached to a summary table, never as errors.
package bayeserr
