// Package chain stores MCMC output as a pre-sized, append-only table of draws.
//
// 🚀 What is a Chain?
//
//	A Chain is an iterations × params arena laid out row-major, one row per
//	sampler iteration. Burn-in is logical: the first BurnIn() rows stay in the
//	arena and are skipped by PostBurnIn and Column(…, true).
//
// ✨ Lifecycle
//
//   - New(names, iterations) reserves the full arena up front.
//   - Append adds one row; the chain fills front to back.
//   - Freeze makes the chain read-only. Samplers freeze on return, including
//     when they stop early, so consumers only ever see complete rows.
//
// ⚙️ Interop
//
//   - FromColumns wraps draws produced elsewhere (external samplers, tests).
//   - WriteCSV dumps the chain with a header of parameter names.
//
// A Chain is not safe for concurrent mutation; a frozen Chain may be read from
// any number of goroutines.
package chain
