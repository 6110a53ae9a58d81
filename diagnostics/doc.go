// Package diagnostics summarizes MCMC output.
//
// 🚀 Summarize
//
//	Summarize(chain, opts...) reads every column of a chain.Chain past burn-in
//	and returns a summary.Table with, per parameter:
//
//	  Mean, Median, StdDev   plain moments (population sd)
//	  CI                     percentile interval, linear interpolation
//	  HPD                    narrowest window holding ⌊p·m⌋+1 sorted draws
//	  MCSE                   sd of B batch means / √B
//	  RHat                   Gelman–Rubin with the B batches as chains
//
//	Mode is not estimated from draws and stays NaN.
//
// ✨ Batches
//
//	The post-burn-in draws are cut into B contiguous batches. When B does not
//	divide the draw count m, the first m mod B draws are left out of MCSE and
//	R-hat (moments and intervals still use every draw) and the table carries a
//	bayeserr.TruncatedBatches warning. B = 1 is allowed; MCSE and R-hat are NaN.
//
// ⚙️ Warnings
//
//	R-hat above the threshold (default 1.05) adds a bayeserr.HighRHat warning.
//	Every warning is also logged at Warn level. Warnings never fail a call.
//
// The free functions (Percentile, SampleHPD, BatchMeansMCSE, RHat, RHatChains,
// KDE) work on plain slices and never modify their input.
package diagnostics
