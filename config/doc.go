// Package config loads the run configuration of the lvbayes command.
//
// A RunConfig names the model, the inference method, the data file, the prior
// hyperparameters and the sampling controls. Files are TOML (.toml) or YAML
// (.yaml, .yml); unknown keys are rejected so a typo never silently falls back
// to a default.
//
// Defaults:
//
//	method      conjugate
//	prob        0.95
//	iterations  22000   burn_in 2000   batches 4   chains 1   seed 123
//	rhat        1.05
//	prior       a = b = 1, shape = rate = 1, mu0 = 0, n0 = 0.2, tau0 = 1,
//	            nu0 = 5, lambda0 = 7, b0 = 0, a0 = 0.2 on the diagonal
//
// tau0 is the standard deviation of the Gibbs sampler's Normal prior on the mean;
// the sampler receives its precision 1/tau0².
//
// Library packages never read configuration; the command converts a RunConfig
// into explicit option values.
package config
