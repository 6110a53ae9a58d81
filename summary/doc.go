// Package summary holds the result records shared by the conjugate, Gibbs and
// diagnostics layers: Interval, Statistics and the ordered Table.
//
// A Table maps parameter names to a fixed set of statistics. Statistics that do
// not apply are NaN: Mode for chain-based rows, MCSE and RHat for closed-form rows.
// Non-fatal conditions travel with the table as bayeserr.Warning values.
package summary
