// Package dataset reads observations from CSV files.
//
// The first record is a header of column names; every other record holds one
// observation with a numeric value per column. A Frame hands out response
// vectors by name and assembles regression design matrices, optionally with a
// leading intercept column of ones.
package dataset
