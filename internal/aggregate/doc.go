// Package aggregate derives summary statistics and presentation views from a
// collection of page audits.
//
// Every operation here is a pure projection: the input slice is never
// mutated, filtered and sorted views are fresh copies, and statistics over an
// empty collection return neutral values instead of errors. View-bound state
// (active filter, sort order, expanded page, chosen export format) lives in
// an explicit ViewState owned by the caller, never in package globals.
package aggregate
