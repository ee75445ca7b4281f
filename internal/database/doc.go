// Package database provides SQLite-based persistence for audit runs.
//
// Each completed audit run is stored as one row: a timestamp, the summary
// numbers, and the full audit collection as JSON. The history makes the
// compare command possible — an audit of the same site a week later can be
// diffed against the stored run without re-auditing the old crawl.
package database
