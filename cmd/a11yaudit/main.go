// Package main provides the entry point for the a11yaudit CLI.
//
// a11yaudit checks the HTML markup of crawled pages against a fixed set of
// heuristic accessibility rules, producing a per-page score and a list of
// actionable issues.
//
// Usage:
//
//	a11yaudit audit crawl.json
//	a11yaudit audit - < crawl.json
//
// See --help for all available options.
package main

// main is the entry point for a11yaudit.
func main() {
	Execute()
}
