// Package crawl reads the crawl records an external crawler hands to the
// audit pipeline.
//
// The crawler's contract is a JSON array of objects with a url and the raw
// HTML content of that page. This package only loads and lightly inspects
// those records; fetching pages is the crawler's job, not ours.
package crawl
