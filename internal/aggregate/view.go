package aggregate

import "github.com/nao1215/a11yaudit/internal/model"

// ViewState is the caller-owned, mutable state of one presentation session:
// which filter and sort order are active, which page's issue list is
// expanded, and which export format is selected.
//
// Design decision: The state is an explicit struct passed into View rather
// than package-level variables because:
//  1. Two sessions over the same audit collection must not interfere
//  2. View stays a pure function and needs no reset between tests
//  3. The caller decides the state's lifetime (per command run, per UI tab)
type ViewState struct {
	// Filter is the active page-level severity filter.
	Filter Filter

	// SortKey and SortDir define the active ordering.
	SortKey SortKey
	SortDir Direction

	// ExpandedURL is the page whose issue list is currently expanded,
	// empty when none is.
	ExpandedURL string

	// ExportFormat is the export format the session has selected.
	ExportFormat string
}

// NewViewState returns the default session state: all pages, worst score
// first, no page expanded, markdown export preselected.
func NewViewState() ViewState {
	return ViewState{
		Filter:       FilterAll,
		SortKey:      SortByScore,
		SortDir:      Ascending,
		ExportFormat: "markdown",
	}
}

// View derives the filtered and sorted projection the state describes.
// The underlying collection is never mutated; calling View twice with the
// same inputs yields equal results.
func View(audits []model.PageAudit, state ViewState) []model.PageAudit {
	return SortAudits(FilterBySeverity(audits, state.Filter), state.SortKey, state.SortDir)
}

// ExpandedIssues returns the expanded page's issues narrowed to the active
// filter's severity, or every issue when the filter is "all". Returns false
// when no page is expanded or the expanded page left the current view.
func ExpandedIssues(audits []model.PageAudit, state ViewState) ([]model.Issue, bool) {
	if state.ExpandedURL == "" {
		return nil, false
	}

	for _, audit := range View(audits, state) {
		if audit.URL != state.ExpandedURL {
			continue
		}
		if sev, specific := state.Filter.severity(); specific {
			return audit.IssuesBySeverity(sev), true
		}
		return audit.Issues, true
	}
	return nil, false
}
