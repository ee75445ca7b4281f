package model

// MaxScore is the baseline score every page starts from before penalties.
const MaxScore = 100

// PageAudit is the evaluation result for one page.
//
// A PageAudit is constructed once per (url, markup) pair by the rule
// evaluator and is immutable thereafter. The aggregate and export packages
// consume it as plain data; nothing mutates it after construction.
type PageAudit struct {
	// URL identifies the audited page. It is treated as an opaque string;
	// this tool never parses or validates it.
	URL string `json:"url"`

	// Score is an integer in [0,100] derived deterministically from the
	// issue set by penalty subtraction, clamped so it never goes negative.
	Score int `json:"score"`

	// Issues holds the detected problems in rule-evaluation order.
	// A clean page has an empty (never nil) slice, so len(Issues) is a
	// truthful sort key and JSON round-trips exactly.
	Issues []Issue `json:"issues"`
}

// IssueCount returns the number of issues on this page.
func (p PageAudit) IssueCount() int {
	return len(p.Issues)
}

// HasSeverity reports whether the page contains at least one issue of the
// given severity. This is the page-level predicate behind severity filters.
func (p PageAudit) HasSeverity(severity Severity) bool {
	for _, issue := range p.Issues {
		if issue.Severity == severity {
			return true
		}
	}
	return false
}

// IssuesBySeverity returns only the issues of the given severity,
// preserving rule-evaluation order.
//
// This is the issue-level sub-filter used when rendering a single page's
// issue list. It is intentionally a separate operation from the page-level
// severity filter in the aggregate package: one selects pages, the other
// selects issues within a page.
func (p PageAudit) IssuesBySeverity(severity Severity) []Issue {
	result := make([]Issue, 0)
	for _, issue := range p.Issues {
		if issue.Severity == severity {
			result = append(result, issue)
		}
	}
	return result
}

// ClampScore bounds a raw score to the valid [0,MaxScore] range.
// Penalty accumulation must never surface a negative score.
func ClampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > MaxScore {
		return MaxScore
	}
	return score
}
