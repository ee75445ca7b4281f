package rules

import "github.com/nao1215/a11yaudit/internal/model"

// Check defines the interface for individual accessibility checks.
// Each check focuses on one markup pattern and yields at most one issue
// per page.
//
// Design decision: We use an interface rather than bare function types
// because:
//  1. It allows checks to carry compiled patterns as state
//  2. It provides a Rule() method for registration and config-driven disabling
//  3. It enables testing the evaluator with stub checks
type Check interface {
	// Rule returns the stable rule identifier this check produces.
	Rule() string

	// Inspect examines one page's raw HTML markup. It returns the detected
	// issue and its score penalty, or (nil, 0) when the page passes.
	// Implementations must be pure: no I/O, no shared state, deterministic
	// for identical input.
	Inspect(markup string) (*model.Issue, int)
}

// DefaultChecks returns the built-in checks in their fixed evaluation order.
//
// The order matters twice over: it fixes the issue sequence within every
// PageAudit, and checks that stop at a first violation (heading order) can
// only ever report relative to this scan order. Do not reorder without
// treating it as a contract change.
func DefaultChecks() []Check {
	return []Check{
		NewLangCheck(),
		NewImgAltCheck(),
		NewSingleH1Check(),
		NewHeadingOrderCheck(),
		NewEmptyLinkCheck(),
		NewFormLabelCheck(),
		NewLandmarkMainCheck(),
		NewLandmarkNavCheck(),
	}
}

// newIssue builds an Issue for the given rule, pulling severity and
// remediation text from the central rule catalog.
func newIssue(rule, message string) *model.Issue {
	info := model.GetRuleInfo(rule)
	return &model.Issue{
		Rule:       rule,
		Severity:   info.Severity,
		Message:    message,
		Suggestion: info.Suggestion,
	}
}
