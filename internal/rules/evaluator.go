package rules

import (
	"github.com/nao1215/a11yaudit/internal/model"
)

// Evaluator folds the ordered check list into a single PageAudit per page.
// It aggregates issues and penalties from the independent checks and clamps
// the resulting score.
//
// Design decision: We use a coordinator holding a check slice rather than a
// free function over a package-level registry because:
//  1. Checks can be disabled per run from configuration
//  2. Tests can inject stub checks
//  3. The fixed evaluation order lives in exactly one place (DefaultChecks)
type Evaluator struct {
	// checks is the ordered list of checks to run.
	checks []Check
}

// Option is a function that configures an Evaluator.
type Option func(*Evaluator)

// WithChecks replaces the built-in check list. Intended for tests.
func WithChecks(checks []Check) Option {
	return func(e *Evaluator) {
		e.checks = checks
	}
}

// WithDisabledRules removes the named rules from the check list while
// preserving the evaluation order of the remainder. Unknown rule names are
// ignored so a stale config entry does not break auditing.
func WithDisabledRules(ruleIDs []string) Option {
	return func(e *Evaluator) {
		if len(ruleIDs) == 0 {
			return
		}

		disabled := make(map[string]bool, len(ruleIDs))
		for _, id := range ruleIDs {
			disabled[id] = true
		}

		kept := make([]Check, 0, len(e.checks))
		for _, check := range e.checks {
			if !disabled[check.Rule()] {
				kept = append(kept, check)
			}
		}
		e.checks = kept
	}
}

// NewEvaluator creates an Evaluator with all built-in checks registered in
// their fixed order.
func NewEvaluator(opts ...Option) *Evaluator {
	e := &Evaluator{
		checks: DefaultChecks(),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Rules returns the rule identifiers of the active checks in evaluation order.
func (e *Evaluator) Rules() []string {
	ids := make([]string, len(e.checks))
	for i, check := range e.checks {
		ids[i] = check.Rule()
	}
	return ids
}

// Evaluate audits one page's raw HTML markup and returns its PageAudit.
//
// The function is pure: no I/O, no shared state, deterministic for identical
// input. The score starts from the baseline and loses each triggered check's
// penalty, clamped so it never leaves [0,100]. Issues appear in check
// registration order.
//
// A clean page gets an empty, non-nil issue slice. We deliberately do not
// synthesize an "all clear" placeholder issue: len(Issues) is used as a sort
// key and the CSV exporter handles the zero-issue row itself, so a sentinel
// would distort both.
func (e *Evaluator) Evaluate(url, markup string) model.PageAudit {
	score := model.MaxScore
	issues := make([]model.Issue, 0, len(e.checks))

	for _, check := range e.checks {
		issue, penalty := check.Inspect(markup)
		if issue == nil {
			continue
		}
		issues = append(issues, *issue)
		score -= penalty
	}

	return model.PageAudit{
		URL:    url,
		Score:  model.ClampScore(score),
		Issues: issues,
	}
}
