// Package rules implements the accessibility rule evaluator.
//
// Each heuristic check is an independent type implementing the Check
// interface. Checks are registered in a fixed ordered list and folded into a
// single PageAudit per page by the Evaluator. The order is contractual: it
// determines the issue sequence on every audited page.
//
// Design decision: Checks are syntactic pattern matches over the raw markup
// text rather than queries against a parsed DOM tree. This trades completeness
// (no computed ARIA semantics, no cross-tag relationship resolution beyond
// simple counting) for zero parsing dependency in the hot path and cheap,
// predictable evaluation per page. Each check is independently implementable
// and independently testable; none depends on another's output.
package rules
