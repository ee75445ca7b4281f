package model

// Rule identifiers form a closed, fixed set. Each evaluation of one page
// produces at most one issue per rule, so the identifier doubles as a
// display key and as the comparison key when diffing audit runs.
const (
	// RuleHTMLLang fires when the root html tag carries no lang attribute.
	RuleHTMLLang = "html-lang"

	// RuleImgAlt fires when one or more image tags lack an alt attribute.
	RuleImgAlt = "img-alt"

	// RuleSingleH1 fires when the page has zero or more than one H1 heading.
	RuleSingleH1 = "single-h1"

	// RuleHeadingOrder fires when an adjacent pair of headings skips more
	// than one level (e.g. an h2 followed by an h4).
	RuleHeadingOrder = "heading-order"

	// RuleEmptyLinks fires when one or more anchor tags have no text content.
	RuleEmptyLinks = "empty-links"

	// RuleFormLabels fires when labelable inputs outnumber label tags.
	RuleFormLabels = "form-labels"

	// RuleLandmarkMain fires when the page has neither a main element nor
	// a role="main" attribute.
	RuleLandmarkMain = "landmark-main"

	// RuleLandmarkNav fires when the page has neither a nav element nor
	// a role="navigation" attribute.
	RuleLandmarkNav = "landmark-nav"
)

// Issue is one detected accessibility problem on a page.
type Issue struct {
	// Rule is the stable rule identifier (e.g. "img-alt").
	// Values are drawn from the closed set of Rule* constants above.
	Rule string `json:"rule"`

	// Severity is the impact tier of this issue.
	Severity Severity `json:"severity"`

	// Message is a human-readable description. It may embed counts,
	// e.g. "3 image(s) missing alt attribute".
	Message string `json:"message"`

	// Suggestion is human-readable remediation text.
	Suggestion string `json:"suggestion"`
}

// RuleInfo contains metadata about a rule: its severity tier and the
// remediation suggestion attached to every issue it produces.
type RuleInfo struct {
	Severity   Severity
	Suggestion string
}

// ruleInfoMapping maps rule identifiers to their metadata.
// This centralized mapping ensures consistent severity assessment and
// remediation text across the application.
//
// Design decision: We use a map rather than embedding severity in each check
// implementation because:
// 1. It provides a single source of truth for impact tiers
// 2. Remediation text can be reviewed and updated in one place
// 3. It makes it easy to generate rule documentation
var ruleInfoMapping = map[string]RuleInfo{
	RuleHTMLLang: {
		Severity:   SeverityError,
		Suggestion: "Add a lang attribute to the <html> tag, e.g. <html lang=\"en\">, so screen readers select the correct speech synthesizer.",
	},
	RuleImgAlt: {
		Severity:   SeverityError,
		Suggestion: "Add descriptive alt attributes to informative images, or alt=\"\" for purely decorative ones.",
	},
	RuleSingleH1: {
		Severity:   SeverityWarning,
		Suggestion: "Use exactly one <h1> per page as the main heading; demote or promote the others to fit the document outline.",
	},
	RuleHeadingOrder: {
		Severity:   SeverityWarning,
		Suggestion: "Keep heading levels sequential; do not skip levels (e.g. go from <h2> to <h3>, not <h2> to <h4>).",
	},
	RuleEmptyLinks: {
		Severity:   SeverityError,
		Suggestion: "Give every link text content or an aria-label so assistive technologies can announce its purpose.",
	},
	RuleFormLabels: {
		Severity:   SeverityError,
		Suggestion: "Associate every text-entry input with a <label for=\"...\"> element or wrap the input in its label.",
	},
	RuleLandmarkMain: {
		Severity:   SeverityInfo,
		Suggestion: "Wrap the primary content in a <main> element (or add role=\"main\") so users can jump straight to it.",
	},
	RuleLandmarkNav: {
		Severity:   SeverityInfo,
		Suggestion: "Wrap the primary navigation in a <nav> element (or add role=\"navigation\").",
	},
}

// GetRuleInfo returns the metadata for a rule identifier.
// Returns a default RuleInfo with SeverityInfo if the rule is unknown.
func GetRuleInfo(rule string) RuleInfo {
	if info, ok := ruleInfoMapping[rule]; ok {
		return info
	}
	return RuleInfo{
		Severity:   SeverityInfo,
		Suggestion: "Review the reported markup manually.",
	}
}

// RuleSeverity returns the severity tier for a rule identifier.
// Returns SeverityInfo if the rule is not in the mapping.
func RuleSeverity(rule string) Severity {
	return GetRuleInfo(rule).Severity
}
