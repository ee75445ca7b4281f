package rules

import (
	"regexp"

	"github.com/nao1215/a11yaudit/internal/model"
)

// LangCheck detects a root html tag without a lang attribute.
// Screen readers use the document language to pick the right speech
// synthesizer; without it, pronunciation falls back to the user's locale.
type LangCheck struct {
	// pattern matches an html open tag that carries a lang attribute.
	pattern *regexp.Regexp
}

// NewLangCheck creates a new LangCheck.
func NewLangCheck() *LangCheck {
	return &LangCheck{
		pattern: regexp.MustCompile(`(?i)<html[^>]*\slang\s*=`),
	}
}

// Rule returns the rule identifier.
func (c *LangCheck) Rule() string {
	return model.RuleHTMLLang
}

// Inspect reports an issue when no html tag with a lang attribute exists.
// A document with no html tag at all counts as missing: the attribute the
// rule demands is simply not present anywhere.
func (c *LangCheck) Inspect(markup string) (*model.Issue, int) {
	if c.pattern.MatchString(markup) {
		return nil, 0
	}
	return newIssue(model.RuleHTMLLang, "Missing lang attribute on <html> tag"), 10
}
