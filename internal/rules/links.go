package rules

import (
	"fmt"
	"regexp"

	"github.com/nao1215/a11yaudit/internal/model"
)

// EmptyLinkCheck counts anchor tags with no text content between the open
// and close tags. Screen readers announce such links as "link" with nothing
// to say about the destination.
type EmptyLinkCheck struct {
	pattern *regexp.Regexp
}

// NewEmptyLinkCheck creates a new EmptyLinkCheck.
func NewEmptyLinkCheck() *EmptyLinkCheck {
	return &EmptyLinkCheck{
		pattern: regexp.MustCompile(`(?i)<a\b[^>]*>\s*</a>`),
	}
}

// Rule returns the rule identifier.
func (c *EmptyLinkCheck) Rule() string {
	return model.RuleEmptyLinks
}

// Inspect counts empty anchors. The penalty scales 3 points per link,
// capped at 10.
func (c *EmptyLinkCheck) Inspect(markup string) (*model.Issue, int) {
	count := len(c.pattern.FindAllString(markup, -1))
	if count == 0 {
		return nil, 0
	}

	message := fmt.Sprintf("%d link(s) with no text content", count)
	return newIssue(model.RuleEmptyLinks, message), min(10, 3*count)
}
