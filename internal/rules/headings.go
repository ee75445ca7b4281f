package rules

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/nao1215/a11yaudit/internal/model"
)

// SingleH1Check verifies that the page has exactly one H1 heading.
// Zero H1s leaves the page without a main heading; multiple H1s flatten
// the document outline that assistive technologies navigate by.
type SingleH1Check struct {
	pattern *regexp.Regexp
}

// NewSingleH1Check creates a new SingleH1Check.
func NewSingleH1Check() *SingleH1Check {
	return &SingleH1Check{
		pattern: regexp.MustCompile(`(?i)<h1[\s>]`),
	}
}

// Rule returns the rule identifier.
func (c *SingleH1Check) Rule() string {
	return model.RuleSingleH1
}

// Inspect reports an issue when the H1 count differs from one.
// Zero and multiple H1s carry distinct messages; the penalty is flat.
func (c *SingleH1Check) Inspect(markup string) (*model.Issue, int) {
	count := len(c.pattern.FindAllString(markup, -1))
	if count == 1 {
		return nil, 0
	}

	message := "No <h1> heading found"
	if count > 1 {
		message = fmt.Sprintf("Multiple <h1> headings found (%d)", count)
	}
	return newIssue(model.RuleSingleH1, message), 5
}

// HeadingOrderCheck scans H1-H6 headings in document order and flags the
// first adjacent pair whose level increases by more than one. Skipped levels
// break the outline that screen-reader users traverse heading by heading.
//
// Only the first violation is reported; scanning stops there. Listing every
// skip on a badly structured page would bury the actionable signal, and
// fixing the first skip usually shifts all later ones anyway.
type HeadingOrderCheck struct {
	pattern *regexp.Regexp
}

// NewHeadingOrderCheck creates a new HeadingOrderCheck.
func NewHeadingOrderCheck() *HeadingOrderCheck {
	return &HeadingOrderCheck{
		pattern: regexp.MustCompile(`(?i)<h([1-6])[\s>]`),
	}
}

// Rule returns the rule identifier.
func (c *HeadingOrderCheck) Rule() string {
	return model.RuleHeadingOrder
}

// Inspect walks the heading sequence and reports the first level skip.
func (c *HeadingOrderCheck) Inspect(markup string) (*model.Issue, int) {
	matches := c.pattern.FindAllStringSubmatch(markup, -1)

	previous := 0
	for _, match := range matches {
		level, err := strconv.Atoi(match[1])
		if err != nil {
			continue // Pattern guarantees a digit; guard anyway
		}

		if previous > 0 && level > previous+1 {
			message := fmt.Sprintf("Heading level jumps from <h%d> to <h%d>", previous, level)
			return newIssue(model.RuleHeadingOrder, message), 5
		}
		previous = level
	}

	return nil, 0
}
