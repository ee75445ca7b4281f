package rules

import (
	"regexp"

	"github.com/nao1215/a11yaudit/internal/model"
)

// LandmarkMainCheck verifies that the page declares a main content landmark,
// either as a <main> element or via role="main". Landmarks let assistive
// technology users jump directly to the primary content.
type LandmarkMainCheck struct {
	elementPattern *regexp.Regexp
	rolePattern    *regexp.Regexp
}

// NewLandmarkMainCheck creates a new LandmarkMainCheck.
func NewLandmarkMainCheck() *LandmarkMainCheck {
	return &LandmarkMainCheck{
		elementPattern: regexp.MustCompile(`(?i)<main\b`),
		rolePattern:    regexp.MustCompile(`(?i)role\s*=\s*["']?main\b`),
	}
}

// Rule returns the rule identifier.
func (c *LandmarkMainCheck) Rule() string {
	return model.RuleLandmarkMain
}

// Inspect reports an issue when neither form of the landmark is present.
func (c *LandmarkMainCheck) Inspect(markup string) (*model.Issue, int) {
	if c.elementPattern.MatchString(markup) || c.rolePattern.MatchString(markup) {
		return nil, 0
	}
	return newIssue(model.RuleLandmarkMain, "No <main> landmark found"), 3
}

// LandmarkNavCheck verifies that the page declares a navigation landmark,
// either as a <nav> element or via role="navigation".
type LandmarkNavCheck struct {
	elementPattern *regexp.Regexp
	rolePattern    *regexp.Regexp
}

// NewLandmarkNavCheck creates a new LandmarkNavCheck.
func NewLandmarkNavCheck() *LandmarkNavCheck {
	return &LandmarkNavCheck{
		elementPattern: regexp.MustCompile(`(?i)<nav\b`),
		rolePattern:    regexp.MustCompile(`(?i)role\s*=\s*["']?navigation\b`),
	}
}

// Rule returns the rule identifier.
func (c *LandmarkNavCheck) Rule() string {
	return model.RuleLandmarkNav
}

// Inspect reports an issue when neither form of the landmark is present.
func (c *LandmarkNavCheck) Inspect(markup string) (*model.Issue, int) {
	if c.elementPattern.MatchString(markup) || c.rolePattern.MatchString(markup) {
		return nil, 0
	}
	return newIssue(model.RuleLandmarkNav, "No <nav> landmark found"), 2
}
