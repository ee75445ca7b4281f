package rules

import (
	"fmt"
	"regexp"

	"github.com/nao1215/a11yaudit/internal/model"
)

// ImgAltCheck counts image tags lacking an alt attribute.
// Missing alternative text is one of the most common and most impactful
// accessibility failures: screen readers can only announce the file name.
type ImgAltCheck struct {
	// tagPattern matches every img open tag in the document.
	tagPattern *regexp.Regexp

	// altPattern matches an alt attribute inside a single tag's text.
	altPattern *regexp.Regexp
}

// NewImgAltCheck creates a new ImgAltCheck.
func NewImgAltCheck() *ImgAltCheck {
	return &ImgAltCheck{
		tagPattern: regexp.MustCompile(`(?i)<img\b[^>]*>`),
		altPattern: regexp.MustCompile(`(?i)\balt\s*=`),
	}
}

// Rule returns the rule identifier.
func (c *ImgAltCheck) Rule() string {
	return model.RuleImgAlt
}

// Inspect counts img tags without an alt attribute. The penalty scales with
// the count, 5 points per image, capped at 20.
func (c *ImgAltCheck) Inspect(markup string) (*model.Issue, int) {
	missing := 0
	for _, tag := range c.tagPattern.FindAllString(markup, -1) {
		if !c.altPattern.MatchString(tag) {
			missing++
		}
	}

	if missing == 0 {
		return nil, 0
	}

	message := fmt.Sprintf("%d image(s) missing alt attribute", missing)
	return newIssue(model.RuleImgAlt, message), min(20, 5*missing)
}
