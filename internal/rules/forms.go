package rules

import (
	"fmt"
	"regexp"

	"github.com/nao1215/a11yaudit/internal/model"
)

// FormLabelCheck compares the count of labelable text-entry inputs against
// the count of label tags. A surplus of inputs suggests unlabeled fields,
// which assistive technologies can only announce by type.
//
// This is a counting heuristic, not a for/id resolution: the markup-text
// approach cannot pair a specific label with a specific input, so the check
// flags only the arithmetic difference.
type FormLabelCheck struct {
	// inputPattern matches every input open tag in the document.
	inputPattern *regexp.Regexp

	// labelableTypePattern matches a type attribute naming a text-entry
	// input that conventionally requires a visible label.
	labelableTypePattern *regexp.Regexp

	// labelPattern matches label open tags.
	labelPattern *regexp.Regexp
}

// NewFormLabelCheck creates a new FormLabelCheck.
func NewFormLabelCheck() *FormLabelCheck {
	return &FormLabelCheck{
		inputPattern:         regexp.MustCompile(`(?i)<input\b[^>]*>`),
		labelableTypePattern: regexp.MustCompile(`(?i)\btype\s*=\s*["']?(text|email|password|tel|number|search)\b`),
		labelPattern:         regexp.MustCompile(`(?i)<label\b`),
	}
}

// Rule returns the rule identifier.
func (c *FormLabelCheck) Rule() string {
	return model.RuleFormLabels
}

// Inspect keys the penalty on the difference D between labelable inputs and
// labels: 5 points per missing label, capped at 15.
func (c *FormLabelCheck) Inspect(markup string) (*model.Issue, int) {
	inputs := 0
	for _, tag := range c.inputPattern.FindAllString(markup, -1) {
		if c.labelableTypePattern.MatchString(tag) {
			inputs++
		}
	}

	labels := len(c.labelPattern.FindAllString(markup, -1))

	diff := inputs - labels
	if diff <= 0 {
		return nil, 0
	}

	message := fmt.Sprintf("%d form input(s) potentially missing labels", diff)
	return newIssue(model.RuleFormLabels, message), min(15, 5*diff)
}
