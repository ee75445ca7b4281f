package aggregate

import (
	"fmt"

	"github.com/nao1215/a11yaudit/internal/model"
)

// Filter selects which pages a view includes, keyed on issue severity.
type Filter string

const (
	// FilterAll passes every page through unchanged.
	FilterAll Filter = "all"
	// FilterError keeps pages with at least one error-severity issue.
	FilterError Filter = "error"
	// FilterWarning keeps pages with at least one warning-severity issue.
	FilterWarning Filter = "warning"
	// FilterInfo keeps pages with at least one info-severity issue.
	FilterInfo Filter = "info"
)

// Filters lists every filter in display order, "all" first.
func Filters() []Filter {
	return []Filter{FilterAll, FilterError, FilterWarning, FilterInfo}
}

// ParseFilter converts a user-supplied string into a Filter.
func ParseFilter(s string) (Filter, error) {
	switch Filter(s) {
	case FilterAll, FilterError, FilterWarning, FilterInfo:
		return Filter(s), nil
	default:
		return "", fmt.Errorf("unknown severity filter: %q (valid: all, error, warning, info)", s)
	}
}

// severity maps a non-all filter to its severity tier.
func (f Filter) severity() (model.Severity, bool) {
	switch f {
	case FilterError:
		return model.SeverityError, true
	case FilterWarning:
		return model.SeverityWarning, true
	case FilterInfo:
		return model.SeverityInfo, true
	default:
		return 0, false
	}
}

// FilterBySeverity returns the pages matching the filter. This is the
// page-level semantic: a page matches when it contains at least one issue of
// the filter's severity. Narrowing an individual page's issue list to one
// severity is a different operation (model.PageAudit.IssuesBySeverity) used
// when rendering an expanded page.
//
// The result is always a fresh slice; the input is never reordered or
// trimmed in place.
func FilterBySeverity(audits []model.PageAudit, filter Filter) []model.PageAudit {
	matched := make([]model.PageAudit, 0, len(audits))

	sev, specific := filter.severity()
	for _, audit := range audits {
		if !specific || audit.HasSeverity(sev) {
			matched = append(matched, audit)
		}
	}
	return matched
}

// FilterCounts reports, for every filter including "all", how many pages
// that filter would keep. The counts are independent of whatever filter is
// currently applied; they label selection controls.
func FilterCounts(audits []model.PageAudit) map[Filter]int {
	counts := make(map[Filter]int, 4)
	for _, filter := range Filters() {
		counts[filter] = len(FilterBySeverity(audits, filter))
	}
	return counts
}
