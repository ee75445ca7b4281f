package aggregate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/nao1215/a11yaudit/internal/model"
)

// SortKey names the audit field a view is ordered by.
type SortKey string

const (
	// SortByScore orders numerically by page score.
	SortByScore SortKey = "score"
	// SortByURL orders lexicographically by page URL.
	SortByURL SortKey = "url"
	// SortByIssues orders numerically by issue count.
	SortByIssues SortKey = "issues"
)

// ParseSortKey converts a user-supplied string into a SortKey.
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(s) {
	case SortByScore, SortByURL, SortByIssues:
		return SortKey(s), nil
	default:
		return "", fmt.Errorf("unknown sort key: %q (valid: score, url, issues)", s)
	}
}

// Direction is the sort direction.
type Direction string

const (
	// Ascending sorts smallest first.
	Ascending Direction = "asc"
	// Descending sorts largest first.
	Descending Direction = "desc"
)

// ParseDirection converts a user-supplied string into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case Ascending, Descending:
		return Direction(s), nil
	default:
		return "", fmt.Errorf("unknown sort direction: %q (valid: asc, desc)", s)
	}
}

// SortAudits returns a sorted copy of the collection. The input slice is
// left untouched so concurrent views over the same collection stay
// independent.
//
// The sort is stable: equal keys keep their relative input order, which in
// practice is the crawl order. Descending simply negates the ascending
// comparator, so asc and desc of the same set are exact reversals apart from
// ties.
func SortAudits(audits []model.PageAudit, key SortKey, dir Direction) []model.PageAudit {
	sorted := make([]model.PageAudit, len(audits))
	copy(sorted, audits)

	less := func(a, b model.PageAudit) bool {
		switch key {
		case SortByURL:
			return strings.Compare(a.URL, b.URL) < 0
		case SortByIssues:
			return a.IssueCount() < b.IssueCount()
		default:
			return a.Score < b.Score
		}
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		if dir == Descending {
			return less(sorted[j], sorted[i])
		}
		return less(sorted[i], sorted[j])
	})
	return sorted
}
