package aggregate

import (
	"math"

	"github.com/nao1215/a11yaudit/internal/model"
)

// AverageScore returns the rounded mean score across all audits.
// An empty collection yields 0 rather than an error; the caller renders a
// batch with no pages as a zero summary, not a failure.
func AverageScore(audits []model.PageAudit) int {
	if len(audits) == 0 {
		return 0
	}

	sum := 0
	for _, audit := range audits {
		sum += audit.Score
	}
	return int(math.Round(float64(sum) / float64(len(audits))))
}

// CountsBySeverity tallies every issue in the collection by its severity.
// Severities with no issues are present with a zero count so the caller can
// iterate the full tier set without nil checks.
func CountsBySeverity(audits []model.PageAudit) map[model.Severity]int {
	counts := map[model.Severity]int{
		model.SeverityError:   0,
		model.SeverityWarning: 0,
		model.SeverityInfo:    0,
	}

	for _, audit := range audits {
		for _, issue := range audit.Issues {
			counts[issue.Severity]++
		}
	}
	return counts
}

// Summary bundles the collection-level numbers the presentation layer needs,
// so it never re-derives score or issue logic itself.
type Summary struct {
	// PageCount is the number of audited pages.
	PageCount int

	// AverageScore is the rounded mean page score.
	AverageScore int

	// Counts holds the issue tally per severity.
	Counts map[model.Severity]int

	// Buckets is the score distribution over the four fixed ranges.
	Buckets []ScoreBucket
}

// Summarize computes the Summary for a collection in one pass over the
// building blocks above.
func Summarize(audits []model.PageAudit) Summary {
	return Summary{
		PageCount:    len(audits),
		AverageScore: AverageScore(audits),
		Counts:       CountsBySeverity(audits),
		Buckets:      ScoreBuckets(audits),
	}
}
