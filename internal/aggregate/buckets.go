package aggregate

import "github.com/nao1215/a11yaudit/internal/model"

// ScoreBucket is one fixed range of the score distribution.
type ScoreBucket struct {
	// Label is the display name of the range, e.g. "90-100".
	Label string

	// Min and Max are the inclusive score bounds.
	Min int
	Max int

	// Count is the number of pages whose score falls in the range.
	Count int
}

// ScoreBuckets partitions the audits into the four fixed score ranges used
// for distribution display, best range first. Every score in [0,100] falls
// into exactly one bucket, and all four buckets are always returned even
// when empty.
func ScoreBuckets(audits []model.PageAudit) []ScoreBucket {
	buckets := []ScoreBucket{
		{Label: "90-100", Min: 90, Max: 100},
		{Label: "70-89", Min: 70, Max: 89},
		{Label: "50-69", Min: 50, Max: 69},
		{Label: "0-49", Min: 0, Max: 49},
	}

	for _, audit := range audits {
		for i := range buckets {
			if audit.Score >= buckets[i].Min && audit.Score <= buckets[i].Max {
				buckets[i].Count++
				break
			}
		}
	}
	return buckets
}
