package export

import (
	"bytes"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/nao1215/a11yaudit/internal/aggregate"
	"github.com/nao1215/a11yaudit/internal/model"
)

// encodeMarkdown renders the narrative report: header with date and summary
// numbers, a score-distribution pie chart, then one section per page.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. Mermaid chart embedding for the score distribution
func encodeMarkdown(audits []model.PageAudit, now time.Time) ([]byte, error) {
	var buf bytes.Buffer
	md := markdown.NewMarkdown(&buf)

	summary := aggregate.Summarize(audits)

	writeMarkdownHeader(md, summary, now)
	writeScoreDistribution(md, summary)
	for _, audit := range audits {
		writePageSection(md, audit)
	}

	if err := md.Build(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeMarkdownHeader writes the title and the collection-level numbers.
func writeMarkdownHeader(md *markdown.Markdown, summary aggregate.Summary, now time.Time) {
	md.H1("Accessibility Audit Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Date", now.Format("2006-01-02")},
			{"Pages Audited", strconv.Itoa(summary.PageCount)},
			{"Average Score", strconv.Itoa(summary.AverageScore)},
			{"Errors", strconv.Itoa(summary.Counts[model.SeverityError])},
			{"Warnings", strconv.Itoa(summary.Counts[model.SeverityWarning])},
			{"Info", strconv.Itoa(summary.Counts[model.SeverityInfo])},
		},
	})
	md.PlainText("")
}

// writeScoreDistribution writes a mermaid pie chart of the fixed score
// buckets. Empty buckets are skipped so the chart stays readable.
func writeScoreDistribution(md *markdown.Markdown, summary aggregate.Summary) {
	if summary.PageCount == 0 {
		return
	}

	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Score Distribution"),
		piechart.WithShowData(true),
	)
	for _, bucket := range summary.Buckets {
		if bucket.Count > 0 {
			chart.LabelAndIntValue(bucket.Label, uint64(bucket.Count))
		}
	}

	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writePageSection writes one page's score and issue table.
func writePageSection(md *markdown.Markdown, audit model.PageAudit) {
	md.H2(audit.URL)
	md.PlainText("")
	md.PlainTextf("Score: %d/%d", audit.Score, model.MaxScore)
	md.PlainText("")

	if len(audit.Issues) == 0 {
		md.PlainText("No issues found.")
		md.PlainText("")
		return
	}

	rows := make([][]string, len(audit.Issues))
	for i, issue := range audit.Issues {
		rows[i] = []string{
			issue.Rule,
			strings.ToUpper(issue.Severity.String()),
			issue.Message,
			issue.Suggestion,
		}
	}

	md.Table(markdown.TableSet{
		Header: []string{"Rule", "Severity", "Message", "Suggestion"},
		Rows:   rows,
	})
	md.PlainText("")
}
