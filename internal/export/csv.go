package export

import (
	"strconv"
	"strings"

	"github.com/nao1215/a11yaudit/internal/model"
)

// csvHeader is the fixed column order of the CSV export.
var csvHeader = []string{"URL", "Score", "Rule", "Severity", "Message", "Suggestion"}

// encodeCSV renders one row per issue, plus a "No issues" row for pages
// without any so every audited page appears in the sheet.
//
// Every field is quote-wrapped unconditionally with internal quotes doubled.
// encoding/csv quotes only when a field needs it, and downstream spreadsheet
// tooling expects the uniform quoting, so the quoting is done by hand here.
func encodeCSV(audits []model.PageAudit) ([]byte, error) {
	var b strings.Builder

	writeCSVRow(&b, csvHeader)
	for _, audit := range audits {
		score := strconv.Itoa(audit.Score)

		if len(audit.Issues) == 0 {
			writeCSVRow(&b, []string{audit.URL, score, "", "", "No issues", ""})
			continue
		}

		for _, issue := range audit.Issues {
			writeCSVRow(&b, []string{
				audit.URL,
				score,
				issue.Rule,
				issue.Severity.String(),
				issue.Message,
				issue.Suggestion,
			})
		}
	}

	return []byte(b.String()), nil
}

// writeCSVRow appends one fully quoted row terminated by a newline.
func writeCSVRow(b *strings.Builder, fields []string) {
	for i, field := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(field, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}
