package export

import (
	"fmt"
	"time"

	"github.com/nao1215/a11yaudit/internal/model"
)

// Format identifies an export output format.
type Format string

const (
	// FormatJSON is machine-readable JSON, round-tripping the audit slice.
	FormatJSON Format = "json"
	// FormatCSV is a spreadsheet-friendly flat issue table.
	FormatCSV Format = "csv"
	// FormatMarkdown is a narrative report for documentation and sharing.
	FormatMarkdown Format = "markdown"
)

// Formats lists every supported format.
func Formats() []Format {
	return []Format{FormatJSON, FormatCSV, FormatMarkdown}
}

// ParseFormat converts a user-supplied string into a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatJSON, FormatCSV, FormatMarkdown:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unknown export format: %q (valid: json, csv, markdown)", s)
	}
}

// extension returns the filename extension for the format.
func (f Format) extension() string {
	if f == FormatMarkdown {
		return "md"
	}
	return string(f)
}

// mimeType returns the MIME type a delivery layer should serve the export
// with.
func (f Format) mimeType() string {
	switch f {
	case FormatJSON:
		return "application/json"
	case FormatCSV:
		return "text/csv"
	default:
		return "text/markdown"
	}
}

// File is one rendered export, ready to be written to disk or served for
// download.
type File struct {
	// Content is the serialized report.
	Content []byte

	// Filename follows the pattern a11y-audit-<YYYY-MM-DD>.<ext>.
	Filename string

	// MIMEType is the content type matching the format.
	MIMEType string
}

// Export renders the audit collection in the given format. The now argument
// supplies the filename date so exports stay deterministic and testable; it
// does not appear in JSON or CSV content.
func Export(audits []model.PageAudit, format Format, now time.Time) (File, error) {
	var (
		content []byte
		err     error
	)

	switch format {
	case FormatJSON:
		content, err = encodeJSON(audits)
	case FormatCSV:
		content, err = encodeCSV(audits)
	case FormatMarkdown:
		content, err = encodeMarkdown(audits, now)
	default:
		return File{}, fmt.Errorf("unknown export format: %q", format)
	}
	if err != nil {
		return File{}, fmt.Errorf("render %s export: %w", format, err)
	}

	return File{
		Content:  content,
		Filename: fmt.Sprintf("a11y-audit-%s.%s", now.Format("2006-01-02"), format.extension()),
		MIMEType: format.mimeType(),
	}, nil
}
