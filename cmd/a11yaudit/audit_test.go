package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nao1215/a11yaudit/internal/aggregate"
	"github.com/nao1215/a11yaudit/internal/config"
	"github.com/nao1215/a11yaudit/internal/model"
)

const testRecords = `[
	{"url": "https://example.com/", "content": "<html lang=\"en\"><body><nav></nav><main><h1>Home</h1></main></body></html>"},
	{"url": "https://example.com/bad", "content": "<html><body><img src='x'></body></html>"}
]`

func writeRecordsFile(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "crawl.json")
	if err := os.WriteFile(path, []byte(testRecords), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestAuditCmdEndToEnd(t *testing.T) {
	t.Parallel()

	recordsPath := writeRecordsFile(t)
	outputPath := filepath.Join(t.TempDir(), "report.json")

	var buf bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{"audit", recordsPath, "--format", "json", "-o", outputPath})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Audited 2 page(s)") {
		t.Errorf("summary missing page count: %s", out)
	}
	if !strings.Contains(out, "Export written to") {
		t.Errorf("summary missing export confirmation: %s", out)
	}

	content, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("export file not written: %v", err)
	}

	var audits []model.PageAudit
	if err := json.Unmarshal(content, &audits); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if len(audits) != 2 {
		t.Fatalf("got %d audits in export, want 2", len(audits))
	}
	// Default sort is score ascending: the broken page comes first.
	if audits[0].URL != "https://example.com/bad" || audits[0].Score != 75 {
		t.Errorf("audits[0] = %s score %d, want the bad page at 75", audits[0].URL, audits[0].Score)
	}
	if audits[1].Score != 100 {
		t.Errorf("audits[1].Score = %d, want 100", audits[1].Score)
	}
}

func TestAuditCmdFilterNarrowsExport(t *testing.T) {
	t.Parallel()

	recordsPath := writeRecordsFile(t)
	outputPath := filepath.Join(t.TempDir(), "report.json")

	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"audit", recordsPath, "--format", "json", "--filter", "error", "-o", outputPath})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	content, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatal(err)
	}

	var audits []model.PageAudit
	if err := json.Unmarshal(content, &audits); err != nil {
		t.Fatal(err)
	}
	if len(audits) != 1 || audits[0].URL != "https://example.com/bad" {
		t.Errorf("filtered export = %+v, want only the page with errors", audits)
	}
}

func TestAuditCmdRejectsInvalidFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown format", args: []string{"--format", "xml"}},
		{name: "unknown filter", args: []string{"--filter", "critical"}},
		{name: "unknown sort key", args: []string{"--sort", "severity"}},
		{name: "unknown sort order", args: []string{"--order", "up"}},
		{name: "zero concurrency", args: []string{"--concurrency", "0"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			recordsPath := writeRecordsFile(t)

			cmd := NewRootCmd()
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})
			cmd.SetArgs(append([]string{"audit", recordsPath}, tt.args...))

			if err := cmd.Execute(); err == nil {
				t.Error("Execute() error = nil, want error")
			}
		})
	}
}

func TestAuditCmdMissingInput(t *testing.T) {
	t.Parallel()

	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"audit"})

	if err := cmd.Execute(); err == nil {
		t.Error("Execute() error = nil, want error when no input is given")
	}
}

func TestAuditCmdMissingExplicitConfigFile(t *testing.T) {
	t.Parallel()

	recordsPath := writeRecordsFile(t)

	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"audit", recordsPath, "-c", filepath.Join(t.TempDir(), "missing.yaml")})

	if err := cmd.Execute(); err == nil {
		t.Error("Execute() error = nil, want error for missing explicit config file")
	}
}

func TestViewStateFromConfig(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Filter = "error"
	cfg.SortKey = "url"
	cfg.SortOrder = "desc"
	cfg.Format = "csv"

	state, err := viewStateFromConfig(cfg)
	if err != nil {
		t.Fatalf("viewStateFromConfig() error = %v", err)
	}
	if state.Filter != aggregate.FilterError {
		t.Errorf("Filter = %q, want error", state.Filter)
	}
	if state.SortKey != aggregate.SortByURL || state.SortDir != aggregate.Descending {
		t.Errorf("sort = %s/%s, want url/desc", state.SortKey, state.SortDir)
	}
	if state.ExportFormat != "csv" {
		t.Errorf("ExportFormat = %q, want csv", state.ExportFormat)
	}
}

func TestPrintSummary(t *testing.T) {
	t.Parallel()

	audits := []model.PageAudit{
		{URL: "https://example.com/a", Score: 100, Issues: []model.Issue{}},
		{URL: "https://example.com/b", Score: 60, Issues: []model.Issue{
			{Rule: model.RuleHTMLLang, Severity: model.SeverityError},
		}},
	}

	var buf bytes.Buffer
	printSummary(&buf, audits, aggregate.NewViewState())

	out := buf.String()
	for _, want := range []string{
		"Audited 2 page(s), average score 80/100",
		"1 error(s), 0 warning(s), 0 info",
		"Score distribution:",
		"90-100",
		"https://example.com/b",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}
