package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nao1215/a11yaudit/internal/aggregate"
	"github.com/nao1215/a11yaudit/internal/config"
	"github.com/nao1215/a11yaudit/internal/database"
	"github.com/nao1215/a11yaudit/internal/model"
)

// Constants for score direction in comparison output.
const (
	scoreDirectionImproved  = "improved"
	scoreDirectionWorsened  = "worsened"
	scoreDirectionUnchanged = "unchanged"
)

// NewCompareCmd creates the compare command.
// This command compares audit runs stored in the history database.
func NewCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare the latest audit run with a previous one",
		Long: `Compare displays differences between two saved audit runs.

It retrieves run history from the database and shows:
- The change in average score and per-severity issue counts
- Pages whose score improved or worsened
- Issues that are new and issues that were resolved

The comparison requires at least two saved runs. Use 'a11yaudit audit --save'
to save runs.

Examples:
  # Compare the latest two saved runs
  a11yaudit compare

  # List saved run history
  a11yaudit compare --list

  # Compare the latest run with a specific run by ID
  a11yaudit compare --with-run-id 5

  # Output the comparison in JSON format
  a11yaudit compare --json`,
		Args: cobra.NoArgs,
		RunE: runCompareCmd,
	}

	cmd.Flags().BoolP("list", "l", false,
		"List saved audit run history")
	cmd.Flags().Int64P("with-run-id", "i", 0,
		"Compare the latest run with a specific run by ID (use --list to see IDs)")
	cmd.Flags().BoolP("json", "j", false,
		"Output comparison result in JSON format")

	return cmd
}

// runCompareCmd executes the compare command.
func runCompareCmd(cmd *cobra.Command, _ []string) error {
	db, err := database.Open(config.XDGDataDir(), database.DefaultOptions())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	ctx := context.Background()

	listHistory, err := cmd.Flags().GetBool("list")
	if err != nil {
		return err
	}
	if listHistory {
		return listRunHistory(ctx, cmd.OutOrStdout(), db)
	}

	jsonOutput, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}
	withRunID, err := cmd.Flags().GetInt64("with-run-id")
	if err != nil {
		return err
	}

	return runComparison(ctx, cmd.OutOrStdout(), db, withRunID, jsonOutput)
}

// listRunHistory prints the saved run history.
func listRunHistory(ctx context.Context, w io.Writer, db *database.AuditDB) error {
	history, err := db.GetRunHistory(ctx)
	if err != nil {
		return fmt.Errorf("failed to get run history: %w", err)
	}

	if len(history) == 0 {
		fmt.Fprintln(w, "No saved audit runs found in the database.")
		fmt.Fprintln(w, "\nUse 'a11yaudit audit --save' to save a run.")
		return nil
	}

	fmt.Fprintf(w, "Saved audit runs (%d):\n\n", len(history))
	fmt.Fprintf(w, "  %-6s  %-20s  %-6s  %-9s  %s\n", "ID", "Date", "Pages", "Avg Score", "Issues")
	fmt.Fprintln(w, "  "+strings.Repeat("-", 64))

	for _, meta := range history {
		fmt.Fprintf(w, "  %-6d  %-20s  %-6d  %-9d  %s\n",
			meta.ID,
			meta.Timestamp.Format("2006-01-02 15:04:05"),
			meta.PageCount,
			meta.AverageScore,
			formatSeveritySummary(meta.SeveritySummary),
		)
	}

	fmt.Fprintln(w, "\nUse 'a11yaudit compare' to compare the latest two runs.")
	fmt.Fprintln(w, "Use 'a11yaudit compare --with-run-id <id>' to compare with a specific run.")

	return nil
}

// formatSeveritySummary formats the severity summary map into a short
// human-readable string.
func formatSeveritySummary(summary map[string]int) string {
	if summary == nil {
		return "N/A"
	}

	var parts []string
	if v := summary["error"]; v > 0 {
		parts = append(parts, fmt.Sprintf("E:%d", v))
	}
	if v := summary["warning"]; v > 0 {
		parts = append(parts, fmt.Sprintf("W:%d", v))
	}
	if v := summary["info"]; v > 0 {
		parts = append(parts, fmt.Sprintf("I:%d", v))
	}

	if len(parts) == 0 {
		return "No issues"
	}
	return strings.Join(parts, " ")
}

// ComparisonResult holds the result of comparing two audit runs.
type ComparisonResult struct {
	// PreviousRun and CurrentRun summarize the two compared runs.
	PreviousRun RunSummary `json:"previous_run"`
	CurrentRun  RunSummary `json:"current_run"`

	// ScoreChange describes the overall direction of the average score.
	ScoreChange ScoreChange `json:"score_change"`

	// NewIssues lists issues present now that were absent before.
	NewIssues []PageIssue `json:"new_issues,omitempty"`

	// ResolvedIssues lists issues that were present before and are gone.
	ResolvedIssues []PageIssue `json:"resolved_issues,omitempty"`

	// PageDeltas lists pages whose score changed, worst regression first.
	PageDeltas []PageDelta `json:"page_deltas,omitempty"`
}

// RunSummary contains the headline numbers of one run.
type RunSummary struct {
	// PageCount is the number of audited pages.
	PageCount int `json:"page_count"`

	// AverageScore is the rounded mean page score.
	AverageScore int `json:"average_score"`

	// ErrorCount, WarningCount, and InfoCount are issue tallies.
	ErrorCount   int `json:"error_count"`
	WarningCount int `json:"warning_count"`
	InfoCount    int `json:"info_count"`
}

// ScoreChange describes the change in average score between runs.
type ScoreChange struct {
	// Direction is "improved", "worsened", or "unchanged".
	Direction string `json:"direction"`

	// Delta is current average minus previous average.
	Delta int `json:"delta"`
}

// PageIssue locates one issue on one page.
type PageIssue struct {
	// URL is the page the issue belongs to.
	URL string `json:"url"`

	// Rule is the issue's rule identifier.
	Rule string `json:"rule"`

	// Severity is the issue's severity tier.
	Severity string `json:"severity"`

	// Message is the issue's detected-state description.
	Message string `json:"message"`
}

// PageDelta is one page's score movement between runs.
type PageDelta struct {
	// URL is the page address.
	URL string `json:"url"`

	// PreviousScore and CurrentScore are the page's scores in each run.
	PreviousScore int `json:"previous_score"`
	CurrentScore  int `json:"current_score"`
}

// runComparison loads the two runs and prints their diff.
func runComparison(ctx context.Context, w io.Writer, db *database.AuditDB, withRunID int64, jsonOutput bool) error {
	runs, err := db.GetLatestRuns(ctx, 2)
	if err != nil {
		return fmt.Errorf("failed to get latest runs: %w", err)
	}
	if len(runs) == 0 {
		return fmt.Errorf("no saved audit runs found (use 'a11yaudit audit --save' first)")
	}

	current := runs[0]

	var previous []model.PageAudit
	if withRunID > 0 {
		previous, err = db.GetRunByID(ctx, withRunID)
		if err != nil {
			return fmt.Errorf("failed to get run with ID %d: %w", withRunID, err)
		}
		if previous == nil {
			return fmt.Errorf("run with ID %d not found (use --list to see available IDs)", withRunID)
		}
	} else {
		if len(runs) < 2 {
			return fmt.Errorf("at least 2 saved runs are required for comparison (found %d)", len(runs))
		}
		previous = runs[1]
	}

	comparison := compareRuns(previous, current)

	if jsonOutput {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(comparison)
	}
	printComparison(w, comparison)
	return nil
}

// compareRuns diffs two audit runs. Issues are keyed by page URL plus rule
// identifier; a changed message on the same rule still counts as the same
// issue.
func compareRuns(previous, current []model.PageAudit) *ComparisonResult {
	result := &ComparisonResult{
		PreviousRun: summarizeRun(previous),
		CurrentRun:  summarizeRun(current),
	}

	delta := result.CurrentRun.AverageScore - result.PreviousRun.AverageScore
	result.ScoreChange = ScoreChange{Direction: scoreDirection(delta), Delta: delta}

	previousIssues := issueIndex(previous)
	currentIssues := issueIndex(current)

	for key, issue := range currentIssues {
		if _, ok := previousIssues[key]; !ok {
			result.NewIssues = append(result.NewIssues, issue)
		}
	}
	for key, issue := range previousIssues {
		if _, ok := currentIssues[key]; !ok {
			result.ResolvedIssues = append(result.ResolvedIssues, issue)
		}
	}
	sortPageIssues(result.NewIssues)
	sortPageIssues(result.ResolvedIssues)

	previousScores := make(map[string]int, len(previous))
	for _, audit := range previous {
		previousScores[audit.URL] = audit.Score
	}
	for _, audit := range current {
		prev, ok := previousScores[audit.URL]
		if !ok || prev == audit.Score {
			continue
		}
		result.PageDeltas = append(result.PageDeltas, PageDelta{
			URL:           audit.URL,
			PreviousScore: prev,
			CurrentScore:  audit.Score,
		})
	}

	return result
}

// summarizeRun collapses a run into its headline numbers.
func summarizeRun(audits []model.PageAudit) RunSummary {
	counts := aggregate.CountsBySeverity(audits)
	return RunSummary{
		PageCount:    len(audits),
		AverageScore: aggregate.AverageScore(audits),
		ErrorCount:   counts[model.SeverityError],
		WarningCount: counts[model.SeverityWarning],
		InfoCount:    counts[model.SeverityInfo],
	}
}

// scoreDirection maps an average-score delta to its direction word.
// Higher scores are better, so a positive delta is an improvement.
func scoreDirection(delta int) string {
	switch {
	case delta > 0:
		return scoreDirectionImproved
	case delta < 0:
		return scoreDirectionWorsened
	default:
		return scoreDirectionUnchanged
	}
}

// issueIndex keys every issue in a run by page URL and rule identifier.
func issueIndex(audits []model.PageAudit) map[string]PageIssue {
	index := make(map[string]PageIssue)
	for _, audit := range audits {
		for _, issue := range audit.Issues {
			index[audit.URL+"|"+issue.Rule] = PageIssue{
				URL:      audit.URL,
				Rule:     issue.Rule,
				Severity: issue.Severity.String(),
				Message:  issue.Message,
			}
		}
	}
	return index
}

// sortPageIssues orders issues by URL then rule for stable output.
func sortPageIssues(issues []PageIssue) {
	sort.Slice(issues, func(i, j int) bool {
		if issues[i].URL != issues[j].URL {
			return issues[i].URL < issues[j].URL
		}
		return issues[i].Rule < issues[j].Rule
	})
}

// printComparison writes the human-readable comparison.
func printComparison(w io.Writer, c *ComparisonResult) {
	fmt.Fprintln(w, "Audit run comparison")
	fmt.Fprintln(w, strings.Repeat("=", 40))

	fmt.Fprintf(w, "\nAverage score: %d -> %d (%s",
		c.PreviousRun.AverageScore, c.CurrentRun.AverageScore, c.ScoreChange.Direction)
	if c.ScoreChange.Delta != 0 {
		fmt.Fprintf(w, ", %+d", c.ScoreChange.Delta)
	}
	fmt.Fprintln(w, ")")

	fmt.Fprintf(w, "Pages:         %d -> %d\n", c.PreviousRun.PageCount, c.CurrentRun.PageCount)
	fmt.Fprintf(w, "Errors:        %d -> %d\n", c.PreviousRun.ErrorCount, c.CurrentRun.ErrorCount)
	fmt.Fprintf(w, "Warnings:      %d -> %d\n", c.PreviousRun.WarningCount, c.CurrentRun.WarningCount)
	fmt.Fprintf(w, "Info:          %d -> %d\n", c.PreviousRun.InfoCount, c.CurrentRun.InfoCount)

	if len(c.NewIssues) > 0 {
		fmt.Fprintf(w, "\nNew issues (%d):\n", len(c.NewIssues))
		for _, issue := range c.NewIssues {
			fmt.Fprintf(w, "  + [%s] %s: %s\n", issue.Severity, issue.URL, issue.Message)
		}
	}

	if len(c.ResolvedIssues) > 0 {
		fmt.Fprintf(w, "\nResolved issues (%d):\n", len(c.ResolvedIssues))
		for _, issue := range c.ResolvedIssues {
			fmt.Fprintf(w, "  - [%s] %s: %s\n", issue.Severity, issue.URL, issue.Message)
		}
	}

	if len(c.PageDeltas) > 0 {
		fmt.Fprintf(w, "\nScore changes (%d):\n", len(c.PageDeltas))
		for _, delta := range c.PageDeltas {
			fmt.Fprintf(w, "  %s: %d -> %d (%+d)\n",
				delta.URL, delta.PreviousScore, delta.CurrentScore,
				delta.CurrentScore-delta.PreviousScore)
		}
	}

	if len(c.NewIssues) == 0 && len(c.ResolvedIssues) == 0 && len(c.PageDeltas) == 0 {
		fmt.Fprintln(w, "\nNo differences between the two runs.")
	}
}
