package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/nao1215/a11yaudit/internal/aggregate"
	"github.com/nao1215/a11yaudit/internal/config"
	"github.com/nao1215/a11yaudit/internal/crawl"
	"github.com/nao1215/a11yaudit/internal/database"
	"github.com/nao1215/a11yaudit/internal/export"
	"github.com/nao1215/a11yaudit/internal/log"
	"github.com/nao1215/a11yaudit/internal/model"
	"github.com/nao1215/a11yaudit/internal/rules"
)

// NewAuditCmd creates the audit command.
func NewAuditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit [records-file]",
		Short: "Audit crawled pages against the accessibility rules",
		Long: `Audit evaluates every crawled page against the built-in accessibility
rules, prints a summary to the terminal, and writes an export file.

Input is a JSON array of {url, content} crawl records. Pass a file path, or
"-" to read from stdin. Records missing either field are skipped.

Examples:
  # Audit a crawl batch and write a markdown report
  a11yaudit audit crawl.json

  # Read records from stdin and export CSV
  crawler https://example.com | a11yaudit audit - --format csv

  # Only export pages that have error-severity issues, best score first
  a11yaudit audit crawl.json --filter error --sort score --order desc

  # Skip the landmark rules for this run
  a11yaudit audit crawl.json --disable landmark-main,landmark-nav

  # Save the run for later comparison
  a11yaudit audit crawl.json --save`,
		Args: cobra.MaximumNArgs(1),
		RunE: runAuditCmd,
	}

	cmd.Flags().StringP("format", "f", config.DefaultFormat,
		"Export format: json, csv, or markdown")
	cmd.Flags().StringP("output", "o", "",
		"Export file path (default: generated name in current directory)")
	cmd.Flags().String("filter", config.DefaultFilter,
		"Only export pages containing issues of this severity: all, error, warning, or info")
	cmd.Flags().String("sort", config.DefaultSortKey,
		"Sort exported pages by: score, url, or issues")
	cmd.Flags().String("order", config.DefaultSortOrder,
		"Sort direction: asc or desc")
	cmd.Flags().IntP("concurrency", "n", config.DefaultConcurrency,
		"Number of pages evaluated in parallel")
	cmd.Flags().StringSlice("disable", nil,
		"Rule identifiers to skip (comma-separated)")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .a11yaudit in current or home directory)")
	cmd.Flags().BoolP("save", "s", false,
		"Save the run to the audit history database")

	return cmd
}

// runAuditCmd executes the audit command.
func runAuditCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := log.NewLogger(os.Stderr, cfg.Verbose)
	slog.SetDefault(logger)

	// Context with signal handling for graceful shutdown.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return runAudit(ctx, cmd, cfg, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from cobra command flags and the optional
// configuration file.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error
	cfg.Format, err = cmd.Flags().GetString("format")
	if err != nil {
		return nil, err
	}
	cfg.OutputPath, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}
	cfg.Filter, err = cmd.Flags().GetString("filter")
	if err != nil {
		return nil, err
	}
	cfg.SortKey, err = cmd.Flags().GetString("sort")
	if err != nil {
		return nil, err
	}
	cfg.SortOrder, err = cmd.Flags().GetString("order")
	if err != nil {
		return nil, err
	}
	cfg.Concurrency, err = cmd.Flags().GetInt("concurrency")
	if err != nil {
		return nil, err
	}
	cfg.DisabledRules, err = cmd.Flags().GetStringSlice("disable")
	if err != nil {
		return nil, err
	}
	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	cfg.SaveToDB, err = cmd.Flags().GetBool("save")
	if err != nil {
		return nil, err
	}
	cfg.Verbose = getVerboseFlag(cmd)

	// Overlay the config file. An explicitly named file must exist; the
	// implicit dotfile is optional.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)
	if configPath != "" {
		cf, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		cfg.ApplyFile(cf, config.NewConfig())
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	if cfg.SaveToDB {
		cfg.DBDir = config.XDGDataDir()
	}

	if len(args) > 0 {
		cfg.InputPath = args[0]
	}

	return cfg, nil
}

// runAudit executes the audit pipeline: load, evaluate, summarize, export,
// and optionally persist.
func runAudit(ctx context.Context, cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) error {
	format, err := export.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}
	state, err := viewStateFromConfig(cfg)
	if err != nil {
		return err
	}

	records, err := loadRecords(cfg.InputPath)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("no usable crawl records in %s", cfg.InputPath)
	}

	logger.Info("starting audit",
		"pages", len(records),
		"concurrency", cfg.Concurrency,
		"disabledRules", cfg.DisabledRules,
	)

	targets := make([]rules.Target, len(records))
	for i, record := range records {
		targets[i] = rules.Target{URL: record.URL, Markup: record.Content}
		logger.Debug("page queued",
			"url", record.URL,
			"title", crawl.Title(record.Content),
		)
	}

	evaluator := rules.NewEvaluator(rules.WithDisabledRules(cfg.DisabledRules))
	batch := rules.NewBatchEvaluator(evaluator,
		rules.WithConcurrency(cfg.Concurrency),
		rules.WithBatchLogger(logger),
	)

	audits, err := batch.EvaluateAll(ctx, targets)
	if err != nil {
		return fmt.Errorf("audit failed: %w", err)
	}

	printSummary(cmd.OutOrStdout(), audits, state)

	view := aggregate.View(audits, state)
	file, err := export.Export(view, format, time.Now())
	if err != nil {
		return err
	}

	outputPath := cfg.OutputPath
	if outputPath == "" {
		outputPath = file.Filename
	}
	if err := writeExportFile(outputPath, file.Content); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\nExport written to %s (%s)\n", outputPath, file.MIMEType)

	if cfg.SaveToDB {
		if err := saveRun(ctx, cfg, audits, logger); err != nil {
			logger.Error("failed to save audit run", "error", err)
		}
	}

	return nil
}

// viewStateFromConfig parses the config's view fields into a typed
// ViewState.
func viewStateFromConfig(cfg *config.Config) (aggregate.ViewState, error) {
	state := aggregate.NewViewState()

	filter, err := aggregate.ParseFilter(cfg.Filter)
	if err != nil {
		return state, err
	}
	sortKey, err := aggregate.ParseSortKey(cfg.SortKey)
	if err != nil {
		return state, err
	}
	dir, err := aggregate.ParseDirection(cfg.SortOrder)
	if err != nil {
		return state, err
	}

	state.Filter = filter
	state.SortKey = sortKey
	state.SortDir = dir
	state.ExportFormat = cfg.Format
	return state, nil
}

// loadRecords reads crawl records from the input path, with "-" meaning
// stdin.
func loadRecords(inputPath string) ([]crawl.Record, error) {
	var r io.Reader
	if inputPath == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(inputPath) //nolint:gosec // User-provided input path is intentional
		if err != nil {
			return nil, fmt.Errorf("failed to open crawl records: %w", err)
		}
		defer f.Close()
		r = f
	}
	return crawl.LoadRecords(r)
}

// printSummary writes the human-readable run summary to the terminal.
func printSummary(w io.Writer, audits []model.PageAudit, state aggregate.ViewState) {
	summary := aggregate.Summarize(audits)
	filterCounts := aggregate.FilterCounts(audits)

	fmt.Fprintf(w, "Audited %d page(s), average score %d/%d\n",
		summary.PageCount, summary.AverageScore, model.MaxScore)
	fmt.Fprintf(w, "Issues: %d error(s), %d warning(s), %d info\n",
		summary.Counts[model.SeverityError],
		summary.Counts[model.SeverityWarning],
		summary.Counts[model.SeverityInfo],
	)

	fmt.Fprintln(w, "\nScore distribution:")
	for _, bucket := range summary.Buckets {
		fmt.Fprintf(w, "  %-7s %d\n", bucket.Label, bucket.Count)
	}

	fmt.Fprintln(w, "\nPages:")
	for _, audit := range aggregate.View(audits, state) {
		marker := " "
		if audit.HasSeverity(model.SeverityError) {
			marker = "!"
		}
		fmt.Fprintf(w, "  %s %3d  %-50s %d issue(s)\n",
			marker, audit.Score, audit.URL, audit.IssueCount())
	}

	if state.Filter != aggregate.FilterAll {
		fmt.Fprintf(w, "\nFilter %q keeps %d of %d page(s) for export\n",
			state.Filter, filterCounts[state.Filter], filterCounts[aggregate.FilterAll])
	}
}

// writeExportFile writes the export, creating parent directories as needed.
func writeExportFile(path string, content []byte) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, content, 0600); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	return nil
}

// saveRun persists the audit run for later comparison.
func saveRun(ctx context.Context, cfg *config.Config, audits []model.PageAudit, logger *slog.Logger) error {
	db, err := database.Open(cfg.DBDir, database.DefaultOptions())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	id, err := db.SaveRun(ctx, audits)
	if err != nil {
		return err
	}
	logger.Info("audit run saved", "id", id, "dir", cfg.DBDir)
	return nil
}
