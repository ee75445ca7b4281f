// Package main provides the entry point for the a11yaudit CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for a11yaudit.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "a11yaudit",
		Short: "Accessibility audit for crawled HTML pages",
		Long: `a11yaudit checks the HTML markup of crawled pages against a fixed set of
heuristic accessibility rules. Each page gets a 0-100 score and a list of
actionable issues with remediation suggestions.

Input is a JSON array of {url, content} crawl records, read from a file or
stdin. Results can be exported as JSON, CSV, or Markdown.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewAuditCmd())
	cmd.AddCommand(NewCompareCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
