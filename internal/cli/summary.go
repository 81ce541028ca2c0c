package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rugi/jeplens/internal/formatter"
	"github.com/rugi/jeplens/internal/jep"
	"github.com/rugi/jeplens/internal/ui"
)

var (
	summaryFilters    filterFlags
	summaryNoTUI      bool
	summaryOutputFile string
)

func newSummaryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary [file]",
		Short: "Summarize a JEP dataset",
		Long: `Load a JEP dataset, apply the selected filters, and show summary
statistics and distributions.

If no file is specified, the configured data path is used. With text output
on a terminal the interactive dashboard is launched; use --no-tui for a
plain report.

Examples:
  jeplens summary datos_jeps.csv
  jeplens summary --status Final --year-from 2021
  jeplens summary --author "Brian Goetz" -o json
  jeplens summary --no-tui --output-file report.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSummary,
	}

	summaryFilters.register(cmd)
	cmd.Flags().BoolVar(&summaryNoTUI, "no-tui", false, "disable interactive dashboard, output to stdout")
	cmd.Flags().StringVar(&summaryOutputFile, "output-file", "", "save output to file instead of stdout")

	return cmd
}

func runSummary(cmd *cobra.Command, args []string) error {
	cfg := GetGlobalConfig()

	ds, err := loadDataset(resolveDatasetPath(args, cfg), summaryFilters.loaderOptions(cfg))
	if err != nil {
		return err
	}

	criteria := summaryFilters.criteria(cmd, cfg)
	filtered := jep.Apply(ds.Records, criteria)

	if isVerbose() {
		fmt.Fprintf(os.Stderr, "%d of %d records match the filters\n", len(filtered), len(ds.Records))
	}

	// Determine if we should use the interactive dashboard
	shouldUseTUI := !summaryNoTUI && getOutputFormat() == "text" &&
		summaryOutputFile == "" && !isVerbose()

	if shouldUseTUI {
		return ui.Run(ds, criteria, cfg.Dashboard)
	}

	report := formatter.NewReport(ds.Source, ds.Columns, criteria, filtered)
	return formatAndOutputReport(report)
}

// formatAndOutputReport formats a report and writes it to the selected
// destination
func formatAndOutputReport(report *formatter.Report) error {
	formatterInstance, err := getFormatter(getOutputFormat(), !noColor)
	if err != nil {
		return fmt.Errorf("failed to get formatter: %w", err)
	}

	output, err := formatterInstance.Format(report)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	return handleOutputDestination(output, summaryOutputFile)
}

// handleOutputDestination writes output to file or stdout
func handleOutputDestination(output []byte, outputFile string) error {
	if outputFile == "" {
		fmt.Print(string(output))
		return nil
	}

	if err := writeOutputBytesToFile(output, outputFile); err != nil {
		return fmt.Errorf("failed to write output to file: %w", err)
	}

	if isVerbose() {
		fmt.Fprintf(os.Stderr, "Output saved to: %s\n", outputFile)
	}
	return nil
}

// writeOutputBytesToFile writes output to a file with proper error handling
func writeOutputBytesToFile(output []byte, filePath string) error {
	cleanPath := filepath.Clean(filePath)

	file, err := os.Create(cleanPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && isVerbose() {
			fmt.Fprintf(os.Stderr, "Warning: failed to close output file: %v\n", closeErr)
		}
	}()

	if _, err := file.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if err := file.Sync(); err != nil {
		return fmt.Errorf("failed to sync output file: %w", err)
	}

	return nil
}
