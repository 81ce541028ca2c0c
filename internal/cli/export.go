package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rugi/jeplens/internal/jep"
	"github.com/rugi/jeplens/internal/loader"
)

var (
	exportFilters filterFlags
	exportOutput  string
)

func newExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Export the filtered records as CSV",
		Long: `Apply the selected filters and write the matching records to a CSV
file with the same columns as the source dataset.

The export is written atomically; a failed write never leaves a truncated
file behind. A filter that matches nothing produces a header-only export.

Examples:
  jeplens export datos_jeps.csv --status Final
  jeplens export --year-from 2020 --year-to 2023 --export-file final.csv`,
		Args: cobra.MaximumNArgs(1),
		RunE: runExport,
	}

	exportFilters.register(cmd)
	cmd.Flags().StringVar(&exportOutput, "export-file", "", "destination path (default: jeps_filtered_<timestamp>.csv)")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg := GetGlobalConfig()

	ds, err := loadDataset(resolveDatasetPath(args, cfg), exportFilters.loaderOptions(cfg))
	if err != nil {
		return err
	}

	criteria := exportFilters.criteria(cmd, cfg)
	filtered := jep.Apply(ds.Records, criteria)

	dest := exportOutput
	if dest == "" {
		dest = loader.ExportFilename(time.Now())
	}

	if err := loader.Export(dest, ds.Columns, filtered); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	if len(filtered) == 0 {
		fmt.Fprintf(os.Stderr, "Warning: no records match the filters, wrote header-only export\n")
	}
	fmt.Printf("Exported %d of %d records to %s\n", len(filtered), len(ds.Records), dest)

	return nil
}
