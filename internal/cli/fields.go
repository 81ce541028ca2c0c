package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rugi/jeplens/internal/emoji"
	"github.com/rugi/jeplens/internal/jep"
)

var fieldsFilters filterFlags

func newFieldsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fields [file]",
		Short: "Inspect the dataset schema",
		Long: `Show the columns found in a JEP dataset along with the status
vocabulary and year span present in the data.

The status set is defined by the data, not by jeplens; this command shows
which values are actually available for --status filters.

Examples:
  jeplens fields datos_jeps.csv
  jeplens fields --separator ","`,
		Args: cobra.MaximumNArgs(1),
		RunE: runFields,
	}

	cmd.Flags().StringVar(&fieldsFilters.separator, "separator", "", "field separator (default from config, usually ';')")

	return cmd
}

func runFields(cmd *cobra.Command, args []string) error {
	cfg := GetGlobalConfig()

	ds, err := loadDataset(resolveDatasetPath(args, cfg), fieldsFilters.loaderOptions(cfg))
	if err != nil {
		return err
	}

	fmt.Printf("%s Dataset: %s\n\n", emoji.GetEmoji("folder"), ds.Source)

	fmt.Printf("%s Columns (%d)\n", emoji.GetEmoji("table"), len(ds.Columns))
	for i, col := range ds.Columns {
		if i == len(ds.Columns)-1 {
			fmt.Printf("└─ %s\n", col)
		} else {
			fmt.Printf("├─ %s\n", col)
		}
	}
	fmt.Println()

	summary := jep.Summarize(ds.Records)

	fmt.Printf("%s Status vocabulary (%d values)\n", emoji.GetEmoji("status"), len(summary.TopStatuses))
	for i, count := range summary.TopStatuses {
		if i == len(summary.TopStatuses)-1 {
			fmt.Printf("└─ %s (%d)\n", count.Key, count.Count)
		} else {
			fmt.Printf("├─ %s (%d)\n", count.Key, count.Count)
		}
	}
	fmt.Println()

	fmt.Printf("%s Records: %d", emoji.GetEmoji("number"), summary.Total)
	if summary.YearMin != 0 {
		fmt.Printf(" (years %d-%d)", summary.YearMin, summary.YearMax)
	}
	fmt.Println()

	return nil
}
