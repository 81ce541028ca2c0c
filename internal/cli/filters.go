package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rugi/jeplens/internal/config"
	"github.com/rugi/jeplens/internal/jep"
	"github.com/rugi/jeplens/internal/loader"
)

// filterFlags holds the filter selection shared by summary, export, and
// watch. Values are merged over the config-file defaults; an explicit flag
// always wins.
type filterFlags struct {
	statuses  []string
	authors   []string
	releases  []string
	yearFrom  int
	yearTo    int
	separator string
}

// register wires the shared filter flags onto a command
func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringSliceVarP(&f.statuses, "status", "s", nil, "filter by status (repeatable)")
	cmd.Flags().StringSliceVarP(&f.authors, "author", "a", nil, "filter by author (repeatable)")
	cmd.Flags().StringSliceVarP(&f.releases, "release", "r", nil, "filter by release (repeatable)")
	cmd.Flags().IntVar(&f.yearFrom, "year-from", 0, "earliest creation year (inclusive)")
	cmd.Flags().IntVar(&f.yearTo, "year-to", 0, "latest creation year (inclusive)")
	cmd.Flags().StringVar(&f.separator, "separator", "", "field separator (default from config, usually ';')")
}

// criteria builds the effective filter criteria from flags and config
// defaults
func (f *filterFlags) criteria(cmd *cobra.Command, cfg *config.Config) jep.Criteria {
	c := jep.Criteria{
		Statuses: cfg.Filter.Statuses,
		Authors:  cfg.Filter.Authors,
		Releases: cfg.Filter.Releases,
		YearMin:  cfg.Filter.YearFrom,
		YearMax:  cfg.Filter.YearTo,
	}

	if cmd.Flag("status").Changed {
		c.Statuses = f.statuses
	}
	if cmd.Flag("author").Changed {
		c.Authors = f.authors
	}
	if cmd.Flag("release").Changed {
		c.Releases = f.releases
	}
	if cmd.Flag("year-from").Changed {
		c.YearMin = f.yearFrom
	}
	if cmd.Flag("year-to").Changed {
		c.YearMax = f.yearTo
	}

	return c
}

// loaderOptions builds loader options from flags and config
func (f *filterFlags) loaderOptions(cfg *config.Config) loader.Options {
	opts := loader.Options{
		Separator:   cfg.SeparatorRune(),
		DateFormats: cfg.Data.DateFormats,
	}
	if f.separator != "" {
		opts.Separator = []rune(f.separator)[0]
	}
	return opts
}

// resolveDatasetPath picks the dataset location: an explicit argument wins
// over the configured path.
func resolveDatasetPath(args []string, cfg *config.Config) string {
	if len(args) > 0 {
		return args[0]
	}
	return cfg.Data.Path
}

// loadDataset validates the path and loads the dump, reporting progress
// when verbose.
func loadDataset(path string, opts loader.Options) (*loader.Dataset, error) {
	if err := validateFilePath(path); err != nil {
		return nil, fmt.Errorf("invalid file path: %w", err)
	}

	if isVerbose() {
		fmt.Fprintf(os.Stderr, "Loading dataset: %s\n", path)
	}

	ds, err := loader.Load(path, opts)
	if err != nil {
		return nil, err
	}

	if isVerbose() {
		fmt.Fprintf(os.Stderr, "Loaded %d records (%d columns)\n", len(ds.Records), len(ds.Columns))
	}

	return ds, nil
}

func validateFilePath(path string) error {
	if path == "" {
		return fmt.Errorf("empty file path")
	}

	cleanPath := filepath.Clean(path)

	info, err := os.Stat(cleanPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("file does not exist: %s", cleanPath)
		}
		return fmt.Errorf("cannot access file: %w", err)
	}

	if info.IsDir() {
		return fmt.Errorf("path is a directory, not a file: %s", cleanPath)
	}

	return nil
}
