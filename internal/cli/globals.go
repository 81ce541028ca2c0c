package cli

import (
	"fmt"
	"os"
	"sync"

	"github.com/rugi/jeplens/internal/config"
)

var (
	globalConfig     *config.Config
	globalConfigOnce sync.Once
)

// GetGlobalConfig loads the effective configuration once per process,
// honoring the --config flag, and falls back to defaults when loading
// fails so a broken config file never blocks the session.
func GetGlobalConfig() *config.Config {
	globalConfigOnce.Do(func() {
		loader := config.NewLoader()
		cfg, err := loader.LoadConfig(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
			cfg = config.DefaultConfig()
		}
		globalConfig = cfg
	})
	return globalConfig
}

// fileExists checks if a file exists
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
