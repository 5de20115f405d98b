// Package commands implements the wren command line.
package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/simonhull/firebird-suite/wren"
	"github.com/simonhull/firebird-suite/wren/internal/output"
	"github.com/simonhull/firebird-suite/wren/pkg/config"
	"github.com/simonhull/firebird-suite/wren/pkg/logger"
)

var (
	verbose    bool
	configPath string
)

// RootCmd is the root command for wren
var RootCmd = &cobra.Command{
	Use:   "wren",
	Short: "Wren - reactive property analyzer for web components",
	Long: `Wren reads Lit-style component sources and reports every reactive
property: its attribute, type, reflection and default, as declared with
@property({...}) or static properties.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		output.SetVerbose(verbose)
	},
}

// Execute runs the root command
func Execute() error {
	err := RootCmd.Execute()
	if err != nil {
		output.Error(err.Error())
	}
	return err
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show detailed analysis information")
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: wren.yaml in the project root)")

	RootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "Wren v%s\n", wren.Version)
		},
	})
}

// loadConfig reads the configuration for the project at path
func loadConfig(path string) (*config.Config, error) {
	if configPath != "" {
		return config.LoadFile(configPath)
	}

	dir := path
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		dir = filepath.Dir(path)
	}
	return config.Load(dir)
}

// newLogger builds the diagnostic logger for cfg; --verbose forces debug
func newLogger(cfg *config.Config) (logger.Logger, error) {
	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: log.level: %v", config.ErrInvalid, err)
	}
	if verbose {
		level = logger.LevelDebug
	}
	log := logger.NewLogger(level, os.Stderr)
	logger.SetDefault(log)
	return log, nil
}
