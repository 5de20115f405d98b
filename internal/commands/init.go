package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/simonhull/firebird-suite/wren/internal/output"
	"github.com/simonhull/firebird-suite/wren/pkg/config"
)

var (
	force bool

	// confirm is replaced in tests
	confirm = output.Confirm
)

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Write a default wren.yaml",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runInit,
}

func init() {
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing wren.yaml without asking")
	RootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}
	path := filepath.Join(dir, config.FileName)

	if _, err := os.Stat(path); err == nil && !force {
		if !confirm(fmt.Sprintf("%s exists. Overwrite?", path), false) {
			output.Info("Left " + path + " unchanged")
			return nil
		}
	}

	cfg := config.DefaultConfig()
	if abs, err := filepath.Abs(dir); err == nil {
		cfg.Project.Name = filepath.Base(abs)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	if err := config.SaveConfig(path, cfg); err != nil {
		return err
	}

	output.Success("Created " + path)
	output.Info("Next steps:")
	output.Step("wren analyze " + dir)
	return nil
}
