package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/simonhull/firebird-suite/wren/internal/output"
	"github.com/simonhull/firebird-suite/wren/pkg/report"
)

var schemaOut string

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of the analysis report",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := report.SchemaJSON()
		if err != nil {
			return fmt.Errorf("generating schema: %w", err)
		}
		data = append(data, '\n')

		if schemaOut == "" {
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}
		if err := os.WriteFile(schemaOut, data, 0644); err != nil {
			return fmt.Errorf("writing schema: %w", err)
		}
		output.Success("Schema written to " + schemaOut)
		return nil
	},
}

func init() {
	schemaCmd.Flags().StringVarP(&schemaOut, "out", "o", "", "Write the schema to this file")
	RootCmd.AddCommand(schemaCmd)
}
