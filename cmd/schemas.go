package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"wirefuzz.dev/pkg/wirefuzz/internal/controller"
	m "wirefuzz.dev/pkg/wirefuzz/internal/model"
	"wirefuzz.dev/pkg/wirefuzz/internal/schema"
)

var schemasCmd = newSchemasCmd()

func newSchemasCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schemas",
		Short: "List the built-in schemas",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			entries := schema.List()

			infos := make([]m.SchemaInfo, len(entries))
			for i, e := range entries {
				infos[i] = e.Info()
			}

			fmt.Fprint(cmd.OutOrStdout(), controller.RenderSchemaTable(infos))
		},
	}
}

func init() {
	rootCmd.AddCommand(schemasCmd)
}
