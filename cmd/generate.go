package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"wirefuzz.dev/pkg/wirefuzz/internal/adapter"
	"wirefuzz.dev/pkg/wirefuzz/internal/controller"
	"wirefuzz.dev/pkg/wirefuzz/internal/domain"
	m "wirefuzz.dev/pkg/wirefuzz/internal/model"
)

var generateCmd = newGenerateCmd()

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate <schema>",
		Short: "Print freshly generated values of a schema",
		Long: `Generate values of a schema and print their serialized bytes as a hex dump.
Value i is generated from seed+i, so the output is reproducible.

` + schemaHelp,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := lookupSchema(args[0])
			if err != nil {
				return err
			}

			count, _ := cmd.Flags().GetInt(countFlagName)
			if count < 1 {
				return fmt.Errorf("--%s must be at least 1, got %d", countFlagName, count)
			}

			wf := newWorkflow(adapter.NewDiscardTargetAdapter(), newCrashStore(m.Path(viper.GetString(crashDirConfigKey))), controller.NewSimpleUI(cmd))

			payloads := wf.Generate(domain.GenerateArgs{
				Type:    entry.Type,
				Order:   entry.Order,
				Seed:    viper.GetUint64(seedConfigKey),
				Count:   count,
				MaxSize: viper.GetInt(maxSizeConfigKey),
			})

			out := cmd.OutOrStdout()
			for i, payload := range payloads {
				fmt.Fprintf(out, "# %s %d (%d bytes)\n%s", entry.Name, i, len(payload), hex.Dump(payload))
			}

			return nil
		},
	}

	cmd.Flags().IntP(countFlagName, "c", 1, "number of values to generate")

	return cmd
}

func init() {
	rootCmd.AddCommand(generateCmd)
}
