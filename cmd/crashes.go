package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"wirefuzz.dev/pkg/wirefuzz/internal/controller"
	m "wirefuzz.dev/pkg/wirefuzz/internal/model"
)

var crashesCmd = newCrashesCmd()

func newCrashesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "crashes",
		Short: "List saved crashes",
		Long: `List the crashes saved in the crash directory. Each one can be replayed with
"wirefuzz reproduce --crash <dir>/<seed>-<iteration>.yaml".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			crashes, err := newCrashStore(m.Path(viper.GetString(crashDirConfigKey))).ListCrashes()
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), controller.RenderCrashTable(crashes))

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(crashesCmd)
}
