package cmd

import (
	"fmt"
	"io"
	"runtime/debug"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long:  "Displays the wirefuzz module version, its VCS revision and the Go toolchain it was built with.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			info, ok := debug.ReadBuildInfo()
			writeVersion(cmd.OutOrStdout(), info, ok)
		},
	}
}

func writeVersion(out io.Writer, info *debug.BuildInfo, ok bool) {
	if !ok || info.Main.Version == "" {
		fmt.Fprintln(out, "version: unknown")
		return
	}

	fmt.Fprintf(out, "wirefuzz\t%s\n", info.Main.Version)

	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" {
			fmt.Fprintf(out, "revision\t%s\n", setting.Value)
		}
	}

	fmt.Fprintf(out, "go\t\t%s\n", info.GoVersion)
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
