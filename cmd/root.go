// Package cmd provides the root command and CLI setup for wirefuzz.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"wirefuzz.dev/pkg/wirefuzz/internal/adapter"
	"wirefuzz.dev/pkg/wirefuzz/internal/controller"
	"wirefuzz.dev/pkg/wirefuzz/internal/domain"
	m "wirefuzz.dev/pkg/wirefuzz/internal/model"
	"wirefuzz.dev/pkg/wirefuzz/internal/schema"
)

// Dependency constructors, replaced in tests.
var (
	newWorkflow   = domain.NewWorkflow
	newTarget     = dialTarget
	newCrashStore = func(dir m.Path) adapter.CrashStore { return adapter.NewFSCrashStore(dir) }
)

var seedFlag uint64
var maxSizeFlag int
var crashDirFlag string
var verboseFlag bool

const schemaHelp = `Built-in schemas are listed by "wirefuzz schemas".`

const rootLongDescription = `Wirefuzz is a structure-aware fuzzer for binary wire formats. It generates
values of a typed schema, mutates them with a deterministic walking bit flip
and interesting-value sweep before switching to havoc, and sends the
serialized bytes to a target.

` + schemaHelp

const runLongDescription = `Run a fuzzing campaign with the given schema. Payloads are sent to the
configured target address; without one they are generated and discarded.

` + schemaHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func init() {
	configureRootFlags(rootCmd)
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "wirefuzz",
		Short: "Structure-aware wire format fuzzer",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.Uint64Var(&seedFlag, seedFlagName, viper.GetUint64(seedConfigKey), "root seed of the campaign (0 picks a random seed for run)")
	bindFlagToConfig(flags.Lookup(seedFlagName), seedConfigKey)

	flags.IntVar(&maxSizeFlag, maxSizeFlagName, viper.GetInt(maxSizeConfigKey), "byte budget of every payload (0 for unlimited)")
	bindFlagToConfig(flags.Lookup(maxSizeFlagName), maxSizeConfigKey)

	flags.StringVarP(&crashDirFlag, crashDirFlagName, "o", viper.GetString(crashDirConfigKey), "directory for crash reports")
	bindFlagToConfig(flags.Lookup(crashDirFlagName), crashDirConfigKey)

	flags.BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(flags.Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// dialTarget connects to address, or discards payloads when no address is
// configured.
func dialTarget(network, address string, timeout time.Duration) (adapter.TargetAdapter, error) {
	if strings.TrimSpace(address) == "" {
		slog.Warn("No target address configured, discarding payloads")
		return adapter.NewDiscardTargetAdapter(), nil
	}

	target, err := adapter.NewNetTargetAdapter(network, address, timeout)
	if err != nil {
		return nil, err
	}

	return target, nil
}

func targetLabel(network, address string) string {
	if strings.TrimSpace(address) == "" {
		return "discard"
	}

	return network + "://" + address
}

func closeTarget(target adapter.TargetAdapter) {
	if err := target.Close(); err != nil {
		slog.Warn("Failed to close target", "error", err)
	}
}

// lookupSchema resolves a schema name given on the command line.
func lookupSchema(name string) (schema.Entry, error) {
	entry, err := schema.Lookup(name)
	if err != nil {
		return schema.Entry{}, fmt.Errorf("%w (available: %s)", err, strings.Join(schema.Names(), ", "))
	}

	return entry, nil
}

func newUI(cmd *cobra.Command, tui bool, quit func()) controller.UI {
	if tui {
		return controller.NewTUI(cmd.OutOrStdout(), quit)
	}

	return controller.NewSimpleUI(cmd)
}
