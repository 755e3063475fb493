package cmd

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"wirefuzz.dev/pkg/wirefuzz/internal/domain"
	m "wirefuzz.dev/pkg/wirefuzz/internal/model"
)

var runThreadsFlag int
var runIterationsFlag uint64
var runThreadTimeoutFlag int64
var runTargetFlag string
var runNetworkFlag string

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <schema>",
		Short: "Run a fuzzing campaign",
		Long:  runLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := lookupSchema(args[0])
			if err != nil {
				return err
			}

			network := viper.GetString(targetNetworkKey)
			address := viper.GetString(targetAddressKey)

			target, err := newTarget(network, address, secondsKey(targetTimeoutKey))
			if err != nil {
				return err
			}
			defer closeTarget(target)

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer cancel()

			tui, _ := cmd.Flags().GetBool(tuiFlagName)
			wf := newWorkflow(target, newCrashStore(m.Path(viper.GetString(crashDirConfigKey))), newUI(cmd, tui, cancel))

			_, err = wf.Run(ctx, domain.CampaignArgs{
				Schema:        entry.Name,
				Type:          entry.Type,
				Order:         entry.Order,
				Threads:       viper.GetInt(threadsConfigKey),
				Seed:          campaignSeed(viper.GetUint64(seedConfigKey)),
				Iterations:    viper.GetUint64(iterationsConfigKey),
				MaxSize:       viper.GetInt(maxSizeConfigKey),
				ThreadTimeout: secondsKey(threadTimeoutConfigKey),
				Target:        targetLabel(network, address),
			})

			return err
		},
	}

	configureRunFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func configureRunFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&runThreadsFlag, threadsFlagName, "j", viper.GetInt(threadsConfigKey), "number of fuzzing workers")
	bindFlagToConfig(cmd.Flags().Lookup(threadsFlagName), threadsConfigKey)

	cmd.Flags().Uint64VarP(&runIterationsFlag, iterationsFlagName, "n", viper.GetUint64(iterationsConfigKey), "stop after this many iterations (0 runs until interrupted)")
	bindFlagToConfig(cmd.Flags().Lookup(iterationsFlagName), iterationsConfigKey)

	cmd.Flags().Int64Var(&runThreadTimeoutFlag, threadTimeoutFlagName, viper.GetInt64(threadTimeoutConfigKey), "seconds a worker may spend on one iteration before it is reported as stalled")
	bindFlagToConfig(cmd.Flags().Lookup(threadTimeoutFlagName), threadTimeoutConfigKey)

	cmd.Flags().StringVarP(&runTargetFlag, targetFlagName, "t", viper.GetString(targetAddressKey), "target address, e.g. 127.0.0.1:8080")
	bindFlagToConfig(cmd.Flags().Lookup(targetFlagName), targetAddressKey)

	cmd.Flags().StringVar(&runNetworkFlag, networkFlagName, viper.GetString(targetNetworkKey), "target network (tcp or udp)")
	bindFlagToConfig(cmd.Flags().Lookup(networkFlagName), targetNetworkKey)

	cmd.Flags().Bool(tuiFlagName, false, "show a live dashboard")
}

// campaignSeed maps the configured seed to the workflow's: zero means random.
func campaignSeed(seed uint64) *uint64 {
	if seed == 0 {
		return nil
	}

	return &seed
}
