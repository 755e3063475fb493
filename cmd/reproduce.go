package cmd

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"wirefuzz.dev/pkg/wirefuzz/internal/adapter"
	"wirefuzz.dev/pkg/wirefuzz/internal/domain"
	m "wirefuzz.dev/pkg/wirefuzz/internal/model"
)

var reproduceCmd = newReproduceCmd()

func newReproduceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reproduce [schema]",
		Short: "Replay iterations of a campaign",
		Long: `Replay iterations [start, end) of a single-worker campaign with the given
seed and print their bytes. With --crash, the iteration recorded in a saved
crash is replayed instead and checked against the stored payload.

` + schemaHelp,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := newCrashStore(m.Path(viper.GetString(crashDirConfigKey)))

			reproduceArgs, err := reproduceArgsFor(cmd, store, args)
			if err != nil {
				return err
			}

			send, _ := cmd.Flags().GetBool(sendFlagName)
			reproduceArgs.Send = send

			var target adapter.TargetAdapter = adapter.NewDiscardTargetAdapter()
			if send {
				target, err = newTarget(viper.GetString(targetNetworkKey), viper.GetString(targetAddressKey), secondsKey(targetTimeoutKey))
				if err != nil {
					return err
				}
			}
			defer closeTarget(target)

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer cancel()

			wf := newWorkflow(target, store, newUI(cmd, false, cancel))

			replayed, err := wf.Reproduce(ctx, reproduceArgs)
			printReplayed(cmd.OutOrStdout(), replayed)

			return err
		},
	}

	cmd.Flags().Uint64(startFlagName, 0, "first iteration to replay")
	cmd.Flags().Uint64(endFlagName, 1, "iteration to stop before")
	cmd.Flags().String(crashFlagName, "", "crash metadata file to replay")
	cmd.Flags().Bool(sendFlagName, false, "send the replayed payloads to the target again")

	return cmd
}

func init() {
	rootCmd.AddCommand(reproduceCmd)
}

// reproduceArgsFor builds the replay from either a crash file or the
// schema argument with --start and --end.
func reproduceArgsFor(cmd *cobra.Command, store adapter.CrashStore, args []string) (domain.ReproduceArgs, error) {
	if crashFile, _ := cmd.Flags().GetString(crashFlagName); crashFile != "" {
		return crashReproduceArgs(store, m.Path(crashFile))
	}

	if len(args) == 0 {
		return domain.ReproduceArgs{}, errors.New("a schema is required unless --crash is given")
	}

	entry, err := lookupSchema(args[0])
	if err != nil {
		return domain.ReproduceArgs{}, err
	}

	start, _ := cmd.Flags().GetUint64(startFlagName)
	end, _ := cmd.Flags().GetUint64(endFlagName)

	if end <= start {
		return domain.ReproduceArgs{}, fmt.Errorf("%w: --end %d must be greater than --start %d", m.ErrInvalidRange, end, start)
	}

	return domain.ReproduceArgs{
		Schema:  entry.Name,
		Type:    entry.Type,
		Order:   entry.Order,
		Seed:    viper.GetUint64(seedConfigKey),
		Range:   m.IterationRange{Start: start, End: end},
		MaxSize: viper.GetInt(maxSizeConfigKey),
	}, nil
}

func crashReproduceArgs(store adapter.CrashStore, path m.Path) (domain.ReproduceArgs, error) {
	crash, err := store.LoadCrash(path)
	if err != nil {
		return domain.ReproduceArgs{}, fmt.Errorf("load crash: %w", err)
	}

	entry, err := lookupSchema(crash.Schema)
	if err != nil {
		return domain.ReproduceArgs{}, err
	}

	if crash.Threads > 1 {
		slog.Warn("Crash comes from a multi-worker campaign, replay may differ", "threads", crash.Threads)
	}

	return domain.ReproduceArgs{
		Schema:   entry.Name,
		Type:     entry.Type,
		Order:    entry.Order,
		Seed:     crash.Seed,
		Range:    m.IterationRange{Start: crash.Iteration, End: crash.Iteration + 1},
		MaxSize:  crash.MaxSize,
		Expected: map[uint64][]byte{crash.Iteration: crash.Payload},
	}, nil
}

func printReplayed(out io.Writer, replayed []domain.Replayed) {
	for _, r := range replayed {
		fmt.Fprintf(out, "# iteration %d (%d bytes, %s)\n%s", r.Iteration, len(r.Payload), r.Status(), hex.Dump(r.Payload))

		if r.Err != nil {
			fmt.Fprintf(out, "error: %v\n", r.Err)
		}
	}
}
