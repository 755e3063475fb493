package cmd

import (
	"context"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"wirefuzz.dev/pkg/wirefuzz/internal/adapter"
	"wirefuzz.dev/pkg/wirefuzz/internal/controller"
	"wirefuzz.dev/pkg/wirefuzz/internal/domain"
	domainmocks "wirefuzz.dev/pkg/wirefuzz/internal/domain/mocks"
	m "wirefuzz.dev/pkg/wirefuzz/internal/model"
	"wirefuzz.dev/pkg/wirefuzz/internal/schema"
)

// replayPayload returns the bytes a single-worker packet campaign sends at
// iteration it.
func replayPayload(t *testing.T, seed, it uint64, maxSize int) []byte {
	t.Helper()

	entry, err := schema.Lookup("packet")
	require.NoError(t, err)

	wf := domain.NewWorkflow(adapter.NewDiscardTargetAdapter(), nil, controller.NewSimpleUI(&cobra.Command{}))

	replayed, err := wf.Reproduce(context.Background(), domain.ReproduceArgs{
		Schema:  entry.Name,
		Type:    entry.Type,
		Order:   entry.Order,
		Seed:    seed,
		Range:   m.IterationRange{Start: it, End: it + 1},
		MaxSize: maxSize,
	})
	require.NoError(t, err)
	require.Len(t, replayed, 1)

	return replayed[0].Payload
}

func saveCrash(t *testing.T, crash m.Crash) m.Path {
	t.Helper()

	path, err := adapter.NewFSCrashStore(m.Path(t.TempDir())).SaveCrash(crash)
	require.NoError(t, err)

	return path
}

func TestReproduceCmd_Range(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	target := useWorkflow(t, mockWorkflow)

	mockWorkflow.EXPECT().Reproduce(mock.Anything, mock.MatchedBy(func(args domain.ReproduceArgs) bool {
		return args.Schema == "packet" &&
			args.Seed == 11 &&
			args.Range == m.IterationRange{Start: 3, End: 5} &&
			args.MaxSize == 64 &&
			!args.Send &&
			args.Expected == nil
	})).Return([]domain.Replayed{
		{Iteration: 3, Payload: []byte{0x01, 0x02}},
		{Iteration: 4, Payload: []byte{0x03}, Err: errors.New("refused")},
	}, nil).Once()

	cmd, output := newTestRootCmd(t, newReproduceCmd())
	cmd.SetArgs([]string{"reproduce", "packet", "--start", "3", "--end", "5", "--seed", "11", "--max-size", "64"})

	require.NoError(t, cmd.Execute())

	out := output.String()
	assert.Contains(t, out, "# iteration 3 (2 bytes, passed)\n"+hex.Dump([]byte{0x01, 0x02}))
	assert.Contains(t, out, "# iteration 4 (1 bytes, failed)\n"+hex.Dump([]byte{0x03}))
	assert.Contains(t, out, "error: refused")
	assert.IsType(t, &adapter.DiscardTargetAdapter{}, *target)
}

func TestReproduceCmd_Crash(t *testing.T) {
	payload := []byte{0xde, 0xad}
	path := saveCrash(t, m.Crash{Schema: "packet", Seed: 9, Iteration: 4, Threads: 1, MaxSize: 32, Payload: payload})

	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	mockWorkflow.EXPECT().Reproduce(mock.Anything, mock.MatchedBy(func(args domain.ReproduceArgs) bool {
		want, ok := args.Expected[4]

		return args.Schema == "packet" &&
			args.Seed == 9 &&
			args.Range == m.IterationRange{Start: 4, End: 5} &&
			args.MaxSize == 32 &&
			ok && string(want) == string(payload)
	})).Return(nil, nil).Once()

	cmd, _ := newTestRootCmd(t, newReproduceCmd())
	cmd.SetArgs([]string{"reproduce", "--crash", string(path)})

	require.NoError(t, cmd.Execute())
}

func TestReproduceCmd_ReplaysSavedCrash(t *testing.T) {
	// the real workflow replays a crash recorded from a single-worker campaign
	const seed, it, maxSize = 77, 12, 48

	payload := replayPayload(t, seed, it, maxSize)

	t.Run("matching payload", func(t *testing.T) {
		path := saveCrash(t, m.Crash{Schema: "packet", Seed: seed, Iteration: it, Threads: 1, MaxSize: maxSize, Payload: payload})

		cmd, output := newTestRootCmd(t, newReproduceCmd())
		cmd.SetArgs([]string{"reproduce", "--crash", string(path)})

		require.NoError(t, cmd.Execute())
		assert.Contains(t, output.String(), hex.Dump(payload))
	})

	t.Run("tampered payload", func(t *testing.T) {
		tampered := append([]byte{0xff}, payload...)
		path := saveCrash(t, m.Crash{Schema: "packet", Seed: seed, Iteration: it, Threads: 1, MaxSize: maxSize, Payload: tampered})

		cmd, _ := newTestRootCmd(t, newReproduceCmd())
		cmd.SetArgs([]string{"reproduce", "--crash", string(path)})

		err := cmd.Execute()
		require.ErrorIs(t, err, m.ErrReproduceMismatch)
	})
}

func TestReproduceCmd_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
		wantMsg string
	}{
		{"empty range", []string{"reproduce", "packet", "--start", "5", "--end", "5"}, m.ErrInvalidRange, "--end 5"},
		{"no schema", []string{"reproduce"}, nil, "a schema is required"},
		{"unknown schema", []string{"reproduce", "smtp"}, m.ErrUnknownSchema, "smtp"},
		{"missing crash", []string{"reproduce", "--crash", "does-not-exist.yaml"}, nil, "load crash"},
		{"too many args", []string{"reproduce", "packet", "ipv4"}, nil, "accepts at most 1 arg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockWorkflow := domainmocks.NewMockWorkflow(t)
			useWorkflow(t, mockWorkflow)

			cmd, _ := newTestRootCmd(t, newReproduceCmd())
			cmd.SetArgs(tt.args)

			err := cmd.Execute()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
