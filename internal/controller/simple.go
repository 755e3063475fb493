package controller

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	m "wirefuzz.dev/pkg/wirefuzz/internal/model"
)

const timeRounding = time.Millisecond

// SimpleUI implements UI using cobra Command's output.
type SimpleUI struct {
	cmd *cobra.Command
	mu  sync.Mutex
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, _ ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(_ context.Context) {}

// Wait returns immediately: SimpleUI does not block.
func (s *SimpleUI) Wait(_ context.Context) {}

// DisplayCampaignInfo prints what is about to run.
func (s *SimpleUI) DisplayCampaignInfo(ctx context.Context, info m.CampaignInfo) {
	if err := ctx.Err(); err != nil {
		return
	}

	target := info.Target
	if target == "" {
		target = "none"
	}

	if info.Range != nil {
		s.printf("Reproducing %s iterations %s with seed %d\n", info.Schema, info.Range, info.Seed)
		return
	}

	s.printf("Fuzzing %s -> %s with %d worker(s), seed %d, max size %d\n",
		info.Schema, target, info.Threads, info.Seed, info.MaxSize)
}

// DisplayProgress prints a one-line progress report.
func (s *SimpleUI) DisplayProgress(ctx context.Context, stats m.CampaignStats) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("iterations: %d failed: %d exec/s: %.1f\n", stats.Iterations, stats.Failed, stats.ExecsPerSecond())

	if stats.Stalled {
		s.printf("warning: a worker has stalled\n")
	}
}

// DisplayFailure prints a failing iteration.
func (s *SimpleUI) DisplayFailure(ctx context.Context, crash m.Crash, path m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Iteration %d failed (%s): %s\n", crash.Iteration, crash.Mode, crash.Error)

	if path != "" {
		s.printf("Saved %s\n", path)
	}
}

// DisplaySummary prints the final campaign table.
func (s *SimpleUI) DisplaySummary(ctx context.Context, stats m.CampaignStats) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("\n%s", RenderSummaryTable(stats))
}

func (s *SimpleUI) printf(format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

// RenderSummaryTable renders stats as a two-column table.
func RenderSummaryTable(stats m.CampaignStats) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Campaign", stats.Schema})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	table.Append([]string{"Workers", fmt.Sprintf("%d", stats.Threads)})
	table.Append([]string{"Seed", fmt.Sprintf("%d", stats.Seed)})
	table.Append([]string{"Iterations", fmt.Sprintf("%d", stats.Iterations)})
	table.Append([]string{"Failed", fmt.Sprintf("%d", stats.Failed)})
	table.Append([]string{"Bytes", fmt.Sprintf("%d", stats.Bytes)})
	table.Append([]string{"Exec/s", fmt.Sprintf("%.1f", stats.ExecsPerSecond())})
	table.Append([]string{"Elapsed", stats.Elapsed.Round(timeRounding).String()})

	table.Render()

	return tableBuffer.String()
}

// RenderSchemaTable renders the registered schemas.
func RenderSchemaTable(infos []m.SchemaInfo) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Schema", "Min Size", "Default Size", "Variable", "Description"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT,
	})

	for _, info := range infos {
		table.Append([]string{
			info.Name,
			fmt.Sprintf("%d", info.MinSize),
			fmt.Sprintf("%d", info.MaxDefault),
			fmt.Sprintf("%t", info.Variable),
			info.Description,
		})
	}

	table.SetFooter([]string{fmt.Sprintf("Total %d", len(infos)), "", "", "", ""})
	table.Render()

	return tableBuffer.String()
}

// RenderCrashTable renders stored crashes, oldest campaign first.
func RenderCrashTable(crashes []m.Crash) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Schema", "Seed", "Iteration", "Mode", "Size", "Error"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	for _, crash := range crashes {
		table.Append([]string{
			crash.Schema,
			fmt.Sprintf("%d", crash.Seed),
			fmt.Sprintf("%d", crash.Iteration),
			crash.Mode,
			fmt.Sprintf("%d", crash.Size),
			crash.Error,
		})
	}

	table.SetFooter([]string{fmt.Sprintf("Total %d", len(crashes)), "", "", "", "", ""})
	table.Render()

	return tableBuffer.String()
}
