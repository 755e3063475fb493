package controller

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	m "wirefuzz.dev/pkg/wirefuzz/internal/model"
)

const maxRecentFailures = 8

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	labelStyle   = lipgloss.NewStyle().Faint(true)
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	warnStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	boxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

type (
	infoMsg     m.CampaignInfo
	progressMsg m.CampaignStats
	summaryMsg  m.CampaignStats
	failureMsg  struct {
		crash m.Crash
		path  m.Path
	}
)

// TUI implements UI as a live Bubble Tea dashboard.
type TUI struct {
	output  io.Writer
	onQuit  func()
	options []tea.ProgramOption

	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
}

// NewTUI creates a new TUI writing to output. onQuit, if set, runs when the
// dashboard exits, including when the user quits it early.
func NewTUI(output io.Writer, onQuit func(), options ...tea.ProgramOption) *TUI {
	return &TUI{output: output, onQuit: onQuit, options: options}
}

// Start launches the dashboard in the background.
func (t *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cfg := applyStartOptions(options)

	opts := append([]tea.ProgramOption{tea.WithOutput(t.output), tea.WithContext(ctx)}, t.options...)
	program := tea.NewProgram(newCampaignModel(cfg.mode), opts...)
	done := make(chan struct{})

	t.mu.Lock()
	t.program, t.done = program, done
	t.mu.Unlock()

	go func() {
		defer close(done)

		if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			slog.Error("Dashboard exited with error", "error", err)
		}

		if t.onQuit != nil {
			t.onQuit()
		}
	}()

	return nil
}

// Close stops the dashboard and waits for it to restore the terminal.
func (t *TUI) Close(ctx context.Context) {
	program, done := t.current()
	if program == nil {
		return
	}

	program.Quit()

	select {
	case <-done:
	case <-ctx.Done():
	}
}

// Wait blocks until the user closes the dashboard.
func (t *TUI) Wait(ctx context.Context) {
	_, done := t.current()
	if done == nil {
		return
	}

	select {
	case <-done:
	case <-ctx.Done():
	}
}

func (t *TUI) DisplayCampaignInfo(_ context.Context, info m.CampaignInfo) {
	t.send(infoMsg(info))
}

func (t *TUI) DisplayProgress(_ context.Context, stats m.CampaignStats) {
	t.send(progressMsg(stats))
}

func (t *TUI) DisplayFailure(_ context.Context, crash m.Crash, path m.Path) {
	t.send(failureMsg{crash: crash, path: path})
}

func (t *TUI) DisplaySummary(_ context.Context, stats m.CampaignStats) {
	t.send(summaryMsg(stats))
}

func (t *TUI) current() (*tea.Program, chan struct{}) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.program, t.done
}

func (t *TUI) send(msg tea.Msg) {
	if program, _ := t.current(); program != nil {
		program.Send(msg)
	}
}

// campaignModel is the Bubble Tea model behind the dashboard.
type campaignModel struct {
	mode     StartMode
	spinner  spinner.Model
	info     m.CampaignInfo
	stats    m.CampaignStats
	recent   []string
	done     bool
	quitting bool
}

func newCampaignModel(mode StartMode) campaignModel {
	s := spinner.New()
	s.Spinner = spinner.Dot

	return campaignModel{mode: mode, spinner: s}
}

func (cm campaignModel) Init() tea.Cmd {
	return cm.spinner.Tick
}

func (cm campaignModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			cm.quitting = true
			return cm, tea.Quit
		}
	case infoMsg:
		cm.info = m.CampaignInfo(msg)
	case progressMsg:
		cm.stats = m.CampaignStats(msg)
	case failureMsg:
		cm.recent = append(cm.recent, formatFailure(msg.crash, msg.path))
		if len(cm.recent) > maxRecentFailures {
			cm.recent = cm.recent[len(cm.recent)-maxRecentFailures:]
		}
	case summaryMsg:
		cm.stats = m.CampaignStats(msg)
		cm.done = true
	case spinner.TickMsg:
		var cmd tea.Cmd
		cm.spinner, cmd = cm.spinner.Update(msg)

		return cm, cmd
	}

	return cm, nil
}

func formatFailure(crash m.Crash, path m.Path) string {
	line := fmt.Sprintf("#%d %s: %s", crash.Iteration, crash.Mode, crash.Error)
	if path != "" {
		line += " -> " + string(path)
	}

	return line
}

func (cm campaignModel) View() string {
	var b strings.Builder

	title := "wirefuzz campaign"
	if cm.mode == ModeReproduce {
		title = "wirefuzz reproduce"
	}

	status := cm.spinner.View() + " running"
	if cm.done {
		status = "done"
	}

	fmt.Fprintf(&b, "%s  %s\n\n", titleStyle.Render(title), status)

	rows := [][2]string{
		{"schema", cm.info.Schema},
		{"target", cm.info.Target},
		{"workers", fmt.Sprintf("%d", cm.info.Threads)},
		{"seed", fmt.Sprintf("%d", cm.info.Seed)},
		{"iterations", fmt.Sprintf("%d", cm.stats.Iterations)},
		{"failed", fmt.Sprintf("%d", cm.stats.Failed)},
		{"exec/s", fmt.Sprintf("%.1f", cm.stats.ExecsPerSecond())},
	}

	if cm.info.Range != nil {
		rows = append(rows, [2]string{"range", cm.info.Range.String()})
	}

	var table strings.Builder
	for _, row := range rows {
		fmt.Fprintf(&table, "%s %s\n", labelStyle.Render(fmt.Sprintf("%-10s", row[0])), row[1])
	}

	b.WriteString(boxStyle.Render(strings.TrimRight(table.String(), "\n")))
	b.WriteString("\n")

	if cm.stats.Stalled {
		b.WriteString(warnStyle.Render("a worker has stalled") + "\n")
	}

	if len(cm.recent) > 0 {
		b.WriteString("\nrecent failures:\n")

		for _, line := range cm.recent {
			b.WriteString("  " + failureStyle.Render(line) + "\n")
		}
	}

	b.WriteString(labelStyle.Render("\nq: quit") + "\n")

	return b.String()
}
