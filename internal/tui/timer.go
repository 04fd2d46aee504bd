package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/oguzhankocabas81/focus-pet/internal/game"
	"github.com/oguzhankocabas81/focus-pet/internal/notify"
	"github.com/oguzhankocabas81/focus-pet/internal/ui"
)

// timerModel drives the pomodoro machine. The once-per-second tea.Tick is
// the external clock: it is only re-armed while the machine is running and
// not paused, so a stopped machine receives no stray ticks.
type timerModel struct {
	ctx      context.Context
	store    *game.Store
	notifier notify.Notifier

	width  int
	height int

	state   *game.State
	ticking bool
	lastLog string
	err     error
}

type tickMsg time.Time

type refreshedMsg struct {
	state *game.State
}

type tickedMsg struct {
	remaining int
	err       error
}

type sessionDoneMsg struct {
	res *game.PomodoroResult
	err error
}

type mutatedMsg struct {
	log string
	err error
}

func newTimerModel(ctx context.Context, store *game.Store, notifier notify.Notifier) timerModel {
	if notifier == nil {
		notifier = notify.Nop{}
	}
	return timerModel{
		ctx:      ctx,
		store:    store,
		notifier: notifier,
		lastLog:  "Ready.",
	}
}

func (m timerModel) Init() tea.Cmd {
	return m.refreshCmd()
}

func (m timerModel) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		return refreshedMsg{state: m.store.Snapshot()}
	}
}

func scheduleTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m timerModel) tickStoreCmd() tea.Cmd {
	return func() tea.Msg {
		remaining, err := m.store.Tick(m.ctx)
		return tickedMsg{remaining: remaining, err: err}
	}
}

func (m timerModel) completeCmd() tea.Cmd {
	return func() tea.Msg {
		res, err := m.store.CompletePomodoro(m.ctx)
		if err == nil && res != nil {
			m.notifier.SessionComplete(res.FinishedMode)
		}
		return sessionDoneMsg{res: res, err: err}
	}
}

func (m timerModel) mutateCmd(log string, fn func(context.Context) error) tea.Cmd {
	return func() tea.Msg {
		return mutatedMsg{log: log, err: fn(m.ctx)}
	}
}

// armed reports whether the countdown should keep receiving ticks.
func (m timerModel) armed() bool {
	return m.state != nil && m.state.Pomodoro.IsRunning && !m.state.Pomodoro.IsPaused
}

func (m timerModel) rearm() (timerModel, tea.Cmd) {
	if m.armed() && !m.ticking {
		m.ticking = true
		return m, scheduleTick()
	}
	if !m.armed() {
		m.ticking = false
	}
	return m, nil
}

func (m timerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case refreshedMsg:
		m.state = msg.state
		return m.rearm()

	case tickMsg:
		if !m.armed() {
			m.ticking = false
			return m, nil
		}
		if m.state.Pomodoro.TimeRemaining <= 1 {
			return m, m.completeCmd()
		}
		return m, m.tickStoreCmd()

	case tickedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.ticking = false
			return m, nil
		}
		m.state.Pomodoro.TimeRemaining = msg.remaining
		if m.armed() {
			return m, scheduleTick()
		}
		m.ticking = false
		return m, nil

	case sessionDoneMsg:
		m.ticking = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		res := msg.res
		switch {
		case res.FinishedMode == game.ModeFocus && res.TaskResult != nil:
			m.lastLog = fmt.Sprintf("Focus done! Task completed: +%d XP, +%d %s",
				res.TaskResult.Points, res.TaskResult.CoinsEarned, ui.IconCoin)
		case res.FinishedMode == game.ModeFocus:
			m.lastLog = fmt.Sprintf("Focus done! %d pomodoros today.", res.CompletedPomodoros)
		default:
			m.lastLog = "Break over. Back to focus."
		}
		return m, m.refreshCmd()

	case mutatedMsg:
		if msg.err != nil {
			m.lastLog = msg.err.Error()
			return m, m.refreshCmd()
		}
		m.lastLog = msg.log
		return m, m.refreshCmd()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "s":
			return m, m.mutateCmd("Focus session started.", func(ctx context.Context) error {
				return m.store.StartPomodoro(ctx, "")
			})
		case " ", "p":
			if m.state == nil || !m.state.Pomodoro.IsRunning {
				return m, nil
			}
			if m.state.Pomodoro.IsPaused {
				return m, m.mutateCmd("Resumed.", m.store.ResumePomodoro)
			}
			return m, m.mutateCmd("Paused.", m.store.PausePomodoro)
		case "x":
			return m, m.mutateCmd("Stopped. Interval abandoned.", m.store.StopPomodoro)
		case "b":
			if m.state == nil || m.state.Pomodoro.Mode != game.ModeFocus {
				return m, nil
			}
			return m, m.mutateCmd("Skipped to a short break.", m.store.SkipToBreak)
		case "r":
			return m, m.refreshCmd()
		}
	}
	return m, nil
}

func (m timerModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}
	if m.state == nil {
		return "Loading…\n"
	}

	p := m.state.Pomodoro

	var lines []string
	lines = append(lines, ui.Heading(ui.IconTimer, "Pomodoro"))
	lines = append(lines, "")
	lines = append(lines, modeLine(p))
	lines = append(lines, "")
	lines = append(lines, "  "+clockFace(p.TimeRemaining))
	lines = append(lines, "  "+ui.ProgressBar(totalSeconds(p)-p.TimeRemaining, totalSeconds(p), 28))
	lines = append(lines, "")
	lines = append(lines, ui.LabelValue("Completed", p.CompletedPomodoros))
	if p.CurrentTaskID != "" {
		if task := findTask(m.state.Tasks, p.CurrentTaskID); task != nil {
			lines = append(lines, ui.LabelValue("Task", task.Title))
		}
	}
	lines = append(lines, "")
	lines = append(lines, ui.Muted.Render("s start · space pause/resume · b skip to break · x stop · q quit"))
	lines = append(lines, "")
	lines = append(lines, m.lastLog)

	return ui.Panel.Render(strings.Join(lines, "\n")) + "\n"
}

func modeLine(p game.PomodoroState) string {
	var label string
	switch p.Mode {
	case game.ModeFocus:
		label = ui.H2.Render("Focus")
	case game.ModeShortBreak:
		label = ui.Good.Render(ui.IconCoffee + " Short break")
	case game.ModeLongBreak:
		label = ui.Good.Render(ui.IconCoffee + " Long break")
	}
	switch {
	case p.IsRunning && p.IsPaused:
		return label + " " + ui.Warn.Render("(paused)")
	case p.IsRunning:
		return label + " " + ui.Muted.Render("(running)")
	default:
		return label + " " + ui.Muted.Render("(idle)")
	}
}

func clockFace(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return ui.Title.Render(fmt.Sprintf("%02d:%02d", seconds/60, seconds%60))
}

func totalSeconds(p game.PomodoroState) int {
	switch p.Mode {
	case game.ModeShortBreak:
		return p.Settings.ShortBreakMinutes * 60
	case game.ModeLongBreak:
		return p.Settings.LongBreakMinutes * 60
	default:
		return p.Settings.FocusMinutes * 60
	}
}

func findTask(tasks []game.Task, id string) *game.Task {
	for i := range tasks {
		if tasks[i].ID == id {
			return &tasks[i]
		}
	}
	return nil
}
