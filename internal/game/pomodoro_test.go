package game

import (
	"context"
	"errors"
	"testing"
)

func TestPomodoroDefaults(t *testing.T) {
	store, _, _ := newTestStore(t)

	p := store.Snapshot().Pomodoro
	if p.IsRunning || p.IsPaused {
		t.Fatalf("fresh machine=%+v, want idle", p)
	}
	if p.Mode != ModeFocus || p.TimeRemaining != 25*60 {
		t.Fatalf("mode/remaining=%s/%d, want focus/1500", p.Mode, p.TimeRemaining)
	}
	if p.Settings != DefaultPomodoroSettings() {
		t.Fatalf("settings=%+v, want defaults", p.Settings)
	}
}

func TestStartTickPauseResume(t *testing.T) {
	store, _, _ := newOnboardedStore(t)
	ctx := context.Background()

	if err := store.StartPomodoro(ctx, ""); err != nil {
		t.Fatalf("StartPomodoro: %v", err)
	}
	remaining, err := store.Tick(ctx)
	if err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if remaining != 25*60-1 {
		t.Fatalf("remaining=%d, want %d", remaining, 25*60-1)
	}

	if err := store.PausePomodoro(ctx); err != nil {
		t.Fatalf("Pause: %v", err)
	}
	remaining, err = store.Tick(ctx)
	if err != nil {
		t.Fatalf("Tick paused: %v", err)
	}
	if remaining != 25*60-1 {
		t.Fatalf("paused tick changed the countdown: %d", remaining)
	}

	if err := store.ResumePomodoro(ctx); err != nil {
		t.Fatalf("Resume: %v", err)
	}
	remaining, err = store.Tick(ctx)
	if err != nil {
		t.Fatalf("Tick resumed: %v", err)
	}
	if remaining != 25*60-2 {
		t.Fatalf("remaining=%d, want %d", remaining, 25*60-2)
	}
}

func TestTickWhileIdleIsNoOp(t *testing.T) {
	store, snaps, _ := newOnboardedStore(t)
	ctx := context.Background()

	before := snaps.Saves
	remaining, err := store.Tick(ctx)
	if err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if remaining != 25*60 {
		t.Fatalf("idle tick changed the countdown: %d", remaining)
	}
	if snaps.Saves != before {
		t.Fatalf("idle tick must not persist")
	}
}

func TestTickFloorsAtZero(t *testing.T) {
	store, _, _ := newOnboardedStore(t)
	ctx := context.Background()

	if err := store.UpdatePomodoroSettings(ctx, PomodoroSettings{
		FocusMinutes: 1, ShortBreakMinutes: 1, LongBreakMinutes: 1,
	}); err != nil {
		t.Fatalf("settings: %v", err)
	}
	if err := store.StartPomodoro(ctx, ""); err != nil {
		t.Fatalf("start: %v", err)
	}
	for i := 0; i < 70; i++ {
		if _, err := store.Tick(ctx); err != nil {
			t.Fatalf("tick #%d: %v", i+1, err)
		}
	}
	p := store.Snapshot().Pomodoro
	if p.TimeRemaining != 0 {
		t.Fatalf("remaining=%d, want floor at 0", p.TimeRemaining)
	}
	// Ticking never completes the interval on its own.
	if !p.IsRunning || p.Mode != ModeFocus {
		t.Fatalf("machine=%+v, want still running in focus", p)
	}
	if p.CompletedPomodoros != 0 {
		t.Fatalf("completed=%d, want 0", p.CompletedPomodoros)
	}
}

func TestCompleteFocusSessionWithTask(t *testing.T) {
	store, _, _ := newOnboardedStore(t)
	ctx := context.Background()

	task := addTestTask(t, store, TaskFocus)
	if err := store.StartFocus(ctx, task.ID); err != nil {
		t.Fatalf("StartFocus: %v", err)
	}

	res, err := store.CompletePomodoro(ctx)
	if err != nil {
		t.Fatalf("CompletePomodoro: %v", err)
	}
	if res.FinishedMode != ModeFocus || res.NextMode != ModeShortBreak {
		t.Fatalf("modes %s->%s, want focus->short_break", res.FinishedMode, res.NextMode)
	}
	if res.CompletedPomodoros != 1 {
		t.Fatalf("completed=%d, want 1", res.CompletedPomodoros)
	}
	if res.AutoStarted {
		t.Fatalf("auto-start is off by default")
	}
	if res.TaskResult == nil || res.TaskResult.Points != 50 {
		t.Fatalf("task result=%+v, want 50 points", res.TaskResult)
	}

	st := store.Snapshot()
	if st.Tasks[0].Status != StatusCompleted {
		t.Fatalf("task status=%q, want completed", st.Tasks[0].Status)
	}
	if len(st.Logbook) != 1 {
		t.Fatalf("logbook len=%d, want 1", len(st.Logbook))
	}
	p := st.Pomodoro
	if p.IsRunning || p.CurrentTaskID != "" {
		t.Fatalf("machine=%+v, want idle break with task detached", p)
	}
	if p.TimeRemaining != 5*60 {
		t.Fatalf("remaining=%d, want %d", p.TimeRemaining, 5*60)
	}
}

func TestFourthPomodoroEarnsLongBreak(t *testing.T) {
	store, _, _ := newOnboardedStore(t)
	ctx := context.Background()

	for i := 1; i <= PomodorosPerLongBreak; i++ {
		if err := store.StartPomodoro(ctx, ""); err != nil {
			t.Fatalf("start #%d: %v", i, err)
		}
		res, err := store.CompletePomodoro(ctx)
		if err != nil {
			t.Fatalf("complete #%d: %v", i, err)
		}
		want := ModeShortBreak
		if i == PomodorosPerLongBreak {
			want = ModeLongBreak
		}
		if res.NextMode != want {
			t.Fatalf("pomodoro #%d next mode=%s, want %s", i, res.NextMode, want)
		}
	}
	if got := store.Snapshot().Pomodoro.TimeRemaining; got != 15*60 {
		t.Fatalf("long break remaining=%d, want %d", got, 15*60)
	}
}

func TestCompleteBreakReturnsToIdleFocus(t *testing.T) {
	store, _, _ := newOnboardedStore(t)
	ctx := context.Background()

	if err := store.StartPomodoro(ctx, ""); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := store.CompletePomodoro(ctx); err != nil {
		t.Fatalf("complete focus: %v", err)
	}

	res, err := store.CompletePomodoro(ctx)
	if err != nil {
		t.Fatalf("complete break: %v", err)
	}
	if res.FinishedMode != ModeShortBreak || res.NextMode != ModeFocus {
		t.Fatalf("modes %s->%s, want short_break->focus", res.FinishedMode, res.NextMode)
	}
	if res.CompletedPomodoros != 1 {
		t.Fatalf("completed=%d, break must not bump the counter", res.CompletedPomodoros)
	}
	p := store.Snapshot().Pomodoro
	if p.IsRunning {
		t.Fatalf("breaks never auto-resume focus")
	}
	if p.TimeRemaining != 25*60 {
		t.Fatalf("remaining=%d, want %d", p.TimeRemaining, 25*60)
	}
}

func TestAutoStartBreak(t *testing.T) {
	store, _, _ := newOnboardedStore(t)
	ctx := context.Background()

	settings := DefaultPomodoroSettings()
	settings.AutoStartBreak = true
	if err := store.UpdatePomodoroSettings(ctx, settings); err != nil {
		t.Fatalf("settings: %v", err)
	}
	if err := store.StartPomodoro(ctx, ""); err != nil {
		t.Fatalf("start: %v", err)
	}
	res, err := store.CompletePomodoro(ctx)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if !res.AutoStarted {
		t.Fatalf("expected the break to auto-start")
	}
	if got := store.Snapshot().Pomodoro; !got.IsRunning || !got.Mode.IsBreak() {
		t.Fatalf("machine=%+v, want a running break", got)
	}
}

func TestSkipToBreakCountsForNothing(t *testing.T) {
	store, _, _ := newOnboardedStore(t)
	ctx := context.Background()

	task := addTestTask(t, store, TaskFocus)
	if err := store.StartFocus(ctx, task.ID); err != nil {
		t.Fatalf("StartFocus: %v", err)
	}
	if err := store.SkipToBreak(ctx); err != nil {
		t.Fatalf("SkipToBreak: %v", err)
	}

	st := store.Snapshot()
	p := st.Pomodoro
	if p.Mode != ModeShortBreak || p.IsRunning {
		t.Fatalf("machine=%+v, want idle short break", p)
	}
	if p.CompletedPomodoros != 0 {
		t.Fatalf("completed=%d, skip must not count", p.CompletedPomodoros)
	}
	if st.Tasks[0].Status != StatusInProgress {
		t.Fatalf("task status=%q, skip must not complete the task", st.Tasks[0].Status)
	}
	if len(st.Logbook) != 0 {
		t.Fatalf("logbook len=%d, want 0", len(st.Logbook))
	}
}

func TestStopAbandonsWithoutCredit(t *testing.T) {
	store, _, _ := newOnboardedStore(t)
	ctx := context.Background()

	task := addTestTask(t, store, TaskFocus)
	if err := store.StartFocus(ctx, task.ID); err != nil {
		t.Fatalf("StartFocus: %v", err)
	}
	if err := store.StopPomodoro(ctx); err != nil {
		t.Fatalf("Stop: %v", err)
	}

	st := store.Snapshot()
	p := st.Pomodoro
	if p.IsRunning || p.IsPaused || p.CurrentTaskID != "" {
		t.Fatalf("machine=%+v, want idle and detached", p)
	}
	if p.Mode != ModeFocus || p.TimeRemaining != 25*60 {
		t.Fatalf("mode/remaining=%s/%d, want focus/1500", p.Mode, p.TimeRemaining)
	}
	if st.User.CurrentXP != 0 {
		t.Fatalf("xp=%d, stop must pay nothing", st.User.CurrentXP)
	}
}

func TestUpdateSettingsRebaseRules(t *testing.T) {
	store, _, _ := newOnboardedStore(t)
	ctx := context.Background()

	// Idle: the countdown is re-based immediately.
	if err := store.UpdatePomodoroSettings(ctx, PomodoroSettings{
		FocusMinutes: 30, ShortBreakMinutes: 5, LongBreakMinutes: 15,
	}); err != nil {
		t.Fatalf("settings idle: %v", err)
	}
	if got := store.Snapshot().Pomodoro.TimeRemaining; got != 30*60 {
		t.Fatalf("idle remaining=%d, want %d", got, 30*60)
	}

	// Running: the countdown is left alone.
	if err := store.StartPomodoro(ctx, ""); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := store.Tick(ctx); err != nil {
		t.Fatalf("tick: %v", err)
	}
	if err := store.UpdatePomodoroSettings(ctx, PomodoroSettings{
		FocusMinutes: 50, ShortBreakMinutes: 10, LongBreakMinutes: 20,
	}); err != nil {
		t.Fatalf("settings running: %v", err)
	}
	if got := store.Snapshot().Pomodoro.TimeRemaining; got != 30*60-1 {
		t.Fatalf("running remaining=%d, want untouched %d", got, 30*60-1)
	}

	var verr ValidationError
	err := store.UpdatePomodoroSettings(ctx, PomodoroSettings{FocusMinutes: 0, ShortBreakMinutes: 5, LongBreakMinutes: 15})
	if !errors.As(err, &verr) {
		t.Fatalf("zero duration err=%v, want ValidationError", err)
	}
}
