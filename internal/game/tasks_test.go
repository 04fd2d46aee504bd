package game

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestAddTaskValidation(t *testing.T) {
	store, _, _ := newOnboardedStore(t)
	ctx := context.Background()

	var verr ValidationError
	if _, err := store.AddTask(ctx, AddTaskInput{Title: "ab", Type: TaskQuest}); !errors.As(err, &verr) {
		t.Fatalf("short title err=%v, want ValidationError", err)
	}
	if _, err := store.AddTask(ctx, AddTaskInput{Title: strings.Repeat("x", 101), Type: TaskQuest}); !errors.As(err, &verr) {
		t.Fatalf("long title err=%v, want ValidationError", err)
	}
	if _, err := store.AddTask(ctx, AddTaskInput{Title: "Valid title", Type: TaskType("chore")}); !errors.As(err, &verr) {
		t.Fatalf("bad type err=%v, want ValidationError", err)
	}
	if _, err := store.AddTask(ctx, AddTaskInput{Title: "Valid title", Type: TaskQuest, DueDate: "tomorrow"}); !errors.As(err, &verr) {
		t.Fatalf("bad due date err=%v, want ValidationError", err)
	}
	if got := len(store.Snapshot().Tasks); got != 0 {
		t.Fatalf("tasks len=%d, want 0 after rejected inputs", got)
	}
}

func TestTitleLimitsCountCharactersNotBytes(t *testing.T) {
	store, _, _ := newOnboardedStore(t)
	ctx := context.Background()

	// 1 character (3 bytes) is still too short.
	var verr ValidationError
	if _, err := store.AddTask(ctx, AddTaskInput{Title: "写", Type: TaskQuest}); !errors.As(err, &verr) {
		t.Fatalf("single-character title err=%v, want ValidationError", err)
	}

	// 100 characters (300 bytes) is exactly at the limit.
	title := strings.Repeat("写", 100)
	if _, err := store.AddTask(ctx, AddTaskInput{Title: title, Type: TaskQuest}); err != nil {
		t.Fatalf("100-character multibyte title: %v", err)
	}
}

func TestAddTaskFreezesPoints(t *testing.T) {
	store, _, _ := newOnboardedStore(t)

	task := addTestTask(t, store, TaskFocus)
	if task.Points != 50 {
		t.Fatalf("focus points=%d, want 50", task.Points)
	}
	if task.Status != StatusPending {
		t.Fatalf("status=%q, want pending", task.Status)
	}
	if task.Urgency != DefaultUrgency {
		t.Fatalf("urgency=%q, want default %q", task.Urgency, DefaultUrgency)
	}
}

func TestCompleteQuestPaysRewards(t *testing.T) {
	store, _, _ := newOnboardedStore(t)
	ctx := context.Background()

	task := addTestTask(t, store, TaskQuest)
	res, err := store.CompleteTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("CompleteTask: %v", err)
	}
	if res == nil {
		t.Fatalf("expected a completion result")
	}
	if res.Points != 25 || res.CoinsEarned != 2 {
		t.Fatalf("points/coins=%d/%d, want 25/2", res.Points, res.CoinsEarned)
	}
	if res.Progress == nil || res.Progress.XPAdded != 25 {
		t.Fatalf("progress=%+v, want 25 xp added", res.Progress)
	}

	st := store.Snapshot()
	if st.Tasks[0].Status != StatusCompleted || st.Tasks[0].CompletedAt == nil {
		t.Fatalf("task not marked completed: %+v", st.Tasks[0])
	}
	if st.User.CurrentXP != 25 {
		t.Fatalf("xp=%d, want 25", st.User.CurrentXP)
	}
	if st.User.TotalCoins != 102 {
		t.Fatalf("coins=%d, want 102", st.User.TotalCoins)
	}
	if len(st.Logbook) != 1 {
		t.Fatalf("logbook len=%d, want 1", len(st.Logbook))
	}
	entry := st.Logbook[0]
	if entry.Result != ResultCompleted || entry.PointsEarned != 25 {
		t.Fatalf("logbook entry=%+v, want completed/25", entry)
	}
	if entry.Task.ID != task.ID {
		t.Fatalf("logbook task id=%q, want %q", entry.Task.ID, task.ID)
	}
}

func TestCompleteTaskTwiceIsNoOp(t *testing.T) {
	store, _, _ := newOnboardedStore(t)
	ctx := context.Background()

	task := addTestTask(t, store, TaskHabit)
	if _, err := store.CompleteTask(ctx, task.ID); err != nil {
		t.Fatalf("first complete: %v", err)
	}
	res, err := store.CompleteTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("second complete: %v", err)
	}
	if res != nil {
		t.Fatalf("second complete result=%+v, want nil (no double credit)", res)
	}
	st := store.Snapshot()
	if st.User.CurrentXP != 25 || len(st.Logbook) != 1 {
		t.Fatalf("xp=%d logbook=%d, double credit detected", st.User.CurrentXP, len(st.Logbook))
	}
}

func TestCompleteMissingTaskIsNoOp(t *testing.T) {
	store, _, _ := newOnboardedStore(t)
	ctx := context.Background()

	res, err := store.CompleteTask(ctx, "no-such-id")
	if err != nil || res != nil {
		t.Fatalf("res=%v err=%v, want nil/nil", res, err)
	}
}

func TestFocusTaskNeedsASession(t *testing.T) {
	store, _, _ := newOnboardedStore(t)
	ctx := context.Background()

	task := addTestTask(t, store, TaskFocus)

	var ferr FocusNotStartedError
	if _, err := store.CompleteTask(ctx, task.ID); !errors.As(err, &ferr) {
		t.Fatalf("err=%v, want FocusNotStartedError", err)
	}
	if ferr.TaskID != task.ID {
		t.Fatalf("error task id=%q, want %q", ferr.TaskID, task.ID)
	}

	if err := store.StartFocus(ctx, task.ID); err != nil {
		t.Fatalf("StartFocus: %v", err)
	}
	st := store.Snapshot()
	if st.Tasks[0].Status != StatusInProgress {
		t.Fatalf("status=%q, want in_progress", st.Tasks[0].Status)
	}
	if !st.Pomodoro.IsRunning || st.Pomodoro.CurrentTaskID != task.ID {
		t.Fatalf("pomodoro=%+v, want running with task attached", st.Pomodoro)
	}

	res, err := store.CompleteTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("complete after session: %v", err)
	}
	if res == nil || res.Points != 50 {
		t.Fatalf("res=%+v, want 50 points", res)
	}
}

func TestStartFocusRejectsOtherTypes(t *testing.T) {
	store, _, _ := newOnboardedStore(t)
	ctx := context.Background()

	task := addTestTask(t, store, TaskHabit)
	var verr ValidationError
	if err := store.StartFocus(ctx, task.ID); !errors.As(err, &verr) {
		t.Fatalf("err=%v, want ValidationError", err)
	}
	if err := store.StartFocus(ctx, "missing"); !errors.As(err, &verr) {
		t.Fatalf("missing task err=%v, want ValidationError", err)
	}
}

func TestUpdateTask(t *testing.T) {
	store, _, _ := newOnboardedStore(t)
	ctx := context.Background()

	task := addTestTask(t, store, TaskQuest)

	title := "Refined title"
	due := "2025-04-01"
	urgency := UrgencyHigh
	if err := store.UpdateTask(ctx, task.ID, UpdateTaskInput{Title: &title, DueDate: &due, Urgency: &urgency}); err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}
	got := store.Snapshot().Tasks[0]
	if got.Title != title || got.DueDate != due || got.Urgency != UrgencyHigh {
		t.Fatalf("task=%+v, update not applied", got)
	}
	if got.Points != 25 || got.Type != TaskQuest {
		t.Fatalf("type/points must stay frozen, got %s/%d", got.Type, got.Points)
	}

	// Terminal tasks are immutable.
	if _, err := store.CompleteTask(ctx, task.ID); err != nil {
		t.Fatalf("complete: %v", err)
	}
	other := "Late edit"
	if err := store.UpdateTask(ctx, task.ID, UpdateTaskInput{Title: &other}); err != nil {
		t.Fatalf("UpdateTask terminal: %v", err)
	}
	if got := store.Snapshot().Tasks[0].Title; got != title {
		t.Fatalf("terminal task title=%q, want unchanged %q", got, title)
	}
}

func TestDeleteTaskKeepsLogbook(t *testing.T) {
	store, _, _ := newOnboardedStore(t)
	ctx := context.Background()

	task := addTestTask(t, store, TaskQuest)
	if _, err := store.CompleteTask(ctx, task.ID); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if err := store.DeleteTask(ctx, task.ID); err != nil {
		t.Fatalf("DeleteTask: %v", err)
	}

	st := store.Snapshot()
	if len(st.Tasks) != 0 {
		t.Fatalf("tasks len=%d, want 0", len(st.Tasks))
	}
	if len(st.Logbook) != 1 {
		t.Fatalf("logbook len=%d, want 1 surviving entry", len(st.Logbook))
	}

	// Missing id is a no-op.
	if err := store.DeleteTask(ctx, "gone"); err != nil {
		t.Fatalf("DeleteTask missing: %v", err)
	}
}

func TestSweepExpired(t *testing.T) {
	store, _, clock := newOnboardedStore(t)
	ctx := context.Background()

	today := clock.Now().Format(DateLayout)
	overdue, err := store.AddTask(ctx, AddTaskInput{Title: "Overdue quest", Type: TaskQuest, DueDate: today})
	if err != nil {
		t.Fatalf("add overdue: %v", err)
	}
	dueToday, err := store.AddTask(ctx, AddTaskInput{Title: "Due tomorrow", Type: TaskQuest, DueDate: clock.Now().AddDate(0, 0, 1).Format(DateLayout)})
	if err != nil {
		t.Fatalf("add due-tomorrow: %v", err)
	}
	noDue := addTestTask(t, store, TaskHabit)

	clock.Advance(24 * time.Hour)
	n, err := store.SweepExpired(ctx)
	if err != nil {
		t.Fatalf("SweepExpired: %v", err)
	}
	if n != 1 {
		t.Fatalf("expired=%d, want 1", n)
	}

	st := store.Snapshot()
	byID := map[string]TaskStatus{}
	for _, task := range st.Tasks {
		byID[task.ID] = task.Status
	}
	if byID[overdue.ID] != StatusExpired {
		t.Fatalf("overdue status=%q, want expired", byID[overdue.ID])
	}
	if byID[dueToday.ID] != StatusPending || byID[noDue.ID] != StatusPending {
		t.Fatalf("non-overdue tasks must stay pending: %v", byID)
	}
	if len(st.Logbook) != 1 || st.Logbook[0].Result != ResultExpired || st.Logbook[0].PointsEarned != 0 {
		t.Fatalf("logbook=%+v, want one zero-point expired entry", st.Logbook)
	}

	// Sweep is idempotent.
	n, err = store.SweepExpired(ctx)
	if err != nil {
		t.Fatalf("second sweep: %v", err)
	}
	if n != 0 {
		t.Fatalf("second sweep expired=%d, want 0", n)
	}
}

func TestLogbookNewestFirst(t *testing.T) {
	store, _, _ := newOnboardedStore(t)
	ctx := context.Background()

	first := addTestTask(t, store, TaskQuest)
	second, err := store.AddTask(ctx, AddTaskInput{Title: "Second quest", Type: TaskQuest})
	if err != nil {
		t.Fatalf("add second: %v", err)
	}
	if _, err := store.CompleteTask(ctx, first.ID); err != nil {
		t.Fatalf("complete first: %v", err)
	}
	if _, err := store.CompleteTask(ctx, second.ID); err != nil {
		t.Fatalf("complete second: %v", err)
	}

	log := store.Snapshot().Logbook
	if len(log) != 2 {
		t.Fatalf("logbook len=%d, want 2", len(log))
	}
	if log[0].Task.ID != second.ID {
		t.Fatalf("newest entry task=%q, want %q", log[0].Task.ID, second.ID)
	}
}

func TestDeleteLogEntry(t *testing.T) {
	store, _, _ := newOnboardedStore(t)
	ctx := context.Background()

	task := addTestTask(t, store, TaskQuest)
	if _, err := store.CompleteTask(ctx, task.ID); err != nil {
		t.Fatalf("complete: %v", err)
	}
	id := store.Snapshot().Logbook[0].ID

	if err := store.DeleteLogEntry(ctx, id); err != nil {
		t.Fatalf("DeleteLogEntry: %v", err)
	}
	if got := len(store.Snapshot().Logbook); got != 0 {
		t.Fatalf("logbook len=%d, want 0", got)
	}
	if err := store.DeleteLogEntry(ctx, id); err != nil {
		t.Fatalf("DeleteLogEntry missing: %v", err)
	}
}
