package game

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

type AddTaskInput struct {
	Title       string
	Description string
	Type        TaskType
	DueDate     string
	DueTime     string
	Urgency     Urgency
}

// AddTask creates a pending task. The point value is looked up from the
// task type once, here, and frozen on the task; later tuning of the table
// never changes tasks already on the board.
func (s *Store) AddTask(ctx context.Context, in AddTaskInput) (*Task, error) {
	title, err := normalizeTitle(in.Title)
	if err != nil {
		return nil, err
	}
	if !in.Type.IsValid() {
		return nil, ValidationError{Field: "type", Reason: "want focus, habit or quest"}
	}
	urgency := in.Urgency
	if !urgency.IsValid() {
		urgency = DefaultUrgency
	}
	if in.DueDate != "" {
		if _, err := time.Parse(DateLayout, in.DueDate); err != nil {
			return nil, ValidationError{Field: "due date", Reason: "want YYYY-MM-DD"}
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.Onboarded() {
		return nil, ErrNotOnboarded
	}

	task := Task{
		ID:          uuid.NewString(),
		UserID:      s.state.User.ID,
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		Type:        in.Type,
		Points:      PointsForType(in.Type),
		DueDate:     in.DueDate,
		DueTime:     in.DueTime,
		Urgency:     urgency,
		Status:      StatusPending,
		CreatedAt:   s.clock.Now(),
	}
	s.state.Tasks = append(s.state.Tasks, task)

	if err := s.save(ctx); err != nil {
		return nil, err
	}
	return &task, nil
}

func normalizeTitle(title string) (string, error) {
	t := strings.TrimSpace(title)
	switch n := utf8.RuneCountInString(t); {
	case n < 3:
		return "", ValidationError{Field: "title", Reason: "must be at least 3 characters"}
	case n > 100:
		return "", ValidationError{Field: "title", Reason: "must be at most 100 characters"}
	}
	return t, nil
}

type UpdateTaskInput struct {
	Title       *string
	Description *string
	DueDate     *string
	DueTime     *string
	Urgency     *Urgency
}

// UpdateTask edits a non-terminal task. Type and points are frozen and
// cannot be changed. Missing id is a no-op.
func (s *Store) UpdateTask(ctx context.Context, id string, in UpdateTaskInput) error {
	var title string
	if in.Title != nil {
		var err error
		title, err = normalizeTitle(*in.Title)
		if err != nil {
			return err
		}
	}
	if in.DueDate != nil && *in.DueDate != "" {
		if _, err := time.Parse(DateLayout, *in.DueDate); err != nil {
			return ValidationError{Field: "due date", Reason: "want YYYY-MM-DD"}
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	task := s.state.task(id)
	if task == nil || task.Status.Terminal() {
		return nil
	}

	if in.Title != nil {
		task.Title = title
	}
	if in.Description != nil {
		task.Description = strings.TrimSpace(*in.Description)
	}
	if in.DueDate != nil {
		task.DueDate = *in.DueDate
	}
	if in.DueTime != nil {
		task.DueTime = *in.DueTime
	}
	if in.Urgency != nil && in.Urgency.IsValid() {
		task.Urgency = *in.Urgency
	}
	return s.save(ctx)
}

// DeleteTask removes a task unconditionally. Logbook entries written for
// it stay. Missing id is a no-op.
func (s *Store) DeleteTask(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Tasks {
		if s.state.Tasks[i].ID == id {
			s.state.Tasks = append(s.state.Tasks[:i], s.state.Tasks[i+1:]...)
			return s.save(ctx)
		}
	}
	return nil
}

// CompleteResult reports the rewards a completion paid out.
type CompleteResult struct {
	TaskID      string
	Points      int
	CoinsEarned int
	Progress    *ProgressResult
}

// CompleteTask resolves a task and dispatches its rewards: XP for the
// frozen point value, a coin credit, a happiness bump and a logbook entry.
// Missing or already-terminal tasks are a no-op (nil result, nil error) —
// there is no double credit. A focus task still pending has not been
// through a session and is rejected instead.
func (s *Store) CompleteTask(ctx context.Context, id string) (*CompleteResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.Onboarded() {
		return nil, ErrNotOnboarded
	}

	task := s.state.task(id)
	if task == nil || task.Status.Terminal() {
		return nil, nil
	}
	if task.Type == TaskFocus && task.Status == StatusPending {
		return nil, FocusNotStartedError{TaskID: id}
	}

	res := completeTask(s.state, id, s.clock.Now())
	if res == nil {
		return nil, nil
	}
	if err := s.save(ctx); err != nil {
		return nil, err
	}
	return res, nil
}

// completeTask applies the completion reducer in place. Callers hold s.mu
// and have already validated the focus gating.
func completeTask(st *State, id string, now time.Time) *CompleteResult {
	task := st.task(id)
	if task == nil || task.Status.Terminal() {
		return nil
	}

	task.Status = StatusCompleted
	completedAt := now
	task.CompletedAt = &completedAt

	progress := grantXP(st, task.Points)
	coins := task.Points / CoinDivisor
	addCoins(st, coins)
	adjustHappiness(st, CompletionHappinessBonus)

	appendLogEntry(st, *task, task.Points, ResultCompleted, now)

	return &CompleteResult{
		TaskID:      id,
		Points:      task.Points,
		CoinsEarned: coins,
		Progress:    progress,
	}
}

// StartFocus moves a focus task in progress and attaches a fresh focus
// session to it. Other task types complete directly and are rejected here.
func (s *Store) StartFocus(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.Onboarded() {
		return ErrNotOnboarded
	}

	task := s.state.task(id)
	if task == nil {
		return ValidationError{Field: "task", Reason: "not found"}
	}
	if task.Type != TaskFocus {
		return ValidationError{Field: "task", Reason: "only focus tasks run on the timer"}
	}
	if task.Status.Terminal() {
		return ValidationError{Field: "task", Reason: "already resolved"}
	}

	task.Status = StatusInProgress
	startPomodoro(s.state, id)
	return s.save(ctx)
}

// SweepExpired flips every pending/in-progress task whose due date has
// passed to expired and writes a zero-point logbook entry for each. The
// sweep compares calendar dates only; a task due today is not overdue yet.
func (s *Store) SweepExpired(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	today := now.Format(DateLayout)

	expired := 0
	for i := range s.state.Tasks {
		task := &s.state.Tasks[i]
		if task.Status.Terminal() || task.DueDate == "" {
			continue
		}
		if task.DueDate >= today {
			continue
		}
		task.Status = StatusExpired
		appendLogEntry(s.state, *task, 0, ResultExpired, now)
		expired++
	}
	if expired == 0 {
		return 0, nil
	}
	if err := s.save(ctx); err != nil {
		return 0, err
	}
	return expired, nil
}

func appendLogEntry(st *State, task Task, points int, result LogResult, now time.Time) {
	entry := LogbookEntry{
		ID:           uuid.NewString(),
		UserID:       task.UserID,
		Task:         task,
		PointsEarned: points,
		Result:       result,
		Timestamp:    now,
	}
	// Newest first, like the on-screen logbook.
	st.Logbook = append([]LogbookEntry{entry}, st.Logbook...)
}

// DeleteLogEntry removes a single logbook entry. Entries are immutable but
// individually deletable. Missing id is a no-op.
func (s *Store) DeleteLogEntry(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Logbook {
		if s.state.Logbook[i].ID == id {
			s.state.Logbook = append(s.state.Logbook[:i], s.state.Logbook[i+1:]...)
			return s.save(ctx)
		}
	}
	return nil
}
