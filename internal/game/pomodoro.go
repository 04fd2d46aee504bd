package game

import "context"

// PomodorosPerLongBreak is the focus-interval count that earns the long
// break.
const PomodorosPerLongBreak = 4

// StartPomodoro begins a focus interval from any state, attaching the
// optional task. The countdown is re-based to the configured focus
// duration.
func (s *Store) StartPomodoro(ctx context.Context, taskID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	startPomodoro(s.state, taskID)
	return s.save(ctx)
}

func startPomodoro(st *State, taskID string) {
	p := &st.Pomodoro
	p.IsRunning = true
	p.IsPaused = false
	p.CurrentTaskID = taskID
	p.Mode = ModeFocus
	p.TimeRemaining = p.Settings.FocusMinutes * 60
}

// PausePomodoro suspends a running countdown. No-op when idle or already
// paused.
func (s *Store) PausePomodoro(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := &s.state.Pomodoro
	if !p.IsRunning || p.IsPaused {
		return nil
	}
	p.IsPaused = true
	return s.save(ctx)
}

// ResumePomodoro continues a paused countdown in the same mode.
func (s *Store) ResumePomodoro(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := &s.state.Pomodoro
	if !p.IsRunning || !p.IsPaused {
		return nil
	}
	p.IsPaused = false
	return s.save(ctx)
}

// StopPomodoro abandons the interval: back to idle focus mode, task
// detached, no partial credit.
func (s *Store) StopPomodoro(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := &s.state.Pomodoro
	p.IsRunning = false
	p.IsPaused = false
	p.CurrentTaskID = ""
	p.Mode = ModeFocus
	p.TimeRemaining = p.Settings.FocusMinutes * 60
	return s.save(ctx)
}

// Tick counts one second off the running countdown and returns the time
// remaining. The host loop owns the cadence; a tick while idle or paused
// changes nothing. Ticking never completes the interval itself — the host
// watches the remaining time and calls CompletePomodoro.
func (s *Store) Tick(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := &s.state.Pomodoro
	if !p.IsRunning || p.IsPaused {
		return p.TimeRemaining, nil
	}
	if p.TimeRemaining > 0 {
		p.TimeRemaining--
	}
	if err := s.save(ctx); err != nil {
		return 0, err
	}
	return p.TimeRemaining, nil
}

// PomodoroResult reports what completing an interval did.
type PomodoroResult struct {
	FinishedMode       Mode
	NextMode           Mode
	CompletedPomodoros int
	AutoStarted        bool
	TaskResult         *CompleteResult
}

// CompletePomodoro ends the current interval. Finishing a focus interval
// bumps the counter, completes the attached task, and rolls into a break —
// the long one on every fourth pomodoro. Breaks never auto-resume focus;
// whether the break itself starts running is the auto-start-break setting.
func (s *Store) CompletePomodoro(ctx context.Context) (*PomodoroResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := &s.state.Pomodoro
	res := &PomodoroResult{FinishedMode: p.Mode}

	if p.Mode == ModeFocus {
		p.CompletedPomodoros++
		res.CompletedPomodoros = p.CompletedPomodoros

		if p.CurrentTaskID != "" && s.state.Onboarded() {
			res.TaskResult = completeTask(s.state, p.CurrentTaskID, s.clock.Now())
		}

		if p.CompletedPomodoros%PomodorosPerLongBreak == 0 {
			p.Mode = ModeLongBreak
			p.TimeRemaining = p.Settings.LongBreakMinutes * 60
		} else {
			p.Mode = ModeShortBreak
			p.TimeRemaining = p.Settings.ShortBreakMinutes * 60
		}
		p.IsRunning = p.Settings.AutoStartBreak
		p.IsPaused = false
		p.CurrentTaskID = ""
		res.AutoStarted = p.IsRunning
	} else {
		p.Mode = ModeFocus
		p.TimeRemaining = p.Settings.FocusMinutes * 60
		p.IsRunning = false
		p.IsPaused = false
		res.CompletedPomodoros = p.CompletedPomodoros
	}
	res.NextMode = p.Mode

	if err := s.save(ctx); err != nil {
		return nil, err
	}
	return res, nil
}

// SkipToBreak abandons the focus interval for a short break. The skipped
// interval counts for nothing: no pomodoro increment, no task completion,
// and always the short break regardless of the four-pomodoro rule.
func (s *Store) SkipToBreak(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := &s.state.Pomodoro
	p.Mode = ModeShortBreak
	p.TimeRemaining = p.Settings.ShortBreakMinutes * 60
	p.IsRunning = false
	p.IsPaused = false
	return s.save(ctx)
}

// UpdatePomodoroSettings replaces the durations and auto-start flag.
// While the machine is idle the countdown is re-based to the new focus
// duration immediately; a running session keeps its countdown and picks
// the new values up on the next cycle.
func (s *Store) UpdatePomodoroSettings(ctx context.Context, settings PomodoroSettings) error {
	if settings.FocusMinutes <= 0 || settings.ShortBreakMinutes <= 0 || settings.LongBreakMinutes <= 0 {
		return ValidationError{Field: "durations", Reason: "must be positive minutes"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := &s.state.Pomodoro
	p.Settings = settings
	if !p.IsRunning {
		p.Mode = ModeFocus
		p.TimeRemaining = settings.FocusMinutes * 60
	}
	return s.save(ctx)
}
