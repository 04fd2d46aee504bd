package game

import "time"

// DateLayout is the calendar-date format used for streak bookkeeping and
// task due dates. No time-of-day component on purpose.
const DateLayout = "2006-01-02"

type User struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	PetID         string `json:"pet_id"`
	Level         int    `json:"level"`
	CurrentXP     int    `json:"current_xp"`
	TotalCoins    int    `json:"total_coins"`
	DailyStreak   int    `json:"daily_streak"`
	LastLoginDate string `json:"last_login_date"`
	CreatedAt     string `json:"created_at"`
}

type Pet struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Type      PetType `json:"type"`
	Level     int     `json:"level"`
	CurrentXP int     `json:"current_xp"`
	Happiness int     `json:"happiness"`
	Hunger    int     `json:"hunger"`
}

type Task struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Type        TaskType   `json:"type"`
	Points      int        `json:"points"`
	DueDate     string     `json:"due_date"`
	DueTime     string     `json:"due_time,omitempty"`
	Urgency     Urgency    `json:"urgency"`
	Status      TaskStatus `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// LogbookEntry is an immutable record written once when a task resolves.
// It survives deletion of the task it was written for.
type LogbookEntry struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Task         Task      `json:"task"`
	PointsEarned int       `json:"points_earned"`
	Result       LogResult `json:"result"`
	Timestamp    time.Time `json:"timestamp"`
}

type PomodoroSettings struct {
	FocusMinutes      int  `json:"focus_minutes"`
	ShortBreakMinutes int  `json:"short_break_minutes"`
	LongBreakMinutes  int  `json:"long_break_minutes"`
	AutoStartBreak    bool `json:"auto_start_break"`
}

func DefaultPomodoroSettings() PomodoroSettings {
	return PomodoroSettings{
		FocusMinutes:      25,
		ShortBreakMinutes: 5,
		LongBreakMinutes:  15,
		AutoStartBreak:    false,
	}
}

type PomodoroState struct {
	IsRunning          bool             `json:"is_running"`
	IsPaused           bool             `json:"is_paused"`
	CurrentTaskID      string           `json:"current_task_id,omitempty"`
	Mode               Mode             `json:"mode"`
	TimeRemaining      int              `json:"time_remaining"`
	CompletedPomodoros int              `json:"completed_pomodoros"`
	Settings           PomodoroSettings `json:"settings"`
}

type AppSettings struct {
	Theme    string `json:"theme"`
	Language string `json:"language"`
}

// State is the complete persisted snapshot. It is written wholesale after
// every mutation and read wholesale at startup.
type State struct {
	User     *User           `json:"user"`
	Pet      *Pet            `json:"pet"`
	Tasks    []Task          `json:"tasks"`
	Logbook  []LogbookEntry  `json:"logbook"`
	Pomodoro PomodoroState   `json:"pomodoro"`
	Owned    []string        `json:"owned_items"`
	Equipped map[Slot]string `json:"equipped_items"`
	Settings AppSettings     `json:"settings"`
}

// NewState returns the fresh pre-onboarding snapshot.
func NewState() *State {
	settings := DefaultPomodoroSettings()
	return &State{
		Pomodoro: PomodoroState{
			Mode:          ModeFocus,
			TimeRemaining: settings.FocusMinutes * 60,
			Settings:      settings,
		},
		Equipped: map[Slot]string{},
		Settings: AppSettings{Theme: "system", Language: "en"},
	}
}

// Onboarded reports whether a profile exists yet.
func (st *State) Onboarded() bool {
	return st.User != nil && st.Pet != nil
}

func (st *State) task(id string) *Task {
	for i := range st.Tasks {
		if st.Tasks[i].ID == id {
			return &st.Tasks[i]
		}
	}
	return nil
}
