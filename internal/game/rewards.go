package game

// Reward tables. Pure lookup functions of level, streak length and task
// type. Breakpoints are tuning knobs, not contracts; the only hard
// guarantees are that XPForLevel and CoinsForLevel stay positive and
// non-decreasing over all levels >= 1.

const (
	// LevelUpHappinessBonus is added to pet happiness when an XP grant
	// produces at least one level-up.
	LevelUpHappinessBonus = 10

	// CompletionHappinessBonus is added to pet happiness on every task
	// completion.
	CompletionHappinessBonus = 5

	// CoinDivisor converts task points to the coin credit on completion.
	CoinDivisor = 10
)

// XPForLevel returns the XP required to advance from the given level to
// the next one.
func XPForLevel(level int) int {
	switch {
	case level <= 5:
		return 250
	case level <= 10:
		return 350
	case level <= 15:
		return 400
	case level <= 20:
		return 450
	default:
		return 500 + ((level-20)/5)*50
	}
}

// CoinsForLevel returns the coin bonus awarded on reaching the given level.
func CoinsForLevel(level int) int {
	switch {
	case level <= 10:
		return 5
	case level <= 15:
		return 7
	case level <= 20:
		return 10
	default:
		return 10 + ((level-20)/5)*2
	}
}

// PointsForType returns the base point value of a task type. The value is
// frozen onto the task at creation time.
func PointsForType(t TaskType) int {
	switch t {
	case TaskFocus:
		return 50
	case TaskHabit, TaskQuest:
		return 25
	default:
		return 0
	}
}

// streakMilestones maps the first streak milestones to their coin bonus.
// Later multiples of three fall back to the base bonus.
var streakMilestones = map[int]int{
	3: 50,
	6: 100,
	9: 150,
}

const streakBaseBonus = 50

// StreakReward returns the coin bonus for reaching the given streak length.
// Only every third day is a milestone; all other lengths pay nothing.
func StreakReward(streak int) int {
	if streak < 3 || streak%3 != 0 {
		return 0
	}
	if bonus, ok := streakMilestones[streak]; ok {
		return bonus
	}
	return streakBaseBonus
}

// EvolutionStage maps the user level to one of three visual pet stages.
// Monotonic and total over all levels >= 1.
func EvolutionStage(level int) int {
	switch {
	case level < 11:
		return 1
	case level < 21:
		return 2
	default:
		return 3
	}
}
