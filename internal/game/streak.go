package game

import "context"

// StreakResult reports what a streak update did.
type StreakResult struct {
	Streak     int
	Extended   bool
	Reset      bool
	BonusCoins int
}

// UpdateStreak credits the daily-login streak. It is idempotent within a
// calendar day: the stored last-login date is the only guard, so calling
// it any number of times on the same day changes nothing after the first.
// A one-day gap extends the streak and pays the milestone bonus when the
// new length is a multiple of three; any larger gap (or a last-login date
// in the future) resets the streak to one with no bonus.
func (s *Store) UpdateStreak(ctx context.Context) (*StreakResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.Onboarded() {
		return nil, ErrNotOnboarded
	}

	user := s.state.User
	now := s.clock.Now()
	today := now.Format(DateLayout)
	yesterday := now.AddDate(0, 0, -1).Format(DateLayout)

	if user.LastLoginDate == today {
		return &StreakResult{Streak: user.DailyStreak}, nil
	}

	res := &StreakResult{}
	switch user.LastLoginDate {
	case yesterday:
		user.DailyStreak++
		res.Extended = true
		res.BonusCoins = StreakReward(user.DailyStreak)
		addCoins(s.state, res.BonusCoins)
	default:
		user.DailyStreak = 1
		res.Reset = true
	}
	user.LastLoginDate = today
	res.Streak = user.DailyStreak

	if err := s.save(ctx); err != nil {
		return nil, err
	}
	return res, nil
}
