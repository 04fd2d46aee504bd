package game

import "context"

// ProgressResult reports what a single XP grant did.
type ProgressResult struct {
	XPAdded      int
	LevelBefore  int
	LevelAfter   int
	LevelUp      bool
	CoinsAwarded int
}

// AddXP grants experience and walks through every level-up it pays for.
// A grant large enough to cross several thresholds cascades level by level,
// awarding the coin bonus for each new level. Negative amounts are
// rejected; no state changes.
func (s *Store) AddXP(ctx context.Context, amount int) (*ProgressResult, error) {
	if amount < 0 {
		return nil, ValidationError{Field: "xp amount", Reason: "must not be negative"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.Onboarded() {
		return nil, ErrNotOnboarded
	}

	res := grantXP(s.state, amount)
	if err := s.save(ctx); err != nil {
		return nil, err
	}
	return res, nil
}

// grantXP applies the cascade to the state in place. Callers hold s.mu.
// Termination is guaranteed because XPForLevel is strictly positive for
// every level.
func grantXP(st *State, amount int) *ProgressResult {
	user := st.User
	res := &ProgressResult{
		XPAdded:     amount,
		LevelBefore: user.Level,
	}

	user.CurrentXP += amount
	for user.CurrentXP >= XPForLevel(user.Level) {
		user.CurrentXP -= XPForLevel(user.Level)
		user.Level++
		res.LevelUp = true

		bonus := CoinsForLevel(user.Level)
		res.CoinsAwarded += bonus
		addCoins(st, bonus)
	}
	res.LevelAfter = user.Level

	// Pet mirrors the user and celebrates a level-up once per grant, no
	// matter how many levels it covered.
	st.Pet.Level = user.Level
	st.Pet.CurrentXP = user.CurrentXP
	if res.LevelUp {
		adjustHappiness(st, LevelUpHappinessBonus)
	}
	return res
}
