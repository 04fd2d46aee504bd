package game

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/google/uuid"
)

// SnapshotStore is the persistence port. The blob is opaque to the
// implementation; the Store owns the encoding.
type SnapshotStore interface {
	// Load returns the stored blob, or ok=false when nothing has been
	// saved yet.
	Load(ctx context.Context) (blob []byte, ok bool, err error)
	Save(ctx context.Context, blob []byte) error
}

// Store aggregates the whole game state behind a single mutex and writes
// the snapshot back through the persistence port after every mutation.
// Commands are synchronous reducers; the mutex only exists because the TUI
// and the sweep scheduler call in from their own goroutines.
type Store struct {
	mu    sync.Mutex
	state *State
	snaps SnapshotStore
	clock Clock
}

// Open loads the persisted snapshot, or starts fresh when none exists.
// A snapshot that no longer decodes is discarded and replaced with a fresh
// default state; there is no partial salvage. reset reports such a
// discard so the caller can tell the user why their state is gone.
func Open(ctx context.Context, snaps SnapshotStore, clock Clock) (s *Store, reset bool, err error) {
	if clock == nil {
		clock = RealClock{}
	}
	s = &Store{state: NewState(), snaps: snaps, clock: clock}

	blob, ok, err := snaps.Load(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("load snapshot: %w", err)
	}
	if ok {
		var st State
		if err := json.Unmarshal(blob, &st); err != nil {
			return s, true, nil
		}
		if st.Equipped == nil {
			st.Equipped = map[Slot]string{}
		}
		s.state = &st
	}
	return s, false, nil
}

// save persists the snapshot. Callers hold s.mu.
func (s *Store) save(ctx context.Context) error {
	blob, err := json.Marshal(s.state)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := s.snaps.Save(ctx, blob); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// Snapshot returns a deep copy of the current state for read-only display.
func (s *Store) Snapshot() *State {
	s.mu.Lock()
	defer s.mu.Unlock()

	blob, err := json.Marshal(s.state)
	if err != nil {
		return NewState()
	}
	var out State
	if err := json.Unmarshal(blob, &out); err != nil {
		return NewState()
	}
	if out.Equipped == nil {
		out.Equipped = map[Slot]string{}
	}
	return &out
}

func normalizeName(field, input string) (string, error) {
	name := strings.TrimSpace(input)
	// Limits are in characters, not bytes.
	switch n := utf8.RuneCountInString(name); {
	case n < 2:
		return "", ValidationError{Field: field, Reason: "must be at least 2 characters"}
	case n > 20:
		return "", ValidationError{Field: field, Reason: "must be at most 20 characters"}
	}
	return name, nil
}

// CreateUser onboards the single profile: one user with one pet, starter
// coins, streak day one.
func (s *Store) CreateUser(ctx context.Context, name string, petType PetType, petName string) error {
	userName, err := normalizeName("name", name)
	if err != nil {
		return err
	}
	pName, err := normalizeName("pet name", petName)
	if err != nil {
		return err
	}
	if !petType.IsValid() {
		return ValidationError{Field: "pet type", Reason: fmt.Sprintf("unknown type %q", petType)}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Onboarded() {
		return ErrAlreadyOnboarded
	}

	now := s.clock.Now()
	userID := uuid.NewString()
	petID := uuid.NewString()

	s.state.User = &User{
		ID:            userID,
		Name:          userName,
		PetID:         petID,
		Level:         1,
		CurrentXP:     0,
		TotalCoins:    starterCoins,
		DailyStreak:   1,
		LastLoginDate: now.Format(DateLayout),
		CreatedAt:     now.Format(DateLayout),
	}
	s.state.Pet = &Pet{
		ID:        petID,
		Name:      pName,
		Type:      petType,
		Level:     1,
		CurrentXP: 0,
		Happiness: 100,
		Hunger:    0,
	}

	return s.save(ctx)
}

const starterCoins = 100

func (s *Store) RenameUser(ctx context.Context, name string) error {
	newName, err := normalizeName("name", name)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.Onboarded() {
		return ErrNotOnboarded
	}
	s.state.User.Name = newName
	return s.save(ctx)
}

func (s *Store) RenamePet(ctx context.Context, name string) error {
	newName, err := normalizeName("pet name", name)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.Onboarded() {
		return ErrNotOnboarded
	}
	s.state.Pet.Name = newName
	return s.save(ctx)
}

// FeedPet resets hunger.
func (s *Store) FeedPet(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.Onboarded() {
		return ErrNotOnboarded
	}
	s.state.Pet.Hunger = 0
	return s.save(ctx)
}

// AddCoins credits (or, with a negative amount, debits) the coin balance.
// Balance never drops below zero.
func (s *Store) AddCoins(ctx context.Context, amount int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.Onboarded() {
		return ErrNotOnboarded
	}
	addCoins(s.state, amount)
	return s.save(ctx)
}

func addCoins(st *State, amount int) {
	st.User.TotalCoins += amount
	if st.User.TotalCoins < 0 {
		st.User.TotalCoins = 0
	}
}

func adjustHappiness(st *State, amount int) {
	if st.Pet == nil {
		return
	}
	h := st.Pet.Happiness + amount
	if h < 0 {
		h = 0
	}
	if h > 100 {
		h = 100
	}
	st.Pet.Happiness = h
}

// UpdateAppSettings overwrites theme/language preferences.
func (s *Store) UpdateAppSettings(ctx context.Context, settings AppSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Settings = settings
	return s.save(ctx)
}
