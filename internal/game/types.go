package game

import (
	"fmt"
	"strings"
)

type TaskType string

const (
	TaskFocus TaskType = "focus"
	TaskHabit TaskType = "habit"
	TaskQuest TaskType = "quest"
)

func (t TaskType) IsValid() bool {
	switch t {
	case TaskFocus, TaskHabit, TaskQuest:
		return true
	default:
		return false
	}
}

func ParseTaskType(input string) (TaskType, error) {
	t := TaskType(strings.TrimSpace(strings.ToLower(input)))
	if !t.IsValid() {
		return "", fmt.Errorf("invalid task type: %q", input)
	}
	return t, nil
}

type TaskStatus string

const (
	StatusPending    TaskStatus = "pending"
	StatusInProgress TaskStatus = "in_progress"
	StatusCompleted  TaskStatus = "completed"
	StatusExpired    TaskStatus = "expired"
)

// Terminal reports whether the status admits no further transitions.
func (s TaskStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusExpired
}

type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

func (u Urgency) IsValid() bool {
	switch u {
	case UrgencyLow, UrgencyMedium, UrgencyHigh:
		return true
	default:
		return false
	}
}

// DefaultUrgency is used when user input is missing/invalid. Urgency is
// cosmetic and never feeds into reward math.
const DefaultUrgency = UrgencyMedium

func ParseUrgency(input string) Urgency {
	u := Urgency(strings.TrimSpace(strings.ToLower(input)))
	if !u.IsValid() {
		return DefaultUrgency
	}
	return u
}

type PetType string

const (
	PetFire  PetType = "fire"
	PetWater PetType = "water"
	PetGrass PetType = "grass"
)

func (p PetType) IsValid() bool {
	switch p {
	case PetFire, PetWater, PetGrass:
		return true
	default:
		return false
	}
}

func ParsePetType(input string) (PetType, error) {
	p := PetType(strings.TrimSpace(strings.ToLower(input)))
	if !p.IsValid() {
		return "", fmt.Errorf("invalid pet type: %q (want fire, water or grass)", input)
	}
	return p, nil
}

// Mode is the pomodoro interval kind. It is orthogonal to running/paused.
type Mode string

const (
	ModeFocus      Mode = "focus"
	ModeShortBreak Mode = "short_break"
	ModeLongBreak  Mode = "long_break"
)

func (m Mode) IsBreak() bool {
	return m == ModeShortBreak || m == ModeLongBreak
}

// Slot is an equipment slot on the pet scene. At most one item is equipped
// per slot.
type Slot string

const (
	SlotBackground Slot = "background"
	SlotHat        Slot = "hat"
	SlotGlasses    Slot = "glasses"
	SlotNeck       Slot = "neck"
	SlotOutfit     Slot = "outfit"
	SlotDecorF1    Slot = "decor_floor_1"
	SlotDecorF2    Slot = "decor_floor_2"
	SlotDecorW1    Slot = "decor_wall_1"
	SlotDecorW2    Slot = "decor_wall_2"
)

func (s Slot) IsValid() bool {
	switch s {
	case SlotBackground, SlotHat, SlotGlasses, SlotNeck, SlotOutfit,
		SlotDecorF1, SlotDecorF2, SlotDecorW1, SlotDecorW2:
		return true
	default:
		return false
	}
}

func ParseSlot(input string) (Slot, error) {
	s := Slot(strings.TrimSpace(strings.ToLower(input)))
	if !s.IsValid() {
		return "", fmt.Errorf("invalid slot: %q", input)
	}
	return s, nil
}

type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

func (r Rarity) IsValid() bool {
	switch r {
	case RarityCommon, RarityRare, RarityEpic, RarityLegendary:
		return true
	default:
		return false
	}
}

// LogResult records how a task left the board.
type LogResult string

const (
	ResultCompleted LogResult = "completed"
	ResultExpired   LogResult = "expired"
)
