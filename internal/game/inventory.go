package game

import (
	"context"
	"slices"
)

// Purchase debits the coin balance and grants ownership, exactly once per
// item. It fails without touching anything when the balance is short or
// the item is already owned — a repeat purchase never succeeds regardless
// of balance.
func (s *Store) Purchase(ctx context.Context, itemID string, cost int) error {
	if itemID == "" {
		return ValidationError{Field: "item", Reason: "id is required"}
	}
	if cost < 0 {
		return ValidationError{Field: "cost", Reason: "must not be negative"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.Onboarded() {
		return ErrNotOnboarded
	}
	if slices.Contains(s.state.Owned, itemID) {
		return ErrAlreadyOwned
	}
	if s.state.User.TotalCoins < cost {
		return ErrInsufficientFunds
	}

	s.state.User.TotalCoins -= cost
	s.state.Owned = append(s.state.Owned, itemID)
	return s.save(ctx)
}

// Equip assigns an owned item to a slot, replacing whatever was there.
// One item per slot by construction.
func (s *Store) Equip(ctx context.Context, itemID string, slot Slot) error {
	if !slot.IsValid() {
		return ValidationError{Field: "slot", Reason: "unknown slot"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !slices.Contains(s.state.Owned, itemID) {
		return ErrNotOwned
	}
	s.state.Equipped[slot] = itemID
	return s.save(ctx)
}

// Unequip clears a slot. No-op when the slot is already empty.
func (s *Store) Unequip(ctx context.Context, slot Slot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.state.Equipped[slot]; !ok {
		return nil
	}
	delete(s.state.Equipped, slot)
	return s.save(ctx)
}
