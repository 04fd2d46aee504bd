package game

import (
	"context"
	"testing"
	"time"

	"github.com/oguzhankocabas81/focus-pet/internal/storage"
)

var testEpoch = time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T) (*Store, *storage.MemoryStore, *FakeClock) {
	t.Helper()
	ctx := context.Background()

	snaps := storage.NewMemoryStore()
	clock := NewFakeClock(testEpoch)
	store, reset, err := Open(ctx, snaps, clock)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if reset {
		t.Fatalf("fresh open must not report a reset")
	}
	return store, snaps, clock
}

func newOnboardedStore(t *testing.T) (*Store, *storage.MemoryStore, *FakeClock) {
	t.Helper()
	ctx := context.Background()

	store, snaps, clock := newTestStore(t)
	if err := store.CreateUser(ctx, "Alex", PetFire, "Ember"); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return store, snaps, clock
}

func addTestTask(t *testing.T, store *Store, typ TaskType) *Task {
	t.Helper()
	ctx := context.Background()

	task, err := store.AddTask(ctx, AddTaskInput{Title: "Write report", Type: typ})
	if err != nil {
		t.Fatalf("add task: %v", err)
	}
	return task
}
