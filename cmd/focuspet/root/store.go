package root

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/oguzhankocabas81/focus-pet/internal/game"
	"github.com/oguzhankocabas81/focus-pet/internal/storage"
	"github.com/oguzhankocabas81/focus-pet/internal/ui"
)

// openStore loads the snapshot and runs the per-invocation housekeeping:
// the due-date sweep and the daily streak credit. Both are idempotent, so
// every command doubles as the app-foreground hook.
func openStore(ctx context.Context) (*game.Store, func(), error) {
	path := dbPath
	if path == "" {
		var err error
		path, err = storage.DefaultDBPath()
		if err != nil {
			return nil, nil, err
		}
	}
	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}

	store, reset, err := game.Open(ctx, storage.NewSQLiteStore(db), game.RealClock{})
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	if reset {
		fmt.Fprintln(os.Stderr, ui.Warn.Render(ui.IconWarn+" Saved state could not be read and was reset."))
	}

	if _, err := store.SweepExpired(ctx); err != nil {
		cleanup()
		return nil, nil, err
	}
	if _, err := store.UpdateStreak(ctx); err != nil && !errors.Is(err, game.ErrNotOnboarded) {
		cleanup()
		return nil, nil, err
	}

	return store, cleanup, nil
}

// findTask resolves a task id or unique id prefix against the snapshot.
func findTask(st *game.State, ref string) (*game.Task, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, errors.New("task id is required")
	}

	var match *game.Task
	for i := range st.Tasks {
		t := &st.Tasks[i]
		if t.ID == ref {
			return t, nil
		}
		if strings.HasPrefix(t.ID, ref) {
			if match != nil {
				return nil, fmt.Errorf("task id %q is ambiguous", ref)
			}
			match = t
		}
	}
	if match == nil {
		return nil, fmt.Errorf("task %q not found", ref)
	}
	return match, nil
}

// shortID trims a uuid down to the prefix shown in listings.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
