// Package notify is the side-effect collaborator fired when a pomodoro
// interval ends. Failures are swallowed: a broken audio device must never
// block or corrupt the game state.
package notify

import "github.com/oguzhankocabas81/focus-pet/internal/game"

type Notifier interface {
	// SessionComplete signals that an interval of the given mode finished.
	SessionComplete(mode game.Mode)
}

// Nop discards all notifications.
type Nop struct{}

func (Nop) SessionComplete(game.Mode) {}
