package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/oguzhankocabas81/focus-pet/internal/game"
	"github.com/oguzhankocabas81/focus-pet/internal/notify"
)

func RunTimer(ctx context.Context, store *game.Store, notifier notify.Notifier, out io.Writer) error {
	m := newTimerModel(ctx, store, notifier)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}
