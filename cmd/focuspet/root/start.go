package root

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/oguzhankocabas81/focus-pet/internal/notify"
	"github.com/oguzhankocabas81/focus-pet/internal/sweep"
	"github.com/oguzhankocabas81/focus-pet/internal/tui"
	"github.com/oguzhankocabas81/focus-pet/internal/ui"
)

func newStartCmd() *cobra.Command {
	var silent bool

	cmd := &cobra.Command{
		Use:   "start <id>",
		Short: "Start a focus session for a focus task",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("task id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			store, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			task, err := findTask(store.Snapshot(), args[0])
			if err != nil {
				return err
			}
			if err := store.StartFocus(ctx, task.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Good.Render(ui.IconTimer+" Focus started:"), task.Title)

			scheduler := sweep.NewScheduler(store)
			if err := scheduler.Start(time.Minute); err != nil {
				return err
			}
			defer scheduler.Stop()

			var notifier notify.Notifier = notify.NewChime()
			if silent {
				notifier = notify.Nop{}
			}
			return tui.RunTimer(ctx, store, notifier, cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&silent, "silent", false, "Disable the completion chime")

	return cmd
}
