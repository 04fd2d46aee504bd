package root

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/oguzhankocabas81/focus-pet/internal/notify"
	"github.com/oguzhankocabas81/focus-pet/internal/sweep"
	"github.com/oguzhankocabas81/focus-pet/internal/tui"
)

func newTimerCmd() *cobra.Command {
	var silent bool

	cmd := &cobra.Command{
		Use:   "timer",
		Short: "Open the pomodoro timer",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			store, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			// While the timer is open the sweep keeps overdue tasks honest.
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
