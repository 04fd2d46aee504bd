package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oguzhankocabas81/focus-pet/internal/ui"
)

func newDoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Complete a task and collect the rewards",
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

			res, err := store.CompleteTask(ctx, task.ID)
			if err != nil {
				return err
			}
			if res == nil {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Nothing to do — task already resolved."))
				return nil
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s %s\n", ui.Good.Render(ui.IconDone+" Completed"), ui.Muted.Render(shortID(res.TaskID)), task.Title)
			fmt.Fprintln(out, ui.LabelValue("Earned", fmt.Sprintf("+%d XP, +%d %s", res.Points, res.CoinsEarned, ui.IconCoin)))
			if res.Progress.LevelUp {
				fmt.Fprintf(out, "%s Level %d → %d (+%d %s)\n",
					ui.BadgeLevelUp, res.Progress.LevelBefore, res.Progress.LevelAfter, res.Progress.CoinsAwarded, ui.IconCoin)
			}
			return nil
		},
	}

	return cmd
}
