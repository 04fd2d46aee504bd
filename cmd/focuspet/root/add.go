package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oguzhankocabas81/focus-pet/internal/game"
	"github.com/oguzhankocabas81/focus-pet/internal/ui"
)

func newAddCmd() *cobra.Command {
	var taskType string
	var description string
	var dueDate string
	var dueTime string
	var urgency string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task (focus, habit or quest)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("title is required")
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

			tt, err := game.ParseTaskType(taskType)
			if err != nil {
				return err
			}

			task, err := store.AddTask(ctx, game.AddTaskInput{
				Title:       args[0],
				Description: description,
				Type:        tt,
				DueDate:     dueDate,
				DueTime:     dueTime,
				Urgency:     game.ParseUrgency(urgency),
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s worth %d points\n",
				ui.Good.Render(ui.IconDone+" Added"),
				ui.Muted.Render(shortID(task.ID)),
				task.Title,
				task.Points,
			)
			return nil
		},
	}

	cmd.Flags().StringVarP(&taskType, "type", "t", "quest", "Task type (focus|habit|quest)")
	cmd.Flags().StringVarP(&description, "desc", "d", "", "Description")
	cmd.Flags().StringVar(&dueDate, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&dueTime, "at", "", "Due time (HH:MM)")
	cmd.Flags().StringVarP(&urgency, "urgency", "u", "medium", "Urgency (low|medium|high)")

	return cmd
}
