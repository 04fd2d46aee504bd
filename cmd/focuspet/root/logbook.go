package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oguzhankocabas81/focus-pet/internal/game"
	"github.com/oguzhankocabas81/focus-pet/internal/ui"
)

func newLogbookCmd() *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "logbook",
		Short: "Show resolved tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			store, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			st := store.Snapshot()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconScroll, "Logbook"))

			shown := 0
			for _, e := range st.Logbook {
				switch filter {
				case "completed":
					if e.Result != game.ResultCompleted {
						continue
					}
				case "expired":
					if e.Result != game.ResultExpired {
						continue
					}
				}
				mark := ui.Good.Render(ui.IconDone)
				if e.Result == game.ResultExpired {
					mark = ui.Bad.Render(ui.IconWarn)
				}
				fmt.Fprintf(out, "%s %s  %s %s %s\n",
					mark,
					ui.Muted.Render(e.Timestamp.Format("2006-01-02 15:04")),
					e.Task.Title,
					ui.Muted.Render(fmt.Sprintf("(+%d pts)", e.PointsEarned)),
					ui.Muted.Render(shortID(e.ID)),
				)
				shown++
			}
			if shown == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(empty)"))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&filter, "filter", "f", "all", "Filter (all|completed|expired)")

	cmd.AddCommand(newLogbookRmCmd())

	return cmd
}

func newLogbookRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a logbook entry",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("entry id is required")
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

			st := store.Snapshot()
			full := args[0]
			for _, e := range st.Logbook {
				if e.ID == full || shortID(e.ID) == full {
					full = e.ID
					break
				}
			}
			if err := store.DeleteLogEntry(ctx, full); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render("Entry removed."))
			return nil
		},
	}
}
