package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oguzhankocabas81/focus-pet/internal/ui"
)

func newListCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			store, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			st := store.Snapshot()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconScroll, "Tasks"))

			shown := 0
			for _, t := range st.Tasks {
				if !all && t.Status.Terminal() {
					continue
				}
				due := ""
				if t.DueDate != "" {
					due = " " + ui.Muted.Render("due "+t.DueDate)
				}
				fmt.Fprintf(out, "%s  %-5s %3dp  %s  %s%s\n",
					ui.Muted.Render(shortID(t.ID)),
					t.Type,
					t.Points,
					ui.StatusText(t.Status),
					t.Title,
					due,
				)
				shown++
			}
			if shown == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(nothing here — add one with `focuspet add`)"))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include completed and expired tasks")

	return cmd
}
