package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oguzhankocabas81/focus-pet/internal/game"
	"github.com/oguzhankocabas81/focus-pet/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show your level, coins, streak and pet",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			store, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			st := store.Snapshot()
			if !st.Onboarded() {
				return game.ErrNotOnboarded
			}
			user := st.User
			pet := st.Pet

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, user.Name))
			required := game.XPForLevel(user.Level)
			bar := ui.ProgressBar(user.CurrentXP, required, 30)
			fmt.Fprintln(out, ui.LabelValue("Level", fmt.Sprintf("%d %s %d/%d XP", user.Level, bar, user.CurrentXP, required)))
			fmt.Fprintln(out, ui.LabelValue("Coins", fmt.Sprintf("%d %s", user.TotalCoins, ui.IconCoin)))
			fmt.Fprintln(out, ui.LabelValue("Streak", fmt.Sprintf("%d day(s) %s", user.DailyStreak, ui.IconStreak)))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render(ui.PetIcon(pet.Type)+" "+pet.Name))
			fmt.Fprintln(out, ui.LabelValue("Stage", fmt.Sprintf("%d of 3", game.EvolutionStage(user.Level))))
			fmt.Fprintln(out, ui.LabelValue("Happiness", ui.ProgressBar(pet.Happiness, 100, 20)+fmt.Sprintf(" %d/100", pet.Happiness)))
			fmt.Fprintln(out, ui.LabelValue("Hunger", ui.ProgressBar(pet.Hunger, 100, 20)+fmt.Sprintf(" %d/100", pet.Hunger)))
			fmt.Fprintln(out, "")

			pending := 0
			for _, t := range st.Tasks {
				if !t.Status.Terminal() {
					pending++
				}
			}
			fmt.Fprintln(out, ui.LabelValue("Open tasks", pending))
			fmt.Fprintln(out, ui.LabelValue("Pomodoros", st.Pomodoro.CompletedPomodoros))
			return nil
		},
	}

	return cmd
}
