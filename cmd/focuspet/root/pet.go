package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oguzhankocabas81/focus-pet/internal/catalog"
	"github.com/oguzhankocabas81/focus-pet/internal/game"
	"github.com/oguzhankocabas81/focus-pet/internal/ui"
)

func newPetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pet",
		Short: "Look at your pet",
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

			out := cmd.OutOrStdout()
			pet := st.Pet
			fmt.Fprintln(out, ui.Heading(ui.PetIcon(pet.Type), pet.Name))
			fmt.Fprintln(out, ui.LabelValue("Type", pet.Type))
			fmt.Fprintln(out, ui.LabelValue("Level", fmt.Sprintf("%d (stage %d)", pet.Level, game.EvolutionStage(pet.Level))))
			fmt.Fprintln(out, ui.LabelValue("Happiness", ui.ProgressBar(pet.Happiness, 100, 20)+fmt.Sprintf(" %d", pet.Happiness)))
			fmt.Fprintln(out, ui.LabelValue("Hunger", ui.ProgressBar(pet.Hunger, 100, 20)+fmt.Sprintf(" %d", pet.Hunger)))

			if len(st.Equipped) > 0 {
				fmt.Fprintln(out, "")
				fmt.Fprintln(out, ui.H2.Render("Equipped"))
				for slot, itemID := range st.Equipped {
					name := itemID
					if item, ok := catalog.ByID(itemID); ok {
						name = item.Name
					}
					fmt.Fprintf(out, "- %s: %s\n", ui.Key.Render(string(slot)), name)
				}
			}
			return nil
		},
	}

	cmd.AddCommand(newPetFeedCmd(), newPetNameCmd())

	return cmd
}

func newPetFeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "feed",
		Short: "Feed your pet",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			store, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := store.FeedPet(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render("Nom nom. Hunger is back to zero."))
			return nil
		},
	}
}

func newPetNameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "name <new-name>",
		Short: "Rename your pet",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("a name is required")
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

			if err := store.RenamePet(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Good.Render("Renamed to"), args[0])
			return nil
		},
	}
}
