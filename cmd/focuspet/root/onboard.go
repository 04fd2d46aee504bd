package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oguzhankocabas81/focus-pet/internal/game"
	"github.com/oguzhankocabas81/focus-pet/internal/ui"
)

func newOnboardCmd() *cobra.Command {
	var petType string
	var petName string

	cmd := &cobra.Command{
		Use:   "onboard <name>",
		Short: "Create your profile and pick a pet",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("your name is required")
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

			pt, err := game.ParsePetType(petType)
			if err != nil {
				return err
			}
			if petName == "" {
				petName = speciesName(pt)
			}
			if err := store.CreateUser(ctx, args[0], pt, petName); err != nil {
				return err
			}

			st := store.Snapshot()
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconSparkle, "Welcome, "+st.User.Name+"!"))
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s the %s joins you at level 1.\n",
				ui.PetIcon(st.Pet.Type), st.Pet.Name, st.Pet.Type)
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Coins", fmt.Sprintf("%d %s", st.User.TotalCoins, ui.IconCoin)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&petType, "pet", "p", "fire", "Pet type (fire|water|grass)")
	cmd.Flags().StringVarP(&petName, "pet-name", "n", "", "Pet name (defaults to the species name)")

	return cmd
}

func speciesName(t game.PetType) string {
	switch t {
	case game.PetWater:
		return "Aquapal"
	case game.PetGrass:
		return "Sproutkin"
	default:
		return "Flameling"
	}
}
