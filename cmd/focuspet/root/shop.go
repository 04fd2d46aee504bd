package root

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/oguzhankocabas81/focus-pet/internal/catalog"
	"github.com/oguzhankocabas81/focus-pet/internal/ui"
)

func newShopCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shop",
		Short: "Browse the cosmetic shop",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			store, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			st := store.Snapshot()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconShop, "Shop"))
			if st.Onboarded() {
				fmt.Fprintln(out, ui.LabelValue("Balance", fmt.Sprintf("%d %s", st.User.TotalCoins, ui.IconCoin)))
			}
			fmt.Fprintln(out, "")

			for _, item := range catalog.Items() {
				owned := ""
				if slices.Contains(st.Owned, item.ID) {
					owned = " " + ui.Good.Render("owned")
				}
				fmt.Fprintf(out, "%-18s %4d %s  %-10s %s  %s%s\n",
					item.ID,
					item.Cost,
					ui.IconCoin,
					ui.RarityText(item.Rarity),
					ui.Muted.Render(string(item.Slot)),
					item.Name,
					owned,
				)
			}
			return nil
		},
	}

	cmd.AddCommand(newShopBuyCmd())

	return cmd
}

func newShopBuyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "buy <item-id>",
		Short: "Buy an item",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("item id is required")
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

			item, ok := catalog.ByID(args[0])
			if !ok {
				return fmt.Errorf("unknown item %q", args[0])
			}
			if err := store.Purchase(ctx, item.ID, item.Cost); err != nil {
				return err
			}

			st := store.Snapshot()
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s for %d %s (balance %d)\n",
				ui.Good.Render(ui.IconDone+" Bought"), item.Name, item.Cost, ui.IconCoin, st.User.TotalCoins)
			return nil
		},
	}
}
