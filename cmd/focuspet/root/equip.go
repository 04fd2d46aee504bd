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

func newEquipCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "equip <item-id>",
		Short: "Equip an owned item on its slot",
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
			if err := store.Equip(ctx, item.ID, item.Slot); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s on %s\n",
				ui.Good.Render(ui.IconDone+" Equipped"), item.Name, ui.Muted.Render(string(item.Slot)))
			return nil
		},
	}

	return cmd
}

func newUnequipCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unequip <slot>",
		Short: "Clear an equipment slot",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("slot is required")
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

			slot, err := game.ParseSlot(args[0])
			if err != nil {
				return err
			}
			if err := store.Unequip(ctx, slot); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Warn.Render("Cleared"), slot)
			return nil
		},
	}

	return cmd
}
