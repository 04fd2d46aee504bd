package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oguzhankocabas81/focus-pet/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "focuspet",
	Short:         "focus-pet — a productivity companion that levels up with you",
	Long:          "focus-pet is a local-first CLI/TUI productivity app: complete tasks and focus sessions, earn XP and coins, and raise a virtual pet.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// dbPath overrides the snapshot database location when the --db flag is
// set. The FOCUSPET_DB env var is the fallback override.
var dbPath string

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to the snapshot database")

	rootCmd.AddCommand(
		newOnboardCmd(),
		newStatusCmd(),
		newAddCmd(),
		newListCmd(),
		newDoneCmd(),
		newStartCmd(),
		newRmCmd(),
		newTimerCmd(),
		newLogbookCmd(),
		newShopCmd(),
		newEquipCmd(),
		newUnequipCmd(),
		newPetCmd(),
		newSettingsCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
