package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oguzhankocabas81/focus-pet/internal/ui"
)

func newSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show and change settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			store, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			st := store.Snapshot()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconTimer, "Pomodoro"))
			fmt.Fprintln(out, ui.LabelValue("Focus", fmt.Sprintf("%d min", st.Pomodoro.Settings.FocusMinutes)))
			fmt.Fprintln(out, ui.LabelValue("Short break", fmt.Sprintf("%d min", st.Pomodoro.Settings.ShortBreakMinutes)))
			fmt.Fprintln(out, ui.LabelValue("Long break", fmt.Sprintf("%d min", st.Pomodoro.Settings.LongBreakMinutes)))
			fmt.Fprintln(out, ui.LabelValue("Auto-start break", st.Pomodoro.Settings.AutoStartBreak))
			fmt.Fprintln(out, "")
			fmt.Fprintln(out, ui.H2.Render("App"))
			fmt.Fprintln(out, ui.LabelValue("Theme", st.Settings.Theme))
			fmt.Fprintln(out, ui.LabelValue("Language", st.Settings.Language))
			return nil
		},
	}

	cmd.AddCommand(newSettingsPomodoroCmd(), newSettingsAppCmd())

	return cmd
}

func newSettingsPomodoroCmd() *cobra.Command {
	var (
		focusMin  int
		shortMin  int
		longMin   int
		autoBreak bool
	)

	cmd := &cobra.Command{
		Use:   "pomodoro",
		Short: "Change pomodoro durations",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			store, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			// Start from the current settings so unset flags keep their value.
			settings := store.Snapshot().Pomodoro.Settings
			if cmd.Flags().Changed("focus") {
				settings.FocusMinutes = focusMin
			}
			if cmd.Flags().Changed("short") {
				settings.ShortBreakMinutes = shortMin
			}
			if cmd.Flags().Changed("long") {
				settings.LongBreakMinutes = longMin
			}
			if cmd.Flags().Changed("auto-break") {
				settings.AutoStartBreak = autoBreak
			}

			if err := store.UpdatePomodoroSettings(ctx, settings); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render("Settings saved."))
			return nil
		},
	}

	cmd.Flags().IntVar(&focusMin, "focus", 0, "focus session length in minutes")
	cmd.Flags().IntVar(&shortMin, "short", 0, "short break length in minutes")
	cmd.Flags().IntVar(&longMin, "long", 0, "long break length in minutes")
	cmd.Flags().BoolVar(&autoBreak, "auto-break", false, "start breaks automatically after a focus session")

	return cmd
}

func newSettingsAppCmd() *cobra.Command {
	var (
		theme    string
		language string
	)

	cmd := &cobra.Command{
		Use:   "app",
		Short: "Change app preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			store, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			settings := store.Snapshot().Settings
			if cmd.Flags().Changed("theme") {
				settings.Theme = theme
			}
			if cmd.Flags().Changed("language") {
				settings.Language = language
			}

			if err := store.UpdateAppSettings(ctx, settings); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render("Settings saved."))
			return nil
		},
	}

	cmd.Flags().StringVar(&theme, "theme", "", "UI theme (dark, light)")
	cmd.Flags().StringVar(&language, "language", "", "display language")

	return cmd
}
