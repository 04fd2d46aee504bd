package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/oguzhankocabas81/focus-pet/internal/game"
)

// focus-pet theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconPet     = "🐾"
	IconSparkle = "✨"
	IconDone    = "✅"
	IconCoin    = "🪙"
	IconFlame   = "🔥"
	IconWater   = "💧"
	IconLeaf    = "🌿"
	IconTimer   = "⏱️"
	IconCoffee  = "☕"
	IconShop    = "🛍️"
	IconScroll  = "📜"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconStreak  = "📆"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	Panel = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)

	BadgeLevelUp = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("LEVEL UP")
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

func StatusText(status game.TaskStatus) string {
	switch status {
	case game.StatusCompleted:
		return Good.Render("completed")
	case game.StatusInProgress:
		return H2.Render("in progress")
	case game.StatusPending:
		return Warn.Render("pending")
	case game.StatusExpired:
		return Bad.Render("expired")
	default:
		return Muted.Render(string(status))
	}
}

func PetIcon(t game.PetType) string {
	switch t {
	case game.PetFire:
		return IconFlame
	case game.PetWater:
		return IconWater
	case game.PetGrass:
		return IconLeaf
	default:
		return IconPet
	}
}

func RarityText(r game.Rarity) string {
	switch r {
	case game.RarityLegendary:
		return Gold.Render("legendary")
	case game.RarityEpic:
		return Title.Render("epic")
	case game.RarityRare:
		return H2.Render("rare")
	default:
		return Muted.Render("common")
	}
}

// ProgressBar renders a fixed-width [####----] bar.
func ProgressBar(value int, total int, width int) string {
	if total <= 0 {
		total = 1
	}
	if width <= 3 {
		width = 3
	}
	if value < 0 {
		value = 0
	}
	if value > total {
		value = total
	}
	filled := value * width / total
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}
