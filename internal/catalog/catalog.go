// Package catalog holds the immutable shop reference data. Items are not
// user state; ownership lives in the game snapshot.
package catalog

import "github.com/oguzhankocabas81/focus-pet/internal/game"

type Category string

const (
	CategoryBackground Category = "background"
	CategoryAccessory  Category = "accessory"
	CategoryDecoration Category = "decoration"
)

type Item struct {
	ID          string
	Name        string
	Description string
	Category    Category
	Slot        game.Slot
	Rarity      game.Rarity
	Cost        int
}

// RarityMultiplier is the relative value weighting per rarity tier, kept
// as reference data for pricing new items.
func RarityMultiplier(r game.Rarity) float64 {
	switch r {
	case game.RarityRare:
		return 2.5
	case game.RarityEpic:
		return 5
	case game.RarityLegendary:
		return 10
	default:
		return 1
	}
}

var items = []Item{
	{
		ID:          "bg-meadow",
		Name:        "Sunny Meadow",
		Description: "A peaceful grassy meadow with flowers",
		Category:    CategoryBackground,
		Slot:        game.SlotBackground,
		Rarity:      game.RarityCommon,
		Cost:        100,
	},
	{
		ID:          "bg-ocean",
		Name:        "Ocean Waves",
		Description: "Calming ocean with gentle waves",
		Category:    CategoryBackground,
		Slot:        game.SlotBackground,
		Rarity:      game.RarityCommon,
		Cost:        100,
	},
	{
		ID:          "acc-party-hat",
		Name:        "Party Hat",
		Description: "Celebrate in style!",
		Category:    CategoryAccessory,
		Slot:        game.SlotHat,
		Rarity:      game.RarityCommon,
		Cost:        75,
	},
	{
		ID:          "acc-wizard-hat",
		Name:        "Wizard Hat",
		Description: "Magical headwear for focus sessions",
		Category:    CategoryAccessory,
		Slot:        game.SlotHat,
		Rarity:      game.RarityRare,
		Cost:        200,
	},
	{
		ID:          "acc-cool-glasses",
		Name:        "Cool Shades",
		Description: "Looking sharp and focused!",
		Category:    CategoryAccessory,
		Slot:        game.SlotGlasses,
		Rarity:      game.RarityCommon,
		Cost:        60,
	},
	{
		ID:          "acc-scarf",
		Name:        "Cozy Scarf",
		Description: "Warm and snug for long sessions",
		Category:    CategoryAccessory,
		Slot:        game.SlotNeck,
		Rarity:      game.RarityCommon,
		Cost:        70,
	},
	{
		ID:          "acc-star-cape",
		Name:        "Star Cape",
		Description: "A legendary cloak of pure focus",
		Category:    CategoryAccessory,
		Slot:        game.SlotOutfit,
		Rarity:      game.RarityLegendary,
		Cost:        600,
	},
	{
		ID:          "dec-potted-plant",
		Name:        "Potted Plant",
		Description: "A friendly desk companion",
		Category:    CategoryDecoration,
		Slot:        game.SlotDecorF1,
		Rarity:      game.RarityCommon,
		Cost:        80,
	},
	{
		ID:          "dec-crystal-lamp",
		Name:        "Crystal Lamp",
		Description: "Glowing ambient light",
		Category:    CategoryDecoration,
		Slot:        game.SlotDecorF2,
		Rarity:      game.RarityRare,
		Cost:        150,
	},
	{
		ID:          "dec-floating-stars",
		Name:        "Floating Stars",
		Description: "Magical stars orbit around",
		Category:    CategoryDecoration,
		Slot:        game.SlotDecorW1,
		Rarity:      game.RarityEpic,
		Cost:        300,
	},
	{
		ID:          "dec-trophy-shelf",
		Name:        "Trophy Shelf",
		Description: "Show off your achievements",
		Category:    CategoryDecoration,
		Slot:        game.SlotDecorW2,
		Rarity:      game.RarityRare,
		Cost:        180,
	},
}

// Items returns the full catalog in display order.
func Items() []Item {
	out := make([]Item, len(items))
	copy(out, items)
	return out
}

// ByID looks an item up by id.
func ByID(id string) (Item, bool) {
	for _, it := range items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// BySlot returns the items that fit a slot.
func BySlot(slot game.Slot) []Item {
	var out []Item
	for _, it := range items {
		if it.Slot == slot {
			out = append(out, it)
		}
	}
	return out
}
