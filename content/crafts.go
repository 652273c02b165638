package content

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// Craft is a player-selectable loadout. The catalog is static
// configuration consumed read-only by run reset and shop purchase logic
type Craft struct {
	ID          string
	Name        string
	Description string
	Price       int
	Health      int
	Speed       float64
	FireRate    time.Duration
	Color       tcell.Color
}

// DefaultCraftID is the loadout every profile owns from the start
const DefaultCraftID = "standard"

// crafts is the fixed five-entry catalog, ordered as shown in the shop
var crafts = []Craft{
	{
		ID:          "standard",
		Name:        "Standard",
		Description: "Balanced interceptor",
		Price:       0,
		Health:      100,
		Speed:       5.0,
		FireRate:    300 * time.Millisecond,
		Color:       tcell.ColorWhite,
	},
	{
		ID:          "viper",
		Name:        "Viper",
		Description: "Fast hull, light plating",
		Price:       800,
		Health:      70,
		Speed:       7.0,
		FireRate:    250 * time.Millisecond,
		Color:       tcell.ColorGreen,
	},
	{
		ID:          "tech",
		Name:        "Tech",
		Description: "Long lance bolts",
		Price:       1200,
		Health:      90,
		Speed:       5.0,
		FireRate:    280 * time.Millisecond,
		Color:       tcell.ColorAqua,
	},
	{
		ID:          "blast",
		Name:        "Blast",
		Description: "Wide heavy rounds, slow cycle",
		Price:       1500,
		Health:      110,
		Speed:       4.5,
		FireRate:    450 * time.Millisecond,
		Color:       tcell.ColorOrange,
	},
	{
		ID:          "titan",
		Name:        "Titan",
		Description: "Maximum plating",
		Price:       2000,
		Health:      150,
		Speed:       3.5,
		FireRate:    350 * time.Millisecond,
		Color:       tcell.ColorYellow,
	},
}

// Catalog returns the full craft list in shop order
func Catalog() []Craft {
	return crafts
}

// ByID looks up a craft, falling back to the default loadout for
// unknown ids so a corrupted selection never breaks run reset
func ByID(id string) Craft {
	for _, c := range crafts {
		if c.ID == id {
			return c
		}
	}
	return crafts[0]
}
