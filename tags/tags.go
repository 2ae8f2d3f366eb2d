package tags

import "github.com/yohamta/donburi"

var (
	Player      = donburi.NewTag().SetName("Player")
	Collectible = donburi.NewTag().SetName("Collectible")
	Cave        = donburi.NewTag().SetName("Cave")
)

// Resolv tags for broad-phase collision
const (
	ResolvPlayer       = "Player"
	ResolvFruit        = "fruit"
	ResolvCaveSolid    = "cave_solid"
	ResolvCaveEntrance = "cave_entrance"
)
