package components

import "github.com/yohamta/donburi"

// CollectibleData marks a speed fruit. The pickup footprint lives on its Object.
type CollectibleData struct {
	TileX, TileY int
}

var Collectible = donburi.NewComponentType[CollectibleData]()
