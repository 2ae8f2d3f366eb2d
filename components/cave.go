package components

import (
	"image"

	"github.com/yohamta/donburi"
)

// CaveData is the static cave geometry in world units plus the entrance latch.
type CaveData struct {
	Footprint image.Rectangle // drawn area
	Solid     image.Rectangle // blocks the hero's feet
	Entrance  image.Rectangle // overrides Solid; full containment enters the cave

	// PlayerInside is set while the feet rectangle sits inside the entrance.
	// Entry fires only on the transition from false to true.
	PlayerInside bool
}

var Cave = donburi.NewComponentType[CaveData]()
