package components

import (
	"image"

	"github.com/yohamta/donburi"
)

type LevelData struct {
	Name           string
	Grid           *GridData
	SpawnTile      image.Point
	CaveAnchorTile image.Point
}

var Level = donburi.NewComponentType[LevelData]()
