package assets

import (
	"image"

	"github.com/automoto/cave-island/components"
)

// Source rectangles of the terrain sheets. Tiles keep them so a textured renderer
// can pick the same art the flat renderer approximates with colors.
var (
	WaterTileSource = image.Rect(40, 50, 40+950, 50+900)
	GrassTileSource = image.Rect(0, 0, 1024, 1024)
)

// Level is a playable island layout.
type Level struct {
	Name           string
	Grid           *components.GridData
	SpawnTile      image.Point
	CaveAnchorTile image.Point
}

// Width returns the level width in world units.
func (l *Level) Width() int {
	return l.Grid.PixelWidth()
}

// Height returns the level height in world units.
func (l *Level) Height() int {
	return l.Grid.PixelHeight()
}

func grassTile() components.Tile {
	return components.Tile{
		Terrain:  components.TerrainGrass,
		Source:   GrassTileSource,
		Walkable: true,
	}
}

func waterTile() components.Tile {
	return components.Tile{
		Terrain: components.TerrainWater,
		Source:  WaterTileSource,
	}
}

func newWaterGrid(width, height, tileSize int) *components.GridData {
	grid := components.NewGrid(width, height, tileSize)
	for i := range grid.Tiles {
		grid.Tiles[i] = waterTile()
	}
	return grid
}
