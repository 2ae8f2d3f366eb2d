package assets

import (
	"image"
	"math"

	"github.com/automoto/cave-island/config"
)

// IslandParams describes an annular island: land is every cell strictly between
// the lake radius and the island radius, measured from the center cell.
type IslandParams struct {
	Width, Height  int
	TileSize       int
	Center         image.Point
	IslandRadius   float64
	LakeRadius     float64
	SpawnTile      image.Point
	CaveAnchorTile image.Point
}

// DefaultIslandParams reads the island parameters from config.World and config.Cave.
func DefaultIslandParams() IslandParams {
	return IslandParams{
		Width:          config.World.Width,
		Height:         config.World.Height,
		TileSize:       config.World.TileSize,
		Center:         image.Pt(config.World.CenterX, config.World.CenterY),
		IslandRadius:   config.World.IslandRadius,
		LakeRadius:     config.World.LakeRadius,
		SpawnTile:      image.Pt(config.World.SpawnTileX, config.World.SpawnTileY),
		CaveAnchorTile: image.Pt(config.Cave.AnchorTileX, config.Cave.AnchorTileY),
	}
}

// IsLand reports whether cell (x, y) lies on the ring of land.
func (p IslandParams) IsLand(x, y int) bool {
	dx := float64(x - p.Center.X)
	dy := float64(y - p.Center.Y)
	d := math.Sqrt(dx*dx + dy*dy)
	return d > p.LakeRadius && d < p.IslandRadius
}

// GenerateIsland builds the island grid. The result only depends on p.
func GenerateIsland(p IslandParams) *Level {
	grid := newWaterGrid(p.Width, p.Height, p.TileSize)
	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			if p.IsLand(x, y) {
				grid.Set(x, y, grassTile())
			}
		}
	}

	return &Level{
		Name:           "island",
		Grid:           grid,
		SpawnTile:      p.SpawnTile,
		CaveAnchorTile: p.CaveAnchorTile,
	}
}
