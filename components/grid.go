package components

import (
	"image"
	"math"

	"github.com/yohamta/donburi"
)

// Terrain is the kind of ground a tile is made of.
type Terrain int

const (
	TerrainWater Terrain = iota
	TerrainGrass
)

func (t Terrain) String() string {
	switch t {
	case TerrainGrass:
		return "grass"
	case TerrainWater:
		return "water"
	}
	return "unknown"
}

// Tile is a single grid cell. Source is the sub-rectangle of the terrain sheet
// the cell is drawn from.
type Tile struct {
	Terrain  Terrain
	Source   image.Rectangle
	Walkable bool
}

// GridData is a row-major tile grid. It is not modified after generation.
type GridData struct {
	Width    int
	Height   int
	TileSize int
	Tiles    []Tile
}

var Grid = donburi.NewComponentType[GridData]()

// NewGrid returns a grid of the given size filled with water.
func NewGrid(width, height, tileSize int) *GridData {
	return &GridData{
		Width:    width,
		Height:   height,
		TileSize: tileSize,
		Tiles:    make([]Tile, width*height),
	}
}

func (g *GridData) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.Width && y < g.Height
}

// At returns the tile at (x, y). ok is false outside the grid.
func (g *GridData) At(x, y int) (Tile, bool) {
	if !g.InBounds(x, y) {
		return Tile{}, false
	}
	return g.Tiles[y*g.Width+x], true
}

func (g *GridData) Set(x, y int, t Tile) {
	if !g.InBounds(x, y) {
		return
	}
	g.Tiles[y*g.Width+x] = t
}

// Walkable reports whether (x, y) can be stood on. Cells outside the grid never are.
func (g *GridData) Walkable(x, y int) bool {
	t, ok := g.At(x, y)
	return ok && t.Walkable
}

// TileAtWorld maps a world point to tile coordinates using floor division.
func (g *GridData) TileAtWorld(px, py float64) (int, int) {
	size := float64(g.TileSize)
	return int(math.Floor(px / size)), int(math.Floor(py / size))
}

func (g *GridData) PixelWidth() int {
	return g.Width * g.TileSize
}

func (g *GridData) PixelHeight() int {
	return g.Height * g.TileSize
}

// WalkableCount returns the number of walkable cells.
func (g *GridData) WalkableCount() int {
	n := 0
	for _, t := range g.Tiles {
		if t.Walkable {
			n++
		}
	}
	return n
}
