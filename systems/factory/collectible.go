package factory

import (
	"errors"
	"image"
	"math/rand"
	"time"

	"github.com/automoto/cave-island/archetypes"
	"github.com/automoto/cave-island/components"
	cfg "github.com/automoto/cave-island/config"
	"github.com/automoto/cave-island/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ErrNoFruitTiles is returned when the grid has no walkable tile besides the spawn.
var ErrNoFruitTiles = errors.New("no walkable tile for collectibles")

// NewRand returns the collectible random source. Seed 0 seeds from the clock.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// PlaceCollectibles draws random tiles until n of them are walkable and not the spawn
// tile. The same tile may be returned more than once.
func PlaceCollectibles(grid *components.GridData, spawn image.Point, n int, rng *rand.Rand) ([]image.Point, error) {
	if n <= 0 {
		return nil, nil
	}
	free := grid.WalkableCount()
	if grid.Walkable(spawn.X, spawn.Y) {
		free--
	}
	if free <= 0 {
		return nil, ErrNoFruitTiles
	}

	placed := make([]image.Point, 0, n)
	for len(placed) < n {
		x := rng.Intn(grid.Width)
		y := rng.Intn(grid.Height)
		if !grid.Walkable(x, y) || (x == spawn.X && y == spawn.Y) {
			continue
		}
		placed = append(placed, image.Pt(x, y))
	}
	return placed, nil
}

// CreateCollectible spawns a speed fruit on the given tile.
func CreateCollectible(ecs *ecs.ECS, space *resolv.Space, tile image.Point, tileSize int) *donburi.Entry {
	fruit := archetypes.Collectible.Spawn(ecs)

	size := float64(cfg.Collectible.Size)
	obj := resolv.NewObject(float64(tile.X*tileSize), float64(tile.Y*tileSize), size, size, tags.ResolvFruit)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = fruit
	components.Object.SetValue(fruit, components.ObjectData{Object: obj})
	space.Add(obj)

	components.Collectible.SetValue(fruit, components.CollectibleData{TileX: tile.X, TileY: tile.Y})
	return fruit
}
