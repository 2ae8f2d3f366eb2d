package factory

import (
	"fmt"

	"github.com/automoto/cave-island/assets"
	"github.com/automoto/cave-island/components"
	cfg "github.com/automoto/cave-island/config"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi/ecs"
)

// CreateOverworld populates ecs with everything the island scene needs: the level,
// the collision space, the cave, the hero at the spawn tile, the camera and the fruits.
func CreateOverworld(ecs *ecs.ECS, level *assets.Level, seed int64) error {
	levelEntry := CreateLevel(ecs, level)
	grid := components.Level.Get(levelEntry).Grid
	size := grid.TileSize

	spaceEntry := CreateSpace(ecs, grid.PixelWidth(), grid.PixelHeight(), size, size)
	space := components.Space.Get(spaceEntry)

	CreateCave(ecs, space, level.CaveAnchorTile, size)

	spawnX := float64(level.SpawnTile.X * size)
	spawnY := float64(level.SpawnTile.Y * size)
	CreatePlayer(ecs, space, spawnX, spawnY)
	CreateCamera(ecs, spawnX, spawnY)

	tiles, err := PlaceCollectibles(grid, level.SpawnTile, cfg.Collectible.Count, NewRand(seed))
	if err != nil {
		return fmt.Errorf("failed to place collectibles: %w", err)
	}
	for _, t := range tiles {
		CreateCollectible(ecs, space, t, size)
	}

	log.Debug("overworld created", "level", level.Name, "seed", seed, "fruits", len(tiles))
	return nil
}
