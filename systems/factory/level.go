package factory

import (
	"github.com/automoto/cave-island/archetypes"
	"github.com/automoto/cave-island/assets"
	"github.com/automoto/cave-island/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateLevel(ecs *ecs.ECS, level *assets.Level) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)
	components.Level.Set(entry, &components.LevelData{
		Name:           level.Name,
		Grid:           level.Grid,
		SpawnTile:      level.SpawnTile,
		CaveAnchorTile: level.CaveAnchorTile,
	})
	return entry
}
