package systems

import (
	"github.com/automoto/cave-island/components"
	"github.com/yohamta/donburi/ecs"
)

// GetStats returns a copy of the session statistics.
func GetStats(ecs *ecs.ECS) components.StatsData {
	return *getOrCreateStats(ecs)
}

func getOrCreateStats(ecs *ecs.ECS) *components.StatsData {
	entry, ok := components.Stats.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Stats))
	}
	return components.Stats.Get(entry)
}
