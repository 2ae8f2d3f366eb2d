package systems

import (
	"github.com/automoto/cave-island/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock advances the scene clock by one tick.
func UpdateClock(ecs *ecs.ECS) {
	clock := getOrCreateClock(ecs)
	clock.Delta = 1.0 / float64(ebiten.TPS())
	clock.Elapsed += clock.Delta
}

func getOrCreateClock(ecs *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Clock))
	}
	return components.Clock.Get(entry)
}
