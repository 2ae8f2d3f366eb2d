package systems

import (
	"github.com/automoto/cave-island/components"
	cfg "github.com/automoto/cave-island/config"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi/ecs"
)

// checkCaveEntrance latches whether the hero's feet at (x, y) are fully inside the
// cave entrance and requests the cave scene on the outside-to-inside edge.
func checkCaveEntrance(ecs *ecs.ECS, x, y float64) {
	caveEntry, ok := components.Cave.First(ecs.World)
	if !ok {
		return
	}
	cave := components.Cave.Get(caveEntry)

	inside := feetRect(x, y).In(cave.Entrance)
	if inside && !cave.PlayerInside {
		log.Debug("cave entrance reached", "x", x, "y", y)
		getOrCreateSceneRequest(ecs).EnterCave = true
		getOrCreateStats(ecs).CaveVisits++
		PlaySFX(ecs, cfg.SoundCaveEnter)
	}
	cave.PlayerInside = inside
}

// UpdateCaveExit requests the way back out on any key or button pressed after the
// cave scene started.
func UpdateCaveExit(ecs *ecs.ECS) {
	if AnyFreshPress(getOrCreateInput(ecs)) {
		getOrCreateSceneRequest(ecs).ExitCave = true
		PlaySFX(ecs, cfg.SoundCaveExit)
	}
}

// TakeSceneRequest returns the pending request and clears it.
func TakeSceneRequest(ecs *ecs.ECS) components.SceneRequestData {
	req := getOrCreateSceneRequest(ecs)
	taken := *req
	*req = components.SceneRequestData{}
	return taken
}

func getOrCreateSceneRequest(ecs *ecs.ECS) *components.SceneRequestData {
	entry, ok := components.SceneRequest.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.SceneRequest))
	}
	return components.SceneRequest.Get(entry)
}
