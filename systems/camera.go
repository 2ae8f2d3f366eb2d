package systems

import (
	"math"

	"github.com/automoto/cave-island/components"
	"github.com/automoto/cave-island/config"
	"github.com/automoto/cave-island/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera centers the view on the hero's top-left corner, kept inside the island.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	playerObject := components.Object.Get(playerEntry)

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	grid := components.Level.Get(levelEntry).Grid

	targetX, targetY := clampCamera(
		playerObject.X, playerObject.Y,
		float64(grid.PixelWidth()), float64(grid.PixelHeight()),
		float64(config.C.Width), float64(config.C.Height),
	)

	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
}

// clampCamera keeps a view of screenW x screenH centered on (x, y) within the level.
// A level smaller than the screen pins the view to its top-left corner.
func clampCamera(x, y, levelW, levelH, screenW, screenH float64) (float64, float64) {
	minX, minY := screenW/2, screenH/2
	maxX := math.Max(minX, levelW-screenW/2)
	maxY := math.Max(minY, levelH-screenH/2)
	return math.Max(minX, math.Min(maxX, x)), math.Max(minY, math.Min(maxY, y))
}

// viewOrigin returns the world coordinate drawn at the top-left pixel of the screen.
func viewOrigin(e *ecs.ECS, screenW, screenH int) (float64, float64, bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return 0, 0, false
	}
	camera := components.Camera.Get(cameraEntry)
	return camera.Position.X - float64(screenW)/2, camera.Position.Y - float64(screenH)/2, true
}
