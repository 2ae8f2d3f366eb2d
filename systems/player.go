package systems

import (
	"math"

	"github.com/automoto/cave-island/components"
	cfg "github.com/automoto/cave-island/config"
	"github.com/automoto/cave-island/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer reads the movement actions, moves the hero when the tiles and the cave
// allow it, and raises a cave request when the feet end up inside the entrance.
func UpdatePlayer(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	grid := components.Level.Get(levelEntry).Grid

	player := components.Player.Get(playerEntry)
	obj := components.Object.Get(playerEntry)
	input := getOrCreateInput(ecs)
	dt := getOrCreateClock(ecs).Delta

	dx, dy, facing := movementFromInput(input, player.Facing)
	player.Facing = facing
	player.Moving = dx != 0 || dy != 0

	if !player.Moving {
		player.Walk.Stop()
		return
	}
	player.Walk.Update(dt)

	if cfg.Player.NormalizeDiagonal && dx != 0 && dy != 0 {
		dx /= math.Sqrt2
		dy /= math.Sqrt2
	}

	x := obj.X + dx*player.Speed*dt
	y := obj.Y + dy*player.Speed*dt
	tryMove(grid, obj.Object, x, y)

	checkCaveEntrance(ecs, obj.X, obj.Y)
}

// movementFromInput composes the direction from the held movement actions.
// Facing follows the order down, up, left, right, so the last held one wins.
func movementFromInput(input *components.InputData, facing components.Facing) (dx, dy float64, f components.Facing) {
	f = facing
	if GetAction(input, cfg.ActionMoveDown).Pressed {
		dy++
		f = components.FacingDown
	}
	if GetAction(input, cfg.ActionMoveUp).Pressed {
		dy--
		f = components.FacingUp
	}
	if GetAction(input, cfg.ActionMoveLeft).Pressed {
		dx--
		f = components.FacingLeft
	}
	if GetAction(input, cfg.ActionMoveRight).Pressed {
		dx++
		f = components.FacingRight
	}
	return dx, dy, f
}
