package factory

import (
	"github.com/automoto/cave-island/archetypes"
	"github.com/automoto/cave-island/assets/animations"
	"github.com/automoto/cave-island/components"
	cfg "github.com/automoto/cave-island/config"
	"github.com/automoto/cave-island/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the hero with its top-left corner at (x, y).
func CreatePlayer(ecs *ecs.ECS, space *resolv.Space, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w, h := float64(cfg.Player.FrameWidth), float64(cfg.Player.FrameHeight)
	obj := resolv.NewObject(x, y, w, h, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	space.Add(obj)

	components.Player.SetValue(player, components.PlayerData{
		Facing: components.FacingDown,
		Walk:   animations.NewAnimation(cfg.Player.AnimationCount, cfg.Player.AnimationSpeed),
		Speed:  cfg.Player.NormalSpeed,
	})

	return player
}
