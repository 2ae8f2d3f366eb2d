package factory

import (
	"image"

	"github.com/automoto/cave-island/archetypes"
	"github.com/automoto/cave-island/components"
	cfg "github.com/automoto/cave-island/config"
	"github.com/automoto/cave-island/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CaveGeometry lays out the cave around the anchor tile. The entrance is centered
// horizontally and sits two tiles above the footprint bottom; the solid zone is
// three tiles tall, ends where the entrance ends and is inset by half the entrance
// width on both sides.
func CaveGeometry(anchor image.Point, tileSize int) (footprint, solid, entrance image.Rectangle) {
	c := cfg.Cave
	footprint = image.Rect(0, 0, c.DrawWidth, c.DrawHeight).Add(anchor.Mul(tileSize))

	ex := footprint.Min.X + (footprint.Dx()-c.EntranceWidth)/2
	ey := footprint.Max.Y - c.EntranceHeight - 2*tileSize
	entrance = image.Rect(ex, ey, ex+c.EntranceWidth, ey+c.EntranceHeight)

	sx := footprint.Min.X + c.EntranceWidth/2
	sy := footprint.Max.Y - 5*tileSize
	solid = image.Rect(sx, sy, sx+footprint.Dx()-c.EntranceWidth, sy+3*tileSize)

	return footprint, solid, entrance
}

// CreateCave spawns the cave and registers its solid and entrance zones in space.
func CreateCave(ecs *ecs.ECS, space *resolv.Space, anchor image.Point, tileSize int) *donburi.Entry {
	footprint, solid, entrance := CaveGeometry(anchor, tileSize)

	cave := archetypes.Cave.Spawn(ecs)
	components.Cave.SetValue(cave, components.CaveData{
		Footprint: footprint,
		Solid:     solid,
		Entrance:  entrance,
	})

	createCaveZone(ecs, space, solid, tags.ResolvCaveSolid)
	createCaveZone(ecs, space, entrance, tags.ResolvCaveEntrance)

	return cave
}

func createCaveZone(ecs *ecs.ECS, space *resolv.Space, r image.Rectangle, tag string) *donburi.Entry {
	zone := archetypes.CaveZone.Spawn(ecs)

	w, h := float64(r.Dx()), float64(r.Dy())
	obj := resolv.NewObject(float64(r.Min.X), float64(r.Min.Y), w, h, tag)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = zone
	components.Object.SetValue(zone, components.ObjectData{Object: obj})
	space.Add(obj)

	return zone
}
