package systems

import (
	"fmt"
	"image"

	"github.com/automoto/cave-island/components"
	cfg "github.com/automoto/cave-island/config"
	"github.com/automoto/cave-island/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines the tile grid, the hero box and feet, the fruit footprints and
// the cave zones when the overlay is on.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.DebugOverlay {
		return
	}

	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	originX, originY, ok := viewOrigin(ecs, width, height)
	if !ok {
		return
	}
	view := image.Rect(int(originX), int(originY), int(originX)+width, int(originY)+height)

	if levelEntry, ok := components.Level.First(ecs.World); ok {
		grid := components.Level.Get(levelEntry).Grid
		size := grid.TileSize
		for ty := floorDiv(view.Min.Y, size); ty <= floorDiv(view.Max.Y, size); ty++ {
			for tx := floorDiv(view.Min.X, size); tx <= floorDiv(view.Max.X, size); tx++ {
				if grid.InBounds(tx, ty) {
					strokeWorldRect(screen, view, image.Rect(tx*size, ty*size, (tx+1)*size, (ty+1)*size), cfg.FaintYellow)
				}
			}
		}
	}

	components.Collectible.Each(ecs.World, func(e *donburi.Entry) {
		strokeWorldRect(screen, view, objectRect(components.Object.Get(e).Object), cfg.Yellow)
	})

	if caveEntry, ok := components.Cave.First(ecs.World); ok {
		cave := components.Cave.Get(caveEntry)
		strokeWorldRect(screen, view, cave.Solid, cfg.Yellow)
		strokeWorldRect(screen, view, cave.Entrance, cfg.Yellow)
	}

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	o := components.Object.Get(playerEntry)
	player := components.Player.Get(playerEntry)
	strokeWorldRect(screen, view, heroBox(o.X, o.Y), cfg.Yellow)
	strokeWorldRect(screen, view, feetRect(o.X, o.Y), cfg.Red)

	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	tx, ty := components.Level.Get(levelEntry).Grid.TileAtWorld(o.X, o.Y)
	info := fmt.Sprintf("pos %.1f,%.1f tile %d,%d\nfacing %s speed %.0f buff %.2f\nTPS %.0f",
		o.X, o.Y, tx, ty, player.Facing, player.Speed, max(player.BuffRemaining, 0), ebiten.ActualTPS())
	ebitenutil.DebugPrintAt(screen, info, hudMargin, height-48)
}
