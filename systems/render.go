package systems

import (
	"image"
	"image/color"

	"github.com/automoto/cave-island/components"
	cfg "github.com/automoto/cave-island/config"
	"github.com/automoto/cave-island/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawWorld draws the visible tiles, the fruits and the hero between the two cave
// slices: the lower slice behind the hero, the upper one in front of it.
func DrawWorld(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Cornflower)

	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	originX, originY, ok := viewOrigin(ecs, width, height)
	if !ok {
		return
	}
	view := image.Rect(int(originX), int(originY), int(originX)+width, int(originY)+height)

	drawTiles(ecs, screen, view)
	drawCollectibles(ecs, screen, view)

	caveEntry, hasCave := components.Cave.First(ecs.World)
	var upper, lower image.Rectangle
	if hasCave {
		upper, lower = caveSlices(components.Cave.Get(caveEntry).Footprint)
		drawCaveLower(screen, components.Cave.Get(caveEntry), lower, view)
	}

	drawHero(ecs, screen, view)

	if hasCave {
		fillWorldRect(screen, view, upper, cfg.CaveRockTop)
	}
}

// caveSlices splits the cave footprint where the front of the art begins.
func caveSlices(footprint image.Rectangle) (upper, lower image.Rectangle) {
	split := footprint.Min.Y + int(float64(cfg.Cave.SplitOffsetY)*cfg.Cave.Scale)
	upper = image.Rect(footprint.Min.X, footprint.Min.Y, footprint.Max.X, split)
	lower = image.Rect(footprint.Min.X, split, footprint.Max.X, footprint.Max.Y)
	return upper, lower
}

func drawTiles(ecs *ecs.ECS, screen *ebiten.Image, view image.Rectangle) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	grid := components.Level.Get(levelEntry).Grid
	size := grid.TileSize

	x0, y0 := floorDiv(view.Min.X, size), floorDiv(view.Min.Y, size)
	x1, y1 := floorDiv(view.Max.X, size), floorDiv(view.Max.Y, size)
	for ty := y0; ty <= y1; ty++ {
		for tx := x0; tx <= x1; tx++ {
			tile, ok := grid.At(tx, ty)
			if !ok {
				continue
			}
			fillWorldRect(screen, view, image.Rect(tx*size, ty*size, (tx+1)*size, (ty+1)*size), tileColor(tile, tx, ty))
		}
	}
}

// tileColor checkers each terrain slightly so movement reads on flat colors.
func tileColor(t components.Tile, x, y int) color.RGBA {
	odd := (x+y)%2 != 0
	switch t.Terrain {
	case components.TerrainGrass:
		if odd {
			return cfg.GrassDark
		}
		return cfg.Grass
	default:
		if odd {
			return cfg.WaterDark
		}
		return cfg.Water
	}
}

func drawCollectibles(ecs *ecs.ECS, screen *ebiten.Image, view image.Rectangle) {
	inset := (cfg.Collectible.Size - cfg.Collectible.DrawSize) / 2
	components.Collectible.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		r := objectRect(o.Object).Inset(inset)
		fillWorldRect(screen, view, r, cfg.Fruit)
	})
}

func drawCaveLower(screen *ebiten.Image, cave *components.CaveData, lower, view image.Rectangle) {
	fillWorldRect(screen, view, lower, cfg.CaveRock)
	fillWorldRect(screen, view, cave.Entrance, cfg.CaveMouth)
}

func drawHero(ecs *ecs.ECS, screen *ebiten.Image, view image.Rectangle) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	o := components.Object.Get(playerEntry)

	box := heroBox(o.X, o.Y)
	// Bob one pixel on the second walk frame.
	if player.Walk != nil && player.Walk.Frame()%2 == 1 {
		box = box.Add(image.Pt(0, -1))
	}

	head := image.Rect(box.Min.X+6, box.Min.Y, box.Max.X-6, box.Min.Y+16)
	body := image.Rect(box.Min.X+4, head.Max.Y, box.Max.X-4, box.Max.Y)
	fillWorldRect(screen, view, body, cfg.HeroTunic)
	fillWorldRect(screen, view, head, cfg.Hero)
	fillWorldRect(screen, view, facingMark(head, player.Facing), cfg.CaveMouth)
}

// facingMark is a small marker on the side of the head the hero looks towards.
func facingMark(head image.Rectangle, f components.Facing) image.Rectangle {
	c := image.Pt((head.Min.X+head.Max.X)/2, (head.Min.Y+head.Max.Y)/2)
	switch f {
	case components.FacingUp:
		return image.Rect(c.X-2, head.Min.Y, c.X+2, head.Min.Y+3)
	case components.FacingLeft:
		return image.Rect(head.Min.X, c.Y-2, head.Min.X+3, c.Y+2)
	case components.FacingRight:
		return image.Rect(head.Max.X-3, c.Y-2, head.Max.X, c.Y+2)
	default:
		return image.Rect(c.X-2, head.Max.Y-3, c.X+2, head.Max.Y)
	}
}

// fillWorldRect fills r, given in world units, if it intersects the view.
func fillWorldRect(screen *ebiten.Image, view, r image.Rectangle, c color.Color) {
	if !r.Overlaps(view) {
		return
	}
	vector.FillRect(screen,
		float32(r.Min.X-view.Min.X), float32(r.Min.Y-view.Min.Y),
		float32(r.Dx()), float32(r.Dy()),
		c, false)
}

// strokeWorldRect outlines r, given in world units, if it intersects the view.
func strokeWorldRect(screen *ebiten.Image, view, r image.Rectangle, c color.Color) {
	if !r.Overlaps(view) {
		return
	}
	vector.StrokeRect(screen,
		float32(r.Min.X-view.Min.X), float32(r.Min.Y-view.Min.Y),
		float32(r.Dx()), float32(r.Dy()),
		1, c, false)
}
