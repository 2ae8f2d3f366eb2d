package systems

import (
	"image"

	"github.com/automoto/cave-island/components"
	cfg "github.com/automoto/cave-island/config"
	"github.com/automoto/cave-island/tags"
	"github.com/solarlune/resolv"
)

// heroBox is the hero's full bounding box at (x, y), truncated to whole pixels.
func heroBox(x, y float64) image.Rectangle {
	ix, iy := int(x), int(y)
	return image.Rect(ix, iy, ix+cfg.Player.FrameWidth, iy+cfg.Player.FrameHeight)
}

// feetRect is the strip at the bottom of the hero box that collides with scenery.
func feetRect(x, y float64) image.Rectangle {
	ix, iy := int(x), int(y)
	left := ix + cfg.Player.FeetMarginX
	top := iy + cfg.Player.FrameHeight - cfg.Player.FeetHeight
	return image.Rect(
		left, top,
		left+cfg.Player.FrameWidth-2*cfg.Player.FeetMarginX, top+cfg.Player.FeetHeight,
	)
}

// cornersWalkable reports whether all four corners of the hero box at (x, y) sit on walkable tiles.
func cornersWalkable(grid *components.GridData, x, y float64) bool {
	size := grid.TileSize
	left := floorDiv(int(x), size)
	right := floorDiv(int(x+float64(cfg.Player.FrameWidth-1)), size)
	top := floorDiv(int(y), size)
	bottom := floorDiv(int(y+float64(cfg.Player.FrameHeight-1)), size)

	return grid.Walkable(left, top) &&
		grid.Walkable(right, top) &&
		grid.Walkable(left, bottom) &&
		grid.Walkable(right, bottom)
}

// caveAllows reports whether feet may stand where it is. Touching any entrance
// cancels a solid hit.
func caveAllows(feet image.Rectangle, solids, entrances []image.Rectangle) bool {
	for _, e := range entrances {
		if feet.Overlaps(e) {
			return true
		}
	}
	for _, s := range solids {
		if feet.Overlaps(s) {
			return false
		}
	}
	return true
}

// caveZonesNear returns the cave solid and entrance rectangles sharing a space cell with obj.
func caveZonesNear(obj *resolv.Object) (solids, entrances []image.Rectangle) {
	if obj.Space == nil {
		return nil, nil
	}
	collision := obj.Check(0, 0, tags.ResolvCaveSolid, tags.ResolvCaveEntrance)
	if collision == nil {
		return nil, nil
	}
	for _, o := range collision.ObjectsByTags(tags.ResolvCaveSolid) {
		solids = append(solids, objectRect(o))
	}
	for _, o := range collision.ObjectsByTags(tags.ResolvCaveEntrance) {
		entrances = append(entrances, objectRect(o))
	}
	return solids, entrances
}

// tryMove moves obj to (x, y) if the tiles and the cave allow it and reports
// whether it did. A rejected move leaves obj where it was.
func tryMove(grid *components.GridData, obj *resolv.Object, x, y float64) bool {
	if !cornersWalkable(grid, x, y) {
		return false
	}

	prevX, prevY := obj.X, obj.Y
	obj.X, obj.Y = x, y
	obj.Update()

	solids, entrances := caveZonesNear(obj)
	if caveAllows(feetRect(x, y), solids, entrances) {
		return true
	}

	obj.X, obj.Y = prevX, prevY
	obj.Update()
	return false
}

func objectRect(o *resolv.Object) image.Rectangle {
	return image.Rect(int(o.X), int(o.Y), int(o.X+o.W), int(o.Y+o.H))
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
