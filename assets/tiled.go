package assets

import (
	"fmt"
	"image"
	"io"
	"path/filepath"

	"github.com/lafriks/go-tiled"
)

// Names used in island TMX files.
const (
	LandLayer         = "land"
	MarkersGroup      = "Markers"
	PlayerSpawnMarker = "PlayerSpawn"
	CaveMarker        = "Cave"
)

// LoadLevelTMX loads an island layout from a Tiled map. Every non-empty cell of the
// "land" layer is walkable grass, everything else is water. The "Markers" object group
// places the player spawn and the cave anchor.
func LoadLevelTMX(path string) (*Level, error) {
	levelMap, err := tiled.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load map %s: %w", path, err)
	}
	level, err := levelFromMap(levelMap)
	if err != nil {
		return nil, fmt.Errorf("invalid map %s: %w", path, err)
	}
	level.Name = filepath.Base(path)
	return level, nil
}

// LoadLevelTMXReader is LoadLevelTMX for an in-memory map. baseDir resolves external tilesets.
func LoadLevelTMXReader(baseDir string, r io.Reader) (*Level, error) {
	levelMap, err := tiled.LoadReader(baseDir, r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse map: %w", err)
	}
	return levelFromMap(levelMap)
}

func levelFromMap(m *tiled.Map) (*Level, error) {
	if m.TileWidth != m.TileHeight {
		return nil, fmt.Errorf("tiles must be square, got %dx%d", m.TileWidth, m.TileHeight)
	}

	var land *tiled.Layer
	for _, layer := range m.Layers {
		if layer.Name == LandLayer {
			land = layer
			break
		}
	}
	if land == nil {
		return nil, fmt.Errorf("no %q layer", LandLayer)
	}

	grid := newWaterGrid(m.Width, m.Height, m.TileWidth)
	for i, t := range land.Tiles {
		if t == nil || t.IsNil() {
			continue
		}
		grid.Set(i%m.Width, i/m.Width, grassTile())
	}

	level := &Level{Grid: grid}
	var haveSpawn, haveCave bool
	for _, og := range m.ObjectGroups {
		if og.Name != MarkersGroup {
			continue
		}
		for _, o := range og.Objects {
			tile := image.Pt(int(o.X)/m.TileWidth, int(o.Y)/m.TileHeight)
			switch o.Name {
			case PlayerSpawnMarker:
				level.SpawnTile = tile
				haveSpawn = true
			case CaveMarker:
				level.CaveAnchorTile = tile
				haveCave = true
			}
		}
	}

	if !haveSpawn {
		return nil, fmt.Errorf("no %q marker in %q", PlayerSpawnMarker, MarkersGroup)
	}
	if !haveCave {
		return nil, fmt.Errorf("no %q marker in %q", CaveMarker, MarkersGroup)
	}
	if !grid.Walkable(level.SpawnTile.X, level.SpawnTile.Y) {
		return nil, fmt.Errorf("spawn tile %v is not on land", level.SpawnTile)
	}
	return level, nil
}
