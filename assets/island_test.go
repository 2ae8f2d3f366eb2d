package assets

import (
	"image"
	"math"
	"testing"
)

func testParams() IslandParams {
	return IslandParams{
		Width:          100,
		Height:         100,
		TileSize:       32,
		Center:         image.Pt(50, 50),
		IslandRadius:   40,
		LakeRadius:     8,
		SpawnTile:      image.Pt(50, 32),
		CaveAnchorTile: image.Pt(50, 15),
	}
}

func TestGenerateIslandLandIsRing(t *testing.T) {
	p := testParams()
	level := GenerateIsland(p)
	grid := level.Grid

	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			d := math.Hypot(float64(x-50), float64(y-50))
			want := d > 8 && d < 40
			if got := grid.Walkable(x, y); got != want {
				t.Fatalf("Walkable(%d,%d) = %v, want %v (distance %.3f)", x, y, got, want, d)
			}
		}
	}
}

func TestGenerateIslandKnownCells(t *testing.T) {
	grid := GenerateIsland(testParams()).Grid

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{name: "center is lake", x: 50, y: 50, want: false},
		{name: "exactly lake radius is water", x: 58, y: 50, want: false},
		{name: "just outside lake", x: 59, y: 50, want: true},
		{name: "just inside coast", x: 89, y: 50, want: true},
		{name: "exactly island radius is water", x: 90, y: 50, want: false},
		{name: "corner is sea", x: 0, y: 0, want: false},
		{name: "spawn tile", x: 50, y: 32, want: true},
		{name: "cave anchor", x: 50, y: 15, want: true},
		{name: "outside grid", x: -1, y: 50, want: false},
		{name: "outside grid far", x: 100, y: 100, want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := grid.Walkable(tc.x, tc.y); got != tc.want {
				t.Errorf("Walkable(%d,%d) = %v, want %v", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestGenerateIslandIsDeterministic(t *testing.T) {
	a := GenerateIsland(testParams()).Grid
	b := GenerateIsland(testParams()).Grid
	for i := range a.Tiles {
		if a.Tiles[i] != b.Tiles[i] {
			t.Fatalf("tile %d differs between runs", i)
		}
	}
}

func TestGenerateIslandDimensions(t *testing.T) {
	level := GenerateIsland(testParams())
	if level.Width() != 3200 || level.Height() != 3200 {
		t.Errorf("size = %dx%d, want 3200x3200", level.Width(), level.Height())
	}
	if level.SpawnTile != image.Pt(50, 32) {
		t.Errorf("SpawnTile = %v, want (50,32)", level.SpawnTile)
	}
	if level.CaveAnchorTile != image.Pt(50, 15) {
		t.Errorf("CaveAnchorTile = %v, want (50,15)", level.CaveAnchorTile)
	}
}

func TestTileAtWorldFloors(t *testing.T) {
	grid := GenerateIsland(testParams()).Grid

	tests := []struct {
		px, py float64
		wx, wy int
	}{
		{px: 0, py: 0, wx: 0, wy: 0},
		{px: 31.9, py: 32, wx: 0, wy: 1},
		{px: 1600, py: 1024, wx: 50, wy: 32},
		{px: -0.5, py: -32, wx: -1, wy: -1},
	}
	for _, tc := range tests {
		x, y := grid.TileAtWorld(tc.px, tc.py)
		if x != tc.wx || y != tc.wy {
			t.Errorf("TileAtWorld(%v,%v) = (%d,%d), want (%d,%d)", tc.px, tc.py, x, y, tc.wx, tc.wy)
		}
	}
}
