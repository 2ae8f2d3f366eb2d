package systems

import (
	"testing"

	"github.com/automoto/cave-island/components"
	cfg "github.com/automoto/cave-island/config"
)

func TestClampCamera(t *testing.T) {
	tests := []struct {
		name         string
		x, y         float64
		levelW       float64
		levelH       float64
		wantX, wantY float64
	}{
		{name: "free", x: 1600, y: 1024, levelW: 3200, levelH: 3200, wantX: 1600, wantY: 1024},
		{name: "top left corner", x: 100, y: 100, levelW: 3200, levelH: 3200, wantX: 320, wantY: 180},
		{name: "bottom right corner", x: 3190, y: 3190, levelW: 3200, levelH: 3200, wantX: 2880, wantY: 3020},
		{name: "level smaller than screen", x: 150, y: 50, levelW: 200, levelH: 100, wantX: 320, wantY: 180},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x, y := clampCamera(tc.x, tc.y, tc.levelW, tc.levelH, 640, 360)
			if x != tc.wantX || y != tc.wantY {
				t.Errorf("clampCamera() = (%v, %v), want (%v, %v)", x, y, tc.wantX, tc.wantY)
			}
		})
	}
}

func TestUpdateCameraFollowsPlayer(t *testing.T) {
	e := newTestWorld(t)
	placePlayer(t, e, 2000, 40)

	UpdateCamera(e)

	entry, ok := components.Camera.First(e.World)
	if !ok {
		t.Fatal("no camera")
	}
	pos := components.Camera.Get(entry).Position
	if pos.X != 2000 || pos.Y != float64(cfg.C.Height)/2 {
		t.Errorf("camera = (%v, %v), want (2000, %v)", pos.X, pos.Y, cfg.C.Height/2)
	}

	x, y, ok := viewOrigin(e, cfg.C.Width, cfg.C.Height)
	if !ok || x != 1680 || y != 0 {
		t.Errorf("viewOrigin() = (%v, %v, %v), want (1680, 0, true)", x, y, ok)
	}
}
