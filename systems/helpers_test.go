package systems

import (
	"testing"

	"github.com/automoto/cave-island/assets"
	"github.com/automoto/cave-island/components"
	cfg "github.com/automoto/cave-island/config"
	"github.com/automoto/cave-island/systems/factory"
	"github.com/automoto/cave-island/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const testDT = 1.0 / 60

// newTestWorld builds the default island without any fruits, ticking at 60 TPS.
func newTestWorld(t *testing.T) *ecs.ECS {
	t.Helper()
	cfg.Reset()
	cfg.Collectible.Count = 0
	t.Cleanup(cfg.Reset)

	e := ecs.NewECS(donburi.NewWorld())
	level := assets.GenerateIsland(assets.DefaultIslandParams())
	if err := factory.CreateOverworld(e, level, 42); err != nil {
		t.Fatalf("CreateOverworld() failed: %v", err)
	}
	getOrCreateClock(e).Delta = testDT
	return e
}

func playerOf(t *testing.T, e *ecs.ECS) (*components.PlayerData, *components.ObjectData) {
	t.Helper()
	entry, ok := tags.Player.First(e.World)
	if !ok {
		t.Fatal("no player")
	}
	return components.Player.Get(entry), components.Object.Get(entry)
}

func placePlayer(t *testing.T, e *ecs.ECS, x, y float64) {
	t.Helper()
	_, obj := playerOf(t, e)
	obj.X, obj.Y = x, y
	obj.Update()
}

// hold makes exactly the given actions pressed for the next tick.
func hold(e *ecs.ECS, actions ...cfg.ActionID) {
	input := getOrCreateInput(e)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	for _, a := range actions {
		input.Current[a] = true
	}
}

func caveOf(t *testing.T, e *ecs.ECS) *components.CaveData {
	t.Helper()
	entry, ok := components.Cave.First(e.World)
	if !ok {
		t.Fatal("no cave")
	}
	return components.Cave.Get(entry)
}
