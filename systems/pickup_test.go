package systems

import (
	"image"
	"slices"
	"testing"

	"github.com/automoto/cave-island/components"
	cfg "github.com/automoto/cave-island/config"
	"github.com/automoto/cave-island/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

func addFruit(t *testing.T, e *ecs.ECS, tile image.Point) {
	t.Helper()
	entry, ok := components.Space.First(e.World)
	if !ok {
		t.Fatal("no space")
	}
	factory.CreateCollectible(e, components.Space.Get(entry), tile, cfg.World.TileSize)
}

func TestUpdatePickupsOneFruitPerFrame(t *testing.T) {
	e := newTestWorld(t)
	player, _ := playerOf(t, e)

	// Two fruits stacked just below the spawn tile, inside the hero box.
	addFruit(t, e, image.Pt(50, 33))
	addFruit(t, e, image.Pt(50, 33))
	addFruit(t, e, image.Pt(10, 50))

	UpdatePickups(e)
	if got := CollectiblesRemaining(e); got != 2 {
		t.Fatalf("remaining after first frame = %d, want 2", got)
	}
	if got := GetStats(e).FruitsCollected; got != 1 {
		t.Errorf("FruitsCollected = %d, want 1", got)
	}
	if player.Speed != cfg.Player.BuffedSpeed {
		t.Errorf("speed = %v, want %v", player.Speed, cfg.Player.BuffedSpeed)
	}
	if got := getOrCreateMessageState(e).Text; got != cfg.Message.PickupText {
		t.Errorf("message = %q, want %q", got, cfg.Message.PickupText)
	}

	UpdatePickups(e)
	if got := CollectiblesRemaining(e); got != 1 {
		t.Errorf("remaining after second frame = %d, want 1", got)
	}

	UpdatePickups(e)
	if got := CollectiblesRemaining(e); got != 1 {
		t.Errorf("remaining with nothing touching = %d, want 1", got)
	}
}

func TestSpeedBuffExpires(t *testing.T) {
	e := newTestWorld(t)
	player, _ := playerOf(t, e)
	addFruit(t, e, image.Pt(50, 32))
	addFruit(t, e, image.Pt(20, 50))

	UpdatePickups(e)
	if player.Speed != cfg.Player.BuffedSpeed {
		t.Fatalf("speed after pickup = %v, want %v", player.Speed, cfg.Player.BuffedSpeed)
	}

	// 5 seconds at 60 ticks per second is 300 frames including the pickup frame.
	for range 290 {
		UpdatePickups(e)
	}
	if player.Speed != cfg.Player.BuffedSpeed {
		t.Errorf("speed before expiry = %v, want %v", player.Speed, cfg.Player.BuffedSpeed)
	}

	for range 20 {
		UpdatePickups(e)
	}
	if player.Speed != cfg.Player.NormalSpeed {
		t.Errorf("speed after expiry = %v, want %v", player.Speed, cfg.Player.NormalSpeed)
	}
	if player.BuffRemaining > 0 {
		t.Errorf("BuffRemaining = %v, want <= 0", player.BuffRemaining)
	}
}

func TestSecondFruitRestartsBuff(t *testing.T) {
	e := newTestWorld(t)
	player, _ := playerOf(t, e)
	addFruit(t, e, image.Pt(50, 32))

	UpdatePickups(e)
	for range 200 {
		UpdatePickups(e)
	}
	addFruit(t, e, image.Pt(50, 32))
	addFruit(t, e, image.Pt(20, 50))
	UpdatePickups(e)

	want := cfg.Player.BuffDuration - testDT
	if diff := player.BuffRemaining - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("BuffRemaining = %v, want %v", player.BuffRemaining, want)
	}
}

func TestClearingIslandShowsMessage(t *testing.T) {
	e := newTestWorld(t)
	addFruit(t, e, image.Pt(50, 32))

	UpdatePickups(e)
	if got := CollectiblesRemaining(e); got != 0 {
		t.Fatalf("remaining = %d, want 0", got)
	}
	if got := getOrCreateMessageState(e).Text; got != "Island cleared!" {
		t.Errorf("message = %q, want %q", got, "Island cleared!")
	}
}

func TestMessageFadesOut(t *testing.T) {
	e := newTestWorld(t)
	ShowMessage(e, "hello")

	state := getOrCreateMessageState(e)
	if state.Text != "hello" || state.Alpha != 1 {
		t.Fatalf("state = %q alpha %v, want hello alpha 1", state.Text, state.Alpha)
	}

	frames := int(float64(cfg.Message.Duration)/testDT) + 5
	for range frames {
		UpdateMessage(e)
	}
	if state.Alpha > 0 {
		t.Errorf("alpha = %v, want 0 after %d frames", state.Alpha, frames)
	}
}

func TestPickupQueuesSounds(t *testing.T) {
	e := newTestWorld(t)
	cfg.Player.BuffDuration = testDT / 2
	addFruit(t, e, image.Pt(50, 32))
	addFruit(t, e, image.Pt(20, 50))

	UpdatePickups(e)
	UpdatePickups(e)

	want := []cfg.SoundID{cfg.SoundPickup, cfg.SoundBuffEnd}
	if got := getOrCreateAudio(e).PendingSFX; !slices.Equal(got, want) {
		t.Errorf("PendingSFX = %v, want %v", got, want)
	}
}
