package systems

import (
	"github.com/automoto/cave-island/components"
	cfg "github.com/automoto/cave-island/config"
	"github.com/automoto/cave-island/tags"
	"github.com/charmbracelet/log"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePickups collects at most one speed fruit touching the hero this frame and
// then runs the speed buff timer. Must run after UpdatePlayer.
func UpdatePickups(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	obj := components.Object.Get(playerEntry)
	dt := getOrCreateClock(ecs).Delta

	if fruit := touchingFruit(ecs, obj.Object); fruit != nil {
		collectFruit(ecs, fruit)
		player.BuffRemaining = cfg.Player.BuffDuration
	}

	if updateSpeedBuff(player, dt) {
		PlaySFX(ecs, cfg.SoundBuffEnd)
	}
}

// touchingFruit returns a collectible whose footprint overlaps the hero box, or nil.
func touchingFruit(ecs *ecs.ECS, obj *resolv.Object) *donburi.Entry {
	if obj.Space == nil {
		return nil
	}
	collision := obj.Check(0, 0, tags.ResolvFruit)
	if collision == nil {
		return nil
	}

	box := heroBox(obj.X, obj.Y)
	for _, o := range collision.ObjectsByTags(tags.ResolvFruit) {
		if !box.Overlaps(objectRect(o)) {
			continue
		}
		if entry, ok := o.Data.(*donburi.Entry); ok && entry.Valid() {
			return entry
		}
	}
	return nil
}

func collectFruit(ecs *ecs.ECS, fruit *donburi.Entry) {
	obj := components.Object.Get(fruit)
	if obj.Space != nil {
		obj.Space.Remove(obj.Object)
	}
	ecs.World.Remove(fruit.Entity())

	stats := getOrCreateStats(ecs)
	stats.FruitsCollected++
	remaining := CollectiblesRemaining(ecs)
	log.Debug("speed fruit collected", "collected", stats.FruitsCollected, "remaining", remaining)

	ShowMessage(ecs, cfg.Message.PickupText)
	PlaySFX(ecs, cfg.SoundPickup)

	if remaining == 0 {
		recordClear(ecs, getOrCreateClock(ecs).Elapsed)
	}
}

// updateSpeedBuff counts the buff down once and picks the speed for the next frame.
// It reports whether the buff ran out on this call.
func updateSpeedBuff(player *components.PlayerData, dt float64) bool {
	if player.BuffRemaining > 0 {
		player.BuffRemaining -= dt
		player.Speed = cfg.Player.BuffedSpeed
		return false
	}
	ended := player.Speed != cfg.Player.NormalSpeed
	if ended {
		log.Debug("speed buff over")
	}
	player.Speed = cfg.Player.NormalSpeed
	return ended
}

// CollectiblesRemaining counts the speed fruits still on the island.
func CollectiblesRemaining(ecs *ecs.ECS) int {
	n := 0
	components.Collectible.Each(ecs.World, func(*donburi.Entry) {
		n++
	})
	return n
}
