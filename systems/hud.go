package systems

import (
	"fmt"

	"github.com/automoto/cave-island/components"
	cfg "github.com/automoto/cave-island/config"
	"github.com/automoto/cave-island/fonts"
	"github.com/automoto/cave-island/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudBarWidth  = 130
	hudBarHeight = 8
	hudMargin    = 10
	hudLineGap   = 14
)

// DrawHUD renders the fruits counter and the speed buff bar in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	face := fonts.Regular.Get()

	label := fmt.Sprintf("Fruits left: %d", CollectiblesRemaining(ecs))
	if best := LoadRecords().FastestClear; best > 0 {
		label += fmt.Sprintf("   Best clear: %.1fs", best)
	}
	text.Draw(screen, label, face, hudMargin, hudMargin+hudLineGap/2, cfg.White) //nolint:staticcheck // TODO: migrate to text/v2

	if player.BuffRemaining <= 0 {
		return
	}

	barY := float32(hudMargin + hudLineGap)
	vector.FillRect(screen,
		float32(hudMargin), barY,
		float32(hudBarWidth), float32(hudBarHeight),
		cfg.BarBg, false)

	ratio := float32(player.BuffRemaining / cfg.Player.BuffDuration)
	if ratio > 1 {
		ratio = 1
	}
	vector.FillRect(screen,
		float32(hudMargin), barY,
		float32(hudBarWidth)*ratio, float32(hudBarHeight),
		cfg.BuffBar, false)
}
