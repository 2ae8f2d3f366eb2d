package systems

import (
	"image/color"

	"github.com/automoto/cave-island/components"
	cfg "github.com/automoto/cave-island/config"
	"github.com/automoto/cave-island/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// Cached font face for message rendering (lazy initialized)
var messageFontFace font.Face

// ShowMessage flashes text at the top of the screen. A new message replaces the old one.
func ShowMessage(ecs *ecs.ECS, msg string) {
	state := getOrCreateMessageState(ecs)
	state.Text = msg
	state.Alpha = 1
	state.Fade = gween.New(1, 0, cfg.Message.Duration, ease.InQuad)
}

// UpdateMessage fades the active message out.
func UpdateMessage(ecs *ecs.ECS) {
	state := getOrCreateMessageState(ecs)
	if state.Fade == nil {
		return
	}

	alpha, done := state.Fade.Update(float32(getOrCreateClock(ecs).Delta))
	state.Alpha = alpha
	if done {
		state.Fade = nil
		state.Text = ""
		state.Alpha = 0
	}
}

// DrawMessage renders the active message at the top center of the screen
func DrawMessage(ecs *ecs.ECS, screen *ebiten.Image) {
	state := getOrCreateMessageState(ecs)
	if state.Text == "" || state.Alpha <= 0 {
		return
	}

	// Lazy initialize cached font face
	if messageFontFace == nil {
		messageFontFace = fonts.Bold.Get()
	}

	bounds := text.BoundString(messageFontFace, state.Text) //nolint:staticcheck // TODO: migrate to text/v2
	textWidth := bounds.Dx()
	textHeight := bounds.Dy()

	padding := cfg.Message.BoxPadding
	boxWidth := float32(textWidth) + float32(padding)*2
	boxHeight := float32(textHeight) + float32(padding)*2

	// Position at top center
	screenWidth := float64(screen.Bounds().Dx())
	boxX := float32((screenWidth - float64(boxWidth)) / 2)
	boxY := float32(cfg.Message.TopMargin)

	vector.FillRect(
		screen,
		boxX, boxY,
		boxWidth, boxHeight,
		fade(cfg.Message.BoxColor, state.Alpha),
		false,
	)

	textX := int(boxX + float32(padding))
	textY := int(boxY + float32(padding) + float32(textHeight))
	text.Draw(screen, state.Text, messageFontFace, textX, textY, fade(cfg.Message.TextColor, state.Alpha)) //nolint:staticcheck // TODO: migrate to text/v2
}

// fade scales a straight-alpha color by a into the premultiplied form ebiten expects.
func fade(c color.RGBA, a float32) color.RGBA {
	if a >= 1 {
		return c
	}
	if a < 0 {
		a = 0
	}
	return color.RGBA{
		R: uint8(float32(c.R) * a),
		G: uint8(float32(c.G) * a),
		B: uint8(float32(c.B) * a),
		A: uint8(float32(c.A) * a),
	}
}

// getOrCreateMessageState returns the singleton MessageState component
func getOrCreateMessageState(ecs *ecs.ECS) *components.MessageStateData {
	entry, ok := components.MessageState.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.MessageState))
	}
	return components.MessageState.Get(entry)
}
