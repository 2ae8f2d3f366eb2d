package ui

import (
	"bytes"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// CaveUI is the inside-the-cave screen: a centered message and a return hint.
type CaveUI struct {
	UI *ebitenui.UI

	messageFace text.Face
	hintFace    text.Face
}

func NewCaveUI(message, hint string) *CaveUI {
	ui := &CaveUI{}
	ui.loadFonts()
	ui.buildUI(message, hint)
	return ui
}

func (ui *CaveUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatal("failed to load UI font", "err", err)
	}

	ui.messageFace = &text.GoTextFace{Source: fontSource, Size: 20}
	ui.hintFace = &text.GoTextFace{Source: fontSource, Size: 10}
}

func (ui *CaveUI) buildUI(message, hint string) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{0, 0, 0, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(12),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	messageLabel := widget.NewLabel(
		widget.LabelOpts.Text(message, &ui.messageFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	contentContainer.AddChild(messageLabel)

	if hint != "" {
		hintLabel := widget.NewLabel(
			widget.LabelOpts.Text(hint, &ui.hintFace, &widget.LabelColor{
				Idle: color.RGBA{150, 150, 150, 255},
			}),
		)
		contentContainer.AddChild(hintLabel)
	}

	rootContainer.AddChild(contentContainer)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *CaveUI) Update() {
	ui.UI.Update()
}

func (ui *CaveUI) Draw(screen *ebiten.Image) {
	ui.UI.Draw(screen)
}
