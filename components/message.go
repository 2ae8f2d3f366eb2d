package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// MessageStateData is a singleton tracking the flash message at the top of the screen
type MessageStateData struct {
	Text  string
	Fade  *gween.Tween // alpha 1 -> 0, nil when nothing is shown
	Alpha float32
}

var MessageState = donburi.NewComponentType[MessageStateData]()
