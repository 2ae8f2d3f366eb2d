package components

import (
	"github.com/automoto/cave-island/assets/animations"
	"github.com/yohamta/donburi"
)

// Facing is the direction the hero looks at. The order matches the sprite sheet rows.
type Facing int

const (
	FacingDown Facing = iota
	FacingRight
	FacingUp
	FacingLeft
)

func (f Facing) String() string {
	switch f {
	case FacingDown:
		return "down"
	case FacingRight:
		return "right"
	case FacingUp:
		return "up"
	case FacingLeft:
		return "left"
	}
	return "unknown"
}

type PlayerData struct {
	Facing Facing
	Moving bool
	Walk   *animations.Animation

	// Speed is the movement speed for the next frame in world units per second.
	Speed         float64
	BuffRemaining float64 // seconds
}

var Player = donburi.NewComponentType[PlayerData]()
