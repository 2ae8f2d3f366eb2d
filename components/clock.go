package components

import "github.com/yohamta/donburi"

// ClockData is the per-scene frame clock.
type ClockData struct {
	Delta   float64 // seconds elapsed this tick
	Elapsed float64 // seconds since the scene started
}

var Clock = donburi.NewComponentType[ClockData]()
