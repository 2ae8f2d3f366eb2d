package components

import "github.com/yohamta/donburi"

// StatsData accumulates what a play session did. It is written to the run history on exit.
type StatsData struct {
	FruitsCollected int
	CaveVisits      int
}

var Stats = donburi.NewComponentType[StatsData]()
