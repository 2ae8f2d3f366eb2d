package components

import "github.com/yohamta/donburi"

// SceneRequestData is raised by systems and consumed by the owning scene after the ECS update.
type SceneRequestData struct {
	EnterCave bool
	ExitCave  bool
}

var SceneRequest = donburi.NewComponentType[SceneRequestData]()
