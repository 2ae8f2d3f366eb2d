package scenes

import "github.com/hajimehoshi/ebiten/v2"

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// Scene is what the game loop drives each tick.
type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}
