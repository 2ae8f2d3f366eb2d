package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/cave-island/components"
	cfg "github.com/automoto/cave-island/config"
	"github.com/automoto/cave-island/systems"
	"github.com/automoto/cave-island/ui"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CaveScene is the inside of the cave. Any key pressed after entering returns to
// the scene it came from.
type CaveScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	back         Scene
	inputMethod  components.InputMethod // picks the return hint
	ui           *ui.CaveUI
	fade         *gween.Tween
	veil         float32 // alpha of the black layer over the UI
	once         sync.Once
}

func NewCaveScene(sc SceneChanger, back Scene, method components.InputMethod) *CaveScene {
	return &CaveScene{sceneChanger: sc, back: back, inputMethod: method}
}

// Back returns the scene the cave returns to.
func (cs *CaveScene) Back() Scene {
	return cs.back
}

func (cs *CaveScene) Update() {
	cs.once.Do(cs.configure)
	cs.ecs.Update()
	cs.ui.Update()

	if cs.fade != nil {
		veil, done := cs.fade.Update(float32(1 / float64(ebiten.TPS())))
		cs.veil = veil
		if done {
			cs.fade = nil
		}
	}

	cs.applyTransitions()
}

func (cs *CaveScene) applyTransitions() {
	if systems.TakeSceneRequest(cs.ecs).ExitCave {
		log.Info("leaving cave")
		cs.sceneChanger.ChangeScene(cs.back)
	}
}

func (cs *CaveScene) Draw(screen *ebiten.Image) {
	if cs.ui == nil {
		return
	}
	cs.ui.Draw(screen)

	if cs.veil > 0 {
		b := screen.Bounds()
		vector.FillRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), veilColor(cs.veil), false)
	}
}

func (cs *CaveScene) configure() {
	cs.ecs = newCaveECS()
	// Whatever is held while walking in must be released before it counts.
	systems.PrimeInput(cs.ecs)

	cs.ui = ui.NewCaveUI(cfg.Cave.Message, caveHint(cs.inputMethod))
	cs.veil = 1
	cs.fade = gween.New(1, 0, cfg.Cave.FadeIn, ease.OutQuad)
}

func newCaveECS() *ecs.ECS {
	ecs := ecs.NewECS(donburi.NewWorld())
	ecs.AddSystem(systems.UpdateClock)
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateCaveExit)
	ecs.AddSystem(systems.UpdateAudio)
	return ecs
}

// caveHint returns the way-out hint for the device the player walked in with
func caveHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "Press Cross or any button to return"
	case components.InputXbox:
		return "Press A or any button to return"
	}
	return "Press any key to return"
}

func veilColor(a float32) color.RGBA {
	return color.RGBA{A: uint8(255 * a)}
}
