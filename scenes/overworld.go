package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/cave-island/assets"
	"github.com/automoto/cave-island/components"
	cfg "github.com/automoto/cave-island/config"
	"github.com/automoto/cave-island/systems"
	"github.com/automoto/cave-island/systems/factory"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// OverworldScene is the island: movement, fruits and the way into the cave.
type OverworldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	level        *assets.Level
	seed         int64
	once         sync.Once
}

func NewOverworldScene(sc SceneChanger, level *assets.Level, seed int64) *OverworldScene {
	return &OverworldScene{sceneChanger: sc, level: level, seed: seed}
}

func (ows *OverworldScene) Update() {
	ows.once.Do(ows.configure)
	ows.ecs.Update()
	ows.applyTransitions()
}

// applyTransitions acts on what the systems requested this tick.
func (ows *OverworldScene) applyTransitions() {
	req := systems.TakeSceneRequest(ows.ecs)
	if req.EnterCave {
		log.Info("entering cave", "visits", systems.GetStats(ows.ecs).CaveVisits)
		ows.sceneChanger.ChangeScene(NewCaveScene(ows.sceneChanger, ows, systems.LastInputMethod(ows.ecs)))
	}
}

func (ows *OverworldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ows.ecs == nil {
		return
	}
	ows.ecs.Draw(screen)
}

// Stats returns what this session did on the island so far.
func (ows *OverworldScene) Stats() components.StatsData {
	if ows.ecs == nil {
		return components.StatsData{}
	}
	return systems.GetStats(ows.ecs)
}

func (ows *OverworldScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateClock)
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdatePlayer)
	ecs.AddSystem(systems.UpdatePickups)
	ecs.AddSystem(systems.UpdateMessage)
	ecs.AddSystem(systems.UpdateCamera)
	ecs.AddSystem(systems.UpdateAudio)

	ecs.AddRenderer(cfg.Default, systems.DrawWorld)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawMessage)

	ows.ecs = ecs

	if err := factory.CreateOverworld(ows.ecs, ows.level, ows.seed); err != nil {
		panic("failed to create overworld: " + err.Error())
	}
}
