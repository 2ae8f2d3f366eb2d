// cave-island is a small top-down exploration game: walk around a ring-shaped
// island, pick up speed fruits and find the cave.
//
// Usage:
//
//	cave-island              - Play (default seed 42)
//	cave-island map          - Print the island layout to the terminal
//	cave-island runs         - List recent play sessions
//
// Global flags:
//
//	--config <path>     - YAML config file
//	--seed <value>      - Fruit placement seed (0 = random based on time)
//	--map <path>        - Load the island from a Tiled TMX file
//	--db <path>         - Run history database (default: ~/.cave-island/runs.db)
//	--debug             - Start with the debug overlay on
//	--log-level <level> - debug, info, warn or error
package main

import (
	"errors"
	"fmt"
	"image"
	"os"
	"time"

	"github.com/automoto/cave-island/assets"
	"github.com/automoto/cave-island/config"
	"github.com/automoto/cave-island/fonts"
	"github.com/automoto/cave-island/scenes"
	"github.com/automoto/cave-island/storage"
	"github.com/automoto/cave-island/systems"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

var (
	flagConfig   string
	flagSeed     int64
	flagMap      string
	flagDBPath   string
	flagDebug    bool
	flagLogLevel string
)

type Game struct {
	bounds    image.Rectangle
	scene     scenes.Scene
	overworld *scenes.OverworldScene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(scenes.Scene)
}

func NewGame(level *assets.Level, seed int64) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.overworld = scenes.NewOverworldScene(g, level, seed)
	g.scene = g.overworld
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cave-island",
	Short: "Explore the island, collect speed fruits, find the cave",
	Long: `Cave Island is a small top-down exploration game.

Walk with the arrow keys or WASD. Speed fruits make you faster for a few
seconds. Step fully into the cave mouth to go inside, press any key to
come back out. Backquote or F1 toggles the debug overlay, F11 fullscreen.

Examples:
  cave-island
  cave-island --seed 7
  cave-island --map islands/atoll.tmx
  cave-island map --seed 7
  cave-island runs`,
	PersistentPreRunE: setup,
	SilenceUsage:      true,
	RunE:              runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "YAML config file (default: ~/.cave-island/config.yaml, ./configs/config.yaml)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Fruit placement seed (0 = random based on time; default from config)")
	rootCmd.PersistentFlags().StringVar(&flagMap, "map", "", "Load the island from a Tiled TMX file instead of generating it")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.cave-island/runs.db", "Path to the run history database")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Start with the debug overlay on")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(mapCmd)
	rootCmd.AddCommand(runsCmd)
}

// setup configures logging and applies the config file and flags.
func setup(cmd *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "cave-island",
		Level:           level,
	})
	log.SetDefault(logger)

	applied, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if applied != "" {
		log.Debug("config loaded", "path", applied)
	}

	if cmd.Flags().Changed("seed") {
		config.Collectible.Seed = flagSeed
	}
	if flagDebug {
		config.Debug.Overlay = true
	}
	return nil
}

// resolveSeed returns the configured seed, replacing 0 by a time based one so the
// run history always records the seed that was played.
func resolveSeed() int64 {
	if config.Collectible.Seed != 0 {
		return config.Collectible.Seed
	}
	return time.Now().UnixNano()
}

func loadLevel() (*assets.Level, error) {
	if flagMap == "" {
		return assets.GenerateIsland(assets.DefaultIslandParams()), nil
	}
	return assets.LoadLevelTMX(flagMap)
}

func runPlay(_ *cobra.Command, _ []string) error {
	level, err := loadLevel()
	if err != nil {
		return err
	}
	seed := resolveSeed()

	fonts.LoadDefaults()
	systems.PreloadAllSFX()

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("Cave Island")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err == nil {
		if saved, err := systems.LoadSettings(); err == nil && saved != nil {
			systems.ApplySavedSettingsGlobal(saved)
		}
	}

	log.Info("starting", "map", level.Name, "seed", seed)
	game := NewGame(level, seed)
	start := time.Now()
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("game loop failed: %w", err)
	}

	recordRun(storage.Run{
		Seed:            seed,
		Map:             level.Name,
		FruitsCollected: game.overworld.Stats().FruitsCollected,
		FruitsTotal:     config.Collectible.Count,
		CaveVisits:      game.overworld.Stats().CaveVisits,
		Duration:        time.Since(start),
	})
	return nil
}

// recordRun appends the session to the run history. Failures only cost the history.
func recordRun(run storage.Run) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("could not open run history", "err", err)
		return
	}
	defer store.Close()

	id, err := store.RecordRun(run)
	if err != nil {
		log.Warn("could not record run", "err", err)
		return
	}
	log.Info("run recorded", "id", id, "fruits", run.FruitsCollected, "caveVisits", run.CaveVisits)
}
