package main

import (
	"fmt"
	"image"
	"strings"

	"github.com/automoto/cave-island/assets"
	"github.com/automoto/cave-island/config"
	"github.com/automoto/cave-island/systems/factory"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

const (
	glyphWater = '~'
	glyphGrass = '.'
	glyphSpawn = '@'
	glyphCave  = 'C'
	glyphFruit = '*'
)

var glyphStyles = map[rune]lipgloss.Style{
	glyphWater: lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	glyphGrass: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	glyphSpawn: lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	glyphCave:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	glyphFruit: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
}

var mapCmd = &cobra.Command{
	Use:   "map",
	Short: "Print the island layout",
	Long: `Print the island with the spawn (@), the cave footprint (C) and the speed
fruits (*) for the current seed.

Examples:
  cave-island map
  cave-island map --seed 7
  cave-island map --map islands/atoll.tmx`,
	Args: cobra.NoArgs,
	RunE: runMap,
}

func runMap(cmd *cobra.Command, _ []string) error {
	level, err := loadLevel()
	if err != nil {
		return err
	}
	seed := resolveSeed()

	fruits, err := factory.PlaceCollectibles(level.Grid, level.SpawnTile, config.Collectible.Count, factory.NewRand(seed))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, renderPreview(islandGlyphs(level, fruits)))
	fmt.Fprintf(out, "%s  %dx%d tiles  seed %d  %d land tiles\n",
		level.Name, level.Grid.Width, level.Grid.Height, seed, level.Grid.WalkableCount())
	return nil
}

// islandGlyphs lays out one rune per tile. Fruits are drawn over the cave, the spawn over both.
func islandGlyphs(level *assets.Level, fruits []image.Point) [][]rune {
	grid := level.Grid
	rows := make([][]rune, grid.Height)
	for y := range rows {
		rows[y] = make([]rune, grid.Width)
		for x := range rows[y] {
			if grid.Walkable(x, y) {
				rows[y][x] = glyphGrass
			} else {
				rows[y][x] = glyphWater
			}
		}
	}

	footprint, _, _ := factory.CaveGeometry(level.CaveAnchorTile, grid.TileSize)
	set := func(p image.Point, r rune) {
		if grid.InBounds(p.X, p.Y) {
			rows[p.Y][p.X] = r
		}
	}
	for ty := footprint.Min.Y / grid.TileSize; ty*grid.TileSize < footprint.Max.Y; ty++ {
		for tx := footprint.Min.X / grid.TileSize; tx*grid.TileSize < footprint.Max.X; tx++ {
			set(image.Pt(tx, ty), glyphCave)
		}
	}
	for _, f := range fruits {
		set(f, glyphFruit)
	}
	set(level.SpawnTile, glyphSpawn)

	return rows
}

// renderPreview styles runs of equal glyphs together to keep escape sequences short.
func renderPreview(rows [][]rune) string {
	var sb strings.Builder
	for y, row := range rows {
		if y > 0 {
			sb.WriteRune('\n')
		}
		x := 0
		for x < len(row) {
			start := x
			for x < len(row) && row[x] == row[start] {
				x++
			}
			sb.WriteString(glyphStyles[row[start]].Render(string(row[start:x])))
		}
	}
	return sb.String()
}
