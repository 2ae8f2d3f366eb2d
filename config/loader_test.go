package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestEmbeddedDefaultMatchesBuiltins(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	before := World
	beforePlayer := Player
	if err := Apply(defaultYAML); err != nil {
		t.Fatalf("Apply(default) failed: %v", err)
	}
	if World != before {
		t.Errorf("World = %+v, want %+v", World, before)
	}
	if Player != beforePlayer {
		t.Errorf("Player = %+v, want %+v", Player, beforePlayer)
	}
	if Audio.SampleRate != 44100 || Audio.SFXVolume != 0.6 {
		t.Errorf("Audio = %+v, want 44100 Hz at 0.6", Audio)
	}
	if Debug.Overlay {
		t.Error("debug overlay on by default, want off")
	}
	if Collectible.Seed != 42 || Collectible.Count != 10 {
		t.Errorf("Collectible = %+v, want seed 42 count 10", Collectible)
	}
}

func TestLoadCustomPathOverlaysOnlyGivenKeys(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("player:\n  buffedSpeed: 250\ncollectible:\n  seed: 7\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	applied, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if applied != path {
		t.Errorf("applied = %q, want %q", applied, path)
	}
	if Player.BuffedSpeed != 250 {
		t.Errorf("BuffedSpeed = %v, want 250", Player.BuffedSpeed)
	}
	if Player.NormalSpeed != 100 {
		t.Errorf("NormalSpeed = %v, want untouched 100", Player.NormalSpeed)
	}
	if Collectible.Seed != 7 {
		t.Errorf("Seed = %v, want 7", Collectible.Seed)
	}
	if Collectible.Count != 10 {
		t.Errorf("Count = %v, want untouched 10", Collectible.Count)
	}
}

func TestLoadErrors(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	dir := t.TempDir()
	tests := []struct {
		name    string
		content string
	}{
		{name: "malformed yaml", content: "world: [1, 2"},
		{name: "lake larger than island", content: "world:\n  lakeRadius: 50\n"},
		{name: "zero tile size", content: "world:\n  tileSize: 0\n"},
		{name: "negative count", content: "collectible:\n  count: -1\n"},
		{name: "loud sfx", content: "audio:\n  sfxVolume: 2\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.name+".yaml")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("Load() succeeded, want error")
			}
			if World.LakeRadius != 8 || World.TileSize != 32 {
				t.Errorf("globals changed after failed load: %+v", World)
			}
		})
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load(missing) succeeded, want error")
	}
}

func TestLoadWarnsAboutBrokenUserConfig(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	home := t.TempDir()
	t.Setenv("HOME", home)
	path := filepath.Join(home, ".cave-island", "config.yaml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("world:\n  tileSize: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	applied, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if applied != "" {
		t.Errorf("applied = %q, want the embedded default", applied)
	}
	if World.TileSize != 32 {
		t.Errorf("TileSize = %d, want default 32", World.TileSize)
	}
	out := buf.String()
	if !strings.Contains(out, path) || !strings.Contains(out, "tileSize") {
		t.Errorf("log output %q does not name the file and the problem", out)
	}
}
