package systems

import (
	"testing"

	"github.com/automoto/cave-island/components"
	cfg "github.com/automoto/cave-island/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestGetAction(t *testing.T) {
	input := &components.InputData{}
	input.Current[cfg.ActionMoveUp] = true
	input.Previous[cfg.ActionMoveDown] = true
	input.Current[cfg.ActionMoveLeft] = true
	input.Previous[cfg.ActionMoveLeft] = true

	tests := []struct {
		id   cfg.ActionID
		want components.ActionState
	}{
		{id: cfg.ActionMoveUp, want: components.ActionState{Pressed: true, JustPressed: true}},
		{id: cfg.ActionMoveDown, want: components.ActionState{JustReleased: true}},
		{id: cfg.ActionMoveLeft, want: components.ActionState{Pressed: true}},
		{id: cfg.ActionMoveRight, want: components.ActionState{}},
	}
	for _, tc := range tests {
		if got := GetAction(input, tc.id); got != tc.want {
			t.Errorf("GetAction(%d) = %+v, want %+v", tc.id, got, tc.want)
		}
	}
}

func TestAnyFreshPress(t *testing.T) {
	tests := []struct {
		name  string
		input components.InputData
		want  bool
	}{
		{name: "nothing held", want: false},
		{
			name:  "key held since the scene started",
			input: components.InputData{Keys: []ebiten.Key{ebiten.KeyUp}, PrevKeys: []ebiten.Key{ebiten.KeyUp}},
			want:  false,
		},
		{
			name:  "new key",
			input: components.InputData{Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeySpace}, PrevKeys: []ebiten.Key{ebiten.KeyUp}},
			want:  true,
		},
		{
			name: "new gamepad button",
			input: components.InputData{
				Buttons:     []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
				PrevButtons: []ebiten.StandardGamepadButton{},
			},
			want: true,
		},
		{
			name: "gamepad button held since the scene started",
			input: components.InputData{
				Buttons:     []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
				PrevButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
			},
			want: false,
		},
		{
			name: "new gamepad action",
			input: components.InputData{
				Current: [cfg.ActionCount]bool{cfg.ActionMoveLeft: true},
			},
			want: true,
		},
		{
			name: "action still held",
			input: components.InputData{
				Current:  [cfg.ActionCount]bool{cfg.ActionMoveLeft: true},
				Previous: [cfg.ActionCount]bool{cfg.ActionMoveLeft: true},
			},
			want: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := AnyFreshPress(&tc.input); got != tc.want {
				t.Errorf("AnyFreshPress() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestUpdateCaveExit(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	input := getOrCreateInput(e)
	input.Keys = []ebiten.Key{ebiten.KeyUp}
	input.PrevKeys = []ebiten.Key{ebiten.KeyUp}

	UpdateCaveExit(e)
	if req := TakeSceneRequest(e); req.ExitCave {
		t.Fatal("exit requested for a key held on entry")
	}

	input.Keys = []ebiten.Key{ebiten.KeyUp, ebiten.KeyEnter}
	UpdateCaveExit(e)
	if req := TakeSceneRequest(e); !req.ExitCave {
		t.Fatal("no exit requested for a fresh key")
	}
	if req := TakeSceneRequest(e); req.ExitCave {
		t.Error("request not cleared after being taken")
	}
}

func TestLastInputMethod(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	if got := LastInputMethod(e); got != components.InputKeyboard {
		t.Errorf("LastInputMethod() = %v, want keyboard before any input", got)
	}
	getOrCreateInput(e).LastInputMethod = components.InputPlayStation
	if got := LastInputMethod(e); got != components.InputPlayStation {
		t.Errorf("LastInputMethod() = %v, want PlayStation", got)
	}
}
