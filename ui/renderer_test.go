package ui

import (
	"testing"

	"snake-arcade/game"
	"snake-arcade/game/types"
)

func TestWindowSize(t *testing.T) {
	cfg := game.DefaultConfig()
	w, h := WindowSize(cfg)

	wantW := int32(cfg.Cols*cfg.TileSize) + borderPadding*2 + statsPanel
	wantH := int32(cfg.Rows*cfg.TileSize) + borderPadding*2
	if w != wantW || h != wantH {
		t.Errorf("WindowSize() = %dx%d, want %dx%d", w, h, wantW, wantH)
	}
}

func TestFoodColors(t *testing.T) {
	seen := make(map[[4]uint8]types.FoodType)
	for i := 0; i < types.FoodTypeCount; i++ {
		ft := types.FoodType(i)
		c := FoodColor(ft)
		key := [4]uint8{c.R, c.G, c.B, c.A}
		if other, ok := seen[key]; ok {
			t.Errorf("%s and %s share a color", ft, other)
		}
		seen[key] = ft
	}

	if FoodColor(types.FoodType(-1)) != FoodColor(types.Apple) {
		t.Error("unknown fruit should fall back to the apple color")
	}
}

func TestKeyBindingsCoverCommands(t *testing.T) {
	bound := make(map[types.Command]bool)
	for _, b := range keyBindings {
		bound[b.cmd] = true
	}
	for _, cmd := range []types.Command{
		types.CmdUp, types.CmdDown, types.CmdLeft, types.CmdRight,
		types.CmdTogglePause, types.CmdRestart,
	} {
		if !bound[cmd] {
			t.Errorf("command %d has no key", cmd)
		}
	}
}
