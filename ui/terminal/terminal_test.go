package terminal

import (
	"testing"

	"snake-arcade/game"
	"snake-arcade/game/types"

	"github.com/gdamore/tcell/v2"
)

func newTestFrontend(t *testing.T) (*Frontend, tcell.SimulationScreen, *game.Game) {
	t.Helper()

	cfg := game.DefaultConfig()
	cfg.Rows, cfg.Cols = 10, 10
	cfg.InitialLength = 3
	cfg.Seed = 7

	g, err := game.New(cfg)
	if err != nil {
		t.Fatalf("game.New: %v", err)
	}

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(40, 20)

	return New(screen, g, nil), screen, g
}

func TestCommandForKey(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		cmd  types.Command
		quit bool
	}{
		{"arrow up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), types.CmdUp, false},
		{"arrow left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), types.CmdLeft, false},
		{"wasd down", tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone), types.CmdDown, false},
		{"wasd right upper", tcell.NewEventKey(tcell.KeyRune, 'D', tcell.ModNone), types.CmdRight, false},
		{"pause p", tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone), types.CmdTogglePause, false},
		{"pause space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), types.CmdTogglePause, false},
		{"pause enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), types.CmdTogglePause, false},
		{"restart", tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), types.CmdRestart, false},
		{"quit q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), types.CmdNone, true},
		{"quit escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), types.CmdNone, true},
		{"unbound", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), types.CmdNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, quit := CommandForKey(tt.ev)
			if cmd != tt.cmd || quit != tt.quit {
				t.Errorf("CommandForKey = (%v, %v), want (%v, %v)", cmd, quit, tt.cmd, tt.quit)
			}
		})
	}
}

func TestHandleEventSteersGame(t *testing.T) {
	f, _, g := newTestFrontend(t)

	if !f.HandleEvent(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone)) {
		t.Fatal("arrow key should not quit")
	}
	if got := g.Snapshot().Heading; got != types.Right {
		t.Errorf("heading = %v, want right", got)
	}

	if !f.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone)) {
		t.Fatal("pause key should not quit")
	}
	if g.State() != types.Paused {
		t.Errorf("state = %v, want paused", g.State())
	}

	if f.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Error("q should quit")
	}
}

func TestDrawPaintsBoard(t *testing.T) {
	f, screen, g := newTestFrontend(t)
	f.Draw()

	snap := g.Snapshot()

	if r, _, _, _ := screen.GetContent(0, 0); r != '┌' {
		t.Errorf("top-left corner = %q, want '┌'", r)
	}
	right := snap.Grid.Width*cellWidth + 1
	if r, _, _, _ := screen.GetContent(right, snap.Grid.Height+1); r != '┘' {
		t.Errorf("bottom-right corner = %q, want '┘'", r)
	}

	for _, p := range append(snap.Snake, snap.Food) {
		col, row := CellOrigin(p)
		for i := 0; i < cellWidth; i++ {
			if r, _, _, _ := screen.GetContent(col+i, row); r != blockRune {
				t.Errorf("cell %s column %d = %q, want block", p, i, r)
			}
		}
	}

	col, row := CellOrigin(snap.Food)
	_, _, style, _ := screen.GetContent(col, row)
	fg, _, _ := style.Decompose()
	if fg != FoodColor(snap.FoodType) {
		t.Errorf("food color = %v, want %v", fg, FoodColor(snap.FoodType))
	}
}

func TestFoodColorsAreDistinct(t *testing.T) {
	seen := make(map[tcell.Color]types.FoodType)
	for i := 0; i < types.FoodTypeCount; i++ {
		ft := types.FoodType(i)
		c := FoodColor(ft)
		if other, ok := seen[c]; ok {
			t.Errorf("%s and %s share color %v", ft, other, c)
		}
		seen[c] = ft
	}
}

func TestStatusLine(t *testing.T) {
	snap := game.Snapshot{State: types.Playing, Heading: types.None}
	if statusLine(snap) == "" {
		t.Error("idle snake should show a start hint")
	}

	snap.Heading = types.Right
	if got := statusLine(snap); got != "" {
		t.Errorf("moving snake status = %q, want empty", got)
	}

	snap.State = types.GameOver
	snap.Outcome = types.OutcomeBoardFull
	if got := statusLine(snap); got != "Board full! You win" {
		t.Errorf("board full status = %q", got)
	}
}
