// Package terminal is a tcell frontend for the snake game. Every board cell
// takes two terminal columns so the grid looks roughly square.
package terminal

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"snake-arcade/game"
	"snake-arcade/game/types"

	"github.com/gdamore/tcell/v2"
)

const (
	frameInterval = 16 * time.Millisecond // ~60 FPS
	cellWidth     = 2
	blockRune     = '█'
)

var (
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	bodyStyle   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	headStyle   = tcell.StyleDefault.Foreground(tcell.ColorLime)
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	alertStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

var foodColors = [types.FoodTypeCount]tcell.Color{
	types.Apple:     tcell.ColorRed,
	types.Banana:    tcell.ColorYellow,
	types.Grape:     tcell.ColorPurple,
	types.Blueberry: tcell.ColorBlue,
	types.Orange:    tcell.ColorOrange,
}

// CommandForKey maps a key press to a game command. quit is set for
// Escape, Ctrl-C and q. Unknown keys map to CmdNone.
func CommandForKey(ev *tcell.EventKey) (cmd types.Command, quit bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return types.CmdNone, true
	case tcell.KeyUp:
		return types.CmdUp, false
	case tcell.KeyDown:
		return types.CmdDown, false
	case tcell.KeyLeft:
		return types.CmdLeft, false
	case tcell.KeyRight:
		return types.CmdRight, false
	case tcell.KeyEnter:
		return types.CmdTogglePause, false
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return types.CmdUp, false
		case 's', 'S':
			return types.CmdDown, false
		case 'a', 'A':
			return types.CmdLeft, false
		case 'd', 'D':
			return types.CmdRight, false
		case 'p', 'P', ' ':
			return types.CmdTogglePause, false
		case 'r', 'R':
			return types.CmdRestart, false
		case 'q', 'Q':
			return types.CmdNone, true
		}
	}
	return types.CmdNone, false
}

type Frontend struct {
	screen tcell.Screen
	game   *game.Game
	logger *log.Logger
}

func New(screen tcell.Screen, g *game.Game, logger *log.Logger) *Frontend {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Frontend{
		screen: screen,
		game:   g,
		logger: logger,
	}
}

// Run opens a terminal screen and plays until the user quits or ctx ends
func Run(ctx context.Context, g *game.Game, logger *log.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	return New(screen, g, logger).Loop(ctx)
}

// Loop is the single goroutine that mutates the game. Events are read on a
// helper goroutine and handed over through a channel.
func (f *Frontend) Loop(ctx context.Context) error {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-eventChan:
			if !f.HandleEvent(ev) {
				f.logger.Printf("terminal frontend closed after %d games", f.game.Stats().GetGamesPlayed())
				return nil
			}
		case now := <-ticker.C:
			f.game.ApplyTick(now.Sub(last))
			last = now
			f.Draw()
		}
	}
}

// HandleEvent applies one terminal event. It returns false when the user
// asked to quit.
func (f *Frontend) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		cmd, quit := CommandForKey(ev)
		if quit {
			return false
		}
		f.game.Apply(cmd)
	case *tcell.EventResize:
		f.screen.Sync()
	}
	return true
}

// Draw renders the current snapshot
func (f *Frontend) Draw() {
	snap := f.game.Snapshot()
	f.screen.Clear()

	f.drawBorder(snap.Grid)
	f.drawCell(snap.Food, tcell.StyleDefault.Foreground(FoodColor(snap.FoodType)))
	for i := len(snap.Snake) - 1; i >= 0; i-- {
		style := bodyStyle
		if i == 0 {
			style = headStyle
		}
		f.drawCell(snap.Snake[i], style)
	}

	hudRow := snap.Grid.Height + 2
	f.drawText(0, hudRow, textStyle, fmt.Sprintf("Score %d  High %d  Games %d", snap.Score, snap.HighScore, snap.GamesPlayed))
	if status := statusLine(snap); status != "" {
		f.drawText(0, hudRow+1, alertStyle, status)
	}

	f.screen.Show()
}

// FoodColor returns the terminal color of a fruit
func FoodColor(t types.FoodType) tcell.Color {
	if t < 0 || int(t) >= types.FoodTypeCount {
		return tcell.ColorRed
	}
	return foodColors[t]
}

// CellOrigin returns the screen column and row of a board cell's left half
func CellOrigin(p types.Point) (int, int) {
	return 1 + p.X*cellWidth, 1 + p.Y
}

func (f *Frontend) drawCell(p types.Point, style tcell.Style) {
	col, row := CellOrigin(p)
	for i := 0; i < cellWidth; i++ {
		f.screen.SetContent(col+i, row, blockRune, nil, style)
	}
}

func (f *Frontend) drawBorder(grid types.Grid) {
	right := grid.Width*cellWidth + 1
	bottom := grid.Height + 1
	for x := 0; x <= right; x++ {
		f.screen.SetContent(x, 0, '─', nil, borderStyle)
		f.screen.SetContent(x, bottom, '─', nil, borderStyle)
	}
	for y := 0; y <= bottom; y++ {
		f.screen.SetContent(0, y, '│', nil, borderStyle)
		f.screen.SetContent(right, y, '│', nil, borderStyle)
	}
	f.screen.SetContent(0, 0, '┌', nil, borderStyle)
	f.screen.SetContent(right, 0, '┐', nil, borderStyle)
	f.screen.SetContent(0, bottom, '└', nil, borderStyle)
	f.screen.SetContent(right, bottom, '┘', nil, borderStyle)
}

func (f *Frontend) drawText(x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		f.screen.SetContent(x+i, y, r, nil, style)
	}
}

func statusLine(snap game.Snapshot) string {
	switch {
	case snap.Won():
		return "Board full! You win"
	case snap.State == types.GameOver:
		return fmt.Sprintf("Game Over (%s) - press r", snap.Outcome)
	case snap.State == types.Paused:
		return "Paused - p to resume, r to restart"
	case snap.Heading == types.None:
		return "Arrows or WASD to start"
	}
	return ""
}
