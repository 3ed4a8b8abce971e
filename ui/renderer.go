package ui

import (
	"fmt"

	"snake-arcade/game"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	maxScores     = 200 // Maximum number of scores to show in graph
	borderPadding = 10
	statsPanel    = 220 // Width of the panel right of the grid
)

// foodColors follows the FoodType cycle order
var foodColors = [types.FoodTypeCount]rl.Color{
	types.Apple:     rl.Red,
	types.Banana:    rl.Gold,
	types.Grape:     rl.Purple,
	types.Blueberry: rl.Blue,
	types.Orange:    rl.Orange,
}

// FoodColor returns the fill color for a fruit
func FoodColor(f types.FoodType) rl.Color {
	if f < 0 || int(f) >= types.FoodTypeCount {
		return rl.Red
	}
	return foodColors[f]
}

// WindowSize returns the window needed for a board of the given config
func WindowSize(cfg game.Config) (int32, int32) {
	w := int32(cfg.Cols*cfg.TileSize) + borderPadding*2 + statsPanel
	h := int32(cfg.Rows*cfg.TileSize) + borderPadding*2
	return w, h
}

type Renderer struct {
	cellSize        int32
	offsetX         int32
	offsetY         int32
	totalGridWidth  int32
	totalGridHeight int32
}

func NewRenderer(tileSize int) *Renderer {
	return &Renderer{
		cellSize: int32(tileSize),
		offsetX:  borderPadding,
		offsetY:  borderPadding,
	}
}

// Draw paints one frame from a snapshot. It never touches the game itself.
func (r *Renderer) Draw(snap game.Snapshot, records []manager.GameRecord) {
	r.totalGridWidth = r.cellSize * int32(snap.Grid.Width)
	r.totalGridHeight = r.cellSize * int32(snap.Grid.Height)

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	rl.DrawRectangleLines(r.offsetX-1, r.offsetY-1, r.totalGridWidth+2, r.totalGridHeight+2, rl.DarkGray)

	r.drawCell(snap.Food, FoodColor(snap.FoodType))

	// Draw tail first so the head stays on top
	for i := len(snap.Snake) - 1; i >= 0; i-- {
		color := rl.Green
		if i == 0 {
			color = rl.Lime
		}
		r.drawCell(snap.Snake[i], color)
	}
	if len(snap.Snake) > 0 {
		r.drawHeading(snap.Snake[0], snap.Heading)
	}

	fontSize := int32(18)
	r.drawStatsPanel(snap, records, fontSize)
	r.drawBanner(snap, fontSize+6)

	rl.EndDrawing()
}

func (r *Renderer) drawCell(p types.Point, color rl.Color) {
	rl.DrawRectangle(
		r.offsetX+int32(p.X)*r.cellSize,
		r.offsetY+int32(p.Y)*r.cellSize,
		r.cellSize, r.cellSize, color)
}

// drawHeading draws a small triangle pointing where the head is going
func (r *Renderer) drawHeading(head types.Point, heading types.Direction) {
	headX := float32(r.offsetX + int32(head.X)*r.cellSize)
	headY := float32(r.offsetY + int32(head.Y)*r.cellSize)
	cell := float32(r.cellSize)
	half := cell / 2

	switch heading {
	case types.Right:
		rl.DrawTriangle(
			rl.Vector2{X: headX + cell, Y: headY + half},
			rl.Vector2{X: headX + half, Y: headY},
			rl.Vector2{X: headX + half, Y: headY + cell},
			rl.Yellow)
	case types.Left:
		rl.DrawTriangle(
			rl.Vector2{X: headX, Y: headY + half},
			rl.Vector2{X: headX + half, Y: headY + cell},
			rl.Vector2{X: headX + half, Y: headY},
			rl.Yellow)
	case types.Down:
		rl.DrawTriangle(
			rl.Vector2{X: headX + half, Y: headY + cell},
			rl.Vector2{X: headX + cell, Y: headY + half},
			rl.Vector2{X: headX, Y: headY + half},
			rl.Yellow)
	case types.Up:
		rl.DrawTriangle(
			rl.Vector2{X: headX + half, Y: headY},
			rl.Vector2{X: headX, Y: headY + half},
			rl.Vector2{X: headX + cell, Y: headY + half},
			rl.Yellow)
	}
}

func (r *Renderer) drawStatsPanel(snap game.Snapshot, records []manager.GameRecord, fontSize int32) {
	statsX := r.offsetX + r.totalGridWidth + borderPadding*2
	statsY := r.offsetY
	lineHeight := fontSize + 6

	rl.DrawText(fmt.Sprintf("Score: %d", snap.Score), statsX, statsY, fontSize, rl.White)
	statsY += lineHeight
	rl.DrawText(fmt.Sprintf("High: %d", snap.HighScore), statsX, statsY, fontSize, rl.Green)
	statsY += lineHeight
	rl.DrawText(fmt.Sprintf("Games: %d", snap.GamesPlayed), statsX, statsY, fontSize, rl.White)
	statsY += lineHeight
	rl.DrawText(fmt.Sprintf("Length: %d", len(snap.Snake)), statsX, statsY, fontSize, rl.White)
	statsY += lineHeight
	rl.DrawText(fmt.Sprintf("Fruit: %s", snap.FoodType), statsX, statsY, fontSize, FoodColor(snap.FoodType))
	statsY += lineHeight * 2

	r.drawScoreGraph(records, statsX, statsY, statsPanel-borderPadding*2, 120)
}

// drawScoreGraph plots the finished rounds, oldest on the left
func (r *Renderer) drawScoreGraph(records []manager.GameRecord, graphX, graphY, graphWidth, graphHeight int32) {
	rl.DrawRectangleLines(graphX, graphY, graphWidth, graphHeight, rl.DarkGray)
	if len(records) < 2 {
		return
	}
	if len(records) > maxScores {
		records = records[len(records)-maxScores:]
	}

	maxScore := 1
	for _, rec := range records {
		if rec.Score > maxScore {
			maxScore = rec.Score
		}
	}

	step := float32(graphWidth) / float32(len(records)-1)
	scale := float32(graphHeight) / float32(maxScore)
	for j := 1; j < len(records); j++ {
		x1 := graphX + int32(step*float32(j-1))
		y1 := graphY + graphHeight - int32(scale*float32(records[j-1].Score))
		x2 := graphX + int32(step*float32(j))
		y2 := graphY + graphHeight - int32(scale*float32(records[j].Score))
		rl.DrawLine(x1, y1, x2, y2, rl.Green)
	}
}

func (r *Renderer) drawBanner(snap game.Snapshot, fontSize int32) {
	var text string
	color := rl.White
	switch {
	case snap.Won():
		text = "Board full! You win"
		color = rl.Gold
	case snap.State == types.GameOver:
		text = fmt.Sprintf("Game Over! (%s)", snap.Outcome)
		color = rl.Red
	case snap.State == types.Paused:
		text = "Paused"
	case snap.Heading == types.None:
		text = "Press an arrow key"
	default:
		return
	}

	textWidth := rl.MeasureText(text, fontSize)
	rl.DrawText(text,
		r.offsetX+(r.totalGridWidth-textWidth)/2,
		r.offsetY+(r.totalGridHeight-fontSize)/2,
		fontSize, color)
}
