package ui

import (
	"fmt"

	"snake-duel/game"
	"snake-duel/game/entity"
	"snake-duel/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	borderPadding = 10
	pathAlpha     = 0.3
)

var (
	gridLineColor  = rl.Color{R: 40, G: 40, B: 40, A: 255}
	foodColor      = rl.Color{R: 0, G: 228, B: 48, A: 255}
	indicatorColor = rl.Yellow
)

// Renderer draws a game.Snapshot. It never touches the running game.
type Renderer struct {
	cellSize     int32
	screenWidth  int32
	screenHeight int32
	gameWidth    int32
	statsPanel   int32
	offsetX      int32
	offsetY      int32
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())

	r.statsPanel = r.screenWidth / 3
	r.gameWidth = r.screenWidth - r.statsPanel
}

func min(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func toRL(c entity.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: 255}
}

func (r *Renderer) Draw(snap game.Snapshot) {
	r.UpdateDimensions()
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	fontSize := min(r.screenHeight/40, r.statsPanel/16)
	lineHeight := fontSize + fontSize/3

	availableWidth := r.gameWidth - borderPadding*2
	availableHeight := r.screenHeight - borderPadding*2
	r.cellSize = min(availableWidth/int32(snap.Grid.Width), availableHeight/int32(snap.Grid.Height))

	gridWidth := r.cellSize * int32(snap.Grid.Width)
	gridHeight := r.cellSize * int32(snap.Grid.Height)
	r.offsetX = borderPadding + (availableWidth-gridWidth)/2
	r.offsetY = (r.screenHeight - gridHeight) / 2

	for x := 0; x < snap.Grid.Width; x++ {
		for y := 0; y < snap.Grid.Height; y++ {
			rl.DrawRectangleLines(r.cellX(x), r.cellY(y), r.cellSize, r.cellSize, gridLineColor)
		}
	}

	// Paths first so bodies and food stay on top.
	for _, a := range snap.Agents {
		faded := rl.Fade(toRL(a.Color), pathAlpha)
		for _, p := range a.Path {
			rl.DrawRectangle(r.cellX(p.X), r.cellY(p.Y), r.cellSize, r.cellSize, faded)
		}
	}

	half := r.cellSize / 2
	rl.DrawCircle(r.cellX(snap.Food.X)+half, r.cellY(snap.Food.Y)+half, float32(half)-2, foodColor)

	for _, a := range snap.Agents {
		r.drawSnake(a)
	}

	r.drawStatsPanel(snap, fontSize, lineHeight)
	if snap.Complete {
		r.drawGameOver(snap, fontSize*2)
	}
	rl.EndDrawing()
}

func (r *Renderer) cellX(x int) int32 { return r.offsetX + int32(x)*r.cellSize }
func (r *Renderer) cellY(y int) int32 { return r.offsetY + int32(y)*r.cellSize }

func (r *Renderer) drawSnake(a game.AgentView) {
	color := toRL(a.Color)
	for j := len(a.Body) - 1; j >= 0; j-- {
		p := a.Body[j]
		c := color
		if j == 0 {
			c = rl.Color{
				R: brighten(color.R),
				G: brighten(color.G),
				B: brighten(color.B),
				A: 255,
			}
		}
		rl.DrawRectangle(r.cellX(p.X)+1, r.cellY(p.Y)+1, r.cellSize-2, r.cellSize-2, c)
	}

	head := a.Head()
	v1, v2, v3 := r.headTriangle(head, a.Direction)
	rl.DrawTriangle(v1, v2, v3, indicatorColor)
}

func brighten(v uint8) uint8 {
	b := float32(v) * 1.3
	if b > 255 {
		return 255
	}
	return uint8(b)
}

// headTriangle returns the direction marker for a head cell, vertices in
// counter-clockwise screen order.
func (r *Renderer) headTriangle(p types.Point, dir types.Direction) (rl.Vector2, rl.Vector2, rl.Vector2) {
	x := float32(r.cellX(p.X))
	y := float32(r.cellY(p.Y))
	size := float32(r.cellSize)
	half := size / 2

	switch dir {
	case types.Right:
		return rl.Vector2{X: x + size, Y: y + half}, rl.Vector2{X: x + half, Y: y}, rl.Vector2{X: x + half, Y: y + size}
	case types.Left:
		return rl.Vector2{X: x, Y: y + half}, rl.Vector2{X: x + half, Y: y + size}, rl.Vector2{X: x + half, Y: y}
	case types.Down:
		return rl.Vector2{X: x + half, Y: y + size}, rl.Vector2{X: x + size, Y: y + half}, rl.Vector2{X: x, Y: y + half}
	default:
		return rl.Vector2{X: x + half, Y: y}, rl.Vector2{X: x, Y: y + half}, rl.Vector2{X: x + size, Y: y + half}
	}
}

func (r *Renderer) drawStatsPanel(snap game.Snapshot, fontSize, lineHeight int32) {
	statsX := r.gameWidth + 10
	statsY := int32(borderPadding)

	rl.DrawRectangle(r.gameWidth, 0, r.statsPanel, r.screenHeight, rl.DarkGray)

	rl.DrawText(fmt.Sprintf("Turn: %d/%d", snap.Turn, snap.TotalTurns), statsX, statsY, fontSize, rl.White)
	statsY += lineHeight
	rl.DrawText(snap.Status.String(), statsX, statsY, fontSize, rl.LightGray)
	statsY += lineHeight * 2

	for _, a := range snap.Agents {
		color := toRL(a.Color)
		rl.DrawText(fmt.Sprintf("%s: %d", a.Label, a.Score), statsX, statsY, fontSize, color)
		statsY += lineHeight
		rl.DrawText(fmt.Sprintf("Nodes: %d", a.LastSearch.NodesExplored), statsX+10, statsY, fontSize, color)
		statsY += lineHeight
		rl.DrawText(fmt.Sprintf("Time: %.3f ms", a.LastSearch.ComputationTime), statsX+10, statsY, fontSize, color)
		statsY += lineHeight
		rl.DrawText(fmt.Sprintf("Avg nodes: %d", a.Average.NodesExplored), statsX+10, statsY, fontSize, color)
		statsY += lineHeight
		rl.DrawText(fmt.Sprintf("Avg time: %.3f ms", a.Average.ComputationTime), statsX+10, statsY, fontSize, color)
		statsY += lineHeight
		rl.DrawText(a.Phase.String(), statsX+10, statsY, fontSize, rl.LightGray)
		statsY += lineHeight * 2
	}

	session := snap.Session
	rl.DrawText(fmt.Sprintf("Matches: %d  Ties: %d  Best: %d", session.Matches, session.Ties, session.HighScore),
		statsX, statsY, fontSize, rl.White)
	statsY += lineHeight
	for _, a := range snap.Agents {
		rl.DrawText(fmt.Sprintf("%s wins: %d", a.Label, session.Wins[a.Label]), statsX+10, statsY, fontSize, toRL(a.Color))
		statsY += lineHeight
	}

	rl.DrawText("R: restart  Q: quit", statsX, r.screenHeight-fontSize-borderPadding, fontSize, rl.LightGray)
}

func (r *Renderer) drawGameOver(snap game.Snapshot, fontSize int32) {
	gridWidth := r.cellSize * int32(snap.Grid.Width)
	gridHeight := r.cellSize * int32(snap.Grid.Height)
	rl.DrawRectangle(r.offsetX, r.offsetY, gridWidth, gridHeight, rl.Fade(rl.Black, 0.7))

	lines := []string{"Game Over", resultLine(snap), "Press R to restart"}
	y := r.offsetY + gridHeight/2 - int32(len(lines))*fontSize
	for _, line := range lines {
		w := rl.MeasureText(line, fontSize)
		rl.DrawText(line, r.offsetX+(gridWidth-w)/2, y, fontSize, rl.White)
		y += fontSize + fontSize/2
	}
}

func resultLine(snap game.Snapshot) string {
	if snap.Outcome.Tie {
		return fmt.Sprintf("Tie! Both scored %d", snap.Outcome.Score)
	}
	return fmt.Sprintf("%s wins with %d", snap.Outcome.Winner, snap.Outcome.Score)
}
