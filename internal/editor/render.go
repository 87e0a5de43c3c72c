package editor

import (
	"fmt"
	"image/color"

	"battlemat/internal/grid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	backgroundColor = color.RGBA{R: 24, G: 26, B: 30, A: 255}
	gridLineColor   = color.RGBA{R: 70, G: 76, B: 86, A: 255}
	gridDotColor    = color.RGBA{R: 110, G: 118, B: 130, A: 255}
	hoverColor      = color.RGBA{R: 235, G: 200, B: 60, A: 255}
	previewColor    = color.RGBA{R: 235, G: 235, B: 235, A: 160}
	hudColor        = color.RGBA{R: 210, G: 214, B: 220, A: 255}
)

func (e *Editor) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	e.drawGrid(screen)
	if e.hasHover {
		e.strokeCell(screen, e.hoverCell, 2.5, hoverColor)
	}
	e.drawTokens(screen)

	if e.showHUD {
		e.drawHUD(screen)
	}
	if e.cam.Zoom != 1.0 {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("zoom: %.1fx", e.cam.Zoom), 6, e.height-18)
	}
}

// drawGrid culls cells against the camera's world rectangle and draws
// each cell outline in the configured style. The engine has no style
// concept: lines, dots and hidden are purely a rendering decision here.
func (e *Editor) drawGrid(screen *ebiten.Image) {
	if e.gridType == grid.TypeHidden {
		return
	}

	bounds := e.cam.VisibleBounds(e.width, e.height)
	for _, cell := range e.geom.VisibleCells(bounds) {
		verts := e.geom.CellVertices(cell)
		switch e.gridType {
		case grid.TypeDots:
			for _, v := range verts {
				sx, sy := e.cam.WorldToScreen(v.X, v.Y, e.width, e.height)
				vector.FillCircle(screen, float32(sx), float32(sy), 1.5, gridDotColor, false)
			}
		default:
			e.strokePolygon(screen, verts, 1.0, gridLineColor)
		}
	}
}

// strokePolygon draws a closed world-space polygon in screen space.
func (e *Editor) strokePolygon(screen *ebiten.Image, verts []grid.Point, width float32, col color.RGBA) {
	for i := range verts {
		a := verts[i]
		b := verts[(i+1)%len(verts)]
		ax, ay := e.cam.WorldToScreen(a.X, a.Y, e.width, e.height)
		bx, by := e.cam.WorldToScreen(b.X, b.Y, e.width, e.height)
		vector.StrokeLine(screen, float32(ax), float32(ay), float32(bx), float32(by), width, col, false)
	}
}

// strokeCell outlines one cell, used for the hover highlight.
func (e *Editor) strokeCell(screen *ebiten.Image, cell grid.Cell, width float32, col color.RGBA) {
	e.strokePolygon(screen, e.geom.CellVertices(cell), width, col)
}

func (e *Editor) drawTokens(screen *ebiten.Image) {
	// Ghost outline at the snap destination of the live drag.
	if preview, ok := e.dragPreview(); ok {
		tok := e.drag.token
		px, py := e.cam.WorldToScreen(preview.X, preview.Y, e.width, e.height)
		vector.StrokeRect(screen, float32(px), float32(py),
			float32(tok.Width*e.cam.Zoom), float32(tok.Height*e.cam.Zoom),
			1.5, previewColor, false)
	}

	for _, tok := range e.tokens {
		sx, sy := e.cam.WorldToScreen(tok.X, tok.Y, e.width, e.height)
		w := float32(tok.Width * e.cam.Zoom)
		h := float32(tok.Height * e.cam.Zoom)
		vector.FillRect(screen, float32(sx), float32(sy), w, h, tok.Color, false)
		vector.StrokeRect(screen, float32(sx), float32(sy), w, h, 1.0, color.RGBA{A: 255}, false)
		text.Draw(screen, tok.Label, basicfont.Face7x13, int(sx)+4, int(sy)+14, hudColor)
	}
}

func (e *Editor) drawHUD(screen *ebiten.Image) {
	lines := []string{
		fmt.Sprintf("grid: %s  size: %g", e.gridType, e.gridSize),
		"1-5 grid type   arrows pan   wheel zoom   H hud",
		"drag tokens to snap them",
	}
	for i, line := range lines {
		text.Draw(screen, line, basicfont.Face7x13, 8, 16+i*14, hudColor)
	}
}
