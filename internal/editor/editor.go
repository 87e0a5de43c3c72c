// Package editor is the interactive map-editor shell. It owns the camera,
// the placed tokens, and the drag interaction, and consumes the grid
// geometry engine the same way on every topology: VisibleCells plus
// CellVertices once per frame for the grid, PixelToGrid on every pointer
// move during a drag, and SnapPointSized once when the drag ends.
package editor

import (
	"fmt"

	"battlemat/internal/config"
	"battlemat/internal/grid"
	"battlemat/internal/logger"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// panSpeed is the camera pan rate in world pixels per tick at zoom 1.
const panSpeed = 8.0

// gridTypeKeys maps number-row keys to grid types.
var gridTypeKeys = map[ebiten.Key]grid.Type{
	ebiten.Key1: grid.TypeLines,
	ebiten.Key2: grid.TypeDots,
	ebiten.Key3: grid.TypeHidden,
	ebiten.Key4: grid.TypeHexagonal,
	ebiten.Key5: grid.TypeIsometric,
}

// Editor implements ebiten.Game for the map editor.
type Editor struct {
	width  int
	height int

	gridType grid.Type
	gridSize float64
	geom     grid.Geometry

	cam    Camera
	tokens []*Token
	drag   dragState

	// hoverCell is the cell under the pointer while dragging.
	hoverCell grid.Cell
	hasHover  bool

	showHUD       bool
	prevKeys      map[ebiten.Key]bool
	prevMouseLeft bool
}

// New builds an editor from configuration. The grid type and size come
// from config; both were validated at load time, so a factory error here
// is a programming error.
func New(cfg *config.Config) (*Editor, error) {
	geom, err := grid.New(cfg.GridType(), cfg.Grid.Size)
	if err != nil {
		return nil, fmt.Errorf("editor: %w", err)
	}
	return &Editor{
		width:    cfg.Window.Width,
		height:   cfg.Window.Height,
		gridType: cfg.GridType(),
		gridSize: cfg.Grid.Size,
		geom:     geom,
		cam:      NewCamera(),
		tokens:   starterTokens(cfg.Grid.Size),
		showHUD:  true,
		prevKeys: map[ebiten.Key]bool{},
	}, nil
}

// setGridType swaps the active geometry. The old instance holds no
// resources, so it is simply discarded and rebuilt from the factory.
func (e *Editor) setGridType(t grid.Type) {
	if t == e.gridType {
		return
	}
	geom, err := grid.New(t, e.gridSize)
	if err != nil {
		logger.Log.Error("grid type switch failed", zap.Error(err))
		return
	}
	e.gridType = t
	e.geom = geom
	logger.Log.Info("grid type switched", zap.String("type", t.String()))
}

func (e *Editor) Update() error {
	currentKeys := map[ebiten.Key]bool{}

	// Number keys switch the grid topology.
	for key, t := range gridTypeKeys {
		currentKeys[key] = ebiten.IsKeyPressed(key)
		if currentKeys[key] && !e.prevKeys[key] {
			e.setGridType(t)
		}
	}

	// H: toggle HUD.
	currentKeys[ebiten.KeyH] = ebiten.IsKeyPressed(ebiten.KeyH)
	if currentKeys[ebiten.KeyH] && !e.prevKeys[ebiten.KeyH] {
		e.showHUD = !e.showHUD
	}

	// Arrow keys pan the camera in screen-space increments.
	step := panSpeed / e.cam.Zoom
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		e.cam.X -= step
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		e.cam.X += step
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		e.cam.Y -= step
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		e.cam.Y += step
	}

	// Mouse wheel zooms around the viewport centre.
	if _, wheelY := ebiten.Wheel(); wheelY != 0 {
		e.cam.Zoom = clampZoom(e.cam.Zoom * (1 + wheelY*0.1))
	}

	e.updateDrag()

	e.prevKeys = currentKeys
	return nil
}

func (e *Editor) Layout(_, _ int) (int, int) {
	return e.width, e.height
}
