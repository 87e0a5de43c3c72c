package editor

import (
	"battlemat/internal/grid"
	"battlemat/internal/logger"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// dragState tracks one in-flight token drag. grabX/grabY is the offset
// from the token's top-left corner to the pointer at pick-up, so the
// token does not jump under the cursor.
type dragState struct {
	token        *Token
	grabX, grabY float64
	active       bool
}

// updateDrag advances the drag state machine from the current mouse
// state. While a drag is live the cell under the pointer is recomputed
// every tick for highlighting; the snap happens once, on release.
func (e *Editor) updateDrag() {
	mx, my := ebiten.CursorPosition()
	wx, wy := e.cam.ScreenToWorld(float64(mx), float64(my), e.width, e.height)
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	switch {
	case pressed && !e.prevMouseLeft:
		// Topmost token wins: scan back to front.
		for i := len(e.tokens) - 1; i >= 0; i-- {
			if e.tokens[i].Contains(wx, wy) {
				e.drag = dragState{
					token:  e.tokens[i],
					grabX:  wx - e.tokens[i].X,
					grabY:  wy - e.tokens[i].Y,
					active: true,
				}
				break
			}
		}

	case pressed && e.drag.active:
		e.drag.token.X = wx - e.drag.grabX
		e.drag.token.Y = wy - e.drag.grabY
		e.hoverCell = e.geom.PixelToGrid(wx, wy)
		e.hasHover = true

	case !pressed && e.drag.active:
		e.commitDrag()
	}

	e.prevMouseLeft = pressed
}

// commitDrag snaps the dragged token into place and ends the drag.
func (e *Editor) commitDrag() {
	tok := e.drag.token
	snapped := e.geom.SnapPointSized(tok.X, tok.Y, tok.Width, tok.Height)
	tok.X = snapped.X
	tok.Y = snapped.Y
	e.drag = dragState{}
	e.hasHover = false
	logger.Log.Debug("token snapped",
		zap.String("token", tok.Label),
		zap.Float64("x", snapped.X),
		zap.Float64("y", snapped.Y))
}

// dragPreview returns where the dragged token would land if released now.
// The renderer draws this as a ghost outline; determinism of the engine
// guarantees the preview and the eventual commit agree.
func (e *Editor) dragPreview() (grid.Point, bool) {
	if !e.drag.active {
		return grid.Point{}, false
	}
	tok := e.drag.token
	return e.geom.SnapPointSized(tok.X, tok.Y, tok.Width, tok.Height), true
}
