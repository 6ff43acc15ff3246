package main

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/triggerfinger/mode"
)

// pointer follows a single press, from the mouse or the first touch.
type pointer struct {
	down     bool
	touching bool
	touch    ebiten.TouchID
	x, y     int
	touchIDs []ebiten.TouchID
}

func (h *Host) pollPointer(m mode.Mode) {
	p := &h.pointer
	if !p.down {
		h.pollPress(m)
		return
	}

	var x, y int
	if p.touching {
		if inpututil.IsTouchJustReleased(p.touch) {
			x, y = inpututil.TouchPositionInPreviousTick(p.touch)
			p.down = false
			m.PointerUp(float64(x), float64(y))
			return
		}
		x, y = ebiten.TouchPosition(p.touch)
	} else {
		x, y = ebiten.CursorPosition()
		if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
			p.down = false
			m.PointerUp(float64(x), float64(y))
			return
		}
	}

	if x != p.x || y != p.y {
		p.x, p.y = x, y
		m.PointerMove(float64(x), float64(y))
	}
}

// pollPress starts a press unless it lands on the controls.
func (h *Host) pollPress(m mode.Mode) {
	p := &h.pointer

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if h.overControls(x, y) {
			return
		}
		p.down, p.touching = true, false
		p.x, p.y = x, y
		m.PointerDown(float64(x), float64(y))
		return
	}

	p.touchIDs = inpututil.AppendJustPressedTouchIDs(p.touchIDs[:0])
	for _, id := range p.touchIDs {
		x, y := ebiten.TouchPosition(id)
		if h.overControls(x, y) {
			continue
		}
		p.down, p.touching, p.touch = true, true, id
		p.x, p.y = x, y
		m.PointerDown(float64(x), float64(y))
		return
	}
}

func (h *Host) overControls(x, y int) bool {
	if h.uiRect == nil {
		return false
	}
	return image.Pt(x, y).In(h.uiRect())
}
