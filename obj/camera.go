package obj

import "github.com/milk9111/triggerfinger/common"

// Camera holds the world offset added to world coordinates to get screen
// coordinates. It only ever scrolls up: the followed point is kept at or
// below a fraction of the screen height.
type Camera struct {
	offset   common.Vector2
	screenH  float64
	fraction float64
}

// NewCamera starts with the world origin half a screen down.
func NewCamera(screenH, fraction float64) *Camera {
	if fraction <= 0 {
		fraction = 0.4
	}
	return &Camera{
		offset:   common.Down.Scale(screenH / 2),
		screenH:  screenH,
		fraction: fraction,
	}
}

func (c *Camera) Offset() common.Vector2 {
	return c.offset
}

// Follow scrolls so target sits no higher than the follow line.
func (c *Camera) Follow(target common.Vector2) {
	line := c.screenH * c.fraction
	display := c.ToScreen(target)
	if display.Y < line {
		c.offset.Y -= display.Y - line
	}
}

func (c *Camera) ToScreen(world common.Vector2) common.Vector2 {
	return world.Add(c.offset)
}

func (c *Camera) ToWorld(screen common.Vector2) common.Vector2 {
	return screen.Sub(c.offset)
}
