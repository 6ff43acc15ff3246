package ecs

import "github.com/milk9111/triggerfinger/common"

// Transform is the world position and rotation (radians) of an entity.
type Transform struct {
	Position common.Vector2
	Rotation float64
}

func (t *Transform) Translate(delta common.Vector2) {
	t.Position = t.Position.Add(delta)
}

func (t *Transform) Rotate(radians float64) {
	t.Rotation += radians
}
