package system

import (
	"github.com/milk9111/triggerfinger/ecs"
	"github.com/milk9111/triggerfinger/ecs/component"
)

// CollisionSystem runs the pairwise overlap pass over every live entity that
// carries a shape. Each direction is tested separately because the mask
// rule is not symmetric.
type CollisionSystem struct {
	shapes []component.Shape
}

func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{}
}

func (s *CollisionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	s.shapes = s.shapes[:0]
	for _, e := range w.Entities() {
		if e.Destroyed() {
			continue
		}
		if shape, ok := ecs.Get[component.Shape](e); ok {
			s.shapes = append(s.shapes, shape)
		}
	}

	for i := 0; i < len(s.shapes); i++ {
		a := s.shapes[i]
		for j := i + 1; j < len(s.shapes); j++ {
			b := s.shapes[j]
			// a listener may have destroyed either side
			if a.Entity().Destroyed() || b.Entity().Destroyed() {
				continue
			}
			if a.CollidesWith(b) {
				a.NotifyCollision(b.Entity())
			}
			if b.CollidesWith(a) {
				b.NotifyCollision(a.Entity())
			}
		}
	}

	clear(s.shapes)
	s.shapes = s.shapes[:0]
}
