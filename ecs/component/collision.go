package component

import (
	"image/color"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/triggerfinger/common"
	"github.com/milk9111/triggerfinger/ecs"
	"github.com/milk9111/triggerfinger/ecs/render"
)

// CollisionListener receives the entity that was hit.
type CollisionListener func(other *ecs.Entity)

// Shape is a collision volume centered on its entity's transform.
type Shape interface {
	ecs.Component
	Entity() *ecs.Entity
	Layer() CollisionLayer
	// CollidesWith is directed: it applies this shape's mask to other.
	CollidesWith(other Shape) bool
	Contains(p common.Vector2) bool
	OnCollision(fn CollisionListener)
	NotifyCollision(other *ecs.Entity)
}

type shapeBase struct {
	ecs.Base
	layer     CollisionLayer
	listeners []CollisionListener
}

func (s *shapeBase) Layer() CollisionLayer {
	return s.layer
}

// OnCollision registers fn. Listeners run synchronously in registration order.
func (s *shapeBase) OnCollision(fn CollisionListener) {
	if fn == nil {
		return
	}
	s.listeners = append(s.listeners, fn)
}

func (s *shapeBase) NotifyCollision(other *ecs.Entity) {
	for _, fn := range s.listeners {
		fn(other)
	}
}

func (s *shapeBase) center() (common.Vector2, bool) {
	t := s.Transform()
	if t == nil {
		return common.Zero, false
	}
	return t.Position, true
}

type Circle struct {
	shapeBase
	Radius float64
}

func NewCircle(radius float64, layer CollisionLayer) *Circle {
	return &Circle{shapeBase: shapeBase{layer: layer}, Radius: radius}
}

func (c *Circle) CollidesWith(other Shape) bool {
	if other == nil || !c.layer.Accepts(other.Layer()) {
		return false
	}
	center, ok := c.center()
	if !ok {
		return false
	}
	switch o := other.(type) {
	case *Circle:
		oc, ok := o.center()
		return ok && circlesOverlap(center, c.Radius, oc, o.Radius)
	case *Rectangle:
		bb, ok := o.Bounds()
		return ok && circleOverlapsBB(center, c.Radius, bb)
	}
	return false
}

func (c *Circle) Contains(p common.Vector2) bool {
	center, ok := c.center()
	return ok && common.Distance(center, p) <= c.Radius
}

func (c *Circle) Draw(f *render.Frame) {
	center, ok := c.center()
	if !ok {
		return
	}
	f.AddShape(render.ShapeDraw{
		Entity: c.Entity().ID(),
		Kind:   render.ShapeCircle,
		Center: center,
		Radius: c.Radius,
		Color:  color.RGBA{G: 0xff, A: 0xff},
	})
}

type Rectangle struct {
	shapeBase
	Width  float64
	Height float64
}

func NewRectangle(width, height float64, layer CollisionLayer) *Rectangle {
	return &Rectangle{shapeBase: shapeBase{layer: layer}, Width: width, Height: height}
}

// Bounds returns the rectangle's box in world coordinates. Chipmunk's B/T
// are the min/max y, which with screen coordinates are top/bottom.
func (r *Rectangle) Bounds() (cp.BB, bool) {
	center, ok := r.center()
	if !ok {
		return cp.BB{}, false
	}
	return cp.NewBBForExtents(center.CP(), r.Width/2, r.Height/2), true
}

func (r *Rectangle) CollidesWith(other Shape) bool {
	if other == nil || !r.layer.Accepts(other.Layer()) {
		return false
	}
	bb, ok := r.Bounds()
	if !ok {
		return false
	}
	switch o := other.(type) {
	case *Circle:
		oc, ok := o.center()
		return ok && circleOverlapsBB(oc, o.Radius, bb)
	case *Rectangle:
		obb, ok := o.Bounds()
		return ok && bb.Intersects(obb)
	}
	return false
}

func (r *Rectangle) Contains(p common.Vector2) bool {
	bb, ok := r.Bounds()
	return ok && bb.ContainsVect(p.CP())
}

func (r *Rectangle) Draw(f *render.Frame) {
	center, ok := r.center()
	if !ok {
		return
	}
	f.AddShape(render.ShapeDraw{
		Entity: r.Entity().ID(),
		Kind:   render.ShapeRectangle,
		Center: center,
		Width:  r.Width,
		Height: r.Height,
		Color:  color.RGBA{R: 0xff, A: 0xff},
	})
}

func circlesOverlap(a common.Vector2, ra float64, b common.Vector2, rb float64) bool {
	return common.Distance(a, b) <= ra+rb
}

// circleOverlapsBB is true when the center is inside bb or the nearest point
// of bb is within radius (touching counts).
func circleOverlapsBB(center common.Vector2, radius float64, bb cp.BB) bool {
	if bb.ContainsVect(center.CP()) {
		return true
	}
	dx := center.X - common.Clamp(center.X, bb.L, bb.R)
	dy := center.Y - common.Clamp(center.Y, bb.B, bb.T)
	return dx*dx+dy*dy <= radius*radius
}
