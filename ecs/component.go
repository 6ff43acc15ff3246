package ecs

import "github.com/milk9111/triggerfinger/ecs/render"

// Component is a unit of state or behaviour attached to exactly one entity
// for its whole lifetime. Implementations embed Base.
type Component interface {
	bind(e *Entity)
}

// Initializer is implemented by components that look up siblings when they
// are attached. Siblings must be attached first.
type Initializer interface {
	Initialize() error
}

type Updater interface {
	Update(dt float64)
}

// Drawer contributes drawable state to a frame.
type Drawer interface {
	Draw(f *render.Frame)
}

// Base holds the back-reference to the owning entity. The entity owns the
// component, never the other way round.
type Base struct {
	entity *Entity
}

func (b *Base) bind(e *Entity) {
	b.entity = e
}

// Entity returns the owning entity, or nil before the component is attached.
func (b *Base) Entity() *Entity {
	return b.entity
}

// Transform returns the owning entity's transform.
func (b *Base) Transform() *Transform {
	if b.entity == nil {
		return nil
	}
	return &b.entity.transform
}
