package ecs

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/milk9111/triggerfinger/common"
	"github.com/milk9111/triggerfinger/ecs/render"
)

// Entity is a named container of components with a transform and a fixed
// draw layer.
type Entity struct {
	id         uuid.UUID
	name       string
	layer      DrawLayer
	components []Component
	transform  Transform
	destroyed  bool
}

func newEntity(name string, layer DrawLayer) *Entity {
	return &Entity{id: uuid.New(), name: name, layer: layer}
}

func (e *Entity) ID() uuid.UUID {
	return e.id
}

func (e *Entity) Name() string {
	return e.name
}

func (e *Entity) Layer() DrawLayer {
	return e.layer
}

func (e *Entity) Transform() *Transform {
	return &e.transform
}

// Destroy flags the entity for removal at the next World.Compact.
func (e *Entity) Destroy() {
	e.destroyed = true
}

func (e *Entity) Destroyed() bool {
	return e.destroyed
}

// Components returns the attached components in attachment order.
func (e *Entity) Components() []Component {
	out := make([]Component, len(e.components))
	copy(out, e.components)
	return out
}

// AddComponent attaches c and runs its initializer, if any.
func (e *Entity) AddComponent(c Component) error {
	if c == nil {
		return ErrNilComponent
	}
	e.components = append(e.components, c)
	c.bind(e)
	if init, ok := c.(Initializer); ok {
		if err := init.Initialize(); err != nil {
			return fmt.Errorf("ecs: initialize %T on %q: %w", c, e.name, err)
		}
	}
	return nil
}

// Update updates every component in attachment order.
func (e *Entity) Update(dt float64) {
	for _, c := range e.components {
		if u, ok := c.(Updater); ok {
			u.Update(dt)
		}
	}
}

// Draw draws every component when layer is the entity's own draw layer.
func (e *Entity) Draw(f *render.Frame, layer DrawLayer) {
	if layer != e.layer {
		return
	}
	for _, c := range e.components {
		if d, ok := c.(Drawer); ok {
			d.Draw(f)
		}
	}
}

func (e *Entity) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s:\n", e.name)
	for _, c := range e.components {
		fmt.Fprintf(&b, "  -%T\n", c)
	}
	return b.String()
}

// Builder assembles an entity. Components are attached in call order, so a
// component that needs a sibling must come after it.
type Builder struct {
	entity *Entity
	err    error
}

func NewBuilder(name string, layer DrawLayer) *Builder {
	return &Builder{entity: newEntity(name, layer)}
}

func (b *Builder) WithTransform(position common.Vector2, rotation float64) *Builder {
	b.entity.transform = Transform{Position: position, Rotation: rotation}
	return b
}

func (b *Builder) WithComponent(c Component) *Builder {
	if b.err != nil {
		return b
	}
	b.err = b.entity.AddComponent(c)
	return b
}

// Build returns the entity, or the first attach error.
func (b *Builder) Build() (*Entity, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.entity, nil
}

// MustBuild is Build for entities spawned at runtime, where a half-wired
// entity is a programming error.
func (b *Builder) MustBuild() *Entity {
	e, err := b.Build()
	if err != nil {
		panic(err)
	}
	return e
}
