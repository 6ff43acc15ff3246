package ecs

import "github.com/milk9111/triggerfinger/ecs/render"

// System runs once per simulation step over the whole world.
type System interface {
	Update(w *World)
}

// World owns the active entity set and system order.
type World struct {
	entities []*Entity
	systems  []System
}

func NewWorld() *World {
	return &World{}
}

// Add appends an entity. Entities added during Update are first updated on
// the next step.
func (w *World) Add(e *Entity) {
	if w == nil || e == nil {
		return
	}
	w.entities = append(w.entities, e)
}

// Entities returns the active entities in insertion order. Callers must not
// modify the returned slice.
func (w *World) Entities() []*Entity {
	if w == nil {
		return nil
	}
	return w.entities
}

func (w *World) Len() int {
	if w == nil {
		return 0
	}
	return len(w.entities)
}

// AddSystem appends a system to the run order.
func (w *World) AddSystem(s System) {
	if w == nil || s == nil {
		return
	}
	w.systems = append(w.systems, s)
}

// Update updates every entity that existed when the call started.
func (w *World) Update(dt float64) {
	if w == nil {
		return
	}
	n := len(w.entities)
	for i := 0; i < n; i++ {
		w.entities[i].Update(dt)
	}
}

// RunSystems runs all systems once, in order.
func (w *World) RunSystems() {
	if w == nil {
		return
	}
	for _, s := range w.systems {
		s.Update(w)
	}
}

// Compact drops destroyed entities, keeping order, and returns how many
// were removed.
func (w *World) Compact() int {
	if w == nil {
		return 0
	}
	kept := w.entities[:0]
	for _, e := range w.entities {
		if !e.destroyed {
			kept = append(kept, e)
		}
	}
	removed := len(w.entities) - len(kept)
	clear(w.entities[len(kept):])
	w.entities = kept
	return removed
}

// Draw lets every entity contribute to f, layer by layer.
func (w *World) Draw(f *render.Frame) {
	if w == nil || f == nil {
		return
	}
	for _, layer := range DrawLayers {
		for _, e := range w.entities {
			e.Draw(f, layer)
		}
	}
}
