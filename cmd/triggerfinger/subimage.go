package main

import (
	"image"

	"github.com/google/uuid"
)

type subImage[T comparable] struct {
	sheet T
	src   image.Rectangle
	img   T
	frame uint64
}

// subImages keeps the last cut of a sheet per entity so a sprite is only
// re-sliced when its sheet or source rectangle changes. Entries for entities
// that were not drawn during a frame are dropped by sweep.
type subImages[T comparable] struct {
	cut     func(sheet T, src image.Rectangle) T
	entries map[uuid.UUID]subImage[T]
	frame   uint64
}

func newSubImages[T comparable](cut func(sheet T, src image.Rectangle) T) *subImages[T] {
	return &subImages[T]{
		cut:     cut,
		entries: make(map[uuid.UUID]subImage[T]),
	}
}

// get returns the src cut of sheet for the entity id. Draws without an
// owning entity are cut every time.
func (c *subImages[T]) get(id uuid.UUID, sheet T, src image.Rectangle) T {
	if id == uuid.Nil {
		return c.cut(sheet, src)
	}

	e, ok := c.entries[id]
	if !ok || e.sheet != sheet || e.src != src {
		e = subImage[T]{sheet: sheet, src: src, img: c.cut(sheet, src)}
	}
	e.frame = c.frame
	c.entries[id] = e
	return e.img
}

// sweep forgets entities not drawn since the previous sweep.
func (c *subImages[T]) sweep() {
	for id, e := range c.entries {
		if e.frame != c.frame {
			delete(c.entries, id)
		}
	}
	c.frame++
}

func (c *subImages[T]) len() int {
	return len(c.entries)
}
