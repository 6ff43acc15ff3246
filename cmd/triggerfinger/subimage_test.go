package main

import (
	"image"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubImagesCutsOncePerEntityFrame(t *testing.T) {
	cuts := 0
	c := newSubImages(func(sheet *image.RGBA, src image.Rectangle) *image.RGBA {
		cuts++
		return sheet.SubImage(src).(*image.RGBA)
	})
	sheet := image.NewRGBA(image.Rect(0, 0, 64, 16))
	a, b := uuid.New(), uuid.New()
	first := image.Rect(0, 0, 16, 16)

	img := c.get(a, sheet, first)
	require.NotNil(t, img)
	assert.Equal(t, first, img.Bounds())
	assert.Same(t, img, c.get(a, sheet, first))
	assert.Equal(t, 1, cuts)

	c.get(b, sheet, first)
	assert.Equal(t, 2, cuts)

	// animation advanced for a only
	next := image.Rect(16, 0, 32, 16)
	assert.Equal(t, next, c.get(a, sheet, next).Bounds())
	assert.Equal(t, 3, cuts)

	other := image.NewRGBA(image.Rect(0, 0, 64, 16))
	c.get(a, other, next)
	assert.Equal(t, 4, cuts)
}

func TestSubImagesSweepDropsUndrawnEntities(t *testing.T) {
	c := newSubImages(func(sheet *image.RGBA, src image.Rectangle) *image.RGBA {
		return sheet.SubImage(src).(*image.RGBA)
	})
	sheet := image.NewRGBA(image.Rect(0, 0, 32, 32))
	src := image.Rect(0, 0, 8, 8)
	kept, removed := uuid.New(), uuid.New()

	c.get(kept, sheet, src)
	c.get(removed, sheet, src)
	c.sweep()
	assert.Equal(t, 2, c.len())

	c.get(kept, sheet, src)
	c.sweep()
	assert.Equal(t, 1, c.len())

	c.sweep()
	assert.Zero(t, c.len())
}

func TestSubImagesSkipsDrawsWithoutEntity(t *testing.T) {
	cuts := 0
	c := newSubImages(func(sheet *image.RGBA, src image.Rectangle) *image.RGBA {
		cuts++
		return sheet.SubImage(src).(*image.RGBA)
	})
	sheet := image.NewRGBA(image.Rect(0, 0, 32, 32))

	c.get(uuid.Nil, sheet, image.Rect(0, 0, 8, 8))
	c.get(uuid.Nil, sheet, image.Rect(0, 0, 8, 8))
	assert.Equal(t, 2, cuts)
	assert.Zero(t, c.len())
}

func TestShortID(t *testing.T) {
	id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	assert.Equal(t, "6ba7b810", shortID(id))
}
