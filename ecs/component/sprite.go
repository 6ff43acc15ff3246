package component

import (
	"image"

	"github.com/milk9111/triggerfinger/common"
	"github.com/milk9111/triggerfinger/ecs"
	"github.com/milk9111/triggerfinger/ecs/render"
)

// Sprite draws a region of an image centered on its entity, rotated around
// the region's center.
type Sprite struct {
	ecs.Base

	Image  render.Image
	Source image.Rectangle
	Scale  float64
	FlipX  bool
	FlipY  bool
}

// NewSprite draws all of img when source is empty.
func NewSprite(img render.Image, source image.Rectangle, scale float64) *Sprite {
	if source.Empty() && img != nil {
		source = img.Bounds()
	}
	if scale == 0 {
		scale = 1
	}
	return &Sprite{Image: img, Source: source, Scale: scale}
}

// Width is the unscaled source width.
func (s *Sprite) Width() int {
	return s.Source.Dx()
}

func (s *Sprite) Height() int {
	return s.Source.Dy()
}

// Size is the on-screen size after scaling.
func (s *Sprite) Size() common.Vector2 {
	return common.Vec(float64(s.Source.Dx()), float64(s.Source.Dy())).Scale(s.Scale)
}

func (s *Sprite) Origin() common.Vector2 {
	return s.Size().Div(2)
}

func (s *Sprite) Draw(f *render.Frame) {
	if s.Image == nil {
		return
	}
	t := s.Transform()
	f.AddSprite(render.SpriteDraw{
		Entity:   s.Entity().ID(),
		Image:    s.Image,
		Source:   s.Source,
		Position: t.Position,
		Rotation: t.Rotation,
		Scale:    s.Scale,
		FlipX:    s.FlipX,
		FlipY:    s.FlipY,
	})
}
