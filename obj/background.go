package obj

import (
	"math"

	"github.com/milk9111/triggerfinger/common"
	"github.com/milk9111/triggerfinger/ecs"
	"github.com/milk9111/triggerfinger/ecs/render"
	"github.com/milk9111/triggerfinger/game"
)

// Background scrolls an image left in seamless tiles scaled to fill the
// screen height.
type Background struct {
	ecs.Base

	ctx   *game.Context
	image render.Image
	speed float64
	scale float64
	x     float64
}

func NewBackground(ctx *game.Context, img render.Image, speed float64) *Background {
	scale := 1.0
	if h := img.Bounds().Dy(); h > 0 {
		scale = ctx.Height() / float64(h)
	}
	return &Background{ctx: ctx, image: img, speed: speed, scale: scale}
}

// TileWidth is the on-screen width of one tile.
func (b *Background) TileWidth() float64 {
	return float64(b.image.Bounds().Dx()) * b.scale
}

func (b *Background) X() float64 {
	return b.x
}

func (b *Background) Update(dt float64) {
	b.x -= dt * b.speed
	if b.x < -b.TileWidth() {
		b.x = 0
	}
}

func (b *Background) Draw(f *render.Frame) {
	tile := b.TileWidth()
	if tile <= 0 {
		return
	}
	for x := math.Round(b.x); x < b.ctx.Width(); x += tile {
		f.AddSprite(render.SpriteDraw{
			Entity:   b.Entity().ID(),
			Image:    b.image,
			Source:   b.image.Bounds(),
			Position: common.Vec(x, 0),
			Scale:    b.scale,
			TopLeft:  true,
		})
	}
}
