package main

import (
	"fmt"
	"image"
	"image/color"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/triggerfinger/common"
	"github.com/milk9111/triggerfinger/ecs/render"
	"golang.org/x/image/font/basicfont"
)

const (
	hudScale     = 2.0
	bannerScale  = 4.0
	hudMargin    = 12.0
	shapeStroke  = 2
	hudLineSpace = 28.0
)

var (
	hudColor    = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	reloadColor = color.NRGBA{R: 0xff, G: 0xc0, B: 0x40, A: 0xff}
)

// renderer turns a posted frame into ebiten draw calls.
type renderer struct {
	debug bool
	face  ebtext.Face
	// white is a single opaque pixel used as the source of filled polygons.
	white    *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
	sprites  *subImages[*ebiten.Image]
}

func newRenderer(debug bool) *renderer {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return &renderer{
		debug:   debug,
		face:    ebtext.NewGoXFace(basicfont.Face7x13),
		white:   img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
		sprites: newSubImages(cutSheet),
	}
}

func cutSheet(sheet *ebiten.Image, src image.Rectangle) *ebiten.Image {
	return sheet.SubImage(src).(*ebiten.Image)
}

func (r *renderer) draw(screen *ebiten.Image, f *render.Frame) {
	screen.Fill(f.Clear)

	for _, item := range f.Items {
		switch it := item.(type) {
		case render.SpriteDraw:
			r.drawSprite(screen, it, f.Offset)
		case render.PolygonDraw:
			r.drawPolygon(screen, it, f.Offset)
		}
	}

	r.sprites.sweep()

	if r.debug {
		for _, s := range f.Shapes {
			r.drawShape(screen, s, f.Offset)
		}
	}

	r.drawHUD(screen, f.HUD)
}

func (r *renderer) drawSprite(screen *ebiten.Image, s render.SpriteDraw, offset common.Vector2) {
	img, ok := s.Image.(*ebiten.Image)
	if !ok || img == nil {
		return
	}
	if !s.Source.Empty() {
		img = r.sprites.get(s.Entity, img, s.Source)
	}

	scale := s.Scale
	if scale == 0 {
		scale = 1
	}
	pos := s.Position.Add(offset)

	op := &ebiten.DrawImageOptions{}
	if s.TopLeft {
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(pos.X, pos.Y)
		screen.DrawImage(img, op)
		return
	}

	b := img.Bounds()
	op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	sx, sy := scale, scale
	if s.FlipX {
		sx = -sx
	}
	if s.FlipY {
		sy = -sy
	}
	op.GeoM.Scale(sx, sy)
	op.GeoM.Rotate(s.Rotation)
	op.GeoM.Translate(pos.X, pos.Y)
	screen.DrawImage(img, op)
}

func (r *renderer) drawPolygon(screen *ebiten.Image, p render.PolygonDraw, offset common.Vector2) {
	if len(p.Points) < 3 {
		return
	}

	var path vector.Path
	for i, pt := range p.Points {
		sp := pt.Add(offset)
		if i == 0 {
			path.MoveTo(float32(sp.X), float32(sp.Y))
			continue
		}
		path.LineTo(float32(sp.X), float32(sp.Y))
	}
	path.Close()

	r.vertices, r.indices = path.AppendVerticesAndIndicesForFilling(r.vertices[:0], r.indices[:0])
	cr := float32(p.Fill.R) / 0xff
	cg := float32(p.Fill.G) / 0xff
	cb := float32(p.Fill.B) / 0xff
	ca := float32(p.Fill.A) / 0xff
	for i := range r.vertices {
		v := &r.vertices[i]
		v.SrcX, v.SrcY = 1, 1
		v.ColorR, v.ColorG, v.ColorB, v.ColorA = cr, cg, cb, ca
	}

	op := &ebiten.DrawTrianglesOptions{FillRule: ebiten.FillRuleNonZero, AntiAlias: true}
	screen.DrawTriangles(r.vertices, r.indices, r.white, op)
}

func (r *renderer) drawShape(screen *ebiten.Image, s render.ShapeDraw, offset common.Vector2) {
	c := s.Center.Add(offset)
	switch s.Kind {
	case render.ShapeCircle:
		vector.StrokeCircle(screen, float32(c.X), float32(c.Y), float32(s.Radius), shapeStroke, s.Color, true)
	case render.ShapeRectangle:
		vector.StrokeRect(screen,
			float32(c.X-s.Width/2), float32(c.Y-s.Height/2),
			float32(s.Width), float32(s.Height),
			shapeStroke, s.Color, true)
	}
	if s.Entity != uuid.Nil {
		r.print(screen, shortID(s.Entity), c.X, c.Y, 1, ebtext.AlignCenter, s.Color)
	}
}

// shortID is the first group of the entity id, enough to tell shapes apart.
func shortID(id uuid.UUID) string {
	return id.String()[:8]
}

func (r *renderer) drawHUD(screen *ebiten.Image, hud render.HUD) {
	w := float64(screen.Bounds().Dx())
	h := float64(screen.Bounds().Dy())

	y := hudMargin
	r.print(screen, fmt.Sprintf("Score: %d", hud.Score), hudMargin, y, hudScale, ebtext.AlignStart, hudColor)
	if hud.ShowHeight {
		y += hudLineSpace
		r.print(screen, fmt.Sprintf("Height: %d", hud.Height), hudMargin, y, hudScale, ebtext.AlignStart, hudColor)
	}
	if hud.ShowAmmo {
		y += hudLineSpace
		r.print(screen, fmt.Sprintf("Ammo: %d/%d", hud.Ammo, hud.MaxAmmo), hudMargin, y, hudScale, ebtext.AlignStart, hudColor)
		if hud.Reloading {
			y += hudLineSpace
			r.print(screen, "RELOADING", hudMargin, y, hudScale, ebtext.AlignStart, reloadColor)
		}
	}

	switch {
	case hud.GameOver:
		r.print(screen, "GAME OVER", w/2, hud.GameOverY, bannerScale, ebtext.AlignCenter, hudColor)
		r.print(screen, "press enter to restart", w/2, hud.GameOverY+bannerScale*16, hudScale, ebtext.AlignCenter, hudColor)
	case hud.State == "PAUSED":
		r.print(screen, "tap to start", w/2, h/2+h/4, hudScale, ebtext.AlignCenter, hudColor)
	}
}

func (r *renderer) print(screen *ebiten.Image, s string, x, y, scale float64, align ebtext.Align, clr color.Color) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = align
	ebtext.Draw(screen, s, r.face, op)
}
