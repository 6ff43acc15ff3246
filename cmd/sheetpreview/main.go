package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/triggerfinger/assets"
	"github.com/milk9111/triggerfinger/common"
	"github.com/milk9111/triggerfinger/ecs"
	"github.com/milk9111/triggerfinger/ecs/component"
	"github.com/milk9111/triggerfinger/ecs/render"
	"github.com/milk9111/triggerfinger/prefabs"
)

const previewSize = 512

// previewGame loops one sheet through the same Animator the game uses.
type previewGame struct {
	ents   *ecs.World
	anim   *component.Animation
	frame  render.Frame
	cycles int
}

func (g *previewGame) Update() error {
	g.ents.Update(1.0 / float64(ebiten.TPS()))
	return nil
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x20, 0x20, 0x20, 0xff})

	g.frame.Reset()
	g.ents.Draw(&g.frame)
	for _, item := range g.frame.Items {
		s, ok := item.(render.SpriteDraw)
		if !ok {
			continue
		}
		img, ok := s.Image.(*ebiten.Image)
		if !ok {
			continue
		}
		sub := img.SubImage(s.Source).(*ebiten.Image)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-float64(s.Source.Dx())/2, -float64(s.Source.Dy())/2)
		op.GeoM.Scale(s.Scale, s.Scale)
		op.GeoM.Translate(s.Position.X, s.Position.Y)
		op.Filter = ebiten.FilterNearest
		screen.DrawImage(sub, op)
	}

	ebitenutil.DebugPrintAt(screen, debugLine(g.anim, g.cycles), 8, 8)
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return previewSize, previewSize
}

func main() {
	spec, err := prefabs.LoadEndlessSpec()
	if err != nil {
		log.Fatal(err)
	}
	player := spec.Player

	sheet := flag.String("sheet", player.Sheet, "sheet name under assets/sheets")
	frameW := flag.Int("w", player.FrameWidth, "frame width")
	frameH := flag.Int("h", player.FrameHeight, "frame height")
	count := flag.Int("count", player.ShootFrames, "frame count")
	rows := flag.Int("rows", 1, "grid rows")
	scale := flag.Float64("scale", 4, "draw scale")
	flag.Parse()

	reg := render.NewRegistry()
	if err := assets.LoadSheets(reg, *sheet); err != nil {
		log.Fatal(err)
	}
	img, err := reg.GetImage(*sheet)
	if err != nil {
		log.Fatal(err)
	}

	g, err := newPreview(img, *count, *frameW, *frameH, *rows, *scale)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(previewSize, previewSize)
	ebiten.SetWindowTitle("Sheet Preview: " + *sheet)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

func newPreview(img render.Image, count, frameW, frameH, rows int, scale float64) (*previewGame, error) {
	cols := (count + rows - 1) / rows
	anim, err := component.NewAnimation(img, count, frameW, frameH,
		component.WithGrid(rows, cols),
		component.WithLooping(),
	)
	if err != nil {
		return nil, err
	}

	g := &previewGame{ents: ecs.NewWorld(), anim: anim}
	anim.OnEnd(func() { g.cycles++ })

	e, err := ecs.NewBuilder("preview", ecs.LayerMiddle).
		WithTransform(common.Vec(previewSize/2, previewSize/2), 0).
		WithComponent(component.NewSprite(img, image.Rect(0, 0, frameW, frameH), scale)).
		WithComponent(component.NewAnimator(anim)).
		Build()
	if err != nil {
		return nil, err
	}
	g.ents.Add(e)
	return g, nil
}

func debugLine(a *component.Animation, cycles int) string {
	return fmt.Sprintf("frame %d/%d  cycles %d  %d fps", a.Frame()+1, a.FrameCount(), cycles, component.FPS)
}
