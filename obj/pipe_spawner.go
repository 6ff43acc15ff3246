package obj

import (
	"math/rand/v2"

	"github.com/cespare/xxhash/v2"
	"github.com/milk9111/triggerfinger/common"
	"github.com/milk9111/triggerfinger/ecs"
	"github.com/milk9111/triggerfinger/ecs/component"
	"github.com/milk9111/triggerfinger/ecs/render"
	"github.com/milk9111/triggerfinger/game"
	"github.com/milk9111/triggerfinger/prefabs"
	"go.uber.org/zap"
)

// Adder receives spawned entities.
type Adder interface {
	Add(e *ecs.Entity)
}

// PipeSpawner scrolls pipe pairs from the right edge to the left and scores
// one point for every pipe that leaves the screen.
type PipeSpawner struct {
	ecs.Base

	spec       prefabs.PipeSpec
	ctx        *game.Context
	world      Adder
	sheet      render.Image
	rng        *rand.Rand
	pipes      []*ecs.Entity
	totalMoved float64
}

// NewPipeSpawner seeds its gap layout from spec.Seed, so a seed always
// produces the same course.
func NewPipeSpawner(ctx *game.Context, spec prefabs.PipeSpec, world Adder, sheet render.Image) *PipeSpawner {
	seed := xxhash.Sum64String(spec.Seed)
	return &PipeSpawner{
		spec:       spec,
		ctx:        ctx,
		world:      world,
		sheet:      sheet,
		rng:        rand.New(rand.NewPCG(seed, seed>>1)),
		totalMoved: spec.SpawnDistance,
	}
}

// Pipes returns the live pipes, oldest first.
func (s *PipeSpawner) Pipes() []*ecs.Entity {
	return s.pipes
}

func (s *PipeSpawner) pipeWidth() float64 {
	return float64(s.sheet.Bounds().Dx())
}

func (s *PipeSpawner) Update(dt float64) {
	step := s.spec.Speed * dt
	width := s.pipeWidth()
	for _, p := range s.pipes {
		t := p.Transform()
		t.Translate(common.Left.Scale(step))
		if t.Position.X < -width {
			p.Destroy()
		}
	}
	s.totalMoved += step

	live := s.pipes[:0]
	for _, p := range s.pipes {
		if p.Destroyed() {
			s.ctx.AddScore(1)
			continue
		}
		live = append(live, p)
	}
	clear(s.pipes[len(live):])
	s.pipes = live

	if s.totalMoved > s.spec.SpawnDistance+width {
		s.spawnPair()
		s.totalMoved = 0
	}
}

// spawnPair adds a top and bottom pipe around a random gap center between
// the configured fractions of the screen height.
func (s *PipeSpawner) spawnPair() {
	h := s.ctx.Height()
	center := h * common.Lerp(s.spec.GapMinFraction, s.spec.GapMaxFraction, s.rng.Float64())
	gap := common.ToPixels(s.spec.GapUnits)

	top, sprite := s.newPipe("Pipe top", true)
	bottom, _ := s.newPipe("Pipe bottom", false)

	origin := sprite.Origin()
	size := sprite.Size()
	x := s.ctx.Width() + origin.X

	top.Transform().Position = common.Vec(x, center-gap/2-size.Y+origin.Y)
	bottom.Transform().Position = common.Vec(x, center+gap/2+origin.Y)

	for _, p := range []*ecs.Entity{top, bottom} {
		s.pipes = append(s.pipes, p)
		s.world.Add(p)
	}

	s.ctx.Logger().Debug("pipes spawned",
		zap.Stringer("top", top.ID()),
		zap.Stringer("bottom", bottom.ID()),
		zap.Float64("gap_center", center),
		zap.Int("live", len(s.pipes)),
	)
}

// newPipe panics on a build error: a half-wired pipe mid-game is a bug.
func (s *PipeSpawner) newPipe(name string, flip bool) (*ecs.Entity, *component.Sprite) {
	sprite := component.NewSprite(s.sheet, s.sheet.Bounds(), 1)
	sprite.FlipY = flip
	size := sprite.Size()
	rect := component.NewRectangle(size.X, size.Y, component.CollisionLayer{Category: component.CategoryEnemy})

	e := ecs.NewBuilder(name, ecs.LayerMiddle).
		WithComponent(sprite).
		WithComponent(rect).
		MustBuild()
	return e, sprite
}
