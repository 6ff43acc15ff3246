package mode

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/milk9111/triggerfinger/common"
	"github.com/milk9111/triggerfinger/ecs"
	"github.com/milk9111/triggerfinger/ecs/render"
	"github.com/milk9111/triggerfinger/ecs/system"
	"github.com/milk9111/triggerfinger/game"
	"github.com/milk9111/triggerfinger/input"
	"github.com/milk9111/triggerfinger/obj"
	"github.com/milk9111/triggerfinger/prefabs"
)

// Surface is the drawing target a mode composes frames into.
type Surface interface {
	// Lock returns a cleared frame, or false when the surface cannot be
	// drawn to right now.
	Lock() (*render.Frame, bool)
	UnlockAndPost(f *render.Frame)
}

// Mode is one playable game mode. Update and Draw are called from the loop
// goroutine; the pointer methods and Reload from the host's input path.
// Pointer coordinates are screen coordinates.
type Mode interface {
	Context() *game.Context
	Update(dt float64)
	// Draw reports whether a frame was posted.
	Draw(s Surface) bool
	PointerDown(x, y float64)
	PointerMove(x, y float64)
	PointerUp(x, y float64)
	Reload()
}

// Config carries what every mode needs besides its own spec.
type Config struct {
	// Images resolves the sheet names used by the mode's spec.
	Images *render.Registry
	Input  prefabs.InputSpec
	// Clock times gestures. Nil uses the system clock.
	Clock common.Clock
}

func (c Config) image(key string) (render.Image, error) {
	img, err := c.Images.GetImage(key)
	if err != nil {
		return nil, fmt.Errorf("mode: sheet %q: %w", key, err)
	}
	return img, nil
}

// base is the pipeline shared by every mode. mu is held for a whole Update,
// a whole Draw and each pointer handler, so input never lands mid-step.
type base struct {
	mu sync.Mutex

	ctx     *game.Context
	world   *ecs.World
	tracker *input.Tracker
	clear   color.RGBA
	aimSlow float64

	player       *obj.Player
	playerEntity *ecs.Entity

	// toWorld maps screen coordinates into the world.
	toWorld func(p common.Vector2) common.Vector2
}

func newBase(ctx *game.Context, cfg Config, aimSlow float64, clear color.RGBA) *base {
	b := &base{
		ctx:     ctx,
		world:   ecs.NewWorld(),
		clear:   clear,
		aimSlow: aimSlow,
		toWorld: func(p common.Vector2) common.Vector2 { return p },
		tracker: input.NewTracker(input.Config{
			DragThreshold:     cfg.Input.DragThreshold,
			QuickShotDuration: cfg.Input.QuickShotDuration(),
		}, cfg.Clock),
	}
	b.world.AddSystem(system.NewCollisionSystem())
	return b
}

// attachPlayer wires the shooting controls: pressing slows time while a shot
// is available, releasing fires and restores normal speed.
func (b *base) attachPlayer(e *ecs.Entity, p *obj.Player) {
	b.playerEntity = e
	b.player = p
	b.world.Add(e)

	b.tracker.OnStart(func(input.Gesture) {
		if b.ctx.State() == game.StatePlaying && b.player.CanShoot() {
			b.ctx.SetTimeScale(b.aimSlow)
		}
	})
	b.tracker.OnEnd(func(g input.Gesture) {
		if b.ctx.State() == game.StatePlaying {
			b.player.Shoot(g.QuickShot)
		}
		b.ctx.SetTimeScale(1)
	})
}

// gameOver is the collision listener of the player.
func (b *base) gameOver(*ecs.Entity) {
	b.ctx.Transition(game.StateGameOver)
}

func (b *base) Context() *game.Context {
	return b.ctx
}

// step runs update, collision and compaction over the world.
func (b *base) step(dt float64) {
	b.world.Update(dt)
	b.world.RunSystems()
	b.world.Compact()
}

// hold ticks the gesture tracker while the pointer is down.
func (b *base) hold() {
	if b.tracker.Touching() {
		b.tracker.Hold()
	}
}

// Add spawns e into the mode's world.
func (b *base) Add(e *ecs.Entity) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.world.Add(e)
}

func (b *base) PointerDown(x, y float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.ctx.State() == game.StatePaused {
		b.ctx.Transition(game.StatePlaying)
	}
	b.tracker.Start(b.toWorld(common.Vec(x, y)))
}

func (b *base) PointerMove(x, y float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.tracker.Move(b.toWorld(common.Vec(x, y)))
}

func (b *base) PointerUp(x, y float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.tracker.End(b.toWorld(common.Vec(x, y)))
}

func (b *base) Reload() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.player.Reload()
}

func (b *base) Player() *ecs.Entity {
	return b.playerEntity
}

// draw composes the world and the HUD fields every mode shares. The caller
// holds mu.
func (b *base) draw(s Surface, offset common.Vector2, hud func(h *render.HUD)) bool {
	f, ok := s.Lock()
	if !ok {
		return false
	}

	f.Clear = b.clear
	f.Offset = offset
	b.world.Draw(f)

	state := b.ctx.State()
	f.HUD = render.HUD{
		Score:    b.ctx.Score(),
		Ammo:     b.player.Ammo(),
		MaxAmmo:  b.player.MaxAmmo(),
		State:    state.String(),
		GameOver: state == game.StateGameOver,
		Shots:    b.player.Shots(),
	}
	if hud != nil {
		hud(&f.HUD)
	}

	s.UnlockAndPost(f)
	return true
}
