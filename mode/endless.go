package mode

import (
	"math"

	"github.com/milk9111/triggerfinger/common"
	"github.com/milk9111/triggerfinger/ecs"
	"github.com/milk9111/triggerfinger/ecs/render"
	"github.com/milk9111/triggerfinger/game"
	"github.com/milk9111/triggerfinger/obj"
	"github.com/milk9111/triggerfinger/prefabs"
)

// Endless is the climbing mode: shoot upward, away from the rising lava.
// The score is the greatest height reached, in units.
type Endless struct {
	*base

	spec       prefabs.EndlessSpec
	lava       *obj.Lava
	lavaEntity *ecs.Entity
	camera     *obj.Camera
	maxHeight  int
}

var _ Mode = (*Endless)(nil)

func NewEndless(ctx *game.Context, spec prefabs.EndlessSpec, cfg Config) (*Endless, error) {
	m := &Endless{
		base:   newBase(ctx, cfg, spec.AimSlowFactor, spec.ClearColor.RGBA),
		spec:   spec,
		camera: obj.NewCamera(ctx.Height(), spec.FollowFraction),
	}
	m.toWorld = m.camera.ToWorld

	sheet, err := cfg.image(spec.Player.Sheet)
	if err != nil {
		return nil, err
	}
	playerEntity, player, err := obj.BuildPlayer(ctx, spec.Player, sheet, m.gameOver)
	if err != nil {
		return nil, err
	}
	m.attachPlayer(playerEntity, player)

	m.lavaEntity, m.lava, err = obj.BuildLava(ctx, spec.Lava, playerEntity.Transform())
	if err != nil {
		return nil, err
	}
	m.world.Add(m.lavaEntity)

	return m, nil
}

func (m *Endless) Lava() *ecs.Entity {
	return m.lavaEntity
}

func (m *Endless) Camera() *obj.Camera {
	return m.camera
}

// Height is the player's current height in units, up being positive.
func (m *Endless) Height() int {
	return -int(math.Round(common.ToUnits(m.playerEntity.Transform().Position.Y)))
}

func (m *Endless) Update(dt float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch m.ctx.State() {
	case game.StatePaused:
		m.lava.UpdateOffset(dt)

	case game.StateGameOver:
		m.lavaEntity.Update(dt)
		m.player.Fall(dt)

	case game.StatePlaying:
		m.step(dt)

		pos := m.playerEntity.Transform().Position
		if pos.Y > m.lavaEntity.Transform().Position.Y {
			m.ctx.Transition(game.StateGameOver)
		} else {
			m.camera.Follow(pos)
		}

		m.maxHeight = max(m.maxHeight, m.Height())
		m.ctx.SetScore(m.maxHeight)

		m.hold()
	}
}

func (m *Endless) Draw(s Surface) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	offset := m.camera.Offset()
	h := m.ctx.Height()
	return m.draw(s, offset, func(hud *render.HUD) {
		hud.Height = m.Height()
		hud.ShowHeight = true
		hud.ShowAmmo = true
		hud.Reloading = m.player.Cooldown()
		hud.GameOverY = common.Clamp(m.lavaEntity.Transform().Position.Y+offset.Y+h/2, h/2, h+300)
	})
}
