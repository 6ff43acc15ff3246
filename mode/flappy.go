package mode

import (
	"github.com/milk9111/triggerfinger/common"
	"github.com/milk9111/triggerfinger/ecs"
	"github.com/milk9111/triggerfinger/ecs/render"
	"github.com/milk9111/triggerfinger/game"
	"github.com/milk9111/triggerfinger/obj"
	"github.com/milk9111/triggerfinger/prefabs"
)

// Flappy keeps the player in one column and scrolls pipes past it. Each
// pipe that leaves the screen scores a point.
type Flappy struct {
	*base

	spec       prefabs.FlappySpec
	spawner    *obj.PipeSpawner
	background *obj.Background
}

var _ Mode = (*Flappy)(nil)

func NewFlappy(ctx *game.Context, spec prefabs.FlappySpec, cfg Config) (*Flappy, error) {
	m := &Flappy{
		base: newBase(ctx, cfg, spec.AimSlowFactor, spec.ClearColor.RGBA),
		spec: spec,
	}

	sheet, err := cfg.image(spec.Player.Sheet)
	if err != nil {
		return nil, err
	}
	playerEntity, player, err := obj.BuildPlayer(ctx, spec.Player, sheet, m.gameOver)
	if err != nil {
		return nil, err
	}
	m.attachPlayer(playerEntity, player)

	pipe, err := cfg.image(spec.Pipes.Sheet)
	if err != nil {
		return nil, err
	}
	m.spawner = obj.NewPipeSpawner(ctx, spec.Pipes, m.world, pipe)
	spawner, err := ecs.NewBuilder("Pipe spawner", ecs.LayerMiddle).WithComponent(m.spawner).Build()
	if err != nil {
		return nil, err
	}
	m.world.Add(spawner)

	bg, err := cfg.image(spec.Background.Sheet)
	if err != nil {
		return nil, err
	}
	m.background = obj.NewBackground(ctx, bg, spec.Background.Speed)
	background, err := ecs.NewBuilder("Background", ecs.LayerBackground).WithComponent(m.background).Build()
	if err != nil {
		return nil, err
	}
	m.world.Add(background)

	return m, nil
}

func (m *Flappy) Spawner() *obj.PipeSpawner {
	return m.spawner
}

func (m *Flappy) Update(dt float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch m.ctx.State() {
	case game.StateGameOver:
		m.player.Fall(dt)

	case game.StatePlaying:
		m.step(dt)

		if m.playerEntity.Transform().Position.Y > m.ctx.Height() {
			m.ctx.Transition(game.StateGameOver)
		}

		m.hold()
	}
}

func (m *Flappy) Draw(s Surface) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	h := m.ctx.Height()
	return m.draw(s, common.Zero, func(hud *render.HUD) {
		hud.GameOverY = h / 2
	})
}
