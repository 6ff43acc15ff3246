package obj

import (
	"image"
	"math"

	"github.com/milk9111/triggerfinger/common"
	"github.com/milk9111/triggerfinger/ecs"
	"github.com/milk9111/triggerfinger/ecs/component"
	"github.com/milk9111/triggerfinger/ecs/render"
	"github.com/milk9111/triggerfinger/game"
	"github.com/milk9111/triggerfinger/prefabs"
)

const (
	deathSpin = 20.0
)

// Player is the recoil-driven gun. Each shot pushes the body away from the
// barrel and spins it toward the side it faces.
type Player struct {
	ecs.Base

	spec     prefabs.PlayerSpec
	ctx      *game.Context
	shoot    *component.Animation
	body     *component.PhysicsBody
	sprite   *component.Sprite
	animator *component.Animator

	ammo   int
	reload float64
	shots  uint64
}

func NewPlayer(ctx *game.Context, spec prefabs.PlayerSpec, shoot *component.Animation) *Player {
	return &Player{spec: spec, ctx: ctx, shoot: shoot, ammo: spec.Ammo}
}

func (p *Player) Initialize() error {
	var err error
	if p.body, err = ecs.MustGet[*component.PhysicsBody](p.Entity()); err != nil {
		return err
	}
	if p.sprite, err = ecs.MustGet[*component.Sprite](p.Entity()); err != nil {
		return err
	}
	if p.animator, err = ecs.MustGet[*component.Animator](p.Entity()); err != nil {
		return err
	}
	return nil
}

func (p *Player) Ammo() int {
	return p.ammo
}

func (p *Player) MaxAmmo() int {
	return p.spec.Ammo
}

// Cooldown is true while the reload penalty runs.
func (p *Player) Cooldown() bool {
	return p.reload > 0
}

// CanShoot reports whether a shot would fire right now.
func (p *Player) CanShoot() bool {
	return p.ammo > 0 && !p.Cooldown()
}

// Shots counts every shot fired.
func (p *Player) Shots() uint64 {
	return p.shots
}

func (p *Player) Body() *component.PhysicsBody {
	return p.body
}

// Shoot fires one round and reports whether it did. Quick shots multiply
// the recoil by the quick shot modifier.
func (p *Player) Shoot(quick bool) bool {
	if !p.CanShoot() {
		return false
	}

	t := p.Transform()
	force := p.spec.ShootForce
	if quick {
		force *= p.spec.QuickShotModifier
	}
	p.body.AddForce(common.FromAngle(t.Rotation).Neg().Scale(force))

	spin := p.spec.SpinTurns * 2 * math.Pi
	if !p.sprite.FlipY {
		spin = -spin
	}
	p.body.AngularVelocity = spin

	p.ammo--
	p.shots++
	if p.shoot != nil {
		p.animator.SetAnimation(p.shoot)
	}
	return true
}

// Reload refills the magazine and starts the reload penalty.
func (p *Player) Reload() {
	p.ammo = p.spec.Ammo
	p.reload = p.spec.ReloadPenalty
}

func (p *Player) Update(dt float64) {
	if p.reload > 0 {
		p.reload -= dt
	}

	t := p.Transform()
	w := p.ctx.Width()
	p.sprite.FlipY = t.Position.X < w/2

	// the wall margin is the unscaled frame width
	margin := float64(p.sprite.Width())
	bounce := false
	if t.Position.X > w-margin {
		t.Position.X = w - margin
		bounce = true
	} else if t.Position.X < margin {
		t.Position.X = margin
		bounce = true
	}

	if bounce {
		b := p.spec.Bounce
		p.body.Velocity.Y *= b.Vertical
		p.body.Velocity.X *= b.Horizontal
		p.body.AngularVelocity *= b.Angular
	}
}

// Fall plays one step of the game over tumble. Nothing else moves the player
// once the game is over.
func (p *Player) Fall(dt float64) {
	t := p.Transform()
	t.Rotate(deathSpin * dt)
	t.Translate(common.Down.Scale(p.ctx.Height() * dt))
}

// BuildPlayer assembles the player entity from sheet. onHit runs for every
// collision of the player's circle.
func BuildPlayer(ctx *game.Context, spec prefabs.PlayerSpec, sheet render.Image, onHit component.CollisionListener) (*ecs.Entity, *Player, error) {
	shoot, err := component.NewAnimation(sheet, spec.ShootFrames, spec.FrameWidth, spec.FrameHeight)
	if err != nil {
		return nil, nil, err
	}

	sprite := component.NewSprite(sheet, image.Rect(0, 0, spec.FrameWidth, spec.FrameHeight), spec.Scale)
	sprite.FlipY = true

	size := sprite.Size()
	radius := math.Max(size.X, size.Y)/2 - spec.RadiusInset
	circle := component.NewCircle(radius, component.CollisionLayer{
		Category: component.CategoryPlayer,
		Mask:     component.CategoryEnemy,
	})
	circle.OnCollision(onHit)

	body := component.NewPhysicsBody(ctx)
	body.FreezeX = spec.FreezeX

	player := NewPlayer(ctx, spec, shoot)

	start := common.Vec(
		spec.Start.X+spec.Start.XFraction*ctx.Width(),
		spec.Start.Y+spec.Start.YFraction*ctx.Height(),
	)
	e, err := ecs.NewBuilder("Player", ecs.LayerMiddle).
		WithTransform(start, spec.RotationTurns*2*math.Pi).
		WithComponent(sprite).
		WithComponent(component.NewAnimator(nil)).
		WithComponent(circle).
		WithComponent(body).
		WithComponent(player).
		Build()
	if err != nil {
		return nil, nil, err
	}
	return e, player, nil
}
