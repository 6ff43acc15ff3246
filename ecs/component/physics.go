package component

import (
	"fmt"

	"github.com/milk9111/triggerfinger/common"
	"github.com/milk9111/triggerfinger/ecs"
)

const (
	DefaultGravity = 750.0
	DefaultDamping = 0.01
)

// Environment supplies the world-wide physics settings read on every step.
type Environment interface {
	Gravity() common.Vector2
	Damping() float64
	TimeScale() float64
}

type defaultEnvironment struct{}

func (defaultEnvironment) Gravity() common.Vector2 { return common.Down.Scale(DefaultGravity) }
func (defaultEnvironment) Damping() float64        { return DefaultDamping }
func (defaultEnvironment) TimeScale() float64      { return 1 }

// PhysicsBody integrates its entity's transform with semi-implicit Euler.
type PhysicsBody struct {
	ecs.Base

	Velocity        common.Vector2
	AngularVelocity float64
	Mass            float64
	UseGravity      bool
	UseDamping      bool
	// FreezeX and FreezeY zero the matching axis of the velocity used to move
	// the transform. The stored velocity is left alone.
	FreezeX bool
	FreezeY bool

	env Environment
}

// NewPhysicsBody returns a unit-mass body with gravity and damping enabled.
// A nil env uses the default gravity and damping at normal time scale.
func NewPhysicsBody(env Environment) *PhysicsBody {
	if env == nil {
		env = defaultEnvironment{}
	}
	return &PhysicsBody{
		Mass:       1,
		UseGravity: true,
		UseDamping: true,
		env:        env,
	}
}

func (b *PhysicsBody) Initialize() error {
	if b.Mass <= 0 {
		return fmt.Errorf("%w: got %g", ErrInvalidMass, b.Mass)
	}
	if b.env == nil {
		b.env = defaultEnvironment{}
	}
	return nil
}

func (b *PhysicsBody) Update(dt float64) {
	if b.UseGravity {
		b.Velocity = b.Velocity.Add(b.env.Gravity().Scale(dt))
	}

	// Damping follows the global time scale, not dt, so drag feels the same
	// in slow motion.
	if b.UseDamping {
		k := b.env.Damping() * b.env.TimeScale()
		b.Velocity = b.Velocity.Sub(b.Velocity.Scale(k))
		b.AngularVelocity -= b.AngularVelocity * k
	}

	v := b.Velocity
	if b.FreezeX {
		v.X = 0
	}
	if b.FreezeY {
		v.Y = 0
	}

	t := b.Transform()
	t.Position = t.Position.Add(v.Scale(dt))
	t.Rotation += b.AngularVelocity * dt
}

// AddForce applies an instantaneous impulse.
func (b *PhysicsBody) AddForce(force common.Vector2) {
	b.Velocity = b.Velocity.Add(force.Div(b.Mass))
}

func (b *PhysicsBody) AddAngularForce(amount float64) {
	b.AngularVelocity += amount
}
