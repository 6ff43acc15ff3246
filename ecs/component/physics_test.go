package component

import (
	"errors"
	"testing"

	"github.com/milk9111/triggerfinger/common"
	"github.com/milk9111/triggerfinger/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	gravity   common.Vector2
	damping   float64
	timeScale float64
}

func (e testEnv) Gravity() common.Vector2 { return e.gravity }
func (e testEnv) Damping() float64        { return e.damping }
func (e testEnv) TimeScale() float64      { return e.timeScale }

func newBody(t *testing.T, env Environment, configure func(b *PhysicsBody)) (*ecs.Entity, *PhysicsBody) {
	t.Helper()
	b := NewPhysicsBody(env)
	if configure != nil {
		configure(b)
	}
	e, err := ecs.NewBuilder("body", ecs.LayerMiddle).WithComponent(b).Build()
	require.NoError(t, err)
	return e, b
}

func TestFreeFall(t *testing.T) {
	const (
		g     = 750.0
		dt    = 1.0 / 60
		steps = 60
	)
	e, b := newBody(t, testEnv{gravity: common.Vec(0, g), timeScale: 1}, func(b *PhysicsBody) {
		b.UseDamping = false
	})

	for i := 0; i < steps; i++ {
		e.Update(dt)
	}

	assert.InDelta(t, g, b.Velocity.Y, 1e-9)
	// semi-implicit Euler overshoots the analytic 0.5*g*t^2 by 0.5*g*t*dt
	T := dt * steps
	assert.InDelta(t, 0.5*g*T*T, e.Transform().Position.Y, 0.5*g*T*dt+1e-6)
	assert.Zero(t, e.Transform().Position.X)
}

func TestDampingFollowsTimeScale(t *testing.T) {
	tests := []struct {
		name      string
		timeScale float64
		want      float64
	}{
		{"normal", 1, 99},
		{"slow", 0.5, 99.5},
		{"frozen", 0, 100},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e, b := newBody(t, testEnv{damping: 0.01, timeScale: tc.timeScale}, func(b *PhysicsBody) {
				b.UseGravity = false
				b.Velocity = common.Vec(100, 0)
				b.AngularVelocity = 100
			})
			e.Update(0.1)
			assert.InDelta(t, tc.want, b.Velocity.X, 1e-9)
			assert.InDelta(t, tc.want, b.AngularVelocity, 1e-9)
			assert.InDelta(t, tc.want*0.1, e.Transform().Position.X, 1e-9)
			assert.InDelta(t, tc.want*0.1, e.Transform().Rotation, 1e-9)
		})
	}
}

func TestFreezeAxesKeepStoredVelocity(t *testing.T) {
	e, b := newBody(t, testEnv{timeScale: 1}, func(b *PhysicsBody) {
		b.UseGravity = false
		b.UseDamping = false
		b.FreezeX = true
		b.Velocity = common.Vec(10, 10)
	})
	e.Transform().Position = common.Vec(5, 5)

	e.Update(1)

	assert.Equal(t, common.Vec(5, 15), e.Transform().Position)
	assert.Equal(t, common.Vec(10, 10), b.Velocity)
}

func TestAddForceDividesByMass(t *testing.T) {
	_, b := newBody(t, nil, func(b *PhysicsBody) {
		b.Mass = 2
	})
	b.AddForce(common.Vec(10, -4))
	b.AddAngularForce(3)
	b.AddAngularForce(-1)

	assert.Equal(t, common.Vec(5, -2), b.Velocity)
	assert.Equal(t, 2.0, b.AngularVelocity)
}

func TestInvalidMassIsConfigurationError(t *testing.T) {
	for _, mass := range []float64{0, -1} {
		b := NewPhysicsBody(nil)
		b.Mass = mass
		_, err := ecs.NewBuilder("bad", ecs.LayerMiddle).WithComponent(b).Build()
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidMass))
	}
}

func TestDefaultEnvironment(t *testing.T) {
	e, b := newBody(t, nil, func(b *PhysicsBody) {
		b.UseDamping = false
	})
	e.Update(1)
	assert.Equal(t, common.Vec(0, DefaultGravity), b.Velocity)
}
