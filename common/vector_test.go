package common

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorDistanceSymmetric(t *testing.T) {
	cases := []struct {
		name string
		a, b Vector2
	}{
		{"origin", Zero, Vec(3, 4)},
		{"negative", Vec(-2, -7), Vec(5, 1)},
		{"same", Vec(1.5, 1.5), Vec(1.5, 1.5)},
		{"large", Vec(1e6, -1e6), Vec(-3, 2e5)},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, Distance(c.a, c.b), Distance(c.b, c.a))
		})
	}

	assert.InDelta(t, 5.0, Distance(Zero, Vec(3, 4)), 1e-12)
}

func TestVectorNormalized(t *testing.T) {
	for _, v := range []Vector2{Vec(3, 4), Vec(-0.001, 0), Vec(1e9, 1e9), Down, Vec(-2, 9)} {
		n := v.Normalized()
		assert.InDelta(t, 1.0, n.Length(), 1e-9, "vector %v", v)
	}

	z := Zero.Normalized()
	require.Equal(t, Zero, z)
	assert.False(t, math.IsNaN(z.X) || math.IsNaN(z.Y))
}

func TestVectorArithmetic(t *testing.T) {
	v := Vec(2, -3)
	assert.Equal(t, Vec(3, -1), v.Add(Vec(1, 2)))
	assert.Equal(t, Vec(1, -5), v.Sub(Vec(1, 2)))
	assert.Equal(t, Vec(4, -6), v.Scale(2))
	assert.Equal(t, Vec(1, -1.5), v.Div(2))
	assert.Equal(t, Vec(-2, 3), v.Neg())
	assert.Equal(t, 13.0, v.LengthSquared())
	assert.Equal(t, -4.0, v.Dot(Vec(1, 2)))
}

func TestVectorAngles(t *testing.T) {
	assert.InDelta(t, math.Pi/2, Angle(Down), 1e-12)
	assert.InDelta(t, math.Pi, AngleBetween(Vec(5, 5), Vec(1, 5)), 1e-12)

	f := FromAngle(-math.Pi / 2)
	assert.InDelta(t, Up.X, f.X, 1e-12)
	assert.InDelta(t, Up.Y, f.Y, 1e-12)
}

func TestHelpers(t *testing.T) {
	assert.Equal(t, 0.25, Fraction(2, 1, 5))
	assert.Equal(t, 2.0, Fractal(0.25, 1, 5))
	assert.Equal(t, 5.0, Lerp(0, 10, 0.5))
	assert.Equal(t, 1.0, Clamp(3, -1, 1))
	assert.Equal(t, -1.0, Clamp(-3, -1, 1))
	assert.Equal(t, 2.0, ToUnits(400))
	assert.Equal(t, 800.0, ToPixels(4))
}

func TestManualClock(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewManualClock(start)
	c.Advance(250 * time.Millisecond)
	assert.Equal(t, 250*time.Millisecond, c.Now().Sub(start))
}
