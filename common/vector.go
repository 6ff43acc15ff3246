package common

import (
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
)

// Vector2 is a 2D vector in screen coordinates (y grows downward).
type Vector2 struct {
	X float64
	Y float64
}

var (
	Zero  = Vector2{}
	Right = Vector2{X: 1}
	Left  = Vector2{X: -1}
	Up    = Vector2{Y: -1}
	Down  = Vector2{Y: 1}
)

func Vec(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// FromAngle returns the unit vector pointing at angle radians.
func FromAngle(radians float64) Vector2 {
	return Vector2{X: math.Cos(radians), Y: math.Sin(radians)}
}

func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vector2) Scale(s float64) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

func (v Vector2) Div(s float64) Vector2 {
	return Vector2{X: v.X / s, Y: v.Y / s}
}

func (v Vector2) Neg() Vector2 {
	return Vector2{X: -v.X, Y: -v.Y}
}

func (v Vector2) Dot(o Vector2) float64 {
	return v.X*o.X + v.Y*o.Y
}

func (v Vector2) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vector2) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// Normalized returns v scaled to unit length. The zero vector is returned unchanged.
func (v Vector2) Normalized() Vector2 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Div(l)
}

// CP converts v to a Chipmunk vector.
func (v Vector2) CP() cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

func (v Vector2) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

// Distance returns the length of the segment between a and b.
func Distance(a, b Vector2) float64 {
	return b.Sub(a).Length()
}

// Angle returns the heading of v in radians.
func Angle(v Vector2) float64 {
	return math.Atan2(v.Y, v.X)
}

// AngleBetween returns the heading of the segment from a to b.
func AngleBetween(a, b Vector2) float64 {
	d := b.Sub(a)
	return math.Atan2(d.Y, d.X)
}
