package obj

import (
	"fmt"
	"math"

	"github.com/d5/tengo/v2"
	"github.com/milk9111/triggerfinger/common"
	"github.com/milk9111/triggerfinger/ecs"
	"github.com/milk9111/triggerfinger/ecs/render"
	"github.com/milk9111/triggerfinger/game"
	"github.com/milk9111/triggerfinger/prefabs"
	"go.uber.org/zap"
)

// SpeedFunc returns the lava's rise speed for the gap between lava and
// player (negative once the player is below the surface).
type SpeedFunc func(minSpeed, yDiff float64) (float64, error)

// DefaultSpeed triples the minimum once the player is under the lava and
// otherwise scales it with the gap, one minimum per 200px.
func DefaultSpeed(minSpeed, yDiff float64) (float64, error) {
	if yDiff < 0 {
		return minSpeed * 3, nil
	}
	return math.Max(minSpeed, minSpeed*yDiff/200), nil
}

// ScriptSpeed compiles a tengo speed curve. The script reads min_speed and
// y_diff and must leave the result in speed.
func ScriptSpeed(src []byte) (SpeedFunc, error) {
	script := tengo.NewScript(src)
	_ = script.Add("min_speed", 0.0)
	_ = script.Add("y_diff", 0.0)

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("lava: compile speed script: %w", err)
	}

	fn := func(minSpeed, yDiff float64) (float64, error) {
		if err := compiled.Set("min_speed", minSpeed); err != nil {
			return 0, err
		}
		if err := compiled.Set("y_diff", yDiff); err != nil {
			return 0, err
		}
		if err := compiled.Run(); err != nil {
			return 0, fmt.Errorf("lava: run speed script: %w", err)
		}
		if !compiled.IsDefined("speed") {
			return 0, fmt.Errorf("lava: speed script does not define speed")
		}
		return compiled.Get("speed").Float(), nil
	}

	// globals only exist after a run
	if _, err := fn(1, 0); err != nil {
		return nil, err
	}
	return fn, nil
}

// Lava rises toward the player and draws itself as two offset wave bands.
type Lava struct {
	ecs.Base

	spec    prefabs.LavaSpec
	ctx     *game.Context
	target  *ecs.Transform
	speedFn SpeedFunc
	xOffset float64
	speed   float64
}

// NewLava follows target. A nil speed function uses DefaultSpeed.
func NewLava(ctx *game.Context, spec prefabs.LavaSpec, target *ecs.Transform, speed SpeedFunc) *Lava {
	if speed == nil {
		speed = DefaultSpeed
	}
	if spec.WaveStep <= 0 {
		spec.WaveStep = 25
	}
	return &Lava{spec: spec, ctx: ctx, target: target, speedFn: speed}
}

// Speed is the rise speed used by the latest update.
func (l *Lava) Speed() float64 {
	return l.speed
}

func (l *Lava) Update(dt float64) {
	yDiff := l.Transform().Position.Y - l.target.Position.Y
	speed, err := l.speedFn(l.spec.MinSpeed, yDiff)
	if err != nil {
		l.ctx.Logger().Warn("lava speed script failed, using default", zap.Error(err))
		speed, _ = DefaultSpeed(l.spec.MinSpeed, yDiff)
	}
	l.speed = speed

	l.Transform().Translate(common.Up.Scale(speed * dt))
	l.UpdateOffset(dt)
}

// UpdateOffset only animates the surface waves.
func (l *Lava) UpdateOffset(dt float64) {
	l.xOffset += l.spec.WaveSpeed * dt
}

func (l *Lava) Offset() float64 {
	return l.xOffset
}

func (l *Lava) Draw(f *render.Frame) {
	surface := l.Surface()
	f.AddPolygon(render.PolygonDraw{Points: surface, Fill: l.spec.Color.RGBA})

	w := l.ctx.Width()
	deep := make([]common.Vector2, len(surface))
	for i, p := range surface {
		deep[i] = common.Vec(w-p.X, p.Y+l.spec.DeepOffset)
	}
	f.AddPolygon(render.PolygonDraw{Points: deep, Fill: l.spec.DeepColor.RGBA})
}

// Surface returns the closed outline of the lava: the wave along the top
// and the screen's width down to one screen height below the surface.
func (l *Lava) Surface() []common.Vector2 {
	pos := l.Transform().Position
	w := l.ctx.Width()
	bottom := pos.Y + l.ctx.Height()

	points := []common.Vector2{pos}
	prevY := pos.Y
	for x := 0; float64(x) <= w; x += l.spec.WaveStep {
		prevY = pos.Y + math.Sin(float64(x)+l.xOffset)*l.spec.WaveAmplitude
		points = append(points, common.Vec(float64(x), prevY))
	}
	return append(points,
		common.Vec(w, prevY),
		common.Vec(w, bottom),
		common.Vec(pos.X, bottom),
	)
}

// BuildLava places the lava a fraction of the screen height below the top
// and loads its speed script, if one is configured.
func BuildLava(ctx *game.Context, spec prefabs.LavaSpec, target *ecs.Transform) (*ecs.Entity, *Lava, error) {
	var speed SpeedFunc
	if spec.SpeedScript != "" {
		src, err := prefabs.LoadScript(spec.SpeedScript)
		if err != nil {
			return nil, nil, fmt.Errorf("lava: load %s: %w", spec.SpeedScript, err)
		}
		if speed, err = ScriptSpeed(src); err != nil {
			return nil, nil, err
		}
	}

	lava := NewLava(ctx, spec, target, speed)
	e, err := ecs.NewBuilder("Lava", ecs.LayerForeground).
		WithTransform(common.Vec(0, ctx.Height()*spec.StartFraction), 0).
		WithComponent(lava).
		Build()
	if err != nil {
		return nil, nil, err
	}
	return e, lava, nil
}
