package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type VectorSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type PhysicsSpec struct {
	Gravity VectorSpec `yaml:"gravity"`
	Damping float64    `yaml:"damping"`
}

func LoadPhysicsSpec() (*PhysicsSpec, error) {
	spec, err := LoadSpec[PhysicsSpec]("physics.yaml")
	if err != nil {
		return nil, err
	}
	if spec.Damping < 0 || spec.Damping >= 1 {
		return nil, fmt.Errorf("prefabs: physics.yaml: damping %g out of [0, 1)", spec.Damping)
	}
	return &spec, nil
}

type InputSpec struct {
	DragThreshold    float64 `yaml:"drag_threshold"`
	QuickShotSeconds float64 `yaml:"quick_shot_seconds"`
}

func (s InputSpec) QuickShotDuration() time.Duration {
	return time.Duration(s.QuickShotSeconds * float64(time.Second))
}

func LoadInputSpec() (*InputSpec, error) {
	spec, err := LoadSpec[InputSpec]("input.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// PlacementSpec positions an entity relative to the screen: the absolute
// offset plus a fraction of the screen size.
type PlacementSpec struct {
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
	XFraction float64 `yaml:"x_fraction"`
	YFraction float64 `yaml:"y_fraction"`
}

type BounceSpec struct {
	Vertical   float64 `yaml:"vertical"`
	Horizontal float64 `yaml:"horizontal"`
	Angular    float64 `yaml:"angular"`
}

type PlayerSpec struct {
	Ammo              int     `yaml:"ammo"`
	ShootForce        float64 `yaml:"shoot_force"`
	QuickShotModifier float64 `yaml:"quick_shot_modifier"`
	ReloadPenalty     float64 `yaml:"reload_penalty"`
	// SpinTurns is the angular impulse of a shot in full turns.
	SpinTurns     float64       `yaml:"spin_turns"`
	Sheet         string        `yaml:"sheet"`
	Scale         float64       `yaml:"scale"`
	FrameWidth    int           `yaml:"frame_width"`
	FrameHeight   int           `yaml:"frame_height"`
	ShootFrames   int           `yaml:"shoot_frames"`
	RadiusInset   float64       `yaml:"radius_inset"`
	Start         PlacementSpec `yaml:"start"`
	RotationTurns float64       `yaml:"rotation_turns"`
	FreezeX       bool          `yaml:"freeze_x"`
	Bounce        BounceSpec    `yaml:"bounce"`
}

type LavaSpec struct {
	StartFraction float64   `yaml:"start_fraction"`
	MinSpeed      float64   `yaml:"min_speed"`
	WaveSpeed     float64   `yaml:"wave_speed"`
	WaveStep      int       `yaml:"wave_step"`
	WaveAmplitude float64   `yaml:"wave_amplitude"`
	DeepOffset    float64   `yaml:"deep_offset"`
	SpeedScript   string    `yaml:"speed_script"`
	Color         YAMLColor `yaml:"color"`
	DeepColor     YAMLColor `yaml:"deep_color"`
}

type PipeSpec struct {
	Sheet          string  `yaml:"sheet"`
	SpawnDistance  float64 `yaml:"spawn_distance"`
	Speed          float64 `yaml:"speed"`
	GapUnits       float64 `yaml:"gap_units"`
	GapMinFraction float64 `yaml:"gap_min_fraction"`
	GapMaxFraction float64 `yaml:"gap_max_fraction"`
	// Seed names the pipe layout. The same seed always yields the same gaps.
	Seed string `yaml:"seed"`
}

type BackgroundSpec struct {
	Sheet string  `yaml:"sheet"`
	Speed float64 `yaml:"speed"`
}

type EndlessSpec struct {
	AimSlowFactor float64 `yaml:"aim_slow_factor"`
	// FollowFraction keeps the player at or below this fraction of the
	// screen height.
	FollowFraction float64    `yaml:"follow_fraction"`
	ClearColor     YAMLColor  `yaml:"clear_color"`
	Player         PlayerSpec `yaml:"player"`
	Lava           LavaSpec   `yaml:"lava"`
}

func LoadEndlessSpec() (*EndlessSpec, error) {
	spec, err := LoadSpec[EndlessSpec]("endless.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type FlappySpec struct {
	AimSlowFactor float64        `yaml:"aim_slow_factor"`
	ClearColor    YAMLColor      `yaml:"clear_color"`
	Player        PlayerSpec     `yaml:"player"`
	Pipes         PipeSpec       `yaml:"pipes"`
	Background    BackgroundSpec `yaml:"background"`
}

func LoadFlappySpec() (*FlappySpec, error) {
	spec, err := LoadSpec[FlappySpec]("flappy.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type YAMLColor struct {
	color.RGBA
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.RGBA = color.RGBA{R: r, G: g, B: b, A: a}
	return nil
}
