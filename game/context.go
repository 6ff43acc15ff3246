package game

import (
	"sync"

	"github.com/milk9111/triggerfinger/common"
	"github.com/milk9111/triggerfinger/ecs/component"
	"go.uber.org/zap"
)

type StateListener func(from, to State)

// Context is the session state shared by the loop goroutine and the input
// path: time scale, play state, score, screen extent and physics tuning.
// It implements component.Environment.
type Context struct {
	mu        sync.RWMutex
	width     float64
	height    float64
	timeScale float64
	state     State
	score     int
	gravity   common.Vector2
	damping   float64
	listeners []StateListener
	logger    *zap.Logger
}

type Option func(*Context)

func WithLogger(logger *zap.Logger) Option {
	return func(c *Context) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func WithPhysics(gravity common.Vector2, damping float64) Option {
	return func(c *Context) {
		c.gravity = gravity
		c.damping = damping
	}
}

// NewContext starts Paused at normal time scale.
func NewContext(width, height float64, opts ...Option) *Context {
	c := &Context{
		width:     width,
		height:    height,
		timeScale: 1,
		state:     StatePaused,
		gravity:   common.Down.Scale(component.DefaultGravity),
		damping:   component.DefaultDamping,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Context) Logger() *zap.Logger {
	return c.logger
}

func (c *Context) Width() float64 {
	return c.width
}

func (c *Context) Height() float64 {
	return c.height
}

func (c *Context) Size() common.Vector2 {
	return common.Vec(c.width, c.height)
}

func (c *Context) TimeScale() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.timeScale
}

// SetTimeScale sets the global time multiplier. Negative values clamp to 0.
func (c *Context) SetTimeScale(s float64) {
	if s < 0 {
		s = 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.timeScale = s
}

func (c *Context) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// OnStateChange registers fn to run after every successful transition.
func (c *Context) OnStateChange(fn StateListener) {
	if fn == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, fn)
}

// Transition moves to the given state if the move is legal and reports
// whether it happened.
func (c *Context) Transition(to State) bool {
	c.mu.Lock()
	from := c.state
	if !CanTransition(from, to) {
		c.mu.Unlock()
		return false
	}
	c.state = to
	listeners := append([]StateListener(nil), c.listeners...)
	score := c.score
	c.mu.Unlock()

	c.logger.Info("state changed",
		zap.Stringer("from", from),
		zap.Stringer("to", to),
		zap.Int("score", score),
	)
	for _, fn := range listeners {
		fn(from, to)
	}
	return true
}

func (c *Context) Score() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.score
}

func (c *Context) SetScore(score int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.score = score
}

func (c *Context) AddScore(n int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.score += n
	return c.score
}

func (c *Context) Gravity() common.Vector2 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.gravity
}

func (c *Context) Damping() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.damping
}

// SetPhysics replaces the tuning read by every physics body on its next step.
func (c *Context) SetPhysics(gravity common.Vector2, damping float64) {
	c.mu.Lock()
	c.gravity = gravity
	c.damping = damping
	c.mu.Unlock()

	c.logger.Debug("physics tuning updated",
		zap.Stringer("gravity", gravity),
		zap.Float64("damping", damping),
	)
}
