package mode

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/milk9111/triggerfinger/common"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Loop drives a mode from one background goroutine: measure the wall-clock
// delta, scale it by the context's time scale, update, then draw.
type Loop struct {
	mode    Mode
	surface Surface
	clock   common.Clock
	logger  *zap.Logger
	// minFrame is the shortest iteration when a frame limit is set.
	minFrame time.Duration

	running atomic.Bool
	frames  atomic.Uint64
	skipped atomic.Uint64

	mu     sync.Mutex
	cancel context.CancelFunc
	group  *errgroup.Group
}

type LoopOption func(*Loop)

func WithClock(clock common.Clock) LoopOption {
	return func(l *Loop) {
		if clock != nil {
			l.clock = clock
		}
	}
}

func WithLogger(logger *zap.Logger) LoopOption {
	return func(l *Loop) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithFrameLimit caps the loop at fps iterations per second. Zero runs
// unthrottled.
func WithFrameLimit(fps int) LoopOption {
	return func(l *Loop) {
		if fps > 0 {
			l.minFrame = time.Second / time.Duration(fps)
		}
	}
}

func NewLoop(m Mode, surface Surface, opts ...LoopOption) *Loop {
	l := &Loop{
		mode:    m,
		surface: surface,
		clock:   common.SystemClock{},
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Loop) Running() bool {
	return l.running.Load()
}

// Frames counts completed iterations.
func (l *Loop) Frames() uint64 {
	return l.frames.Load()
}

// Skipped counts iterations whose draw found the surface unavailable.
func (l *Loop) Skipped() uint64 {
	return l.skipped.Load()
}

// Resume starts the loop goroutine. It is a no-op while already running.
func (l *Loop) Resume() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.running.Load() {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	g, ctx := errgroup.WithContext(ctx)
	l.cancel = cancel
	l.group = g
	l.running.Store(true)

	prev := l.clock.Now()
	g.Go(func() error {
		return l.run(ctx, prev)
	})
	l.logger.Info("loop resumed")
}

// Pause stops the loop and waits for the goroutine to exit. No update or
// draw runs after Pause returns.
func (l *Loop) Pause() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.group == nil {
		return nil
	}

	l.running.Store(false)
	l.cancel()
	err := l.group.Wait()
	l.group = nil
	l.cancel = nil

	l.logger.Info("loop paused", zap.Uint64("frames", l.frames.Load()))
	return err
}

func (l *Loop) run(ctx context.Context, prev time.Time) error {
	for l.running.Load() {
		if ctx.Err() != nil {
			return nil
		}

		start := l.clock.Now()
		dt := start.Sub(prev).Seconds()
		prev = start
		l.Step(dt)

		if l.minFrame > 0 {
			wait := l.minFrame - l.clock.Now().Sub(start)
			if wait > 0 {
				timer := time.NewTimer(wait)
				select {
				case <-ctx.Done():
					timer.Stop()
					return nil
				case <-timer.C:
				}
			}
		}
	}
	return nil
}

// Step runs one iteration with an unscaled delta of dt seconds.
func (l *Loop) Step(dt float64) {
	l.mode.Update(dt * l.mode.Context().TimeScale())
	if !l.mode.Draw(l.surface) {
		l.skipped.Add(1)
		l.logger.Debug("surface unavailable, draw skipped")
	}
	l.frames.Add(1)
}
