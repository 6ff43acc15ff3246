package input

import (
	"sync"
	"time"

	"github.com/milk9111/triggerfinger/common"
)

const (
	DefaultDragThreshold     = 15.0
	DefaultQuickShotDuration = 200 * time.Millisecond
)

type Kind uint8

const (
	KindStart Kind = iota
	KindMove
	KindHold
	KindEnd
)

func (k Kind) String() string {
	switch k {
	case KindStart:
		return "start"
	case KindMove:
		return "move"
	case KindHold:
		return "hold"
	case KindEnd:
		return "end"
	default:
		return "unknown"
	}
}

// Gesture is a snapshot of the tracked pointer taken when an event is
// dispatched.
type Gesture struct {
	Kind     Kind
	Position common.Vector2
	Start    common.Vector2
	Duration time.Duration
	Drag     bool
	// QuickShot is true when the press was shorter than the quick shot
	// threshold and never became a drag.
	QuickShot bool
	Touching  bool
}

type Listener func(g Gesture)

type Config struct {
	DragThreshold     float64
	QuickShotDuration time.Duration
}

func DefaultConfig() Config {
	return Config{
		DragThreshold:     DefaultDragThreshold,
		QuickShotDuration: DefaultQuickShotDuration,
	}
}

// Tracker classifies a single pointer's down/move/up stream. It knows nothing
// about what the gestures are used for.
type Tracker struct {
	mu        sync.Mutex
	cfg       Config
	clock     common.Clock
	touching  bool
	drag      bool
	start     common.Vector2
	position  common.Vector2
	startTime time.Time
	duration  time.Duration
	listeners [KindEnd + 1][]Listener
}

// NewTracker returns a tracker using clock for press durations. Zero config
// fields fall back to the defaults.
func NewTracker(cfg Config, clock common.Clock) *Tracker {
	if cfg.DragThreshold <= 0 {
		cfg.DragThreshold = DefaultDragThreshold
	}
	if cfg.QuickShotDuration <= 0 {
		cfg.QuickShotDuration = DefaultQuickShotDuration
	}
	if clock == nil {
		clock = common.SystemClock{}
	}
	return &Tracker{cfg: cfg, clock: clock}
}

func (t *Tracker) OnStart(fn Listener) { t.subscribe(KindStart, fn) }
func (t *Tracker) OnMove(fn Listener)  { t.subscribe(KindMove, fn) }
func (t *Tracker) OnHold(fn Listener)  { t.subscribe(KindHold, fn) }
func (t *Tracker) OnEnd(fn Listener)   { t.subscribe(KindEnd, fn) }

func (t *Tracker) subscribe(k Kind, fn Listener) {
	if fn == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.listeners[k] = append(t.listeners[k], fn)
}

// Start begins a new press at p.
func (t *Tracker) Start(p common.Vector2) {
	t.mu.Lock()
	t.touching = true
	t.drag = false
	t.start = p
	t.position = p
	t.startTime = t.clock.Now()
	t.duration = 0
	t.mu.Unlock()

	t.dispatch(KindStart)
}

// Move marks the press as a drag once it strays past the drag threshold.
// The flag stays set until the next Start.
func (t *Tracker) Move(p common.Vector2) {
	t.mu.Lock()
	t.position = p
	if common.Distance(t.start, p) > t.cfg.DragThreshold {
		t.drag = true
	}
	t.mu.Unlock()

	t.dispatch(KindMove)
}

// Hold refreshes the press duration. The game loop calls it every step.
func (t *Tracker) Hold() {
	t.mu.Lock()
	if !t.touching {
		t.mu.Unlock()
		return
	}
	t.duration = t.clock.Now().Sub(t.startTime)
	t.mu.Unlock()

	t.dispatch(KindHold)
}

func (t *Tracker) End(p common.Vector2) {
	t.mu.Lock()
	t.position = p
	t.duration = t.clock.Now().Sub(t.startTime)
	t.touching = false
	t.mu.Unlock()

	t.dispatch(KindEnd)
}

func (t *Tracker) Touching() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.touching
}

func (t *Tracker) Duration() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.duration
}

func (t *Tracker) Drag() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.drag
}

func (t *Tracker) QuickShot() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.quickShotLocked()
}

func (t *Tracker) quickShotLocked() bool {
	return t.duration < t.cfg.QuickShotDuration && !t.drag
}

func (t *Tracker) snapshotLocked(k Kind) Gesture {
	return Gesture{
		Kind:      k,
		Position:  t.position,
		Start:     t.start,
		Duration:  t.duration,
		Drag:      t.drag,
		QuickShot: t.quickShotLocked(),
		Touching:  t.touching,
	}
}

// dispatch calls listeners outside the lock so they may query the tracker.
func (t *Tracker) dispatch(k Kind) {
	t.mu.Lock()
	g := t.snapshotLocked(k)
	listeners := append([]Listener(nil), t.listeners[k]...)
	t.mu.Unlock()

	for _, fn := range listeners {
		fn(g)
	}
}
