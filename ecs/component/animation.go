package component

import (
	"fmt"
	"image"

	"github.com/milk9111/triggerfinger/ecs/render"
)

// FPS is the playback rate of every animation.
const FPS = 24

type AnimationListener func()

// Animation samples frames from a sprite sheet laid out row-major in a
// rows x columns grid starting at FirstFrameY.
type Animation struct {
	sheet       render.Image
	frameCount  int
	frameWidth  int
	frameHeight int
	rows        int
	columns     int
	firstFrameY int

	// Looping wraps back to the first frame after notifying. Otherwise the
	// animation holds its last frame until Reset.
	Looping bool

	frame     int
	timer     float64
	finished  bool
	listeners []AnimationListener
}

type AnimationOption func(*Animation)

// WithGrid lays the frames out over rows x columns. The default is one row
// holding every frame.
func WithGrid(rows, columns int) AnimationOption {
	return func(a *Animation) {
		a.rows = rows
		a.columns = columns
	}
}

func WithFirstFrameY(y int) AnimationOption {
	return func(a *Animation) {
		a.firstFrameY = y
	}
}

func WithLooping() AnimationOption {
	return func(a *Animation) {
		a.Looping = true
	}
}

func NewAnimation(sheet render.Image, frameCount, frameWidth, frameHeight int, opts ...AnimationOption) (*Animation, error) {
	a := &Animation{
		sheet:       sheet,
		frameCount:  frameCount,
		frameWidth:  frameWidth,
		frameHeight: frameHeight,
		rows:        1,
		columns:     frameCount,
	}
	for _, opt := range opts {
		opt(a)
	}

	switch {
	case frameCount <= 0:
		return nil, fmt.Errorf("%w: frame count %d", ErrInvalidGeometry, frameCount)
	case frameWidth <= 0 || frameHeight <= 0:
		return nil, fmt.Errorf("%w: frame size %dx%d", ErrInvalidGeometry, frameWidth, frameHeight)
	case a.rows <= 0 || a.columns <= 0:
		return nil, fmt.Errorf("%w: grid %dx%d", ErrInvalidGeometry, a.rows, a.columns)
	case a.rows*a.columns < frameCount:
		return nil, fmt.Errorf("%w: %d frames do not fit a %dx%d grid", ErrInvalidGeometry, frameCount, a.rows, a.columns)
	case a.firstFrameY < 0:
		return nil, fmt.Errorf("%w: first frame y %d", ErrInvalidGeometry, a.firstFrameY)
	}
	return a, nil
}

// StillAnimation is a single-frame animation covering all of img.
func StillAnimation(img render.Image) (*Animation, error) {
	b := img.Bounds()
	return NewAnimation(img, 1, b.Dx(), b.Dy())
}

func (a *Animation) Sheet() render.Image {
	return a.sheet
}

func (a *Animation) Frame() int {
	return a.frame
}

func (a *Animation) FrameCount() int {
	return a.frameCount
}

func (a *Animation) FrameSize() (int, int) {
	return a.frameWidth, a.frameHeight
}

func (a *Animation) Finished() bool {
	return a.finished
}

// OnEnd registers fn to run each time the last frame completes.
func (a *Animation) OnEnd(fn AnimationListener) {
	if fn == nil {
		return
	}
	a.listeners = append(a.listeners, fn)
}

// Reset rewinds to the first frame and clears the timer.
func (a *Animation) Reset() {
	a.frame = 0
	a.timer = 0
	a.finished = false
}

// Update advances at most one frame per call.
func (a *Animation) Update(dt float64) {
	if a.frameCount <= 1 || a.finished {
		return
	}
	a.timer += dt
	if a.timer <= 1.0/FPS {
		return
	}
	a.timer = 0
	a.advance()
}

func (a *Animation) advance() {
	if a.frame+1 < a.frameCount {
		a.frame++
		return
	}
	if a.Looping {
		a.frame = 0
	} else {
		a.finished = true
	}
	for _, fn := range a.listeners {
		fn()
	}
}

// SourceRect returns the sheet region of the current frame.
func (a *Animation) SourceRect() (image.Rectangle, error) {
	row := -1
	for r := 0; r < a.rows; r++ {
		if a.frame >= r*a.columns && a.frame < (r+1)*a.columns {
			row = r
			break
		}
	}
	if row < 0 {
		return image.Rectangle{}, fmt.Errorf("%w: frame %d in %dx%d grid", ErrInvalidFrame, a.frame, a.rows, a.columns)
	}

	col := a.frame - row*a.columns
	x := col * a.frameWidth
	y := a.firstFrameY + row*a.frameHeight
	return image.Rect(x, y, x+a.frameWidth, y+a.frameHeight), nil
}
