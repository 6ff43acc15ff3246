package main

import (
	"image"
	"sync"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/triggerfinger/assets"
	"github.com/milk9111/triggerfinger/ecs/render"
	"github.com/milk9111/triggerfinger/game"
	"github.com/milk9111/triggerfinger/mode"
	"go.uber.org/zap"
)

// Host runs a mode on its own loop goroutine and bridges it to ebiten:
// input is forwarded from Update, frames are read back in Draw.
type Host struct {
	factory *modeFactory
	fps     int
	logger  *zap.Logger

	buffer   *render.Buffer
	renderer *renderer
	ui       *ebitenui.UI
	uiRect   func() image.Rectangle
	pointer  pointer

	shot      *audio.Player
	lastShots uint64

	mu   sync.Mutex
	mode mode.Mode
	loop *mode.Loop
}

var _ ebiten.Game = (*Host)(nil)

func NewHost(factory *modeFactory, debug bool, fps int) (*Host, error) {
	h := &Host{
		factory:  factory,
		fps:      fps,
		logger:   factory.logger,
		buffer:   render.NewBuffer(),
		renderer: newRenderer(debug),
	}
	if err := h.Restart(); err != nil {
		return nil, err
	}
	h.ui, h.uiRect = newControls(h, factory.name == modeEndless)

	shot, err := assets.LoadAudioPlayer("sounds/shot.wav")
	if err != nil {
		h.logger.Warn("shot sound unavailable", zap.Error(err))
	} else {
		h.shot = shot
	}
	return h, nil
}

// Mode returns the running mode.
func (h *Host) Mode() mode.Mode {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.mode
}

// Restart replaces the running mode with a freshly built one.
func (h *Host) Restart() error {
	m, err := h.factory.build()
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.loop != nil {
		if err := h.loop.Pause(); err != nil {
			h.logger.Warn("stop loop", zap.Error(err))
		}
	}

	h.mode = m
	h.loop = mode.NewLoop(m, h.buffer, mode.WithLogger(h.logger), mode.WithFrameLimit(h.fps))
	h.lastShots = 0
	h.pointer = pointer{}
	h.loop.Resume()

	h.logger.Info("mode started", zap.String("mode", h.factory.name))
	return nil
}

func (h *Host) Update() error {
	m := h.Mode()

	h.ui.Update()
	h.pollPointer(m)

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		m.Reload()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) && m.Context().State() == game.StateGameOver {
		if err := h.Restart(); err != nil {
			return err
		}
	}

	h.playShots()
	return nil
}

// playShots plays the shot sound whenever the posted shot count advances.
func (h *Host) playShots() {
	var shots uint64
	if !h.buffer.View(func(f *render.Frame) { shots = f.HUD.Shots }) {
		return
	}
	if shots > h.lastShots && h.shot != nil {
		_ = h.shot.Rewind()
		h.shot.Play()
	}
	h.lastShots = shots
}

func (h *Host) Draw(screen *ebiten.Image) {
	h.buffer.View(func(f *render.Frame) {
		h.renderer.draw(screen, f)
	})
	h.ui.Draw(screen)
}

func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	h.buffer.SetValid(true)
	return int(h.factory.width), int(h.factory.height)
}

// Close stops the loop and invalidates the surface.
func (h *Host) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.buffer.SetValid(false)
	if h.loop != nil {
		if err := h.loop.Pause(); err != nil {
			h.logger.Warn("stop loop", zap.Error(err))
		}
	}
}
