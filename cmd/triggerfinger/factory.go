package main

import (
	"fmt"

	"github.com/milk9111/triggerfinger/common"
	"github.com/milk9111/triggerfinger/ecs/render"
	"github.com/milk9111/triggerfinger/game"
	"github.com/milk9111/triggerfinger/mode"
	"github.com/milk9111/triggerfinger/prefabs"
	"go.uber.org/zap"
)

const (
	modeEndless = "endless"
	modeFlappy  = "flappy"
)

// modeFactory builds a fresh mode from the current prefabs. Specs are read
// on every build so a restart picks up edited files.
type modeFactory struct {
	name          string
	width, height float64
	images        *render.Registry
	logger        *zap.Logger
	// loadSheets fills images with the named sheets before a mode needs them.
	loadSheets func(reg *render.Registry, names ...string) error
}

func (f *modeFactory) build() (mode.Mode, error) {
	phys, err := prefabs.LoadPhysicsSpec()
	if err != nil {
		return nil, err
	}
	in, err := prefabs.LoadInputSpec()
	if err != nil {
		return nil, err
	}

	ctx := game.NewContext(f.width, f.height,
		game.WithLogger(f.logger.With(zap.String("mode", f.name))),
		game.WithPhysics(common.Vec(phys.Gravity.X, phys.Gravity.Y), phys.Damping),
	)
	cfg := mode.Config{Images: f.images, Input: *in}

	switch f.name {
	case modeEndless:
		spec, err := prefabs.LoadEndlessSpec()
		if err != nil {
			return nil, err
		}
		if err := f.load(spec.Player.Sheet); err != nil {
			return nil, err
		}
		m, err := mode.NewEndless(ctx, *spec, cfg)
		if err != nil {
			return nil, err
		}
		return m, nil

	case modeFlappy:
		spec, err := prefabs.LoadFlappySpec()
		if err != nil {
			return nil, err
		}
		if err := f.load(spec.Player.Sheet, spec.Pipes.Sheet, spec.Background.Sheet); err != nil {
			return nil, err
		}
		m, err := mode.NewFlappy(ctx, *spec, cfg)
		if err != nil {
			return nil, err
		}
		return m, nil
	}

	return nil, fmt.Errorf("unknown mode %q (want %s or %s)", f.name, modeEndless, modeFlappy)
}

func (f *modeFactory) load(names ...string) error {
	if f.loadSheets == nil {
		return nil
	}
	return f.loadSheets(f.images, names...)
}

// applyPrefab reacts to an edited prefab file. Physics applies to the running
// mode at once; everything else is read again on the next restart.
func applyPrefab(m mode.Mode, name string, logger *zap.Logger) error {
	switch name {
	case "physics.yaml":
		phys, err := prefabs.LoadPhysicsSpec()
		if err != nil {
			return err
		}
		m.Context().SetPhysics(common.Vec(phys.Gravity.X, phys.Gravity.Y), phys.Damping)
	default:
		logger.Info("prefab changed, applies on restart", zap.String("file", name))
	}
	return nil
}
