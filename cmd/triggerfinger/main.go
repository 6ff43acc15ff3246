package main

import (
	"context"
	"flag"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/triggerfinger/assets"
	"github.com/milk9111/triggerfinger/ecs/render"
	"github.com/milk9111/triggerfinger/prefabs"
	"github.com/pkg/profile"
	"go.uber.org/zap"
)

func main() {
	modeName := flag.String("mode", modeEndless, "game mode: endless or flappy")
	debug := flag.Bool("debug", false, "draw collision shapes and log at debug level")
	fps := flag.Int("fps", 60, "simulation frame limit, 0 runs unthrottled")
	width := flag.Int("width", 540, "logical screen width")
	height := flag.Int("height", 960, "logical screen height")
	watch := flag.Bool("watch", false, "reload prefabs from disk when they change")
	prof := flag.String("profile", "", "write a cpu or mem profile to the working directory")
	flag.Parse()

	logger := newLogger(*debug)
	defer func() { _ = logger.Sync() }()

	switch *prof {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	default:
		logger.Fatal("unknown profile", zap.String("profile", *prof))
	}

	factory := &modeFactory{
		name:       *modeName,
		width:      float64(*width),
		height:     float64(*height),
		images:     render.NewRegistry(),
		logger:     logger,
		loadSheets: assets.LoadSheets,
	}
	host, err := NewHost(factory, *debug, *fps)
	if err != nil {
		logger.Fatal("start game", zap.Error(err))
	}
	defer host.Close()

	if *watch {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		if err := watchPrefabs(ctx, host, logger); err != nil {
			logger.Warn("prefab watcher disabled", zap.Error(err))
		}
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("triggerfinger")

	if err := ebiten.RunGame(host); err != nil {
		logger.Fatal("run game", zap.Error(err))
	}
}

func newLogger(debug bool) *zap.Logger {
	var (
		logger *zap.Logger
		err    error
	)
	if debug {
		logger, err = zap.NewDevelopment()
	} else {
		cfg := zap.NewProductionConfig()
		cfg.DisableCaller = true
		logger, err = cfg.Build()
	}
	if err != nil {
		panic(err)
	}
	return logger
}

func watchPrefabs(ctx context.Context, host *Host, logger *zap.Logger) error {
	w, err := prefabs.NewWatcher(prefabs.Dir, filepath.Join(prefabs.Dir, "scripts"))
	if err != nil {
		return err
	}
	go func() {
		defer w.Close()
		w.Watch(ctx, func(name string) {
			if err := applyPrefab(host.Mode(), name, logger); err != nil {
				logger.Warn("reload prefab", zap.String("file", name), zap.Error(err))
			}
		}, func(err error) {
			logger.Warn("prefab watcher", zap.Error(err))
		})
	}()
	logger.Info("watching prefabs", zap.String("dir", prefabs.Dir))
	return nil
}
