package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"path/filepath"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/milk9111/triggerfinger/ecs/render"
)

const sampleRate = 44100

//go:embed sheets/*.png sounds/*.wav
var assetsFS embed.FS

var (
	audioOnce    sync.Once
	audioContext *audio.Context
)

// LoadSheets decodes the named sprite sheets into reg as ebiten images.
func LoadSheets(reg *render.Registry, names ...string) error {
	for _, name := range names {
		if _, err := reg.LoadImage(assetsFS, cleanAssetPath(name), wrapEbiten); err != nil {
			return fmt.Errorf("assets: sheet %q: %w", name, err)
		}
	}
	return nil
}

func wrapEbiten(img image.Image) render.Image {
	return ebiten.NewImageFromImage(img)
}

// LoadFile loads an embedded asset by assets-relative path.
func LoadFile(path string) ([]byte, error) {
	return assetsFS.ReadFile(cleanAssetPath(path))
}

// LoadAudioPlayer loads an embedded wav asset and creates an audio player.
func LoadAudioPlayer(path string) (*audio.Player, error) {
	b, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(strings.ToLower(path), ".wav") {
		return nil, fmt.Errorf("assets: %q is not a wav file", path)
	}

	audioOnce.Do(func() {
		audioContext = audio.NewContext(sampleRate)
	})
	stream, err := wav.DecodeWithSampleRate(audioContext.SampleRate(), bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decode wav %q: %w", path, err)
	}
	return audioContext.NewPlayer(stream)
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if filepath.IsAbs(path) {
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return filepath.Base(path)
	}
	return strings.TrimPrefix(s, "assets/")
}
