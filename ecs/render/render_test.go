package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/milk9111/triggerfinger/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferLockRequiresValidSurface(t *testing.T) {
	b := NewBuffer()

	_, ok := b.Lock()
	assert.False(t, ok)
	assert.False(t, b.View(func(*Frame) {}))

	b.SetValid(true)
	f, ok := b.Lock()
	require.True(t, ok)
	f.Offset = common.Vec(1, 2)
	f.AddSprite(SpriteDraw{Position: common.Vec(3, 4)})
	b.UnlockAndPost(f)
	assert.Equal(t, uint64(1), b.Posted())

	var seen Frame
	require.True(t, b.View(func(front *Frame) { seen = *front }))
	assert.Equal(t, common.Vec(1, 2), seen.Offset)
	assert.Len(t, seen.Items, 1)

	// the next back frame comes back cleared and is not the posted one
	next, ok := b.Lock()
	require.True(t, ok)
	assert.NotSame(t, f, next)
	assert.Empty(t, next.Items)

	b.SetValid(false)
	_, ok = b.Lock()
	assert.False(t, ok)
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	_, err := r.GetImage("missing")
	assert.Error(t, err)
	_, err = r.GetImage("")
	assert.Error(t, err)

	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	r.RegisterImage("sheet", img)
	got, err := r.GetImage("sheet")
	require.NoError(t, err)
	assert.Equal(t, 4, got.Bounds().Dx())
}

func TestLoadImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 8, 6))
	src.Set(1, 1, color.RGBA{R: 0xff, A: 0xff})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, src))

	fsys := fstest.MapFS{
		"sheets/player.png": {Data: buf.Bytes()},
		"broken.png":        {Data: []byte("not a png")},
	}

	tests := []struct {
		name    string
		key     string
		wantErr bool
	}{
		{name: "sheets_dir", key: "player.png"},
		{name: "bare_name", key: "player"},
		{name: "missing", key: "nope.png", wantErr: true},
		{name: "undecodable", key: "broken.png", wantErr: true},
		{name: "empty_key", key: "", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := NewRegistry()
			img, err := r.LoadImage(fsys, tc.key, nil)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, image.Rect(0, 0, 8, 6), img.Bounds())

			cached, err := r.LoadImage(nil, tc.key, nil)
			require.NoError(t, err)
			assert.Equal(t, img, cached)
		})
	}
}
