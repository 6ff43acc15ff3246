package render

import (
	"fmt"
	"image"
	"sync"
)

// Image is an opaque bitmap handle supplied by the host. The core only reads
// its bounds; decoding and drawing stay with the host.
type Image interface {
	Bounds() image.Rectangle
}

// Registry stores host images by key.
type Registry struct {
	mu     sync.RWMutex
	images map[string]Image
}

func NewRegistry() *Registry {
	return &Registry{images: map[string]Image{}}
}

// RegisterImage stores an image by key.
func (r *Registry) RegisterImage(key string, img Image) {
	if r == nil || key == "" || img == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.images[key] = img
}

// GetImage returns a registered image by key.
func (r *Registry) GetImage(key string) (Image, error) {
	if r == nil || key == "" {
		return nil, fmt.Errorf("render: empty image key")
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	img, ok := r.images[key]
	if !ok {
		return nil, fmt.Errorf("render: image %q not registered", key)
	}
	return img, nil
}
