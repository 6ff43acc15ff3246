package render

import "sync"

// Buffer is a double-buffered drawing surface shared by the simulation loop
// (writer) and the host renderer (reader).
type Buffer struct {
	mu     sync.Mutex
	valid  bool
	front  *Frame
	back   *Frame
	posted uint64
}

func NewBuffer() *Buffer {
	return &Buffer{front: &Frame{}, back: &Frame{}}
}

// SetValid marks the surface usable. Hosts clear it while the window is
// gone or not yet laid out.
func (b *Buffer) SetValid(valid bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.valid = valid
}

func (b *Buffer) Valid() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.valid
}

// Lock returns the cleared back frame, or false when the surface is not
// valid. Only one writer may hold the back frame at a time.
func (b *Buffer) Lock() (*Frame, bool) {
	b.mu.Lock()
	if !b.valid {
		b.mu.Unlock()
		return nil, false
	}
	back := b.back
	b.mu.Unlock()

	back.Reset()
	return back, true
}

// UnlockAndPost publishes f as the front frame.
func (b *Buffer) UnlockAndPost(f *Frame) {
	if f == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.back, b.front = b.front, f
	b.posted++
}

// View calls fn with the latest posted frame. It reports false when nothing
// has been posted yet.
func (b *Buffer) View(fn func(f *Frame)) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.posted == 0 {
		return false
	}
	fn(b.front)
	return true
}

// Posted returns how many frames have been published.
func (b *Buffer) Posted() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.posted
}
