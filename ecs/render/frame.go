package render

import (
	"image"
	"image/color"

	"github.com/google/uuid"
	"github.com/milk9111/triggerfinger/common"
)

// Item is one ordered draw command in a Frame.
type Item interface {
	item()
}

// SpriteDraw draws Source of Image centered on Position, rotated around its
// center. TopLeft anchors the image at Position instead.
type SpriteDraw struct {
	Entity   uuid.UUID
	Image    Image
	Source   image.Rectangle
	Position common.Vector2
	Rotation float64
	Scale    float64
	FlipX    bool
	FlipY    bool
	TopLeft  bool
}

// PolygonDraw fills a closed polygon in world coordinates.
type PolygonDraw struct {
	Points []common.Vector2
	Fill   color.RGBA
}

func (SpriteDraw) item()  {}
func (PolygonDraw) item() {}

type ShapeKind uint8

const (
	ShapeCircle ShapeKind = iota
	ShapeRectangle
)

// ShapeDraw is collision geometry for debug overlays.
type ShapeDraw struct {
	Entity uuid.UUID
	Kind   ShapeKind
	Center common.Vector2
	Radius float64
	Width  float64
	Height float64
	Color  color.RGBA
}

// HUD carries the values the host prints over the scene.
type HUD struct {
	Score      int
	Height     int
	ShowHeight bool
	Ammo       int
	MaxAmmo    int
	ShowAmmo   bool
	Reloading  bool
	State      string
	GameOver   bool
	// GameOverY is the screen y of the game over banner.
	GameOverY float64
	// Shots counts fired shots since the mode was created; hosts play a
	// sound whenever it advances.
	Shots uint64
}

// Frame is the drawable snapshot of one loop iteration. World items are in
// world coordinates; the host translates them by Offset.
type Frame struct {
	Clear  color.RGBA
	Offset common.Vector2
	Items  []Item
	Shapes []ShapeDraw
	HUD    HUD
}

// Reset clears the frame while keeping its allocations.
func (f *Frame) Reset() {
	f.Clear = color.RGBA{}
	f.Offset = common.Zero
	clear(f.Items)
	f.Items = f.Items[:0]
	f.Shapes = f.Shapes[:0]
	f.HUD = HUD{}
}

func (f *Frame) AddSprite(s SpriteDraw) {
	f.Items = append(f.Items, s)
}

func (f *Frame) AddPolygon(p PolygonDraw) {
	f.Items = append(f.Items, p)
}

func (f *Frame) AddShape(s ShapeDraw) {
	f.Shapes = append(f.Shapes, s)
}
