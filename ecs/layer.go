package ecs

// DrawLayer is a coarse back-to-front draw bucket.
type DrawLayer uint8

const (
	LayerBackground DrawLayer = iota
	LayerMiddle
	LayerForeground
)

// DrawLayers lists every layer in draw order.
var DrawLayers = []DrawLayer{LayerBackground, LayerMiddle, LayerForeground}

func (l DrawLayer) String() string {
	switch l {
	case LayerBackground:
		return "background"
	case LayerMiddle:
		return "middle"
	case LayerForeground:
		return "foreground"
	default:
		return "unknown"
	}
}
