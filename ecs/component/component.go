package component

import "errors"

var (
	ErrInvalidMass     = errors.New("component: mass must be positive")
	ErrInvalidGeometry = errors.New("component: invalid animation geometry")
	ErrInvalidFrame    = errors.New("component: frame index maps to no sheet row")
)
