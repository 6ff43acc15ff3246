package ecs

import "errors"

var (
	ErrNilComponent     = errors.New("ecs: component is nil")
	ErrMissingComponent = errors.New("ecs: missing required component")
)
