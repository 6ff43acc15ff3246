package ecs

import (
	"fmt"
	"reflect"
)

// Get returns the first component of e assignable to T.
func Get[T any](e *Entity) (T, bool) {
	var zero T
	if e == nil {
		return zero, false
	}
	for _, c := range e.components {
		if v, ok := c.(T); ok {
			return v, true
		}
	}
	return zero, false
}

// MustGet is Get for initializers: a missing sibling is a configuration error.
func MustGet[T any](e *Entity) (T, error) {
	v, ok := Get[T](e)
	if !ok {
		name := "<detached>"
		if e != nil {
			name = e.name
		}
		return v, fmt.Errorf("%w: %s on %q", ErrMissingComponent, reflect.TypeFor[T](), name)
	}
	return v, nil
}

func Has[T any](e *Entity) bool {
	_, ok := Get[T](e)
	return ok
}
