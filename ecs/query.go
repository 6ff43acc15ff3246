package ecs

// Query returns the entities that carry a component assignable to T.
func Query[T any](w *World) []*Entity {
	if w == nil {
		return nil
	}
	out := make([]*Entity, 0, len(w.entities))
	for _, e := range w.entities {
		if Has[T](e) {
			out = append(out, e)
		}
	}
	return out
}

// First returns the first entity carrying T.
func First[T any](w *World) (*Entity, bool) {
	if w == nil {
		return nil, false
	}
	for _, e := range w.entities {
		if Has[T](e) {
			return e, true
		}
	}
	return nil, false
}
