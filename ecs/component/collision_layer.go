package component

// Category is a collision category bitmask.
type Category uint32

const (
	CategoryPlayer Category = 1 << iota
	CategoryEnemy
	CategoryEnvironment
)

// CollisionLayer declares what a shape is (Category) and which categories
// it reacts to (Mask).
type CollisionLayer struct {
	Category Category
	Mask     Category
}

// Accepts reports whether a shape with layer l should test against a shape
// with layer other: the two must share at least one bit.
func (l CollisionLayer) Accepts(other CollisionLayer) bool {
	return l.Mask&other.Category != 0
}
