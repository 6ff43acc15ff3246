package component

import (
	"github.com/milk9111/triggerfinger/ecs"
)

// Animator plays an Animation into its entity's Sprite. The Sprite must be
// attached first.
type Animator struct {
	ecs.Base
	sprite    *Sprite
	animation *Animation
}

func NewAnimator(initial *Animation) *Animator {
	return &Animator{animation: initial}
}

func (a *Animator) Initialize() error {
	s, err := ecs.MustGet[*Sprite](a.Entity())
	if err != nil {
		return err
	}
	a.sprite = s
	a.apply()
	return nil
}

func (a *Animator) Animation() *Animation {
	return a.animation
}

// SetAnimation replaces the playing animation and rewinds the one it
// replaces.
func (a *Animator) SetAnimation(anim *Animation) {
	if a.animation != nil {
		a.animation.Reset()
	}
	a.animation = anim
	a.apply()
}

func (a *Animator) Update(dt float64) {
	if a.animation == nil {
		return
	}
	a.animation.Update(dt)
	a.apply()
}

func (a *Animator) apply() {
	if a.animation == nil || a.sprite == nil {
		return
	}
	src, err := a.animation.SourceRect()
	if err != nil {
		// Geometry is validated at construction, so this is a bug.
		panic(err)
	}
	a.sprite.Image = a.animation.Sheet()
	a.sprite.Source = src
}
