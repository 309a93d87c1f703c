package scene

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"tween/dispatch"
)

// Sprite is the demo actor: a handful of animatable properties owned by the
// show's render loop. Every mutation must happen on that loop; the transition
// engine learns this through the dispatch.Owned affiliation.
type Sprite struct {
	name string
	loop *dispatch.Loop

	X       float64
	Y       float64
	Scale   float64
	Opacity float64
	Label   string
	Tint    colorful.Color
}

func NewSprite(name string, loop *dispatch.Loop) *Sprite {
	return &Sprite{name: name, loop: loop, Scale: 1, Opacity: 1}
}

func (s *Sprite) Name() string { return s.name }

// DispatchLoop reports the render loop owning this sprite.
func (s *Sprite) DispatchLoop() *dispatch.Loop { return s.loop }

// frame renders one line of state. Only call on the render loop.
func (s *Sprite) frame() string {
	return fmt.Sprintf("%s pos=(%.1f,%.1f) scale=%.2f opacity=%.2f tint=%s label=%q",
		s.name, s.X, s.Y, s.Scale, s.Opacity, s.Tint.Hex(), s.Label)
}
