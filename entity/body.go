package entity

import (
	"github.com/lixenwraith/hopper/core"
	"github.com/lixenwraith/hopper/parameter"
	"github.com/lixenwraith/hopper/physics"
)

// Body carries its own velocity and acceleration and nothing else
// It is never clamped to the screen, so it can drift out of view
type Body struct {
	core.Kinetic
}

// Update integrates one frame
func (b *Body) Update() {
	physics.Integrate(&b.Kinetic, parameter.FrameDT)
}
