package entity

import (
	"github.com/lixenwraith/hopper/core"
	"github.com/lixenwraith/hopper/parameter"
	"github.com/lixenwraith/hopper/physics"
	"github.com/lixenwraith/hopper/vmath"
)

// Crate falls under gravity and rests on the floor; it ignores input
type Crate struct {
	core.Kinetic
	Grounded bool
}

// Update runs one frame of the crate's fall
func (c *Crate) Update(size vmath.Vec2F, env *Env) Events {
	var ev Events

	c.Accel.Y = parameter.Gravity
	c.Accel.X = -c.Vel.X * parameter.WalkDrag

	physics.CapSpeed(&c.Kinetic, parameter.MaxSpeed)
	physics.Integrate(&c.Kinetic, parameter.FrameDT)
	physics.SnapDeadZoneX(&c.Kinetic, parameter.DeadZoneSpeed)
	physics.ClampPosition(&c.Kinetic, vmath.Vec2F{}, vmath.V2FSub(env.Screen, size))

	onFloor := c.Pos.Y >= env.Screen.Y-size.Y
	if onFloor {
		if !c.Grounded {
			ev |= EventLanded
		}
		// Resting contact: no bounce, no accumulated fall speed
		c.Vel.Y = 0
	}
	c.Grounded = onFloor
	return ev
}
