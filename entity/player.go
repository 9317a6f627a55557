package entity

import (
	"github.com/lixenwraith/hopper/core"
	"github.com/lixenwraith/hopper/input"
	"github.com/lixenwraith/hopper/parameter"
	"github.com/lixenwraith/hopper/physics"
	"github.com/lixenwraith/hopper/vmath"
)

// Player is the platformer controller
// Airborne is the only discrete mode: set on jump, cleared on reaching the floor
type Player struct {
	core.Kinetic
	Airborne bool
}

// Update runs one frame of platformer movement
func (p *Player) Update(snap input.Snapshot, size vmath.Vec2F, env *Env) Events {
	xvec, ev := p.control(snap, size, env)
	p.move(xvec, size, env)
	return ev
}

// control applies input: direction, landing, jump and reversal snap
// Velocity changes here happen before acceleration is assigned
func (p *Player) control(snap input.Snapshot, size vmath.Vec2F, env *Env) (float32, Events) {
	var ev Events

	// Left wins over right
	var xvec float32
	if snap.Held.Has(input.ButtonLeft) {
		xvec = -1
	} else if snap.Held.Has(input.ButtonRight) {
		xvec = 1
	}

	if p.Pos.Y >= env.Screen.Y-size.Y {
		if p.Airborne {
			ev |= EventLanded
		}
		p.Airborne = false
	}

	if p.Airborne {
		// Early release cuts the jump short
		if p.Vel.Y < 0 && !snap.Held.Has(env.JumpButton) {
			p.Vel.Y *= parameter.JumpReleaseDamping
		}
	} else if snap.JustPressed.Has(env.JumpButton) {
		p.Airborne = true
		env.Log.Debug().
			Float32("x", p.Pos.X).
			Float32("y", p.Pos.Y).
			Msg("jump pressed")
		physics.SetImpulseY(&p.Kinetic, parameter.JumpImpulse)
		ev |= EventJumped
	}

	// Rest has no sign, so starting from rest never snaps
	if vmath.SignF32(p.Vel.X)*xvec < 0 {
		p.Vel.X = parameter.ReversalSpeed * xvec
	}

	return xvec, ev
}

// move assigns acceleration, integrates and applies the post-integration clamps
func (p *Player) move(xvec float32, size vmath.Vec2F, env *Env) {
	p.Accel.Y = parameter.Gravity
	if xvec != 0 {
		p.Accel.X = xvec * parameter.WalkAccel
	} else {
		p.Accel.X = -p.Vel.X * parameter.WalkDrag
	}

	physics.CapSpeed(&p.Kinetic, parameter.MaxSpeed)
	physics.Integrate(&p.Kinetic, parameter.FrameDT)
	physics.SnapDeadZoneX(&p.Kinetic, parameter.DeadZoneSpeed)
	physics.ClampPosition(&p.Kinetic, vmath.Vec2F{}, vmath.V2FSub(env.Screen, size))
}
