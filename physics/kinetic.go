package physics

import (
	"github.com/lixenwraith/hopper/core"
	"github.com/lixenwraith/hopper/parameter"
	"github.com/lixenwraith/hopper/vmath"
)

// Integrate performs semi-implicit Euler integration: p = p + v*K*dt; v = v + a*dt
// Position uses the velocity from before this step's acceleration
func Integrate(k *core.Kinetic, dt float32) {
	k.Pos = vmath.V2FAdd(k.Pos, vmath.V2FScale(k.Vel, parameter.PositionScale*dt))
	k.Vel = vmath.V2FAdd(k.Vel, vmath.V2FScale(k.Accel, dt))
}

// SetImpulseY overrides vertical velocity (jump)
func SetImpulseY(k *core.Kinetic, vy float32) {
	k.Vel.Y = vy
}

// SnapDeadZoneX zeroes horizontal velocity at or below threshold, returns true if snapped
// Exponential drag never reaches zero on its own
func SnapDeadZoneX(k *core.Kinetic, threshold float32) bool {
	if k.Vel.X != 0 && vmath.AbsF32(k.Vel.X) <= threshold {
		k.Vel.X = 0
		return true
	}
	return false
}

// ClampPosition restricts position to [min, max] per axis
func ClampPosition(k *core.Kinetic, min, max vmath.Vec2F) {
	k.Pos = vmath.V2FClamp(k.Pos, min, max)
}

// GridPos returns the integer-truncated position
func GridPos(k *core.Kinetic) (x, y int) {
	return k.Pos.TruncI()
}
