package physics

import (
	"github.com/lixenwraith/hopper/core"
	"github.com/lixenwraith/hopper/vmath"
)

// CapSpeed limits the velocity vector magnitude to maxSpeed
// Returns true if velocity was clamped
func CapSpeed(k *core.Kinetic, maxSpeed float32) bool {
	if vmath.V2FMagSq(k.Vel) <= maxSpeed*maxSpeed {
		return false
	}
	k.Vel = vmath.V2FClampMagnitude(k.Vel, maxSpeed)
	return true
}
