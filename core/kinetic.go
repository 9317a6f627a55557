package core

import "github.com/lixenwraith/hopper/vmath"

// Kinetic is the position/velocity/acceleration triple of a 2D entity
// Pos is in pixels, Vel and Accel are in tuning units scaled by parameter.PositionScale
type Kinetic struct {
	Pos   vmath.Vec2F
	Vel   vmath.Vec2F
	Accel vmath.Vec2F
}
