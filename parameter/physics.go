package parameter

// Platformer kinematics tuning
// Values are the reference demo's; changing any of them changes game feel
const (
	// PositionScale multiplies velocity when integrating position
	// Tuning knob, not a unit conversion
	PositionScale float32 = 10.0

	// Gravity is the constant downward acceleration applied every frame
	Gravity float32 = 110.0

	// JumpImpulse is the upward velocity set on jump, coupled to gravity
	JumpImpulse float32 = -Gravity / 2

	// JumpReleaseDamping scales rising velocity each frame the jump button is released mid-air
	JumpReleaseDamping float32 = 0.5

	// WalkAccel is horizontal acceleration while a direction is held
	WalkAccel float32 = 100.0

	// WalkDrag is the exponential decay factor applied without directional input
	WalkDrag float32 = 4.0

	// ReversalSpeed is the horizontal speed snapped to on direction reversal
	ReversalSpeed float32 = 10.0

	// MaxSpeed caps the combined velocity vector magnitude
	MaxSpeed float32 = 50.0

	// DeadZoneSpeed is the horizontal speed at or below which velocity snaps to zero
	DeadZoneSpeed float32 = 0.05
)
