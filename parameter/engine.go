package parameter

import "time"

const (
	// FrameRate is the display refresh rate the loop is locked to
	FrameRate = 60

	// FrameDT is the fixed per-frame time step
	FrameDT float32 = 1.0 / FrameRate

	// FrameInterval is the wall-clock period of one frame on hosts without vblank
	FrameInterval = time.Second / FrameRate

	// CameraStep is the camera scalar change per frame while Up or Down is held
	CameraStep float32 = 1.0
)

// Terminal input
const (
	// DefaultHoldFrames is how long a key counts as held after its last press or auto-repeat
	// Terminals deliver no key-up; 8 frames bridges the typical auto-repeat gap
	DefaultHoldFrames = 8

	// InputEventBuffer is the capacity of the terminal event channel
	InputEventBuffer = 100
)
