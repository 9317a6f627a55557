package audio

// SoundType represents different sound effects
type SoundType int

const (
	SoundJump SoundType = iota // Player leaves the ground
	SoundLand                  // Player or crate touches the floor
	soundTypeCount
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)
