package audio

import "time"

// AudioConfig controls sound effect generation
type AudioConfig struct {
	Enabled       bool
	SampleRate    int
	MasterVolume  float64
	EffectVolumes [soundTypeCount]float64
}

// DefaultAudioConfig returns enabled audio at 44.1kHz and half volume
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		SampleRate:   44100,
		MasterVolume: 0.5,
		EffectVolumes: [soundTypeCount]float64{
			SoundJump: 0.6,
			SoundLand: 0.8,
		},
	}
}

// Effect timing
const (
	JumpSoundNoteDuration = 45 * time.Millisecond
	JumpSoundAttack       = 2 * time.Millisecond
	JumpSoundRelease      = 20 * time.Millisecond

	LandSoundDuration = 60 * time.Millisecond
	LandSoundAttack   = 1 * time.Millisecond
	LandSoundRelease  = 50 * time.Millisecond

	// speakerBuffer is the speaker latency; one frame and a half at 60Hz
	speakerBuffer = 25 * time.Millisecond
)
