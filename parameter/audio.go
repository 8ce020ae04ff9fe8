package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 48000

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond

	// AudioVolume is the master volume in [0,1]
	AudioVolume = 0.5
)

// Minimum gap between repeats of the same cue
const (
	BounceSoundGap = 60 * time.Millisecond
	DripSoundGap   = 90 * time.Millisecond
	SpawnSoundGap  = 120 * time.Millisecond
)

// Cue lengths
const (
	BounceSoundDuration = 180 * time.Millisecond
	DripSoundDuration   = 40 * time.Millisecond
	SpawnSoundDuration  = 100 * time.Millisecond
	ToggleSoundDuration = 240 * time.Millisecond
	ChimeNoteDuration   = 80 * time.Millisecond
)

// Bounce Sound
const (
	// BounceFullImpact is the impact speed in px/s that plays at full loudness
	BounceFullImpact = 900.0

	// Pitch and amplitude range from a grazing hit to a full impact
	BounceBaseFreq  = 180.0
	BounceFreqRange = 220.0
	BounceBaseAmp   = 0.2
	BounceAmpRange  = 0.6

	// DripFreq is the tick pitch for particle hits
	DripFreq = 1400.0

	// DripFullCount is the per-frame particle bounce count that plays at full drip loudness
	DripFullCount = 50
)
