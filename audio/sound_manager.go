package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/hexfall/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// SoundManager plays the simulation's feedback cues over one shared mixer
// Every method is safe to call before Initialize or after Cleanup
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	master      *effects.Volume
	initialized bool
	muted       bool

	now        func() time.Time
	lastBounce time.Time
	lastDrip   time.Time
	lastSpawn  time.Time
}

// NewSoundManager creates a manager with master volume in [0,1]
func NewSoundManager(volume float64) *SoundManager {
	mixer := &beep.Mixer{}
	sm := &SoundManager{
		mixer:  mixer,
		master: &effects.Volume{Streamer: mixer, Base: 2},
		now:    time.Now,
	}
	sm.setVolume(volume)
	return sm
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration))
	if err != nil {
		return err
	}

	speaker.Play(sm.master)
	sm.initialized = true
	return nil
}

// Cleanup silences all cues and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// SetVolume sets master volume in [0,1], 0 silences
func (sm *SoundManager) SetVolume(vol float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if sm.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	sm.setVolume(vol)
}

// Volume is log2 based, so 0 is handled as silent
func (sm *SoundManager) setVolume(vol float64) {
	if vol <= 0 {
		sm.master.Volume = 0
		sm.master.Silent = true
		return
	}
	sm.master.Volume = math.Log2(min(vol, 1))
	sm.master.Silent = false
}

// ToggleMute flips mute and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	return sm.muted
}

// Muted reports the mute state
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// PlayBounce plays a ball wall hit, louder and higher for harder impacts
func (sm *SoundManager) PlayBounce(impact float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.ready(&sm.lastBounce, parameter.BounceSoundGap) {
		return
	}
	strength := min(impact/parameter.BounceFullImpact, 1)
	gen := NewBounceGenerator(sampleRate,
		parameter.BounceBaseFreq+parameter.BounceFreqRange*strength,
		parameter.BounceBaseAmp+parameter.BounceAmpRange*strength)
	sm.add(beep.Take(sampleRate.N(parameter.BounceSoundDuration), gen))
}

// PlayDrip plays a faint tick for particle wall hits
func (sm *SoundManager) PlayDrip(count int) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if count <= 0 || !sm.ready(&sm.lastDrip, parameter.DripSoundGap) {
		return
	}
	amp := 0.05 + 0.15*min(float64(count)/parameter.DripFullCount, 1)
	gen := NewBounceGenerator(sampleRate, parameter.DripFreq, amp)
	sm.add(beep.Take(sampleRate.N(parameter.DripSoundDuration), gen))
}

// PlaySpawn plays a short hiss while particles are emitted
func (sm *SoundManager) PlaySpawn() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.ready(&sm.lastSpawn, parameter.SpawnSoundGap) {
		return
	}
	sm.add(beep.Take(sampleRate.N(parameter.SpawnSoundDuration), NewHissGenerator(sampleRate, 1)))
}

// PlayToggle plays a rising chime for a palette change
func (sm *SoundManager) PlayToggle(on bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	sm.add(beep.Take(sampleRate.N(parameter.ToggleSoundDuration), NewChimeGenerator(sampleRate, on)))
}

// ready gates a cue by mute state and its repeat gap; caller holds mu
func (sm *SoundManager) ready(last *time.Time, gap time.Duration) bool {
	if !sm.initialized || sm.muted {
		return false
	}
	now := sm.now()
	if now.Sub(*last) < gap {
		return false
	}
	*last = now
	return true
}

// add queues a streamer on the live mixer; caller holds mu
func (sm *SoundManager) add(s beep.Streamer) {
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}
