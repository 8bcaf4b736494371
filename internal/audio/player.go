package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-survivor/internal/core"
)

// SampleRate is the speaker rate used by every effect.
const SampleRate = beep.SampleRate(44100)

// Player mixes cue sounds into a single speaker stream.
// A Player that failed to initialize, or a nil Player, stays silent.
type Player struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	volume float64
	muted  bool
	ready  bool
}

// NewPlayer creates an uninitialized player at the given master volume (0..1).
func NewPlayer(volume float64) *Player {
	return &Player{mixer: &beep.Mixer{}, volume: core.ClampF(volume, 0, 1)}
}

// Init opens the speaker. Calling it again after success is a no-op.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ready {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.ready = true
	return nil
}

// Play queues the sound for cue. Returns false when nothing was queued.
func (p *Player) Play(cue core.Cue) bool {
	if p == nil {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready || p.muted {
		return false
	}
	s := Sound(cue, SampleRate)
	if s == nil {
		return false
	}

	speaker.Lock()
	p.mixer.Add(withVolume(s, p.volume))
	speaker.Unlock()
	return true
}

// SetMuted silences or restores playback.
func (p *Player) SetMuted(muted bool) {
	if p == nil {
		return
	}
	p.mu.Lock()
	p.muted = muted
	p.mu.Unlock()
}

// ToggleMute flips the mute flag and returns the new value.
func (p *Player) ToggleMute() bool {
	if p == nil {
		return true
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = !p.muted
	return p.muted
}

// Muted reports whether playback is silenced.
func (p *Player) Muted() bool {
	if p == nil {
		return true
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// Close drops queued sounds and releases the speaker.
func (p *Player) Close() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.ready = false
}
