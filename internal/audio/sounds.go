package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-survivor/internal/core"
)

// Sound builds a fresh streamer for cue at the given sample rate.
// Cues without a sound return nil.
func Sound(cue core.Cue, rate beep.SampleRate) beep.Streamer {
	switch cue {
	case core.CueStart:
		return beep.Seq(
			tone(523.25, 70*time.Millisecond, WaveSquare, rate),
			tone(783.99, 110*time.Millisecond, WaveSquare, rate),
		)
	case core.CueHit:
		return tone(110, 180*time.Millisecond, WaveSaw, rate)
	case core.CuePickup:
		return beep.Mix(
			withVolume(tone(880, 220*time.Millisecond, WaveSine, rate), 0.7),
			withVolume(tone(1760, 160*time.Millisecond, WaveSine, rate), 0.3),
		)
	case core.CueHunter:
		return NewEnvelope(
			NewOscillator(0, 250*time.Millisecond, WaveNoise, rate),
			250*time.Millisecond, 120*time.Millisecond, 100*time.Millisecond, rate,
		)
	case core.CueSpawn:
		return tone(660, 60*time.Millisecond, WaveSine, rate)
	case core.CueGameOver:
		return beep.Seq(
			tone(392, 150*time.Millisecond, WaveSquare, rate),
			tone(311.13, 150*time.Millisecond, WaveSquare, rate),
			tone(196, 300*time.Millisecond, WaveSquare, rate),
		)
	case core.CueNewRecord:
		return beep.Seq(
			tone(987.77, 80*time.Millisecond, WaveSquare, rate),
			tone(1318.51, 200*time.Millisecond, WaveSquare, rate),
		)
	default:
		return nil
	}
}
