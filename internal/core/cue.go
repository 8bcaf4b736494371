package core

// Cue is a platform-facing notification emitted by a game step.
// Frontends map cues to sounds and log lines; games never play audio themselves.
type Cue int

const (
	CueNone      Cue = iota
	CueStart         // a run began
	CueHit           // the player lost a life
	CuePickup        // a pickup was collected
	CueHunter        // a hunter entered the arena
	CueSpawn         // a pickup appeared
	CueGameOver      // the run ended
	CueNewRecord     // the run beat the stored high score
)

// String returns a human-readable name for the cue.
func (c Cue) String() string {
	switch c {
	case CueNone:
		return "none"
	case CueStart:
		return "start"
	case CueHit:
		return "hit"
	case CuePickup:
		return "pickup"
	case CueHunter:
		return "hunter"
	case CueSpawn:
		return "spawn"
	case CueGameOver:
		return "game_over"
	case CueNewRecord:
		return "new_record"
	default:
		return "unknown"
	}
}
