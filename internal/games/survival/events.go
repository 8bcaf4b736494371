package survival

import "github.com/vovakirdan/tui-survivor/internal/core"

// EventKind identifies something that happened during an update.
type EventKind int

const (
	EventHit             EventKind = iota // a hazard took a life
	EventPickupSpawned                    // a pickup appeared
	EventPickupCollected                  // a pickup was collected (lives may be at the cap)
	EventPickupExpired                    // an uncollected pickup timed out
	EventHunterSpawned                    // a hunter entered
	EventHunterExpired                    // a hunter left the arena or timed out
	EventGameOver                         // the run ended
	EventNewHighScore                     // the run beat the previous best
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventHit:
		return "hit"
	case EventPickupSpawned:
		return "pickup_spawned"
	case EventPickupCollected:
		return "pickup_collected"
	case EventPickupExpired:
		return "pickup_expired"
	case EventHunterSpawned:
		return "hunter_spawned"
	case EventHunterExpired:
		return "hunter_expired"
	case EventGameOver:
		return "game_over"
	case EventNewHighScore:
		return "new_high_score"
	default:
		return "unknown"
	}
}

// Event records a state change together with the score and lives right after it.
type Event struct {
	Kind  EventKind
	Score float64
	Lives int
}

// Cue maps an event to the platform cue it should trigger.
// Expiry events have no cue.
func (e Event) Cue() core.Cue {
	switch e.Kind {
	case EventHit:
		return core.CueHit
	case EventPickupSpawned:
		return core.CueSpawn
	case EventPickupCollected:
		return core.CuePickup
	case EventHunterSpawned:
		return core.CueHunter
	case EventGameOver:
		return core.CueGameOver
	case EventNewHighScore:
		return core.CueNewRecord
	default:
		return core.CueNone
	}
}
