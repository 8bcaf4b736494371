package storage

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-survivor/internal/core"
)

// HighScores binds a Store to one game id so a World can load and commit its best time.
// Failures are logged and returned; the World treats them as non-fatal.
type HighScores struct {
	store  *Store
	gameID string
	logger *log.Logger
}

// NewHighScores creates a per-game adapter. A nil logger disables failure logging.
func NewHighScores(store *Store, gameID string, logger *log.Logger) *HighScores {
	return &HighScores{store: store, gameID: gameID, logger: logger}
}

// LoadHighScore returns the stored best time, or 0 when nothing was committed yet.
func (h *HighScores) LoadHighScore() (float64, error) {
	if h.store == nil {
		return 0, ErrNoStore
	}
	best, err := h.store.BestScore(h.gameID)
	if err != nil {
		h.warn("load high score failed", err)
		return 0, err
	}
	return best, nil
}

// CommitHighScore persists score when it beats the stored best.
func (h *HighScores) CommitHighScore(score float64) error {
	if h.store == nil {
		return ErrNoStore
	}
	if err := h.store.CommitBest(h.gameID, score); err != nil {
		h.warn("commit high score failed", err)
		return err
	}
	return nil
}

func (h *HighScores) warn(msg string, err error) {
	if h.logger != nil {
		h.logger.Warn(msg, "game", h.gameID, "err", err)
	}
}

var _ core.HighScoreStore = (*HighScores)(nil)
