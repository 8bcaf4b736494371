package core

// HighScoreStore persists a single best score.
// Implementations live in the storage layer; games only see this interface.
type HighScoreStore interface {
	LoadHighScore() (float64, error)
	CommitHighScore(score float64) error
}

// MemoryHighScores keeps the best score in memory only.
type MemoryHighScores struct {
	Best float64
}

// LoadHighScore returns the stored best.
func (m *MemoryHighScores) LoadHighScore() (float64, error) {
	return m.Best, nil
}

// CommitHighScore replaces the best if score is higher.
func (m *MemoryHighScores) CommitHighScore(score float64) error {
	if score > m.Best {
		m.Best = score
	}
	return nil
}
