package storage

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-survivor/internal/core"
)

// AppName is the gdata application name; gdata derives the save directory from it.
const AppName = "tui_survivor"

const highScoreObject = "highscore"

type bestRecord struct {
	Score   float64   `yaml:"score"`
	Updated time.Time `yaml:"updated"`
}

// GdataHighScores keeps the best time in the platform save directory managed by gdata.
// It is the default store for the window frontend, which has no database path.
type GdataHighScores struct {
	manager *gdata.Manager
	gameID  string
	logger  *log.Logger
}

// OpenGdata opens the gdata manager for the survivor save directory.
func OpenGdata(appName string) (*gdata.Manager, error) {
	if appName == "" {
		appName = AppName
	}
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open gdata: %w", err)
	}
	return m, nil
}

// NewGdataHighScores creates a per-game adapter over an opened manager.
func NewGdataHighScores(manager *gdata.Manager, gameID string, logger *log.Logger) *GdataHighScores {
	return &GdataHighScores{manager: manager, gameID: gameID, logger: logger}
}

// LoadHighScore returns the stored best time, or 0 when none exists.
func (g *GdataHighScores) LoadHighScore() (float64, error) {
	if g.manager == nil {
		return 0, ErrNoStore
	}
	if !g.manager.ObjectPropExists(highScoreObject, g.gameID) {
		return 0, nil
	}

	data, err := g.manager.LoadObjectProp(highScoreObject, g.gameID)
	if err != nil {
		err = fmt.Errorf("storage: cannot load best score: %w", err)
		g.warn("load high score failed", err)
		return 0, err
	}

	var rec bestRecord
	if err := yaml.Unmarshal(data, &rec); err != nil {
		err = fmt.Errorf("storage: cannot decode best score: %w", err)
		g.warn("load high score failed", err)
		return 0, err
	}
	return rec.Score, nil
}

// CommitHighScore writes score when it beats the stored best.
func (g *GdataHighScores) CommitHighScore(score float64) error {
	if g.manager == nil {
		return ErrNoStore
	}

	current, err := g.LoadHighScore()
	if err == nil && current >= score {
		return nil
	}

	data, err := yaml.Marshal(bestRecord{Score: score, Updated: time.Now().UTC()})
	if err != nil {
		return fmt.Errorf("storage: cannot encode best score: %w", err)
	}
	if err := g.manager.SaveObjectProp(highScoreObject, g.gameID, data); err != nil {
		err = fmt.Errorf("storage: cannot save best score: %w", err)
		g.warn("commit high score failed", err)
		return err
	}
	return nil
}

func (g *GdataHighScores) warn(msg string, err error) {
	if g.logger != nil {
		g.logger.Warn(msg, "game", g.gameID, "err", err)
	}
}

var _ core.HighScoreStore = (*GdataHighScores)(nil)
