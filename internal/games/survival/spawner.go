package survival

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-survivor/internal/config"
	"github.com/vovakirdan/tui-survivor/internal/core"
)

// Spawner places entities at random legal positions.
// All randomness of a session flows through its seeded RNG.
type Spawner struct {
	rng *rand.Rand
	cfg config.SurvivalConfig
}

// NewSpawner creates a spawner with a deterministic seed.
func NewSpawner(seed int64, cfg config.SurvivalConfig) *Spawner {
	return &Spawner{
		rng: rand.New(rand.NewSource(seed)),
		cfg: cfg,
	}
}

func (s *Spawner) arenaW() float64 { return s.cfg.Arena.Width }
func (s *Spawner) arenaH() float64 { return s.cfg.Arena.Height }

// Hazards creates the fixed set of hazards for a new session.
func (s *Spawner) Hazards() []Hazard {
	hazards := make([]Hazard, s.cfg.Hazards.Count)
	for i := range hazards {
		hazards[i] = s.Hazard()
	}
	return hazards
}

// Hazard creates one hazard uniformly inside the arena.
// Under the wrap policy hazards ride horizontal belts and never move vertically.
func (s *Spawner) Hazard() Hazard {
	size := s.cfg.Hazards.Size
	h := Hazard{
		Box: core.Box{
			X: core.RandRange(s.rng, 0, s.arenaW()-size),
			Y: core.RandRange(s.rng, 0, s.arenaH()-size),
			W: size,
			H: size,
		},
		VX: s.axisSpeed(),
		VY: s.axisSpeed(),
	}
	if s.cfg.Policy.Hazards == config.HazardWrap {
		h.VY = 0
	}
	return h
}

// axisSpeed samples a velocity component whose magnitude is at least the
// configured floor. The sign is kept; zero counts as positive.
func (s *Spawner) axisSpeed() float64 {
	maxSpeed := s.cfg.Hazards.MaxSpeed
	floor := math.Min(s.cfg.Hazards.MinAxisSpeed, maxSpeed)
	v := core.RandRange(s.rng, -maxSpeed, maxSpeed)
	if math.Abs(v) < floor {
		if v < 0 {
			return -floor
		}
		return floor
	}
	return v
}

// Rewrap places a hazard that left the arena just beyond the opposite edge.
// The transverse coordinate is re-rolled and an extra random gap spreads the belt out.
func (s *Spawner) Rewrap(h *Hazard, horizontal bool) {
	gap := core.RandRange(s.rng, 0, s.cfg.Hazards.WrapSpacing)
	if horizontal {
		if h.VX >= 0 {
			h.X = -h.W - gap
		} else {
			h.X = s.arenaW() + gap
		}
		h.Y = core.RandRange(s.rng, 0, s.arenaH()-h.H)
		return
	}
	if h.VY >= 0 {
		h.Y = -h.H - gap
	} else {
		h.Y = s.arenaH() + gap
	}
	h.X = core.RandRange(s.rng, 0, s.arenaW()-h.W)
}

// Pickup returns an active pickup inside the margin-inset arena.
func (s *Spawner) Pickup() Pickup {
	pc := s.cfg.Pickup
	return Pickup{
		Box: core.Box{
			X: core.RandRange(s.rng, pc.MarginX, s.arenaW()-pc.MarginX-pc.Width),
			Y: core.RandRange(s.rng, pc.MarginY, s.arenaH()-pc.MarginY-pc.Height),
			W: pc.Width,
			H: pc.Height,
		},
		Active: true,
	}
}

// Edge identifies the side of the arena a hunter enters from.
type Edge int

const (
	EdgeLeft Edge = iota
	EdgeRight
	EdgeTop
	EdgeBottom
)

// Hunter returns an active hunter just outside an arena edge.
// The seek policy may use any edge; pursuit only enters from the sides and heads inward.
func (s *Spawner) Hunter(speed float64) Hunter {
	edges := 4
	if s.cfg.Policy.Hunter == config.HunterPursuit {
		edges = 2
	}
	return s.HunterAt(Edge(s.rng.Intn(edges)), speed)
}

// HunterAt returns an active hunter entering from the given edge.
func (s *Spawner) HunterAt(edge Edge, speed float64) Hunter {
	hc := s.cfg.Hunter
	h := Hunter{
		Box:    core.Box{W: hc.Width, H: hc.Height},
		Active: true,
		Speed:  speed,
		Dir:    1,
	}
	alongY := func() float64 {
		return core.RandRange(s.rng, hc.EdgeMargin, s.arenaH()-hc.EdgeMargin-hc.Height)
	}
	alongX := func() float64 {
		return core.RandRange(s.rng, hc.EdgeMargin, s.arenaW()-hc.EdgeMargin-hc.Width)
	}

	switch edge {
	case EdgeLeft:
		h.X = -hc.Width - hc.OffscreenGap
		h.Y = alongY()
	case EdgeRight:
		h.X = s.arenaW() + hc.OffscreenGap
		h.Y = alongY()
		h.Dir = -1
	case EdgeTop:
		h.X = alongX()
		h.Y = -hc.Height - hc.OffscreenGap
	default:
		h.X = alongX()
		h.Y = s.arenaH() + hc.OffscreenGap
	}
	return h
}
