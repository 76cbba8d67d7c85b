package battleship

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

type ShotOutcome uint8

const (
	ShotMiss ShotOutcome = iota
	ShotHit
)

func (o ShotOutcome) String() string {
	if o == ShotHit {
		return "hit"
	}
	return "miss"
}

func (o ShotOutcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *ShotOutcome) UnmarshalText(text []byte) error {
	switch string(text) {
	case "hit":
		*o = ShotHit
	case "miss":
		*o = ShotMiss
	default:
		return fmt.Errorf("invalid shot outcome: %q", text)
	}
	return nil
}

type GameStatus uint8

const (
	GameStatusInProgress GameStatus = iota
	GameStatusWon
)

func (s GameStatus) String() string {
	if s == GameStatusWon {
		return "won"
	}
	return "in_progress"
}

type Shot struct {
	Coordinate Coordinate  `json:"coordinate"`
	Outcome    ShotOutcome `json:"outcome"`
}

type Summary struct {
	Shots      int
	Hits       int
	Misses     int
	SunkShips  int
	TotalShips int
	Status     GameStatus
}

// Game is the state of one session: the fleet, every shot fired so
// far and whether the fleet has been destroyed. It is only mutated
// through Fire.
type Game struct {
	uuid       string
	fleet      *Fleet
	hits       Grid
	shots      []Shot
	status     GameStatus
	createdAt  time.Time
	finishedAt time.Time
	mu         sync.Mutex
}

func NewGame(fleet *Fleet) *Game {
	return newGame(fleet, uuid.NewString()[:8])
}

func newGame(fleet *Fleet, gameUuid string) *Game {
	return &Game{
		uuid:      gameUuid,
		fleet:     fleet,
		shots:     make([]Shot, 0, GridSize*GridSize),
		status:    GameStatusInProgress,
		createdAt: time.Now(),
	}
}

// Fires at c and reports the outcome together with the game status
// after the shot.
//
// Once the game is won every further shot reads as a hit and ships
// are left untouched. Firing at the same cell twice resolves it
// again against the same fleet.
func (g *Game) Fire(c Coordinate) (ShotOutcome, GameStatus) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.hits.Add(c)

	if g.status == GameStatusWon {
		g.shots = append(g.shots, Shot{Coordinate: c, Outcome: ShotHit})
		return ShotHit, g.status
	}

	if !g.fleet.Occupies(c) {
		g.shots = append(g.shots, Shot{Coordinate: c, Outcome: ShotMiss})
		return ShotMiss, g.status
	}

	g.shots = append(g.shots, Shot{Coordinate: c, Outcome: ShotHit})
	g.fleet.recomputeSunk(&g.hits)
	if g.fleet.AllSunk() {
		g.status = GameStatusWon
		g.finishedAt = time.Now()
	}

	return ShotHit, g.status
}

func (g *Game) Uuid() string {
	return g.uuid
}

func (g *Game) Fleet() *Fleet {
	return g.fleet
}

func (g *Game) Status() GameStatus {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.status
}

func (g *Game) IsWon() bool {
	return g.Status() == GameStatusWon
}

// Reports whether c has been fired upon.
func (g *Game) Fired(c Coordinate) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.hits.Has(c)
}

// Shot history in firing order, including repeats.
func (g *Game) Shots() []Shot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]Shot(nil), g.shots...)
}

func (g *Game) Summary() Summary {
	g.mu.Lock()
	defer g.mu.Unlock()

	s := Summary{
		Shots:      len(g.shots),
		SunkShips:  g.fleet.SunkCount(),
		TotalShips: g.fleet.Len(),
		Status:     g.status,
	}
	for _, shot := range g.shots {
		if shot.Outcome == ShotHit {
			s.Hits++
		} else {
			s.Misses++
		}
	}
	return s
}

func (g *Game) CreatedAt() time.Time {
	return g.createdAt
}

// Zero until the game is won.
func (g *Game) FinishedAt() time.Time {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.finishedAt
}
