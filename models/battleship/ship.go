package battleship

import (
	"fmt"
	"sync/atomic"

	cerr "github.com/saeidalz13/battleship-solo/internal/error"
)

type Ship struct {
	name        string
	coordinates []Coordinate
	cells       map[Coordinate]struct{}
	sunk        atomic.Bool
}

// The coordinate slice is copied; the ship never changes its cells.
func NewShip(name string, coords []Coordinate) (*Ship, error) {
	if name == "" {
		return nil, cerr.NewLayoutErr(cerr.ErrMissingShipName, 0)
	}
	if len(coords) == 0 {
		return nil, cerr.NewLayoutErr(cerr.ErrMissingCoordinates, 0).AddToken(name)
	}

	cells := make(map[Coordinate]struct{}, len(coords))
	for _, c := range coords {
		if !c.IsValid() {
			return nil, cerr.ErrCoordinateFormat(c.String())
		}
		if _, prs := cells[c]; prs {
			return nil, cerr.NewLayoutErr(cerr.ErrDuplicateCellAcrossShips, 0).AddToken(c.String())
		}
		cells[c] = struct{}{}
	}

	return &Ship{
		name:        name,
		coordinates: append([]Coordinate(nil), coords...),
		cells:       cells,
	}, nil
}

func (sh *Ship) Name() string {
	return sh.name
}

// Returns a copy of the ship's cells in layout order.
func (sh *Ship) Coordinates() []Coordinate {
	return append([]Coordinate(nil), sh.coordinates...)
}

func (sh *Ship) Contains(c Coordinate) bool {
	_, prs := sh.cells[c]
	return prs
}

func (sh *Ship) Len() int {
	return len(sh.coordinates)
}

// Safe to call while the owning game is being fired upon.
func (sh *Ship) Sunk() bool {
	return sh.sunk.Load()
}

// Sets the ship as sunk once every cell is in hits. A sunk ship stays
// sunk. Returns true only on the call that sank it.
func (sh *Ship) RecomputeSunk(hits *Grid) bool {
	if sh.sunk.Load() || !hits.HasAll(sh.coordinates) {
		return false
	}
	return sh.sunk.CompareAndSwap(false, true)
}

func (sh *Ship) String() string {
	return fmt.Sprintf("%s%v", sh.name, sh.coordinates)
}
