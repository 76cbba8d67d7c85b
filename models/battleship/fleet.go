package battleship

import (
	"io"

	cerr "github.com/saeidalz13/battleship-solo/internal/error"
)

type Fleet struct {
	ships []*Ship
	cells map[Coordinate]*Ship
}

// Builds the fleet for one game. At least one ship is required and no
// cell may belong to two ships.
func NewFleet(specs []ShipSpec) (*Fleet, error) {
	if len(specs) == 0 {
		return nil, cerr.NewLayoutErr(cerr.ErrEmptyLayout, 0)
	}

	fleet := &Fleet{
		ships: make([]*Ship, 0, len(specs)),
		cells: make(map[Coordinate]*Ship, len(specs)*4),
	}

	for _, spec := range specs {
		ship, err := NewShip(spec.Name, spec.Coordinates)
		if err != nil {
			return nil, withLine(err, spec.Line)
		}

		for _, c := range spec.Coordinates {
			if _, prs := fleet.cells[c]; prs {
				return nil, cerr.NewLayoutErr(cerr.ErrDuplicateCellAcrossShips, spec.Line).AddToken(c.String())
			}
			fleet.cells[c] = ship
		}
		fleet.ships = append(fleet.ships, ship)
	}

	return fleet, nil
}

// Parses the layout and builds the fleet in one step.
func LoadLayout(r io.Reader) (*Fleet, error) {
	specs, err := ParseLayout(r)
	if err != nil {
		return nil, err
	}
	return NewFleet(specs)
}

func LoadFleetFile(path string) (*Fleet, error) {
	specs, err := LoadLayoutFile(path)
	if err != nil {
		return nil, err
	}
	return NewFleet(specs)
}

// Returns the ships in layout order. The slice is a copy.
func (f *Fleet) Ships() []*Ship {
	return append([]*Ship(nil), f.ships...)
}

func (f *Fleet) Len() int {
	return len(f.ships)
}

func (f *Fleet) ShipAt(c Coordinate) (*Ship, bool) {
	ship, prs := f.cells[c]
	return ship, prs
}

func (f *Fleet) Occupies(c Coordinate) bool {
	_, prs := f.cells[c]
	return prs
}

// Total number of occupied cells.
func (f *Fleet) CellCount() int {
	return len(f.cells)
}

func (f *Fleet) AllSunk() bool {
	for _, ship := range f.ships {
		if !ship.Sunk() {
			return false
		}
	}
	return true
}

func (f *Fleet) SunkCount() int {
	n := 0
	for _, ship := range f.ships {
		if ship.Sunk() {
			n++
		}
	}
	return n
}

// Recomputes every ship against hits and returns the ships
// sunk by this call.
func (f *Fleet) recomputeSunk(hits *Grid) []*Ship {
	var sunk []*Ship
	for _, ship := range f.ships {
		if ship.RecomputeSunk(hits) {
			sunk = append(sunk, ship)
		}
	}
	return sunk
}

func withLine(err error, line int) error {
	le, ok := err.(*cerr.LayoutErr)
	if !ok || le.Line() != 0 {
		return err
	}
	return cerr.NewLayoutErr(le.Unwrap(), line).AddToken(le.Token())
}
