package battleship

import (
	cerr "github.com/saeidalz13/battleship-solo/internal/error"
)

const GridSize = 10

// Columns are labelled A-J, rows 0-9.
const (
	FirstColumn byte = 'A'
	LastColumn  byte = FirstColumn + GridSize - 1
)

type Coordinate struct {
	Column byte
	Row    uint8
}

// Parses a two character token such as "A0" or "J9".
// Lower case letters are rejected.
func ParseCoordinate(token string) (Coordinate, error) {
	if len(token) != 2 {
		return Coordinate{}, cerr.ErrCoordinateFormat(token)
	}

	column, digit := token[0], token[1]
	if column < FirstColumn || column > LastColumn {
		return Coordinate{}, cerr.ErrCoordinateFormat(token)
	}
	if digit < '0' || digit > '9' {
		return Coordinate{}, cerr.ErrCoordinateFormat(token)
	}

	return Coordinate{Column: column, Row: digit - '0'}, nil
}

func NewCoordinate(column byte, row uint8) (Coordinate, error) {
	c := Coordinate{Column: column, Row: row}
	if !c.IsValid() {
		return Coordinate{}, cerr.ErrCoordinateFormat(c.String())
	}
	return c, nil
}

func (c Coordinate) IsValid() bool {
	return c.Column >= FirstColumn && c.Column <= LastColumn && c.Row < GridSize
}

func (c Coordinate) String() string {
	return string([]byte{c.Column, '0' + c.Row})
}

func (c Coordinate) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Coordinate) UnmarshalText(text []byte) error {
	parsed, err := ParseCoordinate(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Column-major position of the cell, 0..GridSize*GridSize-1.
func (c Coordinate) Index() int {
	return int(c.Column-FirstColumn)*GridSize + int(c.Row)
}

func (c Coordinate) Compare(other Coordinate) int {
	return c.Index() - other.Index()
}

func (c Coordinate) Less(other Coordinate) bool {
	return c.Compare(other) < 0
}

// Every cell of the board, A0 first and J9 last.
func AllCoordinates() []Coordinate {
	coords := make([]Coordinate, 0, GridSize*GridSize)
	for col := FirstColumn; col <= LastColumn; col++ {
		for row := uint8(0); row < GridSize; row++ {
			coords = append(coords, Coordinate{Column: col, Row: row})
		}
	}
	return coords
}

// Grid marks the cells that have received a shot.
// The zero value is an empty grid.
type Grid struct {
	cells [GridSize * GridSize]bool
	count int
}

func NewGrid() *Grid {
	return &Grid{}
}

// Marks c and reports whether it was newly added.
func (g *Grid) Add(c Coordinate) bool {
	if !c.IsValid() || g.cells[c.Index()] {
		return false
	}
	g.cells[c.Index()] = true
	g.count++
	return true
}

func (g *Grid) Has(c Coordinate) bool {
	return c.IsValid() && g.cells[c.Index()]
}

// Reports whether every coordinate in coords is marked.
func (g *Grid) HasAll(coords []Coordinate) bool {
	for _, c := range coords {
		if !g.Has(c) {
			return false
		}
	}
	return true
}

func (g *Grid) Len() int {
	return g.count
}
