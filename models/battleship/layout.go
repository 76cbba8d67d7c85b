package battleship

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	cerr "github.com/saeidalz13/battleship-solo/internal/error"
)

const (
	LayoutFieldSeparator = ";"
	DefaultLayoutFile    = "Battleships.txt"
)

// One parsed line of a layout file.
type ShipSpec struct {
	Name        string
	Coordinates []Coordinate
	Line        int
}

func LoadLayoutFile(path string) ([]ShipSpec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WithMessage(cerr.ErrFileRead(err), path)
	}
	defer f.Close()

	return ParseLayout(f)
}

// Parses lines of the form name;coord;coord;... and checks that
// no cell appears twice in the whole input. Nothing is returned
// unless every line is valid.
func ParseLayout(r io.Reader) ([]ShipSpec, error) {
	specs := make([]ShipSpec, 0, 5)

	// lines have no length limit
	br := bufio.NewReader(r)
	lineNo := 0
	for {
		line, readErr := br.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return nil, errors.WithMessage(cerr.ErrFileRead(readErr), "read layout")
		}

		if line != "" {
			lineNo++
			spec, err := parseLayoutLine(strings.TrimSuffix(line, "\n"), lineNo)
			if err != nil {
				return nil, err
			}
			specs = append(specs, spec)
		}

		if readErr == io.EOF {
			break
		}
	}

	if len(specs) == 0 {
		return nil, cerr.NewLayoutErr(cerr.ErrEmptyLayout, 0)
	}

	if err := checkOverlap(specs); err != nil {
		return nil, err
	}
	return specs, nil
}

func parseLayoutLine(line string, lineNo int) (ShipSpec, error) {
	line = strings.TrimSuffix(line, "\r")
	fields := strings.Split(line, LayoutFieldSeparator)

	name, tokens := fields[0], fields[1:]

	// a trailing separator is tolerated
	for len(tokens) > 0 && tokens[len(tokens)-1] == "" {
		tokens = tokens[:len(tokens)-1]
	}
	if len(tokens) == 0 {
		return ShipSpec{}, cerr.NewLayoutErr(cerr.ErrMissingCoordinates, lineNo).AddToken(line)
	}
	if name == "" {
		return ShipSpec{}, cerr.NewLayoutErr(cerr.ErrMissingShipName, lineNo).AddToken(line)
	}

	coords := make([]Coordinate, 0, len(tokens))
	for _, token := range tokens {
		c, err := ParseCoordinate(token)
		if err != nil {
			return ShipSpec{}, cerr.NewLayoutErr(cerr.ErrInvalidCoordinateFormat, lineNo).AddToken(token)
		}
		coords = append(coords, c)
	}

	return ShipSpec{Name: name, Coordinates: coords, Line: lineNo}, nil
}

// Single pass over every coordinate occurrence in the layout,
// a ship repeating one of its own cells counts as an overlap.
func checkOverlap(specs []ShipSpec) error {
	var seen Grid
	for _, spec := range specs {
		for _, c := range spec.Coordinates {
			if !seen.Add(c) {
				return cerr.NewLayoutErr(cerr.ErrOverlappingShips, spec.Line).AddToken(c.String())
			}
		}
	}
	return nil
}
