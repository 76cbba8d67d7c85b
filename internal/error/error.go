package error

import (
	"errors"
	"fmt"
)

// Layout validation failures. A LayoutErr always unwraps to one of these.
var (
	ErrFileUnavailable          = errors.New("layout file can not be read")
	ErrMissingCoordinates       = errors.New("ship has no coordinates")
	ErrInvalidCoordinateFormat  = errors.New("invalid coordinate format")
	ErrOverlappingShips         = errors.New("overlapping ships in layout")
	ErrDuplicateCellAcrossShips = errors.New("cell occupied by more than one ship")
	ErrMissingShipName          = errors.New("ship has no name")
	ErrEmptyLayout              = errors.New("layout contains no ships")
)

var ErrGameNotExists = errors.New("game does not exist")

type LayoutErr struct {
	kind  error
	line  int
	token string
}

func NewLayoutErr(kind error, line int) *LayoutErr {
	return &LayoutErr{kind: kind, line: line}
}

func (l *LayoutErr) AddToken(token string) *LayoutErr {
	l.token = token
	return l
}

func (l *LayoutErr) Error() string {
	switch {
	case l.line > 0 && l.token != "":
		return fmt.Sprintf("%s: line %d: %q", l.kind, l.line, l.token)
	case l.line > 0:
		return fmt.Sprintf("%s: line %d", l.kind, l.line)
	case l.token != "":
		return fmt.Sprintf("%s: %q", l.kind, l.token)
	}
	return l.kind.Error()
}

func (l *LayoutErr) Unwrap() error {
	return l.kind
}

func (l *LayoutErr) Line() int {
	return l.line
}

func (l *LayoutErr) Token() string {
	return l.token
}

func ErrCoordinateFormat(token string) error {
	return NewLayoutErr(ErrInvalidCoordinateFormat, 0).AddToken(token)
}

// Keeps both ErrFileUnavailable and the I/O cause in the chain.
func ErrFileRead(cause error) error {
	return fmt.Errorf("%w: %w", ErrFileUnavailable, cause)
}

func ErrGameNotFound(gameUuid string) error {
	return fmt.Errorf("%w, uuid: %s", ErrGameNotExists, gameUuid)
}

// Reports whether err is one of the layout validation kinds
// (as opposed to an I/O failure).
func IsValidationErr(err error) bool {
	for _, kind := range []error{
		ErrMissingCoordinates,
		ErrInvalidCoordinateFormat,
		ErrOverlappingShips,
		ErrDuplicateCellAcrossShips,
		ErrMissingShipName,
		ErrEmptyLayout,
	} {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}
