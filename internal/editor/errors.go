package editor

import (
	"errors"

	"github.com/ironsheep/pnmedit/internal/imaging"
)

var (
	// ErrNoImageLoaded is returned by every command except LOAD when no image is held.
	ErrNoImageLoaded = errors.New("no image loaded")

	// ErrInvalidCommand is returned for unknown verbs and malformed parameters.
	ErrInvalidCommand = errors.New("invalid command")

	// ErrFileUnavailable wraps open, create and write failures.
	ErrFileUnavailable = errors.New("file unavailable")
)

// Messages printed for each outcome.
const (
	msgNoImage        = "No image loaded"
	msgInvalidCommand = "Invalid command"
	msgInvalidCoords  = "Invalid set of coordinates"
	msgBadAngle       = "Unsupported rotation angle"
	msgNotSquare      = "The selection must be square"
	msgNeedGray       = "Black and white image needed"
	msgNeedColor      = "Easy, Charlie Chaplin"
	msgBadFilter      = "APPLY parameter invalid"
	msgAllocation     = "Not enough memory"
)

// message turns an operation error into the line printed for it.
func message(err error) string {
	switch {
	case errors.Is(err, ErrNoImageLoaded):
		return msgNoImage
	case errors.Is(err, ErrInvalidCommand), errors.Is(err, imaging.ErrInvalidHistogram):
		return msgInvalidCommand
	case errors.Is(err, imaging.ErrInvalidCoordinates):
		return msgInvalidCoords
	case errors.Is(err, imaging.ErrUnsupportedAngle):
		return msgBadAngle
	case errors.Is(err, imaging.ErrSelectionNotSquare):
		return msgNotSquare
	case errors.Is(err, imaging.ErrColorNotSupported):
		return msgNeedGray
	case errors.Is(err, imaging.ErrGrayscaleNotSupported):
		return msgNeedColor
	case errors.Is(err, imaging.ErrUnknownFilter):
		return msgBadFilter
	case errors.Is(err, imaging.ErrAllocation):
		return msgAllocation
	}
	return err.Error()
}
