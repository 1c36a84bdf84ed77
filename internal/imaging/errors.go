package imaging

import "errors"

// Errors reported by the transform engine. Callers match them with errors.Is;
// returned errors usually wrap one of these with the offending values.
var (
	ErrInvalidCoordinates    = errors.New("invalid set of coordinates")
	ErrUnsupportedAngle      = errors.New("unsupported rotation angle")
	ErrSelectionNotSquare    = errors.New("selection must be square")
	ErrColorNotSupported     = errors.New("operation requires a grayscale image")
	ErrGrayscaleNotSupported = errors.New("operation requires a color image")
	ErrUnknownFilter         = errors.New("unknown filter")
	ErrInvalidHistogram      = errors.New("invalid histogram parameters")
)
