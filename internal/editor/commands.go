package editor

import "github.com/ironsheep/pnmedit/internal/pnm"

// Command is one validated editor instruction. The concrete types below are
// produced by the command-line parser with their parameters already typed.
type Command interface {
	// Name is the upper-case verb, e.g. "ROTATE".
	Name() string
}

// Load replaces the current image with the file at Path.
type Load struct{ Path string }

// SelectAll selects the whole image.
type SelectAll struct{}

// SelectRect selects the rectangle between corners (C1,R1) and (C2,R2).
// The ends are exclusive and the corners may come in either order.
type SelectRect struct{ C1, R1, C2, R2 int }

// Rotate turns the selection (or image) by Angle degrees clockwise.
type Rotate struct{ Angle int }

// Crop keeps only the selected region.
type Crop struct{}

// Apply runs the named convolution filter over the selection. The name is
// resolved only after the image has been checked for color, so an unknown
// name on a grayscale image reports the grayscale restriction.
type Apply struct{ Filter string }

// Histogram prints the intensity distribution in Bins rows of at most Stars stars.
type Histogram struct{ Stars, Bins int }

// Equalize remaps intensities using the cumulative distribution.
type Equalize struct{}

// Save writes the image to Path.
type Save struct {
	Path    string
	Variant pnm.Variant
}

// Exit releases the image and ends the session.
type Exit struct{}

func (Load) Name() string       { return "LOAD" }
func (SelectAll) Name() string  { return "SELECT" }
func (SelectRect) Name() string { return "SELECT" }
func (Rotate) Name() string     { return "ROTATE" }
func (Crop) Name() string       { return "CROP" }
func (Apply) Name() string      { return "APPLY" }
func (Histogram) Name() string  { return "HISTOGRAM" }
func (Equalize) Name() string   { return "EQUALIZE" }
func (Save) Name() string       { return "SAVE" }
func (Exit) Name() string       { return "EXIT" }
