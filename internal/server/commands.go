package server

import (
	"fmt"
	"strings"

	"github.com/ironsheep/pnmedit/internal/editor"
	"github.com/ironsheep/pnmedit/internal/pnm"
)

// Verb describes one command accepted on the input stream.
type Verb struct {
	// Name is the upper-case keyword that starts the line.
	Name string

	// Usage shows the parameters, e.g. "ROTATE <angle>".
	Usage string

	// Description is a one-line summary for help output.
	Description string

	// ImageFirst verbs report "No image loaded" ahead of a malformed
	// parameter list; the others report "Invalid command" first.
	ImageFirst bool

	parse func(args []string, defaultVariant pnm.Variant) (editor.Command, error)
}

// Verbs returns every supported command in display order.
func Verbs() []Verb {
	return []Verb{
		{
			Name:        "LOAD",
			Usage:       "LOAD <file>",
			Description: "Load a P2, P3, P5 or P6 image and select all of it.",
			parse:       parseLoad,
		},
		{
			Name:        "SELECT",
			Usage:       "SELECT ALL | SELECT <x1> <y1> <x2> <y2>",
			Description: "Select the whole image or the columns [x1,x2) and rows [y1,y2).",
			ImageFirst:  true,
			parse:       parseSelect,
		},
		{
			Name:        "ROTATE",
			Usage:       "ROTATE <angle>",
			Description: "Rotate the image or a square selection clockwise by a multiple of 90 in [-360,360].",
			parse:       parseRotate,
		},
		{
			Name:        "CROP",
			Usage:       "CROP",
			Description: "Reduce the image to the current selection.",
			parse:       noArgs(editor.Crop{}),
		},
		{
			Name:        "APPLY",
			Usage:       "APPLY <EDGE|SHARPEN|BLUR|GAUSSIAN_BLUR>",
			Description: "Apply a 3x3 filter to the selection of a color image.",
			ImageFirst:  true,
			parse:       parseApply,
		},
		{
			Name:        "HISTOGRAM",
			Usage:       "HISTOGRAM <stars> <bins>",
			Description: "Print the intensity histogram of a grayscale image.",
			ImageFirst:  true,
			parse:       parseHistogram,
		},
		{
			Name:        "EQUALIZE",
			Usage:       "EQUALIZE",
			Description: "Equalize the intensities of a grayscale image.",
			parse:       noArgs(editor.Equalize{}),
		},
		{
			Name:        "SAVE",
			Usage:       "SAVE <file> [ascii|binary]",
			Description: "Write the image, binary unless ascii is given.",
			parse:       parseSave,
		},
		{
			Name:        "EXIT",
			Usage:       "EXIT",
			Description: "Release the image and stop.",
			parse:       func([]string, pnm.Variant) (editor.Command, error) { return editor.Exit{}, nil },
		},
	}
}

var verbIndex = func() map[string]Verb {
	m := make(map[string]Verb)
	for _, v := range Verbs() {
		m[v.Name] = v
	}
	return m
}()

func imageFirst(name string) bool {
	return verbIndex[name].ImageFirst
}

// ParseCommand turns the whitespace-separated fields of one input line into
// an editor command. Verbs are case-sensitive. Any unknown verb or malformed
// parameter list yields an error wrapping editor.ErrInvalidCommand.
//
// SAVE without a format uses defaultVariant.
func ParseCommand(fields []string, defaultVariant pnm.Variant) (editor.Command, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty line", editor.ErrInvalidCommand)
	}
	v, ok := verbIndex[fields[0]]
	if !ok {
		return nil, fmt.Errorf("%w: unknown verb %q", editor.ErrInvalidCommand, fields[0])
	}
	return v.parse(fields[1:], defaultVariant)
}

// Usage renders the command table for help output.
func Usage() string {
	var b strings.Builder
	for _, v := range Verbs() {
		fmt.Fprintf(&b, "  %-42s %s\n", v.Usage, v.Description)
	}
	return b.String()
}
